package advisor

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"InvestAdvisor/internal/model"
)

func decodeRaw(t *testing.T, body string) RawRequest {
	t.Helper()
	var raw RawRequest
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	return raw
}

func TestValidate_OK(t *testing.T) {
	raw := decodeRaw(t, `{"age":30,"risk":"High","horizon":" long ","goal":"Long Term Growth","invested_amount":100000,"language":"HI"}`)
	in, err := Validate(raw)
	require.NoError(t, err)

	assert.Equal(t, model.Profile{Age: 30, Risk: model.RiskHigh, Horizon: model.HorizonLong, Goal: "long term growth"}, in.Profile)
	assert.Equal(t, "100000", in.Principal.String())
	assert.Equal(t, "hi", in.Language)
}

func TestValidate_NumericStrings(t *testing.T) {
	raw := decodeRaw(t, `{"age":"42","risk":"low","horizon":"short","goal":"income","invested_amount":"2500.50"}`)
	in, err := Validate(raw)
	require.NoError(t, err)
	assert.Equal(t, 42, in.Profile.Age)
	assert.Equal(t, "2500.5", in.Principal.String())
	assert.Empty(t, in.Language)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing age", `{"risk":"low","horizon":"short","goal":"x","invested_amount":1}`, "age"},
		{"zero age", `{"age":0,"risk":"low","horizon":"short","goal":"x","invested_amount":1}`, "age"},
		{"negative age", `{"age":-4,"risk":"low","horizon":"short","goal":"x","invested_amount":1}`, "age"},
		{"fractional age", `{"age":30.5,"risk":"low","horizon":"short","goal":"x","invested_amount":1}`, "age"},
		{"text age", `{"age":"thirty","risk":"low","horizon":"short","goal":"x","invested_amount":1}`, "age"},
		{"unknown risk", `{"age":30,"risk":"extreme","horizon":"short","goal":"x","invested_amount":1}`, "risk"},
		{"numeric risk", `{"age":30,"risk":3,"horizon":"short","goal":"x","invested_amount":1}`, "risk"},
		{"unknown horizon", `{"age":30,"risk":"low","horizon":"forever","goal":"x","invested_amount":1}`, "horizon"},
		{"missing goal", `{"age":30,"risk":"low","horizon":"short","invested_amount":1}`, "goal"},
		{"blank goal", `{"age":30,"risk":"low","horizon":"short","goal":"   ","invested_amount":1}`, "goal"},
		{"missing amount", `{"age":30,"risk":"low","horizon":"short","goal":"x"}`, "invested_amount"},
		{"negative amount", `{"age":30,"risk":"low","horizon":"short","goal":"x","invested_amount":-1}`, "invested_amount"},
		{"text amount", `{"age":30,"risk":"low","horizon":"short","goal":"x","invested_amount":"lots"}`, "invested_amount"},
		{"numeric language", `{"age":30,"risk":"low","horizon":"short","goal":"x","invested_amount":1,"language":7}`, "language"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(decodeRaw(t, tt.body))
			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrInvalidInput))

			var ie *model.InputError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, tt.field, ie.Field)
		})
	}
}

func TestValidate_NonFiniteAmount(t *testing.T) {
	raw := RawRequest{Age: 30.0, Risk: "low", Horizon: "short", Goal: "x", InvestedAmount: math.Inf(1)}
	_, err := Validate(raw)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestValidate_ZeroAmountAllowed(t *testing.T) {
	raw := RawRequest{Age: 30, Risk: "medium", Horizon: "medium", Goal: "hedge + growth", InvestedAmount: 0}
	in, err := Validate(raw)
	require.NoError(t, err)
	assert.True(t, in.Principal.IsZero())
}
