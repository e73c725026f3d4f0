package calculator

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"InvestAdvisor/internal/model"
)

// YearOverYear returns the percent change between the latest observation and
// the value `months` calendar months before it. Observations must be in date
// order. Gaps in the series do not shift the base: when the base month itself
// is missing, the last observation before it carries forward.
func YearOverYear(obs []model.Observation, months int) (decimal.Decimal, error) {
	if months <= 0 {
		return decimal.Zero, errors.New("months must be positive")
	}
	if len(obs) == 0 {
		return decimal.Zero, errors.New("no observations")
	}
	last := obs[len(obs)-1]
	target := last.Date.AddDate(0, -months, 0)

	i := baseIndex(obs, target)
	if i < 0 {
		return decimal.Zero, fmt.Errorf("need an observation on or before %s, earliest is %s",
			target.Format("2006-01-02"), obs[0].Date.Format("2006-01-02"))
	}
	base := decimal.NewFromFloat(obs[i].Value)
	if base.IsZero() {
		return decimal.Zero, errors.New("base observation is zero")
	}
	return decimal.NewFromFloat(last.Value).Div(base).Sub(decimal.NewFromInt(1)).Mul(hundred), nil
}

// baseIndex returns the index of the last observation dated on or before
// target, or -1.
func baseIndex(obs []model.Observation, target time.Time) int {
	for i := len(obs) - 1; i >= 0; i-- {
		if !obs[i].Date.After(target) {
			return i
		}
	}
	return -1
}
