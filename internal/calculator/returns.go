package calculator

import (
	"errors"

	"github.com/shopspring/decimal"

	"InvestAdvisor/internal/model"
)

var hundred = decimal.NewFromInt(100)

// ErrNoData is returned when a series holds no usable values.
var ErrNoData = errors.New("no usable data points")

// PercentReturn computes (last-first)/first*100 over the closes of bars.
// Bars without a close (zero or negative) are ignored.
func PercentReturn(bars []model.OHLCV) (decimal.Decimal, error) {
	closes := extractCloses(bars)
	if len(closes) == 0 {
		return decimal.Zero, ErrNoData
	}
	first := closes[0]
	last := closes[len(closes)-1]
	return last.Sub(first).Div(first).Mul(hundred), nil
}

func extractCloses(bars []model.OHLCV) []decimal.Decimal {
	closes := make([]decimal.Decimal, 0, len(bars))
	for _, b := range bars {
		if b.Close <= 0 {
			continue
		}
		closes = append(closes, decimal.NewFromFloat(b.Close))
	}
	return closes
}
