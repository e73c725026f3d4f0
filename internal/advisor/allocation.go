package advisor

import (
	"github.com/shopspring/decimal"

	"InvestAdvisor/internal/model"
)

var hundred = decimal.NewFromInt(100)

// split is the stock/fund share of the principal, in percent.
type split struct {
	stock decimal.Decimal
	fund  decimal.Decimal
}

var splits = map[model.Risk]split{
	model.RiskHigh:   {decimal.NewFromInt(70), decimal.NewFromInt(30)},
	model.RiskMedium: {decimal.NewFromInt(50), decimal.NewFromInt(50)},
	model.RiskLow:    {decimal.NewFromInt(30), decimal.NewFromInt(70)},
}

// AllocationResult holds unrounded allocation values.
type AllocationResult struct {
	StockPercent        decimal.Decimal
	FundPercent         decimal.Decimal
	StockAmount         decimal.Decimal
	FundAmount          decimal.Decimal
	PerInstrumentAmount decimal.Decimal
}

// Allocate splits principal between stocks and funds according to risk, and
// spreads the stock share evenly over instrumentCount instruments.
func Allocate(risk model.Risk, principal decimal.Decimal, instrumentCount int) (AllocationResult, error) {
	sp, ok := splits[risk]
	if !ok {
		return AllocationResult{}, &model.InputError{Field: "risk", Reason: "must be one of low, medium, high"}
	}

	res := AllocationResult{
		StockPercent: sp.stock,
		FundPercent:  sp.fund,
		StockAmount:  principal.Mul(sp.stock).Div(hundred),
		FundAmount:   principal.Mul(sp.fund).Div(hundred),
	}
	if instrumentCount > 0 {
		res.PerInstrumentAmount = res.StockAmount.Div(decimal.NewFromInt(int64(instrumentCount)))
	}
	return res, nil
}

// Rounded converts the result for output: percentages to 1 dp, money to 2 dp.
func (a AllocationResult) Rounded() model.Allocation {
	return model.Allocation{
		StockPercent:   a.StockPercent.Round(1).InexactFloat64(),
		FundPercent:    a.FundPercent.Round(1).InexactFloat64(),
		StockAmount:    a.StockAmount.Round(2).InexactFloat64(),
		FundAmount:     a.FundAmount.Round(2).InexactFloat64(),
		PerStockAmount: a.PerInstrumentAmount.Round(2).InexactFloat64(),
	}
}
