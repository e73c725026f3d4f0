package collector

// DefaultSymbols is the NIFTY 50 subset screened for top performers.
var DefaultSymbols = []string{
	"RELIANCE.NS", "TCS.NS", "HDFCBANK.NS", "INFY.NS", "ICICIBANK.NS", "KOTAKBANK.NS",
	"LT.NS", "AXISBANK.NS", "SBIN.NS", "BHARTIARTL.NS", "ITC.NS", "HINDUNILVR.NS",
	"BAJFINANCE.NS", "ASIANPAINT.NS", "MARUTI.NS", "SUNPHARMA.NS", "TITAN.NS", "ONGC.NS",
	"ULTRACEMCO.NS", "INDUSINDBK.NS", "NTPC.NS", "POWERGRID.NS", "DIVISLAB.NS", "DRREDDY.NS",
	"HCLTECH.NS", "COALINDIA.NS", "SHREECEM.NS", "BAJAJFINSV.NS", "TATAMOTORS.NS", "GRASIM.NS",
}
