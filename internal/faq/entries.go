package faq

import "InvestAdvisor/internal/model"

var defaultEntries = []model.FAQEntry{
	{Question: "What is a mutual fund?", Answer: "A mutual fund is an investment vehicle made up of a pool of money collected from many investors to invest in stocks, bonds and other securities."},
	{Question: "What is meant by investment?", Answer: "Investment is the act of committing money or capital to an endeavor with the expectation of obtaining an additional income or profit."},
	{Question: "How do mutual funds work?", Answer: "Mutual funds collect money from investors and buy a diversified portfolio of assets managed by professional fund managers."},
	{Question: "What are the types of mutual funds?", Answer: "Types include equity funds, debt funds, balanced funds, index funds, among others."},
	{Question: "What are the risks associated with mutual funds?", Answer: "Risks include market risk, credit risk, interest rate risk, and others depending on the fund type."},
	{Question: "What are the benefits of investing in mutual funds?", Answer: "Mutual funds offer diversification, professional management, liquidity, and convenience for small investors."},
	{Question: "What is Systematic Investment Plan (SIP)?", Answer: "SIP is a method where you invest a fixed amount regularly in mutual funds, helping to average out market volatility."},
	{Question: "How is a mutual fund different from stocks?", Answer: "A mutual fund pools money to invest in many stocks or bonds, while buying stock means owning a part of a single company."},
	{Question: "What is the difference between equity and debt mutual funds?", Answer: "Equity funds invest mostly in stocks with higher growth and risk; debt funds invest in bonds with relatively lower risk and steady returns."},
	{Question: "What does NAV (Net Asset Value) mean?", Answer: "NAV is the per-unit price of a mutual fund, calculated daily, representing the market value of the fund’s assets minus liabilities."},
	{Question: "Are mutual funds safe investments?", Answer: "Mutual funds carry market risks, but diversification and professional management help reduce risk; always invest as per your risk profile."},
	{Question: "What is the lock-in period in mutual funds?", Answer: "Some funds, like ELSS (tax-saving mutual funds), have a minimum period you must hold before you can redeem without penalties."},
	{Question: "How does inflation affect my investments?", Answer: "Inflation reduces the value of money over time, so investments ideally should earn returns above inflation to grow your real wealth."},
	{Question: "What tax benefits do mutual funds offer?", Answer: "Some funds provide tax deductions or lower tax rates on returns, especially ELSS and long-term capital gains from equity funds."},
	{Question: "Can I redeem my mutual fund units anytime?", Answer: "Most funds allow you to redeem units anytime, but some schemes have exit loads or lock-in periods restricting early withdrawal."},
}
