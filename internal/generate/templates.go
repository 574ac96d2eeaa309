package generate

import "github.com/Mohamed-Hesham90/stock-market-ai-dataset/internal/model"

// Template placeholders:
//
//	{ticker}  - stock symbol ("AAPL")
//	{cashtag} - symbol with $ prefix ("$AAPL")
//	{company} - a generated company name, used for competitors/partners
//	{percent} - random 1-15 integer percentage
//	{value}   - random 10.00-50.00 dollar-billions figure
var postTemplates = map[string][]string{
	model.SentimentPositive: {
		"🚀 {cashtag} is looking strong today! Huge gains incoming!",
		"🔥 {cashtag} breaking out to new highs! Investors are excited!",
		"{ticker} revenue surged by {percent}% 💰",
		"Massive earnings beat! {ticker} reports {value} billion in revenue! 💵🚀",
		"Bullish on {ticker}, impressive performance! 📈🔥",
		"{ticker} just acquired {company}, big move! 💼",
		"Strong demand for {ticker} products, stock is flying! 🚀💰",
		"{ticker} stock up {percent}% after stellar earnings report! 📈💵",
		"Investors are loving {ticker}'s latest product innovation! 🔥",
	},
	model.SentimentNegative: {
		"{ticker} under pressure after missing earnings! 📉",
		"⚠️ {cashtag} breaking down, rough market reaction! 📉",
		"{ticker} faces tough competition from {company}.",
		"Regulatory concerns hitting {ticker}, potential lawsuits ahead! ⚖️📉",
		"{ticker} layoffs reported, stock down {percent}%! 😬",
		"Bearish on {cashtag}, downtrend looks ugly. 📉",
		"{ticker} sell-off accelerating, down {percent}% on heavy volume.",
	},
	model.SentimentNeutral: {
		"📢 {ticker} announces updates at its latest event.",
		"📊 {cashtag} trading sideways, waiting for earnings.",
		"💡 {ticker} investing in new tech, interesting development!",
		"🤝 {ticker} partnering with {company} on new initiative.",
		"{ticker} hiring aggressively this quarter.",
		"📢 {ticker} conference reveals new product features.",
		"Watching {cashtag} ahead of the earnings call next week.",
	},
}

// hashtagPool is sampled for the optional hashtag suffix.
var hashtagPool = []string{
	"#Stocks", "#Finance", "#Investing", "#WallStreet", "#TechStocks", "#EarningsSeason",
}

// Word lists for generated company names and author handles.
var (
	companyFirst = []string{
		"Apex", "Quantum", "Vertex", "Summit", "Orion", "Atlas", "Nimbus",
		"Pioneer", "Sterling", "Cascade", "Horizon", "Beacon",
	}
	companySecond = []string{
		"Dynamics", "Systems", "Holdings", "Logistics", "Labs", "Industries",
		"Partners", "Technologies", "Capital", "Group",
	}
	authorAdjectives = []string{
		"bullish", "diamond", "alpha", "macro", "swing", "value", "momentum",
		"dip", "quant", "chart",
	}
	authorNouns = []string{
		"trader", "whale", "hands", "investor", "guru", "hunter", "watcher",
		"ape", "analyst", "scalper",
	}
)
