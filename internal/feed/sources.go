package feed

import "github.com/cerebrohq/cerebro/internal/domain"

// Sources is the static registry of remote feed endpoints. It is defined
// once and never mutated; callers filter it by category.
var Sources = []domain.FeedSource{
	// World / conflict news (bias-balanced).
	{Name: "BBC World", URL: "https://feeds.bbci.co.uk/news/world/rss.xml", Category: domain.CategoryIntel},
	{Name: "Al Jazeera", URL: "https://www.aljazeera.com/xml/rss/all.xml", Category: domain.CategoryIntel},
	{Name: "NPR World", URL: "https://feeds.npr.org/1004/rss.xml", Category: domain.CategoryIntel},

	// Financial.
	{Name: "CNBC", URL: "https://www.cnbc.com/id/100003114/device/rss/rss.html", Category: domain.CategoryFinance},
	{Name: "MarketWatch", URL: "https://www.marketwatch.com/rss/topstories", Category: domain.CategoryFinance},

	// Tech.
	{Name: "Ars Technica", URL: "https://feeds.arstechnica.com/arstechnica/index", Category: domain.CategoryTech},
	{Name: "The Verge", URL: "https://www.theverge.com/rss/index.xml", Category: domain.CategoryTech},
	{Name: "Wired", URL: "https://www.wired.com/feed/rss", Category: domain.CategoryTech},

	// Government / geopolitical.
	{Name: "UN News", URL: "https://news.un.org/feed/subscribe/en/news/all/rss.xml", Category: domain.CategoryGov},
	{Name: "CFR", URL: "https://www.cfr.org/rss.xml", Category: domain.CategoryGov},
}

// SourcesByCategory returns the registered sources for one category, in
// registry order.
func SourcesByCategory(sources []domain.FeedSource, category domain.Category) []domain.FeedSource {
	var out []domain.FeedSource
	for _, s := range sources {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}
