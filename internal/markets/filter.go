package markets

import "strings"

// geoKeywords is the fixed relevance list: an event concerns geopolitics iff
// its lower-cased title contains at least one of these as a substring.
var geoKeywords = []string{
	"war",
	"conflict",
	"military",
	"invasion",
	"sanctions",
	"nato",
	"china",
	"russia",
	"ukraine",
	"iran",
	"israel",
	"taiwan",
	"nuclear",
	"missile",
	"ceasefire",
	"election",
	"president",
	"prime minister",
	"tariff",
	"trade war",
	"oil",
	"opec",
	"trump",
	"biden",
	"congress",
	"senate",
	"geopolit",
	"diplomat",
	"peace",
	"treaty",
}

// Relevant reports whether an event title passes the geopolitical relevance
// filter.
func Relevant(title string) bool {
	text := strings.ToLower(title)
	for _, kw := range geoKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
