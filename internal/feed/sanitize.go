package feed

import "strings"

// entityReplacer decodes the handful of HTML entities feeds commonly embed in
// their descriptions. Deliberately not a full entity table; anything else
// passes through untouched.
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

// stripHTML removes HTML tags, decodes common entities, and collapses runs of
// whitespace into single spaces.
func stripHTML(html string) string {
	var b strings.Builder
	b.Grow(len(html))
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(entityReplacer.Replace(b.String())), " ")
}

// truncate shortens text to at most maxLen characters, cutting back to the
// previous word boundary and appending an ellipsis when anything was removed.
func truncate(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	cut := string(runes[:maxLen])
	// Drop the trailing partial word, if any.
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = strings.TrimRight(cut[:i], " ")
	}
	return cut + "…"
}
