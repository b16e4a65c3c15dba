package conflict

import (
	"strings"

	"github.com/cerebrohq/cerebro/internal/domain"
)

// MatchArticles tags each article with the ids of every conflict whose
// keywords appear in it. A conflict matches when the lower-cased
// concatenation of title and snippet contains any of its lower-cased
// keywords as a plain substring — no tokenization or word boundaries, so a
// keyword matches even mid-word. Short, common keywords can therefore
// over-match; that is the documented contract, not something to tighten
// here. The input slice is not mutated; a tagged copy is returned.
func MatchArticles(articles []domain.Article, conflicts []domain.Conflict) []domain.Article {
	tagged := make([]domain.Article, len(articles))
	for i, article := range articles {
		text := strings.ToLower(article.Title + " " + article.Snippet)

		var matched []string
		for _, c := range conflicts {
			for _, kw := range c.Keywords {
				if strings.Contains(text, strings.ToLower(kw)) {
					matched = append(matched, c.ID)
					break
				}
			}
		}

		article.MatchedConflicts = matched
		tagged[i] = article
	}
	return tagged
}

// ConflictsWithNews derives, for every conflict, the ordered subsequence of
// tagged articles referencing it, truncated to the first MaxRelatedNews in
// existing (newest-first) order.
func ConflictsWithNews(conflicts []domain.Conflict, articles []domain.Article) []domain.ConflictWithNews {
	out := make([]domain.ConflictWithNews, 0, len(conflicts))
	for _, c := range conflicts {
		related := make([]domain.Article, 0, domain.MaxRelatedNews)
		for _, a := range articles {
			if len(related) == domain.MaxRelatedNews {
				break
			}
			for _, id := range a.MatchedConflicts {
				if id == c.ID {
					related = append(related, a)
					break
				}
			}
		}
		out = append(out, domain.ConflictWithNews{Conflict: c, RelatedNews: related})
	}
	return out
}
