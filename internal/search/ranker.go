// internal/search/ranker.go
package search

import (
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/shopsphere/commerce-backend/internal/models"
)

// Threshold is the minimum partial-ratio score (0-100) a field must reach
// for a product to be considered a match.
const Threshold = 60

// Score computes the best partial-ratio similarity between the query and
// the product's title, description, and category name.
func Score(query string, p *models.Product) int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0
	}

	scoreTitle := fuzzy.PartialRatio(q, strings.ToLower(p.Title))
	scoreDesc := fuzzy.PartialRatio(q, strings.ToLower(p.Description))
	scoreCat := fuzzy.PartialRatio(q, strings.ToLower(p.Category.Name))

	best := scoreTitle
	if scoreDesc > best {
		best = scoreDesc
	}
	if scoreCat > best {
		best = scoreCat
	}
	return best
}

// Filter keeps the products whose best field score exceeds Threshold,
// preserving the candidate order. Linear in candidates; acceptable because
// candidate sets are small and there is no index to consult.
func Filter(query string, products []models.Product) []models.Product {
	matched := make([]models.Product, 0, len(products))
	for i := range products {
		if Score(query, &products[i]) > Threshold {
			matched = append(matched, products[i])
		}
	}
	return matched
}

type Match struct {
	Value string
	Score int
}

// TopMatches scores every choice against the query with the partial-ratio
// scorer and returns up to limit choices above Threshold, best first.
func TopMatches(query string, choices []string, limit int) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil
	}

	matches := make([]Match, 0, len(choices))
	for _, choice := range choices {
		score := fuzzy.PartialRatio(q, strings.ToLower(choice))
		if score > Threshold {
			matches = append(matches, Match{Value: choice, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
