// internal/search/ranker_test.go
package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopsphere/commerce-backend/internal/models"
)

func product(title, description, category string) models.Product {
	return models.Product{
		Title:       title,
		Description: description,
		Category:    models.Category{Name: category},
	}
}

func TestScoreExactSubstringIsPerfect(t *testing.T) {
	p := product("Leather Boots", "", "Shoes")
	assert.Equal(t, 100, Score("boot", &p))
}

func TestScoreIsCaseInsensitive(t *testing.T) {
	p := product("Leather Boots", "", "Shoes")
	assert.Equal(t, Score("BOOT", &p), Score("boot", &p))
}

func TestScoreUsesBestField(t *testing.T) {
	p := product("SKU-1042", "waterproof hiking boot for rough terrain", "Shoes")
	assert.Equal(t, 100, Score("boot", &p))

	p = product("Travel Trolley", "", "Luggage")
	assert.Equal(t, 100, Score("luggage", &p))
}

func TestScoreEmptyQuery(t *testing.T) {
	p := product("Leather Boots", "", "Shoes")
	assert.Equal(t, 0, Score("", &p))
	assert.Equal(t, 0, Score("   ", &p))
}

func TestFilterKeepsRelatedDropsUnrelated(t *testing.T) {
	products := []models.Product{
		product("Leather Boots", "", "Shoes"),
		product("Rain Boot", "", "Shoes"),
		product("Silk Scarf", "", "Accessories"),
	}

	matched := Filter("boot", products)
	require.Len(t, matched, 2)
	assert.Equal(t, "Leather Boots", matched[0].Title)
	assert.Equal(t, "Rain Boot", matched[1].Title)
}

func TestFilterToleratesTypos(t *testing.T) {
	products := []models.Product{
		product("Leather Boots", "", "Shoes"),
		product("Silk Scarf", "", "Accessories"),
	}

	matched := Filter("leathr boots", products)
	require.Len(t, matched, 1)
	assert.Equal(t, "Leather Boots", matched[0].Title)
}

func TestFilterEmptyQueryMatchesNothing(t *testing.T) {
	products := []models.Product{product("Leather Boots", "", "Shoes")}
	assert.Empty(t, Filter("", products))
}

func TestTopMatchesOrderedBestFirst(t *testing.T) {
	choices := []string{"Silk Scarf", "Rain Boot", "Leather Boots"}

	matches := TopMatches("boot", choices, 5)
	require.Len(t, matches, 2)
	for _, m := range matches {
		assert.Greater(t, m.Score, Threshold)
	}
	assert.GreaterOrEqual(t, matches[0].Score, matches[1].Score)
}

func TestTopMatchesHonorsLimit(t *testing.T) {
	choices := []string{"Boot One", "Boot Two", "Boot Three"}

	matches := TopMatches("boot", choices, 2)
	assert.Len(t, matches, 2)
}

func TestTopMatchesZeroLimit(t *testing.T) {
	assert.Nil(t, TopMatches("boot", []string{"Rain Boot"}, 0))
}
