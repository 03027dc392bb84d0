// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopsphere/commerce-backend/internal/models"
	"github.com/shopsphere/commerce-backend/internal/search"
	"github.com/shopsphere/commerce-backend/internal/utils"
)

// avgRatingExpr computes the mean review rating per product. NULL (not
// zero) when the product has no reviews, so unreviewed products survive
// listings but are excluded by a min_rating filter and sort last in
// top-rated ordering.
const avgRatingExpr = "(SELECT AVG(rating) FROM reviews WHERE reviews.product_id = products.id)"

type CatalogService struct {
	db *gorm.DB
}

type ProductFilters struct {
	CategoryID *uuid.UUID
	MinPrice   *float64
	MaxPrice   *float64
	MinRating  *float64
	Search     string
}

type CategoryListing struct {
	models.Category
	FirstProductImageURL *string `json:"first_product_image_url"`
}

type Suggestion struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) baseProductQuery() *gorm.DB {
	return s.db.Model(&models.Product{}).
		Select("products.*, " + avgRatingExpr + " AS avg_rating").
		Preload("Category")
}

// ListProducts applies the relational filters and, when a search query is
// present, narrows the filter result to the ranker's matches before
// pagination. Returns the requested page and the total match count.
func (s *CatalogService) ListProducts(filters ProductFilters, page int) ([]models.Product, int64, error) {
	query := s.baseProductQuery()

	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	if filters.MinPrice != nil {
		query = query.Where("price >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		query = query.Where("price <= ?", *filters.MaxPrice)
	}
	if filters.MinRating != nil {
		query = query.Where(avgRatingExpr+" >= ?", *filters.MinRating)
	}

	if q := strings.TrimSpace(filters.Search); q != "" {
		// Fuzzy ranking happens in memory over the filtered candidates,
		// so the whole candidate set is fetched before pagination.
		var candidates []models.Product
		if err := query.Find(&candidates).Error; err != nil {
			return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
		}

		matched := search.Filter(q, candidates)

		offset, limit := utils.PageWindow(page)
		if offset > len(matched) {
			offset = len(matched)
		}
		end := offset + limit
		if end > len(matched) {
			end = len(matched)
		}
		return matched[offset:end], int64(len(matched)), nil
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	offset, limit := utils.PageWindow(page)

	var products []models.Product
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

func (s *CatalogService) ListByCategory(categoryID uuid.UUID) ([]models.Product, error) {
	var category models.Category
	if err := s.db.First(&category, "id = ?", categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var products []models.Product
	if err := s.baseProductQuery().Where("category_id = ?", categoryID).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, nil
}

func (s *CatalogService) TopRated(limit int) ([]models.Product, error) {
	var products []models.Product
	if err := s.baseProductQuery().
		Order(avgRatingExpr + " DESC NULLS LAST").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch top rated products: %w", err)
	}

	return products, nil
}

func (s *CatalogService) GetProduct(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.baseProductQuery().Where("products.id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &product, nil
}

// ListCategories returns every category with the image of its first
// product, when one exists.
func (s *CatalogService) ListCategories() ([]CategoryListing, error) {
	var categories []models.Category
	if err := s.db.Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	listings := make([]CategoryListing, 0, len(categories))
	for _, category := range categories {
		listing := CategoryListing{Category: category}

		var first models.Product
		err := s.db.Where("category_id = ?", category.ID).
			Order("created_at").
			First(&first).Error
		if err == nil && first.Image != "" {
			image := first.Image
			listing.FirstProductImageURL = &image
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to fetch category product: %w", err)
		}

		listings = append(listings, listing)
	}

	return listings, nil
}

// SearchSuggestions returns typed suggestions in priority order: substring
// product titles, substring category names, then fuzzy near-duplicates of
// each that are not already present. Deduplicated by exact value.
func (s *CatalogService) SearchSuggestions(q string) ([]Suggestion, error) {
	q = strings.TrimSpace(q)
	suggestions := []Suggestion{}
	if q == "" {
		return suggestions, nil
	}

	like := "%" + strings.ToLower(q) + "%"
	seen := make(map[string]bool)

	var productTitles []string
	if err := s.db.Model(&models.Product{}).
		Where("LOWER(title) LIKE ?", like).
		Limit(10).
		Pluck("title", &productTitles).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch product suggestions: %w", err)
	}
	for _, title := range productTitles {
		if !seen[title] {
			seen[title] = true
			suggestions = append(suggestions, Suggestion{Type: "product", Value: title})
		}
	}

	var categoryNames []string
	if err := s.db.Model(&models.Category{}).
		Where("LOWER(name) LIKE ?", like).
		Limit(5).
		Pluck("name", &categoryNames).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch category suggestions: %w", err)
	}
	for _, name := range categoryNames {
		if !seen[name] {
			seen[name] = true
			suggestions = append(suggestions, Suggestion{Type: "category", Value: name})
		}
	}

	var allTitles []string
	if err := s.db.Model(&models.Product{}).Pluck("title", &allTitles).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch product titles: %w", err)
	}
	for _, match := range search.TopMatches(q, allTitles, 5) {
		if !seen[match.Value] {
			seen[match.Value] = true
			suggestions = append(suggestions, Suggestion{Type: "similar", Value: match.Value})
		}
	}

	var allCategories []string
	if err := s.db.Model(&models.Category{}).Pluck("name", &allCategories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch category names: %w", err)
	}
	for _, match := range search.TopMatches(q, allCategories, 3) {
		if !seen[match.Value] {
			seen[match.Value] = true
			suggestions = append(suggestions, Suggestion{Type: "similar_category", Value: match.Value})
		}
	}

	return suggestions, nil
}
