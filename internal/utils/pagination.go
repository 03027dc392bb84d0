// internal/utils/pagination.go
package utils

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
)

// PageSize is fixed for product listings.
const PageSize = 12

// Page is the pagination envelope: total count plus absolute URLs of the
// adjacent pages (null at the edges).
type Page struct {
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

func GetPageParam(c *gin.Context) int {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	return page
}

// PageWindow returns the offset/limit for a page.
func PageWindow(page int) (offset, limit int) {
	return (page - 1) * PageSize, PageSize
}

// NewPage assembles the envelope for the given page of results.
func NewPage(c *gin.Context, results interface{}, total int64, page int) Page {
	totalPages := int((total + PageSize - 1) / PageSize)

	var next, previous *string
	if page < totalPages {
		next = pageURL(c, page+1)
	}
	if page > 1 && page <= totalPages+1 {
		previous = pageURL(c, page-1)
	}

	return Page{
		Count:    total,
		Next:     next,
		Previous: previous,
		Results:  results,
	}
}

// PageSlice paginates an in-memory result set, used when the search ranker
// has already replaced the relational filter result.
func PageSlice[T any](c *gin.Context, items []T, page int) Page {
	offset, limit := PageWindow(page)
	if offset > len(items) {
		offset = len(items)
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return NewPage(c, items[offset:end], int64(len(items)), page)
}

func pageURL(c *gin.Context, page int) *string {
	u := *c.Request.URL

	query := u.Query()
	query.Set("page", strconv.Itoa(page))
	u.RawQuery = query.Encode()

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	abs := fmt.Sprintf("%s://%s%s", scheme, c.Request.Host, u.RequestURI())
	if _, err := url.Parse(abs); err != nil {
		rel := u.RequestURI()
		return &rel
	}
	return &abs
}
