package handler

import (
	"html"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/meloniq-lab/glotline/internal/payload"
	"github.com/meloniq-lab/glotline/pkg/schema"
	"github.com/meloniq-lab/glotline/pkg/store"
)

// pathID parses a numeric path parameter. Zero means "not provided or not a
// valid unsigned integer".
func pathID(c *gin.Context, name string) uint {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}

// queryUint parses a numeric query parameter with the same zero convention.
func queryUint(c *gin.Context, name string) uint {
	v, err := strconv.ParseUint(c.Query(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}

// sanitize trims and HTML-escapes text destined for persistence.
func sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}

// sortFromQuery validates sort_by/sort_order against their allow-lists,
// falling back to priority/desc.
func sortFromQuery(c *gin.Context) store.Sort {
	sortBy := c.Query("sort_by")
	valid := false
	for _, opt := range payload.SortByOptions {
		if opt == sortBy {
			valid = true
			break
		}
	}
	if !valid {
		sortBy = "priority"
	}

	order := c.Query("sort_order")
	if order != string(payload.Asc) && order != string(payload.Desc) {
		order = string(payload.Desc)
	}

	return store.Sort{By: sortBy, Order: order}
}

// fieldsFromQuery reads the partial-projection field selection.
func fieldsFromQuery(c *gin.Context) []string {
	return schema.ParseFields(c.Query("fields"))
}

// setTotalCount emits the collection size header on list responses.
func setTotalCount(c *gin.Context, n int) {
	c.Header("X-Total-Count", strconv.Itoa(n))
}
