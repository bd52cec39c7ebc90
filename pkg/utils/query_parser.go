package utils

import (
	"net/url"
	"strconv"

	"gym-system/pkg/types"
)

// ParseListQuery reads flat list parameters (?category=...&status=...&
// limit=...&offset=...) into a Filter. Only allow-listed keys become
// filters; limit 0 or absent means unlimited.
func ParseListQuery(values url.Values, allowedFilters []string) types.Filter {
	filter := types.Filter{Filter: make(map[string]interface{})}

	for _, key := range allowedFilters {
		if v := values.Get(key); v != "" {
			filter.Filter[key] = v
		}
	}

	if limitStr := values.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			filter.Limit = l
		}
	}

	if offsetStr := values.Get("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o > 0 {
			filter.Offset = o
		}
	}

	return filter
}
