package handlers

import (
	"net/http"
	"strconv"
)

// pagination reads page (>= 1) and pageSize (capped at max) query parameters.
func pagination(r *http.Request, defaultSize, maxSize int) (page, pageSize int) {
	page = 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 1 {
			page = n
		}
	}

	pageSize = defaultSize
	if raw := r.URL.Query().Get("pageSize"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			pageSize = n
		}
	}
	if pageSize > maxSize {
		pageSize = maxSize
	}

	return page, pageSize
}
