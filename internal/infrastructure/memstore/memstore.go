// Package memstore provides the in-memory persistence layer. Every
// repository hands out deep copies, so callers never share memory with
// the store, and each write replaces a whole aggregate at once.
package memstore

import (
	"sort"
	"strings"
	"time"

	"github.com/retailops/erp-backend/internal/domain/shared"
)

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func matchesFilters(fields map[string]string, filter shared.Filter) bool {
	for key, want := range filter.Filters {
		got, ok := fields[key]
		if !ok {
			continue
		}
		wantStr, ok := want.(string)
		if !ok || wantStr == "" {
			continue
		}
		if got != wantStr {
			return false
		}
	}
	return true
}

type sortable struct {
	key     string
	created time.Time
}

func sortAndPage[T any](items []T, keys []sortable, filter shared.Filter) []T {
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	asc := filter.OrderDir != "desc"
	sort.SliceStable(idx, func(a, b int) bool {
		i, j := idx[a], idx[b]
		var less bool
		if filter.OrderBy == "created_at" || filter.OrderBy == "" {
			less = keys[i].created.Before(keys[j].created)
		} else {
			less = keys[i].key < keys[j].key
		}
		if asc {
			return less
		}
		return !less
	})

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size < 1 {
		size = 20
	}
	start := (page - 1) * size
	if start >= len(idx) {
		return []T{}
	}
	end := start + size
	if end > len(idx) {
		end = len(idx)
	}

	out := make([]T, 0, end-start)
	for _, i := range idx[start:end] {
		out = append(out, items[i])
	}
	return out
}
