package handler

import (
	"strconv"

	"github.com/retailops/erp-backend/internal/domain/shared"
)

// listQuery binds the common pagination and search query parameters
// shared by the master data list endpoints
type listQuery struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search   string `form:"search"`
	Active   *bool  `form:"active"`
}

func (q listQuery) toFilter() shared.Filter {
	f := shared.DefaultFilter()
	if q.Page > 0 {
		f.Page = q.Page
	}
	if q.PageSize > 0 {
		f.PageSize = q.PageSize
	}
	if q.OrderBy != "" {
		f.OrderBy = q.OrderBy
	}
	if q.OrderDir != "" {
		f.OrderDir = q.OrderDir
	}
	f.Search = q.Search
	if q.Active != nil {
		f.Filters["active"] = strconv.FormatBool(*q.Active)
	}
	return f
}
