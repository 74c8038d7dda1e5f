package pagination

import "gorm.io/gorm"

const (
	defaultPageSize = 20
	maxPageSize     = 250
)

// Request is the page/size pair accepted by list endpoints.
type Request struct {
	Page     int `form:"page,default=1" validate:"gte=1"`
	PageSize int `form:"page_size,default=20" validate:"gte=1,lte=250"`
}

// PageInfo describes one page of a larger result set.
type PageInfo struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

func (r Request) Normalize() Request {
	out := r
	if out.Page < 1 {
		out.Page = 1
	}
	if out.PageSize < 1 {
		out.PageSize = defaultPageSize
	}
	if out.PageSize > maxPageSize {
		out.PageSize = maxPageSize
	}
	return out
}

func (r Request) Offset() int {
	n := r.Normalize()
	return (n.Page - 1) * n.PageSize
}

// Apply constrains the statement to the requested page.
func (r Request) Apply(stmt *gorm.DB) *gorm.DB {
	n := r.Normalize()
	return stmt.Offset(n.Offset()).Limit(n.PageSize)
}

// Info builds the PageInfo for a counted result set.
func (r Request) Info(total int64) PageInfo {
	n := r.Normalize()
	return PageInfo{Page: n.Page, PageSize: n.PageSize, Total: total}
}
