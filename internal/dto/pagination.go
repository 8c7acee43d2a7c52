package dto

import "github.com/SscSPs/bizbooks/internal/utils/pagination"

// PageQuery is embedded in list query parameter structs.
type PageQuery struct {
	Page  int `form:"page" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// Params normalizes the query into defaults-applied paging parameters.
func (q PageQuery) Params() pagination.Params {
	return pagination.Params{Page: q.Page, Limit: q.Limit}.Normalize()
}

// Pagination describes the page returned alongside a list.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

func NewPagination(p pagination.Params, total int) Pagination {
	return Pagination{
		Page:  p.Page,
		Limit: p.Limit,
		Total: total,
		Pages: pagination.Pages(total, p.Limit),
	}
}
