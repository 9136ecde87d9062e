package pagination

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// defaultPageSize is the fallback for requests without an explicit
// page_size. Deployments override it once at startup via
// SetDefaultPageSize (PAGE_SIZE config knob).
var defaultPageSize = DefaultPageSize

// SetDefaultPageSize overrides the fallback page size. Values outside
// [1, MaxPageSize] are clamped.
func SetDefaultPageSize(size int) {
	if size < 1 {
		size = 1
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	defaultPageSize = size
}

// Params holds the page parameters extracted from a list request. Pages
// are 1-indexed to match the view layer's pagination controls.
type Params struct {
	Page     int
	PageSize int
}

// FromContext extracts page parameters from the echo context.
func FromContext(c echo.Context) Params {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return Params{Page: page, PageSize: pageSize}
}

// Response wraps one page of a filtered list.
type Response struct {
	Data      interface{} `json:"data"`
	Total     int         `json:"total"`
	Page      int         `json:"page"`
	PageCount int         `json:"page_count"`
	PageSize  int         `json:"page_size"`
	HasMore   bool        `json:"has_more"`
}

func NewResponse(data interface{}, total, page, pageCount, pageSize int) *Response {
	return &Response{
		Data:      data,
		Total:     total,
		Page:      page,
		PageCount: pageCount,
		PageSize:  pageSize,
		HasMore:   page < pageCount,
	}
}
