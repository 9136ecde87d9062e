package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func paramsFor(t *testing.T, query string) Params {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	return FromContext(e.NewContext(req, rec))
}

func TestFromContext_Defaults(t *testing.T) {
	p := paramsFor(t, "")
	if p.Page != 1 {
		t.Errorf("expected default page 1, got %d", p.Page)
	}
	if p.PageSize != DefaultPageSize {
		t.Errorf("expected default page size %d, got %d", DefaultPageSize, p.PageSize)
	}
}

func TestFromContext_Explicit(t *testing.T) {
	p := paramsFor(t, "page=3&page_size=25")
	if p.Page != 3 || p.PageSize != 25 {
		t.Errorf("expected page 3 size 25, got page %d size %d", p.Page, p.PageSize)
	}
}

func TestFromContext_ClampsBadValues(t *testing.T) {
	p := paramsFor(t, "page=-1&page_size=9999")
	if p.Page != 1 {
		t.Errorf("negative page should clamp to 1, got %d", p.Page)
	}
	if p.PageSize != MaxPageSize {
		t.Errorf("oversized page_size should clamp to %d, got %d", MaxPageSize, p.PageSize)
	}
}

func TestSetDefaultPageSize(t *testing.T) {
	t.Cleanup(func() { SetDefaultPageSize(DefaultPageSize) })

	SetDefaultPageSize(25)
	p := paramsFor(t, "")
	if p.PageSize != 25 {
		t.Errorf("expected configured default 25, got %d", p.PageSize)
	}

	p = paramsFor(t, "page_size=5")
	if p.PageSize != 5 {
		t.Errorf("explicit page_size should win, got %d", p.PageSize)
	}

	SetDefaultPageSize(0)
	p = paramsFor(t, "")
	if p.PageSize != 1 {
		t.Errorf("non-positive default should clamp to 1, got %d", p.PageSize)
	}

	SetDefaultPageSize(9999)
	p = paramsFor(t, "")
	if p.PageSize != MaxPageSize {
		t.Errorf("oversized default should clamp to %d, got %d", MaxPageSize, p.PageSize)
	}
}

func TestNewResponse_HasMore(t *testing.T) {
	r := NewResponse(nil, 25, 2, 3, 10)
	if !r.HasMore {
		t.Error("page 2 of 3 should have more")
	}
	r = NewResponse(nil, 25, 3, 3, 10)
	if r.HasMore {
		t.Error("last page should not have more")
	}
}
