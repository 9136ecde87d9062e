package users

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func seededRepo() *mockRepo {
	return &mockRepo{users: []*User{
		{ID: "u1", Name: "Ana Silva", Email: "ana@example.com", Role: "doctor", Status: "active", CreatedAt: "2023-01-10"},
		{ID: "u2", Name: "Ben Okafor", Email: "ben@example.com", Role: "patient", Status: "active", CreatedAt: "2023-05-22"},
		{ID: "u3", Name: "Cara Ito", Email: "cara@example.com", Role: "patient", Status: "suspended", CreatedAt: "2024-02-03"},
	}}
}

func listUsers(t *testing.T, target string) (int, []*User) {
	t.Helper()
	h := NewHandler(NewService(seededRepo()))
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp struct {
		Total int     `json:"total"`
		Data  []*User `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return resp.Total, resp.Data
}

func TestHandler_List_FilterByRole(t *testing.T) {
	total, data := listUsers(t, "/?category=patient")
	if total != 2 {
		t.Fatalf("expected 2 patients, got %d", total)
	}
	for _, u := range data {
		if u.Role != "patient" {
			t.Errorf("unexpected role %q", u.Role)
		}
	}
}

func TestHandler_List_FilterBySuspended(t *testing.T) {
	total, data := listUsers(t, "/?status=suspended")
	if total != 1 || data[0].ID != "u3" {
		t.Errorf("expected only the suspended account, got total=%d", total)
	}
}

func TestHandler_List_QueryMatchesEmail(t *testing.T) {
	total, data := listUsers(t, "/?q=ben@")
	if total != 1 || data[0].ID != "u2" {
		t.Errorf("expected a single email match, got total=%d", total)
	}
}

func TestHandler_Suspend(t *testing.T) {
	repo := seededRepo()
	h := NewHandler(NewService(repo))
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("u1")

	if err := h.Suspend(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var suspended User
	if err := json.Unmarshal(rec.Body.Bytes(), &suspended); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if suspended.Status != "suspended" {
		t.Errorf("expected suspended, got %q", suspended.Status)
	}
}
