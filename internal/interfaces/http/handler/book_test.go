package handler

import (
	"net/http"
	"testing"

	"thelight-api/internal/application/catalog"
	"thelight-api/internal/interfaces/http/dto"

	"github.com/gin-gonic/gin"
)

func newBookEngine() *gin.Engine {
	h := NewBookHandler(catalog.New())
	e := gin.New()
	e.GET("/api/books", h.ListBooks)
	e.GET("/api/books/:book", h.GetBook)
	return e
}

func TestListBooks(t *testing.T) {
	engine := newBookEngine()

	tests := []struct {
		query string
		total int
		first string
	}{
		{"", 66, "Genesis"},
		{"?testament=old", 39, "Genesis"},
		{"?testament=NEW", 27, "Matthew"},
		{"?testament=nt", 27, "Matthew"},
	}
	for _, tt := range tests {
		w := doRequest(t, engine, http.MethodGet, "/api/books"+tt.query, "")
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status = %d", tt.query, w.Code)
		}
		resp := decodeBody[dto.Response[dto.BookListResponse]](t, w)
		if resp.Data.Total != tt.total || len(resp.Data.Books) != tt.total {
			t.Errorf("%s: total = %d, len = %d, want %d", tt.query, resp.Data.Total, len(resp.Data.Books), tt.total)
		}
		if resp.Data.Books[0].Name != tt.first {
			t.Errorf("%s: first = %q, want %q", tt.query, resp.Data.Books[0].Name, tt.first)
		}
	}
}

func TestListBooks_InvalidTestament(t *testing.T) {
	w := doRequest(t, newBookEngine(), http.MethodGet, "/api/books?testament=apocrypha", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestGetBook(t *testing.T) {
	engine := newBookEngine()

	for path, want := range map[string]string{
		"/api/books/John":            "John",
		"/api/books/1-samuel":        "1 Samuel",
		"/api/books/Rev":             "Revelation",
		"/api/books/song_of_solomon": "Song of Solomon",
	} {
		w := doRequest(t, engine, http.MethodGet, path, "")
		if w.Code != http.StatusOK {
			t.Errorf("%s: status = %d", path, w.Code)
			continue
		}
		resp := decodeBody[dto.Response[dto.BookResponse]](t, w)
		if resp.Data.Name != want {
			t.Errorf("%s: name = %q, want %q", path, resp.Data.Name, want)
		}
	}
}

func TestGetBook_NotFound(t *testing.T) {
	w := doRequest(t, newBookEngine(), http.MethodGet, "/api/books/Tobit", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	if got := decodeBody[dto.ErrorResponse](t, w); got.Error != "book not found" {
		t.Errorf("error = %q", got.Error)
	}
}
