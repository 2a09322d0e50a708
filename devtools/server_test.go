package devtools

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lumenjs/lumen"
	"github.com/lumenjs/lumen/dom/fakedom"
)

func TestHealthzOK(t *testing.T) {
	s := NewServer(nil)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestIndexServesInspectorPage(t *testing.T) {
	s := NewServer(nil)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Errorf("expected a non-empty inspector page body")
	}
}

func TestInstallBroadcastsWithoutAConnectedClient(t *testing.T) {
	s := NewServer(nil)
	opts := lumen.Options{}
	s.Install(&opts)
	lumen.SetOptions(opts)
	defer lumen.SetOptions(lumen.Options{})

	doc := &fakedom.Document{}
	container := fakedom.NewElement("div")

	// No WebSocket client is connected; broadcast must be a no-op rather
	// than blocking or panicking.
	lumen.Render(lumen.H("div", nil, "x"), doc, container)
}
