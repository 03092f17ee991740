package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	cfgpkg "github.com/srccircumflex/ulid-tool/internal/config"
	idsvc "github.com/srccircumflex/ulid-tool/internal/services/ids"
	logpkg "github.com/srccircumflex/ulid-tool/pkg/log"
	"github.com/srccircumflex/ulid-tool/pkg/ulid"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	svc, err := idsvc.Open(cfgpkg.Default())
	if err != nil {
		t.Fatalf("svc open: %v", err)
	}
	t.Cleanup(func() { svc.Close() })
	logger, _ := logpkg.ApplyConfig(&logpkg.Config{Level: "error", Format: "text"})
	return New(svc, logger)
}

func TestHealthHandler(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/healthz", nil)
	w := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(w, req)
	if w.Code != 200 {
		t.Fatalf("status: %d", w.Code)
	}
}

func TestGenerateHandler(t *testing.T) {
	s := newTestServer(t)
	body := `{"count":3}`
	req := httptest.NewRequest(http.MethodPost, "/v1/ids", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("status: %d", w.Code)
	}
	var resp struct {
		IDs []struct {
			Canonical string `json:"canonical"`
		} `json:"ids"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.IDs) != 3 {
		t.Fatalf("got %d ids", len(resp.IDs))
	}
	if _, err := ulid.Parse(resp.IDs[0].Canonical); err != nil {
		t.Fatalf("canonical does not parse: %v", err)
	}
}

func TestGenerateHandlerDefaultsToOne(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/ids", nil)
	w := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("status: %d", w.Code)
	}
}

func TestGenerateHandlerCapsCount(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/ids", strings.NewReader(`{"count":1000000000}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/v1/slids", strings.NewReader(`{"count":1000000000}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("slid status: %d", w.Code)
	}
}

func TestInspectHandler(t *testing.T) {
	s := newTestServer(t)
	id, _ := ulid.FromParts(0x0000016F4D2A, ulid.U128From64(0x1B2C3D4E))
	req := httptest.NewRequest(http.MethodGet, "/v1/ids/"+id.String(), nil)
	w := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d", w.Code)
	}
	var info struct {
		Canonical   string `json:"canonical"`
		TimestampMs uint64 `json:"timestampMs"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &info); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if info.Canonical != id.String() {
		t.Fatalf("canonical mismatch")
	}
	if info.TimestampMs != 0x0000016F4D2A {
		t.Fatalf("timestamp: %d", info.TimestampMs)
	}
}

func TestInspectHandlerRejectsGarbage(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/ids/not-an-id", nil)
	w := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: %d", w.Code)
	}
}

func TestInspectHandlerSequence(t *testing.T) {
	s := newTestServer(t)
	id, _ := ulid.FromParts(41, ulid.U128From64(7))
	req := httptest.NewRequest(http.MethodGet, "/v1/ids/"+id.String()+"?count=3&order=desc", nil)
	w := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d", w.Code)
	}
	var resp struct {
		IDs []struct {
			Canonical string `json:"canonical"`
		} `json:"ids"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.IDs) != 3 {
		t.Fatalf("got %d ids", len(resp.IDs))
	}
	last := resp.IDs[2].Canonical
	if last != id.String() {
		t.Fatalf("descending walk should end at the start id")
	}
}

func TestInspectHandlerSequenceCapsCount(t *testing.T) {
	s := newTestServer(t)
	id, _ := ulid.FromParts(41, ulid.U128From64(7))
	req := httptest.NewRequest(http.MethodGet, "/v1/ids/"+id.String()+"?count=1000000000", nil)
	w := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: %d", w.Code)
	}
}

func TestGenerateSLIDHandler(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/slids", strings.NewReader(`{"count":2}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("status: %d", w.Code)
	}
	var resp struct {
		IDs []string `json:"ids"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.IDs) != 2 {
		t.Fatalf("got %d ids", len(resp.IDs))
	}
	if _, err := ulid.ParseSLID(resp.IDs[0]); err != nil {
		t.Fatalf("slid does not parse: %v", err)
	}
}
