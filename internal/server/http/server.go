package httpserver

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	idsvc "github.com/srccircumflex/ulid-tool/internal/services/ids"
	logpkg "github.com/srccircumflex/ulid-tool/pkg/log"
	"github.com/srccircumflex/ulid-tool/pkg/ulid"
)

type Server struct {
	mu     sync.Mutex
	svc    *idsvc.Service
	srv    *http.Server
	lis    net.Listener
	logger logpkg.Logger
}

func New(svc *idsvc.Service, logger logpkg.Logger) *Server {
	mux := http.NewServeMux()
	s := &Server{svc: svc, logger: logger.WithComponent("http"), srv: &http.Server{Handler: cors(mux)}}
	mux.HandleFunc("/v1/healthz", s.handleHealth)
	mux.HandleFunc("/v1/ids", s.handleGenerate)
	mux.HandleFunc("/v1/ids/", s.handleInspect)
	mux.HandleFunc("/v1/slids", s.handleGenerateSLID)
	return s
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.lis = l
	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.Serve(l) }()
	select {
	case <-ctx.Done():
		cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.srv.Shutdown(cctx)
		return nil
	case err := <-errCh:
		return err
	}
}

func (s *Server) Close() {
	if s.lis != nil {
		_ = s.lis.Close()
	}
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := ulid.Verify(); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "not_serving"})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// maxCount bounds per-request batch sizes.
const maxCount = 500

type generateReq struct {
	Count int `json:"count"`
}

type generateResp struct {
	IDs []idsvc.Info `json:"ids"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	req := generateReq{Count: 1}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}
	if req.Count > maxCount {
		writeError(w, http.StatusBadRequest, "count exceeds the per-request limit of 500")
		return
	}
	s.mu.Lock()
	out, err := s.svc.Generate(req.Count)
	s.mu.Unlock()
	if err != nil {
		s.logger.Error("generate failed", logpkg.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	resp := generateResp{IDs: make([]idsvc.Info, len(out))}
	for i, id := range out {
		resp.IDs[i] = idsvc.Describe(id)
	}
	writeJSON(w, http.StatusCreated, resp)
}

type slidResp struct {
	IDs []string `json:"ids"`
}

func (s *Server) handleGenerateSLID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	req := generateReq{Count: 1}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}
	if req.Count > maxCount {
		writeError(w, http.StatusBadRequest, "count exceeds the per-request limit of 500")
		return
	}
	s.mu.Lock()
	out, err := s.svc.GenerateSLID(req.Count)
	s.mu.Unlock()
	if err != nil {
		s.logger.Error("generate slid failed", logpkg.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	resp := slidResp{IDs: make([]string, len(out))}
	for i, id := range out {
		resp.IDs[i] = id.String()
	}
	writeJSON(w, http.StatusCreated, resp)
}

// handleInspect serves GET /v1/ids/{repr} and an optional ?count= sequence
// expansion from that identifier.
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	repr := strings.TrimPrefix(r.URL.Path, "/v1/ids/")
	if repr == "" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	q := r.URL.Query()
	if raw := q.Get("count"); raw != "" {
		count, err := strconv.Atoi(raw)
		if err != nil || count < 1 || count > maxCount {
			writeError(w, http.StatusBadRequest, "count must be between 1 and 500")
			return
		}
		seq, err := s.svc.Sequence(repr, count, q.Get("order") == "desc")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		resp := generateResp{IDs: make([]idsvc.Info, len(seq))}
		for i, id := range seq {
			resp.IDs[i] = idsvc.Describe(id)
		}
		writeJSON(w, http.StatusOK, resp)
		return
	}
	info, err := s.svc.Inspect(repr)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
