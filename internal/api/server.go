// internal/api/server.go

// Package api is the JSON-over-HTTP presentation adapter for a local studio
// UI. Every behavior it exposes is an engine call; it holds no state of its
// own.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/user/brandforge/internal/engine"
	"github.com/user/brandforge/internal/pipeline"
	"github.com/user/brandforge/internal/suggest"
	"github.com/user/brandforge/internal/types"
)

// Server exposes the engine over HTTP.
type Server struct {
	engine *engine.Engine
	mux    *http.ServeMux
}

// NewServer creates a Server wired to the given engine.
func NewServer(eng *engine.Engine) *Server {
	s := &Server{
		engine: eng,
		mux:    http.NewServeMux(),
	}
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /draft", s.handleGetDraft)
	s.mux.HandleFunc("POST /draft", s.handleUpdateDraft)
	s.mux.HandleFunc("POST /draft/reset", s.handleResetDraft)
	s.mux.HandleFunc("GET /suggestions", s.handleSuggestions)
	s.mux.HandleFunc("POST /generate", s.handleGenerate)
	s.mux.HandleFunc("GET /recents", s.handleRecents)
	s.mux.HandleFunc("GET /assets/", s.handleGetAsset)
	s.mux.HandleFunc("POST /assets/", s.handleAssetAction)
	s.mux.HandleFunc("GET /attempts", s.handleAttempts)
	return s
}

// ServeHTTP delegates to the internal mux, implementing http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.engine.Draft.Snapshot())
}

// draftUpdate is the JSON body for POST /draft. Absent fields are left
// untouched; present fields replace exactly one draft field each, matching
// the capture screens' field-at-a-time behavior.
type draftUpdate struct {
	AssetType *string `json:"asset_type"`
	Message   *string `json:"message"`
	Tone      *string `json:"tone"`
	ImageURI  *string `json:"image_uri"`
}

func (s *Server) handleUpdateDraft(w http.ResponseWriter, r *http.Request) {
	var req draftUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}

	if req.AssetType != nil {
		if *req.AssetType == "" {
			s.engine.Draft.SetAssetType("")
		} else {
			t, err := types.ParseAssetType(*req.AssetType)
			if err != nil {
				http.Error(w, `{"error":"unknown asset type"}`, http.StatusBadRequest)
				return
			}
			s.engine.Draft.SetAssetType(t)
		}
	}
	if req.Message != nil {
		s.engine.Draft.SetMessage(*req.Message)
	}
	if req.Tone != nil {
		tone, err := types.ParseTone(*req.Tone)
		if err != nil {
			http.Error(w, `{"error":"unknown tone"}`, http.StatusBadRequest)
			return
		}
		s.engine.Draft.SetTone(tone)
	}
	if req.ImageURI != nil {
		s.engine.Draft.SetImageURI(*req.ImageURI)
	}

	writeJSON(w, s.engine.Draft.Snapshot())
}

func (s *Server) handleResetDraft(w http.ResponseWriter, r *http.Request) {
	s.engine.Draft.Reset()
	writeJSON(w, s.engine.Draft.Snapshot())
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	assetType := types.AssetType(q.Get("asset_type"))
	tone, err := types.ParseTone(q.Get("tone"))
	if err != nil {
		http.Error(w, `{"error":"unknown tone"}`, http.StatusBadRequest)
		return
	}

	suggestions := suggest.Suggestions(q.Get("image"), assetType, tone)
	if suggestions == nil {
		suggestions = []string{}
	}
	writeJSON(w, map[string][]string{"suggestions": suggestions})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	assetID, err := s.engine.GenerateFromDraft(r.Context())
	if err != nil {
		var missing *pipeline.MissingInputError
		switch {
		case errors.As(err, &missing):
			writeJSONStatus(w, http.StatusUnprocessableEntity,
				map[string]string{"error": "missing input", "field": missing.Field})
		case errors.Is(err, pipeline.ErrAttemptInFlight):
			writeJSONStatus(w, http.StatusConflict,
				map[string]string{"error": "generation already in flight"})
		case errors.Is(err, pipeline.ErrGenerationTimedOut):
			writeJSONStatus(w, http.StatusGatewayTimeout,
				map[string]string{"error": "generation timed out"})
		default:
			slog.Error("generate failed", "error", err)
			writeJSONStatus(w, http.StatusInternalServerError,
				map[string]string{"error": "generation failed"})
		}
		return
	}

	writeJSON(w, map[string]string{"asset_id": string(assetID)})
}

func (s *Server) handleRecents(w http.ResponseWriter, r *http.Request) {
	recents := s.engine.Library.Recents()
	if recents == nil {
		recents = []*types.Asset{}
	}
	writeJSON(w, map[string]any{
		"recents":           recents,
		"selected_asset_id": s.engine.Library.SelectedAssetID(),
	})
}

func (s *Server) handleGetAsset(w http.ResponseWriter, r *http.Request) {
	id := types.AssetID(strings.TrimPrefix(r.URL.Path, "/assets/"))
	asset, ok := s.engine.Library.Get(id)
	if !ok {
		http.Error(w, `{"error":"asset not found"}`, http.StatusNotFound)
		return
	}
	writeJSON(w, asset)
}

// assetActionRequest is the JSON body for asset mutations. Only the field
// relevant to the action is read.
type assetActionRequest struct {
	Index       *int   `json:"index"`
	VariationID string `json:"variation_id"`
}

func (s *Server) handleAssetAction(w http.ResponseWriter, r *http.Request) {
	// Path: /assets/{id}/{action}
	path := strings.TrimPrefix(r.URL.Path, "/assets/")
	parts := strings.SplitN(path, "/", 2)
	if len(parts) < 2 || parts[0] == "" {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
		return
	}
	id := types.AssetID(parts[0])

	if _, ok := s.engine.Library.Get(id); !ok {
		http.Error(w, `{"error":"asset not found"}`, http.StatusNotFound)
		return
	}

	var req assetActionRequest
	if r.Body != nil {
		// A missing or empty body is fine for select/publish.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	switch parts[1] {
	case "select":
		s.engine.Library.SelectAsset(id)
	case "preview-index":
		if req.Index == nil {
			http.Error(w, `{"error":"index is required"}`, http.StatusBadRequest)
			return
		}
		s.engine.Library.SetLastPreviewIndex(id, *req.Index)
	case "variation":
		s.engine.Library.SelectVariation(id, types.VariationID(req.VariationID))
	case "publish":
		s.engine.Library.MarkPublished(id)
	default:
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
		return
	}

	asset, _ := s.engine.Library.Get(id)
	writeJSON(w, asset)
}

func (s *Server) handleAttempts(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if q := r.URL.Query().Get("limit"); q != "" {
		if n, err := strconv.Atoi(q); err == nil && n > 0 {
			limit = n
		}
	}
	writeJSON(w, map[string]any{"attempts": s.engine.Journal.Tail(limit)})
}

func writeJSON(w http.ResponseWriter, v any) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}
