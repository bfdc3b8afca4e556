package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

const maxRequestBody = 1 << 12 // 4 KB

type errorResponse struct {
	Error string `json:"error"`
}

// Handlers serves both leaderboards over JSON.
type Handlers struct {
	Store       Store
	Limit       int
	AllowOrigin string
	Log         *zap.Logger
}

func (h *Handlers) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/sp-high-score", h.ListSingle)
	mux.HandleFunc("POST /api/sp-high-score", h.SubmitSingle)
	mux.HandleFunc("GET /api/mp-high-score", h.ListMulti)
	mux.HandleFunc("POST /api/mp-high-score", h.SubmitMulti)
	mux.HandleFunc("GET /health", Health())
	return mux
}

func (h *Handlers) ListSingle(w http.ResponseWriter, r *http.Request) {
	h.headers(w)
	scores, err := h.Store.TopSingle(r.Context(), h.Limit)
	if err != nil {
		h.Log.Error("list sp scores", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "storage unavailable")
		return
	}
	h.writeJSON(w, http.StatusOK, scores)
}

func (h *Handlers) ListMulti(w http.ResponseWriter, r *http.Request) {
	h.headers(w)
	scores, err := h.Store.TopMulti(r.Context(), h.Limit)
	if err != nil {
		h.Log.Error("list mp scores", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "storage unavailable")
		return
	}
	h.writeJSON(w, http.StatusOK, scores)
}

func (h *Handlers) SubmitSingle(w http.ResponseWriter, r *http.Request) {
	h.headers(w)

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	var req SpHighScore
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	saved, err := h.Store.AddSingle(r.Context(), req)
	if err != nil {
		h.submitFailed(w, err)
		return
	}

	h.Log.Info("sp score recorded", zap.String("name", saved.Name), zap.Int("score", saved.Score))
	h.writeJSON(w, http.StatusCreated, saved)
}

func (h *Handlers) SubmitMulti(w http.ResponseWriter, r *http.Request) {
	h.headers(w)

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	var req MpHighScore
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	saved, err := h.Store.AddMulti(r.Context(), req)
	if err != nil {
		h.submitFailed(w, err)
		return
	}

	h.Log.Info("mp score recorded",
		zap.String("player1", saved.Player1),
		zap.String("player2", saved.Player2),
		zap.Int("score", saved.Score),
	)
	h.writeJSON(w, http.StatusCreated, saved)
}

func (h *Handlers) submitFailed(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidName) || errors.Is(err, ErrInvalidScore) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.Log.Error("store score", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "storage unavailable")
}

func (h *Handlers) headers(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	if h.AllowOrigin != "" {
		w.Header().Set("Access-Control-Allow-Origin", h.AllowOrigin)
	}
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Log.Warn("encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}
