package web

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/petal-labs/visionary/core"
	"github.com/petal-labs/visionary/internal/sl"
	"github.com/petal-labs/visionary/studio"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// Server is the HTTP front end of a studio session.
type Server struct {
	session *studio.Session
	logger  *slog.Logger
	mux     *http.ServeMux
}

// NewServer returns a handler serving the UI and API for session.
func NewServer(session *studio.Session, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		session: session,
		logger:  logger.WithGroup("web"),
		mux:     http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("GET /api/state", s.handleState)
	s.mux.HandleFunc("POST /api/enhance", s.handleEnhance)
	s.mux.HandleFunc("POST /api/generate", s.handleGenerate)
	s.mux.HandleFunc("GET /api/images/{id}/download", s.handleDownload)
}

// ServeHTTP logs and dispatches the request.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)
	s.logger.LogAttrs(r.Context(), slog.LevelInfo, "request",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", rec.status),
		slog.Duration("duration", time.Since(start)))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

type enhanceRequest struct {
	Prompt string `json:"prompt"`
}

type enhanceResponse struct {
	Prompt string `json:"prompt"`
}

type generateRequest struct {
	Prompt      string `json:"prompt"`
	AspectRatio string `json:"aspect_ratio"`
	HighQuality bool   `json:"high_quality"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := renderPage()
	if err != nil {
		s.logger.ErrorContext(r.Context(), "render page", sl.Err(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(r.Context(), w, http.StatusOK, s.session.Snapshot())
}

func (s *Server) handleEnhance(w http.ResponseWriter, r *http.Request) {
	var req enhanceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(r.Context(), w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	enhanced, err := s.session.Enhance(r.Context(), req.Prompt)
	if err != nil {
		status, kind := statusFor(err)
		s.writeError(r.Context(), w, status, kind, studio.EnhanceMessage(err))
		return
	}
	s.writeJSON(r.Context(), w, http.StatusOK, enhanceResponse{Prompt: enhanced})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(r.Context(), w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	img, err := s.session.Generate(r.Context(), req.Prompt, core.AspectRatio(req.AspectRatio), req.HighQuality)
	if err != nil {
		status, kind := statusFor(err)
		msg := err.Error()
		if core.KindOf(err) != nil {
			msg = studio.UserMessage(err)
		}
		s.writeError(r.Context(), w, status, kind, msg)
		return
	}
	s.writeJSON(r.Context(), w, http.StatusCreated, img)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	d, err := s.session.Download(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, studio.ErrImageNotFound) {
			s.writeError(r.Context(), w, http.StatusNotFound, "not_found", err.Error())
			return
		}
		s.logger.ErrorContext(r.Context(), "decode download", sl.Err(err))
		s.writeError(r.Context(), w, http.StatusInternalServerError, "invalid_image", err.Error())
		return
	}

	w.Header().Set("Content-Type", d.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(d.Data)))
	w.Header().Set("Content-Disposition", `attachment; filename="`+d.Filename+`"`)
	w.Write(d.Data)
}

// statusFor maps an error to an HTTP status and a short kind label.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, studio.ErrBusy):
		return http.StatusConflict, "busy"
	case errors.Is(err, core.ErrEmptyPrompt), errors.Is(err, core.ErrInvalidAspectRatio):
		return http.StatusBadRequest, "invalid_request"
	case errors.Is(err, core.ErrCredential):
		return http.StatusUnauthorized, "credential"
	case errors.Is(err, core.ErrNoImage):
		return http.StatusUnprocessableEntity, "no_image"
	default:
		return http.StatusBadGateway, "generation_failed"
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func (s *Server) writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WarnContext(ctx, "write response", sl.Err(err))
	}
}

func (s *Server) writeError(ctx context.Context, w http.ResponseWriter, status int, kind, msg string) {
	s.writeJSON(ctx, w, status, errorResponse{Error: msg, Kind: kind})
}
