// Package server exposes the three-screen web flow: consent link, code
// hand-off, and the export form that returns the CSV download.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/exileum/youtube-comments-to-csv/internal/auth"
)

// TokenExchanger trades an authorization code for tokens. Satisfied by
// *auth.Exchanger and mocked in tests.
type TokenExchanger interface {
	AuthCodeURL() string
	Exchange(ctx context.Context, code string) (*auth.Token, error)
}

// JobRunner runs the comment export. Satisfied by *export.Job.
type JobRunner interface {
	Run(ctx context.Context, accessToken, channelID string) (string, error)
}

type Server struct {
	exchanger TokenExchanger
	job       JobRunner
	limit     int
	tmpl      *htmlTemplates
	lg        *slog.Logger
}

// New creates the server. limit is only displayed on the initial screen;
// enforcement lives in the export job.
func New(exchanger TokenExchanger, job JobRunner, limit int) (*Server, error) {
	tmpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}

	return &Server{
		exchanger: exchanger,
		job:       job,
		limit:     limit,
		tmpl:      tmpl,
		lg:        slog.Default(),
	}, nil
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Post("/", s.handleSubmit)
	r.Get("/healthz", s.handleHealthz)

	return r
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("OK"))
}
