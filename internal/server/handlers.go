package server

import (
	"fmt"
	"net/http"
)

// handleIndex serves the initial screen, or the code hand-off screen when
// the OAuth provider redirected back with ?code=.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if code == "" {
		s.renderPage(w, r, "init.html", initPage{
			AuthURL: s.exchanger.AuthCodeURL(),
			Limit:   s.limit,
		})
		return
	}
	s.renderPage(w, r, "login.html", loginPage{Code: code})
}

// handleSubmit dispatches the two POST shapes: a channel_id field runs the
// export, a code field finishes the OAuth exchange.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form data", http.StatusBadRequest)
		return
	}

	if r.PostForm.Get("channel_id") != "" {
		s.handleExport(w, r)
		return
	}
	if r.PostForm.Get("code") != "" {
		s.handleToken(w, r)
		return
	}

	http.Error(w, "expected either channel_id or code", http.StatusBadRequest)
}

// handleToken exchanges the posted authorization code and renders the job
// form with the access token embedded. A refused exchange renders the same
// form with no token and the upstream message.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	code := r.PostForm.Get("code")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	tok, err := s.exchanger.Exchange(r.Context(), code)
	if err != nil {
		s.lg.ErrorContext(r.Context(), "token exchange failed", "error", err)
		s.renderPage(w, r, "form.html", formPage{Message: err.Error()})
		return
	}

	s.renderPage(w, r, "form.html", formPage{AccessToken: tok.AccessToken})
}

// handleExport runs the comment export and returns the CSV as a download.
// Failures re-render the job form with the submitted token preserved, so
// the user can correct the channel ID without re-authorizing.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	accessToken := r.PostForm.Get("access_token")
	channelID := r.PostForm.Get("channel_id")

	csv, err := s.job.Run(r.Context(), accessToken, channelID)
	if err != nil {
		s.lg.ErrorContext(r.Context(), "export failed", "channel", channelID, "error", err)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		s.renderPage(w, r, "form.html", formPage{
			AccessToken: accessToken,
			Message:     err.Error(),
		})
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=comment_%s.csv", channelID))
	_, _ = w.Write([]byte(csv))
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, name string, data any) {
	if err := s.tmpl.render(w, name, data); err != nil {
		s.lg.ErrorContext(r.Context(), "template rendering failed", "template", name, "error", err)
	}
}
