package main

import (
	"embed"
	"net/http"
)

//go:embed web/index.html web/high-scores.html
var pages embed.FS

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.servePage(w, "web/index.html")
}

func (s *Server) handleHighScoresPage(w http.ResponseWriter, r *http.Request) {
	s.servePage(w, "web/high-scores.html")
}

func (s *Server) servePage(w http.ResponseWriter, name string) {
	body, err := pages.ReadFile(name)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
