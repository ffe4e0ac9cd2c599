package rawsite

import (
	"log/slog"
	"net/http"
)

// ServeSite serves the content root as plain files for local previewing.
// It blocks until the listener fails.
func (s *Site) ServeSite() error {
	slog.Info("serving site", "root", s.conf.Root, "addr", s.conf.ServeAddr)
	return http.ListenAndServe(s.conf.ServeAddr, http.FileServer(http.Dir(s.conf.Root)))
}
