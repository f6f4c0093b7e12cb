// Package rest exposes the spreadsheet gateway as an HTTP/JSON API. Each
// handler translates one request into one gateway call - errors of any kind
// (bad arguments, unknown spreadsheets, permission denials, network faults)
// are reported as HTTP 400 with the underlying message.
package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/twystd/sheetsd/gateway"
)

type Server struct {
	gateway gateway.Gateway
}

func NewServer(g gateway.Gateway) *Server {
	return &Server{
		gateway: g,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(logging)
	r.Use(middleware.Recoverer)

	r.Get("/spreadsheets", s.listSpreadsheets)

	r.Route("/spreadsheets/{spreadsheet}/worksheets", func(r chi.Router) {
		r.Get("/", s.listWorksheets)

		r.Route("/{worksheet}", func(r chi.Router) {
			r.Get("/", s.getWorksheetData)
			r.Get("/export", s.exportWorksheet)

			r.Get("/cell/{cell}", s.getCell)
			r.Patch("/cell/{cell}", s.updateCell)
			r.Delete("/cell/{cell}", s.deleteCell)

			r.Get("/row/{row}", s.getRow)
			r.Patch("/row/{row}", s.updateRow)
			r.Delete("/row/{row}", s.deleteRow)

			r.Get("/column/{column}", s.getColumn)
			r.Patch("/column/{column}", s.updateColumn)
			r.Delete("/column/{column}", s.deleteColumn)
		})
	})

	return r
}

func logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"elapsed", time.Since(start))
	})
}

func reply(w http.ResponseWriter, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		slog.Error("error encoding response", "error", err)
	}
}

// fail reports any error - invalid arguments and upstream failures alike -
// as HTTP 400 with a {"detail": ...} body.
func fail(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)

	detail := struct {
		Detail string `json:"detail"`
	}{
		Detail: err.Error(),
	}

	if err := json.NewEncoder(w).Encode(detail); err != nil {
		slog.Error("error encoding response", "error", err)
	}
}
