package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/marcusvs/praticagem"
)

// Server exposes the scrape pipeline as a small JSON API:
//
//	GET /movimentacoes  current movement list as a JSON array
//	GET /health         liveness probe, plain "OK"
//
// Every pipeline failure maps to a uniform 500 with a structured body; the
// distinction between configuration, transient, and structural failures
// lives in the logs, not in the status code.
type Server struct {
	router    chi.Router
	movements praticagem.MovementService
	logger    *slog.Logger
}

// NewServer creates a Server around the given movement service.
func NewServer(movements praticagem.MovementService, logger *slog.Logger) *Server {
	s := &Server{
		movements: movements,
		logger:    logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
	}))

	r.Get("/movimentacoes", s.handleMovements)
	r.Get("/health", s.handleHealth)

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// errorResponse is the wire format consumers already depend on for failures.
type errorResponse struct {
	Erro      string `json:"erro"`
	Mensagem  string `json:"mensagem"`
	Timestamp int64  `json:"timestamp"`
	Path      string `json:"path"`
}

func (s *Server) handleMovements(w http.ResponseWriter, r *http.Request) {
	movements, err := s.movements.Movements(r.Context())
	if err != nil {
		s.logger.Error("movement request failed",
			"path", r.URL.Path,
			"requestId", middleware.GetReqID(r.Context()),
			"code", praticagem.ErrorCode(err),
			"err", err,
		)
		s.writeError(w, r, err)
		return
	}
	if movements == nil {
		movements = []praticagem.Movement{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(movements); err != nil {
		s.logger.Error("failed to write response", "path", r.URL.Path, "err", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Erro:      "Falha ao obter dados da praticagem",
		Mensagem:  praticagem.ErrorMessage(err),
		Timestamp: time.Now().UnixMilli(),
		Path:      r.URL.Path,
	})
}
