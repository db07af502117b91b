package main

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	leaderboardsvc "github.com/rescuegrid/highscore/src/app/leaderboard"
)

type ServerConfig struct {
	Logger             *zap.Logger
	LeaderboardService *leaderboardsvc.Service
	// Evicted reports records dropped off the leaderboard; optional.
	Evicted func() int64
}

// Server wires HTTP endpoints to the leaderboard service with observability instrumentation.
type Server struct {
	cfg            ServerConfig
	router         *mux.Router
	handler        http.Handler
	registry       *prometheus.Registry
	httpMetrics    *prometheus.HistogramVec
	requestCounter *prometheus.CounterVec
	draining       atomic.Bool
}

func NewServer(cfg ServerConfig) *Server {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	srv := &Server{cfg: cfg}
	srv.initMetrics()
	srv.buildRouter()
	return srv
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

// Drain makes the health check report unavailable ahead of shutdown.
func (s *Server) Drain() {
	s.draining.Store(true)
}

func (s *Server) initMetrics() {
	s.registry = prometheus.NewRegistry()
	s.httpMetrics = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "highscore",
		Subsystem: "http",
		Name:      "request_latency_seconds",
		Help:      "HTTP request latency",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method", "code"})
	s.requestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "highscore",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests by route",
	}, []string{"route", "method", "code"})
	records := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "highscore",
		Subsystem: "leaderboard",
		Name:      "records",
		Help:      "Records currently ranked on the leaderboard",
	}, func() float64 {
		n, err := s.cfg.LeaderboardService.Count(context.Background())
		if err != nil {
			return 0
		}
		return float64(n)
	})
	s.registry.MustRegister(s.httpMetrics, s.requestCounter, records)

	if s.cfg.Evicted != nil {
		s.registry.MustRegister(prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: "highscore",
			Subsystem: "leaderboard",
			Name:      "evictions_total",
			Help:      "Records dropped from the bottom of the leaderboard",
		}, func() float64 { return float64(s.cfg.Evicted()) }))
	}
}

func (s *Server) buildRouter() {
	r := mux.NewRouter()
	r.Use(s.correlationMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.metricsMiddleware)
	r.Use(s.recoverMiddleware)

	r.Handle("/", traced(s.handleIndex, "Index")).Methods(http.MethodGet)
	r.Handle("/high-scores", traced(s.handleHighScoresPage, "HighScoresPage")).Methods(http.MethodGet)
	r.Handle("/save_score", traced(s.handleSaveScore, "SaveScore")).Methods(http.MethodPost)
	r.Handle("/get_scores", traced(s.handleGetScores, "GetScores")).Methods(http.MethodGet)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	s.router = r

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "X-Requested-With", "X-Request-Id"}),
		handlers.ExposedHeaders([]string{"X-Request-Id"}),
	)
	s.handler = cors(gzhttp.GzipHandler(r))
}

func traced(fn http.HandlerFunc, operation string) http.Handler {
	return otelhttp.NewHandler(fn, operation)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}
