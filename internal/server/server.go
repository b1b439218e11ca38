package server

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/osse101/FactoryPlanner_Go/internal/handler"
	"github.com/osse101/FactoryPlanner_Go/internal/logger"
	"github.com/osse101/FactoryPlanner_Go/internal/metrics"
	"github.com/osse101/FactoryPlanner_Go/internal/productionline"
)

// Options holds the transport settings of the HTTP server
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Version        string
	MaxBodyBytes   int64

	// RateLimitRPS caps requests per second across all clients; 0 disables it
	RateLimitRPS   float64
	RateLimitBurst int
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer creates a new Server instance
func NewServer(opts Options, catalog handler.CatalogReader, svc productionline.Service, storage handler.Pinger) *Server {
	r := chi.NewRouter()

	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}
	if opts.APIKey == "" {
		slog.Default().Warn(LogMsgAuthDisabled)
	}

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()
	var limiter *rate.Limiter
	if opts.RateLimitRPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimitRPS), max(opts.RateLimitBurst, 1))
	}

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(metrics.Middleware)
	r.Use(GlobalRateLimitMiddleware(limiter))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(maxBody))

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(storage))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	catalogHandler := handler.NewCatalogHandler(catalog)
	lineHandler := handler.NewLineHandler(svc)

	r.Route(APIPrefix, func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/items", catalogHandler.ListItems)
			r.Get("/machines", catalogHandler.ListMachines)
			r.Get("/recipes", catalogHandler.ListRecipes)
			r.Get("/recipes/{"+handler.ParamRecipeID+"}", catalogHandler.GetRecipe)
		})

		r.Route("/lines", func(r chi.Router) {
			r.Get("/", lineHandler.List)
			r.Post("/", lineHandler.Create)

			r.Route("/{"+handler.ParamSlug+"}", func(r chi.Router) {
				r.Get("/", lineHandler.Get)
				r.Patch("/", lineHandler.Rename)
				r.Delete("/", lineHandler.Delete)
				r.Get("/summary", lineHandler.Summary)

				r.Post("/recipes", lineHandler.AddRecipe)
				r.Patch("/recipes/{"+handler.ParamIndex+"}", lineHandler.UpdateRecipe)
				r.Delete("/recipes/{"+handler.ParamIndex+"}", lineHandler.RemoveRecipe)
				r.Post("/recipes/{"+handler.ParamIndex+"}/move", lineHandler.MoveRecipe)
			})
		})

		r.Post("/summary", handler.HandleSummarize(svc))
		r.Get("/export", handler.HandleExport(svc))
		r.Put("/import", handler.HandleImport(svc))
	})

	return &Server{
		router: r,
		httpServer: &http.Server{
			Addr:              ":" + strconv.Itoa(opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
			ReadTimeout:       ReadTimeout,
			WriteTimeout:      WriteTimeout,
			IdleTimeout:       IdleTimeout,
		},
	}
}

// Handler returns the root router
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	return slices.ContainsFunc(QuietPaths, func(p string) bool {
		return strings.HasPrefix(path, p)
	})
}

// loggingMiddleware assigns a request ID and logs request start and
// completion. An incoming X-Request-ID is reused.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", sanitizeHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

func sanitizeHeaders(h http.Header) http.Header {
	sanitized := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			sanitized[k] = []string{RedactedValue}
		} else {
			sanitized[k] = v
		}
	}
	return sanitized
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
