package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apihttp "github.com/pinglanyi/A2UI/internal/api/http"
	"github.com/pinglanyi/A2UI/internal/api/middleware"
	"github.com/pinglanyi/A2UI/internal/domain/catalog"
	"github.com/pinglanyi/A2UI/internal/domain/prompt"
	"github.com/pinglanyi/A2UI/internal/infrastructure/config"
	"github.com/pinglanyi/A2UI/internal/infrastructure/logging"
	"github.com/pinglanyi/A2UI/internal/infrastructure/monitoring"
	"github.com/pinglanyi/A2UI/internal/infrastructure/tracing"
	"github.com/pinglanyi/A2UI/internal/providers/model"
)

// probeTimeout bounds the optional startup availability probe. Generation
// calls themselves carry no deadline.
const probeTimeout = 10 * time.Second

// Server wraps the HTTP server and dependencies
type Server struct {
	router  *gin.Engine
	httpSrv *http.Server
	store   catalog.Store
	client  model.Client
	logger  *logging.Logger
	config  *config.Config
	metrics *monitoring.Metrics
}

// Options overrides individual dependencies during construction. Zero
// fields are resolved from configuration; tests inject fakes here.
type Options struct {
	Store     catalog.Store
	Client    model.Client
	Logger    *logging.Logger
	Metrics   *monitoring.Metrics
	Templates *prompt.Templates
}

// New creates a server with every dependency resolved from configuration.
func New(cfg *config.Config) (*Server, error) {
	return NewWith(cfg, Options{})
}

// NewWith creates a server, preferring any dependency supplied in opts
// over the configured one.
func NewWith(cfg *config.Config, opts Options) (*Server, error) {
	logger := opts.Logger
	if logger == nil {
		l, err := logging.New(logging.Config{
			Level:       cfg.Logging.Level,
			Development: cfg.Logging.Development,
		})
		if err != nil {
			return nil, fmt.Errorf("initialize logger: %w", err)
		}
		logger = l
	}

	logger.Info("Initializing A2UI server",
		zap.String("host", cfg.Server.Host),
		zap.String("port", cfg.Server.Port),
	)

	metrics := opts.Metrics
	if metrics == nil {
		metrics = monitoring.New()
	}

	tracer := tracing.New("a2ui", logger.Logger)

	templates := prompt.DefaultTemplates()
	switch {
	case opts.Templates != nil:
		templates = *opts.Templates
	case cfg.Prompt.File != "":
		t, err := prompt.LoadTemplates(cfg.Prompt.File)
		if err != nil {
			return nil, err
		}
		templates = t
		logger.Info("Prompt templates overridden", zap.String("file", cfg.Prompt.File))
	}
	builder := prompt.NewBuilder(templates)

	store := opts.Store
	if store == nil {
		store = catalog.NewMemory()
	}

	// The model client is required: resolution fails when no credential
	// is configured, and that failure aborts startup.
	client := opts.Client
	ownsClient := false
	if client == nil {
		c, err := model.Resolve(context.Background(), model.Settings{
			OpenAIKey:    cfg.Provider.OpenAIKey,
			GeminiKey:    cfg.Provider.GeminiKey,
			AnthropicKey: cfg.Provider.AnthropicKey,
			Model:        cfg.Provider.Model,
			BaseURL:      cfg.Provider.BaseURL,
			Provider:     cfg.Provider.Provider,
		}, logger.Logger)
		if err != nil {
			return nil, fmt.Errorf("resolve model client: %w", err)
		}
		client = c
		ownsClient = true
	}

	if cfg.Provider.StartupProbe {
		if err := probe(client, logger); err != nil {
			if ownsClient {
				client.Close()
			}
			return nil, err
		}
	}

	// Create router
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware(tracer))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	// Create handlers
	handlers := apihttp.NewHandlers(store, builder, client, tracer, metrics, logger.Logger)

	// Register routes
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.POST("/a2ui", handlers.A2UI)

	if cfg.Server.StaticDir != "" {
		registerStatic(router, cfg.Server.StaticDir, logger)
	}

	logger.Info("Server initialized",
		zap.String("provider", client.Name()),
		zap.String("model", client.Model()),
	)

	return &Server{
		router: router,
		httpSrv: &http.Server{
			Addr:    cfg.Server.Host + ":" + cfg.Server.Port,
			Handler: router,
		},
		store:   store,
		client:  client,
		logger:  logger,
		config:  cfg,
		metrics: metrics,
	}, nil
}

// probe verifies provider availability before serving traffic. Adapters
// without a probe pass trivially.
func probe(client model.Client, logger *logging.Logger) error {
	prober, ok := client.(model.Prober)
	if !ok {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	if err := prober.Probe(ctx); err != nil {
		return fmt.Errorf("startup probe: %w", err)
	}
	logger.Info("Provider probe succeeded", zap.String("provider", client.Name()))
	return nil
}

// registerStatic serves the browser client for paths the API does not
// claim. Only safe methods fall through; everything else keeps the 404.
func registerStatic(router *gin.Engine, dir string, logger *logging.Logger) {
	fileServer := http.FileServer(http.Dir(dir))
	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusNotFound)
			return
		}
		fileServer.ServeHTTP(c.Writer, c.Request)
	})
	logger.Info("Static fallback enabled", zap.String("dir", dir))
}

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.httpSrv.Addr))
	if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the listener, letting in-flight requests finish.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server...")
	return s.httpSrv.Shutdown(ctx)
}

// Close releases the model client and flushes buffered log entries.
func (s *Server) Close() error {
	if err := s.client.Close(); err != nil {
		s.logger.Error("Failed to close model client", zap.Error(err))
		return fmt.Errorf("failed to close model client: %w", err)
	}
	s.logger.Sync()
	return nil
}
