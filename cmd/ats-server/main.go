package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	hzconfig "github.com/cloudwego/hertz/pkg/common/config"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"ats-checker/internal/analysis"
	"ats-checker/internal/api/handler"
	"ats-checker/internal/api/router"
	"ats-checker/internal/config"
	"ats-checker/internal/constants"
	"ats-checker/internal/extractor"
	"ats-checker/internal/logger"
	"ats-checker/internal/tracing"
)

func main() {
	// .env is optional; real deployments use the YAML config.
	_ = godotenv.Load()

	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "internal/config/config.yaml", "Path to config file")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", configPath).Msg("failed to load configuration")
	}

	initLogger(cfg)
	logger.Info().Str("address", cfg.Server.Address).Msg("configuration loaded")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Tracing.Enabled {
		shutdown, err := tracing.Setup(ctx,
			constants.ServiceName, constants.ServiceVersion,
			cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to set up tracing")
		}
		defer func() {
			flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer flushCancel()
			if err := shutdown(flushCtx); err != nil {
				logger.Warn().Err(err).Msg("trace provider shutdown failed")
			}
		}()
		logger.Info().Str("endpoint", cfg.Tracing.Endpoint).Msg("tracing enabled")
	}

	extractors, err := extractor.NewSet(ctx,
		extractor.WithPDFTimeout(time.Duration(cfg.Extractor.PDFTimeoutSeconds)*time.Second))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize text extractors")
	}

	rules := applyScoringOverrides(analysis.DefaultRules(), cfg)
	engine, err := analysis.NewEngine(rules)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid scoring rule tables")
	}
	parser := analysis.NewParser(rules)
	analyzeHandler := handler.NewAnalyzeHandler(cfg, extractors, parser, engine)

	opts := []hzconfig.Option{
		server.WithHostPorts(cfg.Server.Address),
		// Multipart overhead on top of the payload cap.
		server.WithMaxRequestBodySize(int(cfg.Server.MaxUploadBytes) + 1<<20),
	}
	var tracingCfg *hertztracing.Config
	if cfg.Tracing.Enabled {
		tracerOpt, tCfg := hertztracing.NewServerTracer()
		tracingCfg = tCfg
		opts = append(opts, tracerOpt)
	}

	h := server.Default(opts...)
	if tracingCfg != nil {
		h.Use(hertztracing.ServerMiddleware(tracingCfg))
	}
	router.Register(h, cfg, analyzeHandler)

	go h.Spin()
	logger.Info().Str("address", cfg.Server.Address).Msg("HTTP server started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second)
	defer shutdownCancel()
	if err := h.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
}

// initLogger configures zerolog and points hertz's hlog at it.
func initLogger(cfg *config.Config) {
	logger.Init(logger.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		ReportCaller: cfg.Logger.ReportCaller,
	})
	glog.SetLogger(hertzadapter.From(logger.Logger))
	glog.SetLevel(hlogLevel(cfg.Logger.Level))
}

func hlogLevel(level string) glog.Level {
	switch level {
	case "trace":
		return glog.LevelTrace
	case "debug":
		return glog.LevelDebug
	case "warn":
		return glog.LevelWarn
	case "error":
		return glog.LevelError
	default:
		return glog.LevelInfo
	}
}

// applyScoringOverrides folds non-zero config values into the default
// policy so thresholds stay tunable without code changes.
func applyScoringOverrides(rules *analysis.Ruleset, cfg *config.Config) *analysis.Ruleset {
	if cfg.Scoring.MinContentLength > 0 {
		rules.Policy.MinContentLength = cfg.Scoring.MinContentLength
	}
	if cfg.Scoring.MinResumeIndicators > 0 {
		rules.Policy.MinResumeIndicators = cfg.Scoring.MinResumeIndicators
	}
	if cfg.Scoring.MinResumeWords > 0 {
		rules.Policy.MinResumeWords = cfg.Scoring.MinResumeWords
	}
	if cfg.Scoring.TopMissingKeywords > 0 {
		rules.Policy.TopMissingKeywords = cfg.Scoring.TopMissingKeywords
	}
	return rules
}
