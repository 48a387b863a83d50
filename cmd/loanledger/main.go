package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"loanledger/internal/cache"
	"loanledger/internal/config"
	"loanledger/internal/server"
	"loanledger/internal/session"
	"loanledger/pkg/constants"
	"loanledger/pkg/output"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
	case "json":
		zapConfig = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}
		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	serve := flag.Bool("serve", false, "run the HTTP API instead of printing the schedule")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}
	if *outputFormatFlag != "" {
		conf.Output.Format = *outputFormatFlag
	}
	if err := conf.Validate(); err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"invalid configuration\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logging\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	var quotes cache.Cache
	if conf.Cache.Enabled {
		redisCache := cache.NewRedisCache(conf.Cache.Address)
		defer func() {
			_ = redisCache.Close()
		}()
		quotes = redisCache
		logger.Info("using redis quote cache",
			zap.String("op", "main"),
			zap.String("address", conf.Cache.Address),
		)
	} else {
		quotes = cache.NewMemoryCache()
	}

	sess := session.New(logger, quotes, conf.Cache.TTL)

	if conf.HasLoan() {
		params, err := conf.LoanParams(time.Now())
		if err != nil {
			logger.Fatal("invalid loan configuration",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		if _, err := sess.CreateLoan(params); err != nil {
			logger.Fatal("failed to create loan",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	if *serve {
		runServer(logger, conf, sess)
		return
	}

	snap, err := sess.State()
	if err != nil {
		logger.Fatal("no loan configured; provide a loan block in the config or run with -serve",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	switch conf.Output.Format {
	case constants.OutputFormatCSV:
		output.CsvSchedule(os.Stdout, snap.Schedule)
	default:
		output.PrettySchedule(os.Stdout, snap.Loan, snap.Schedule)
	}
}

func runServer(logger *zap.Logger, conf *config.Configuration, sess *session.Session) {
	httpServer := &http.Server{
		Addr:         conf.Server.Address,
		Handler:      server.NewHandler(logger, sess, version),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP API",
			zap.String("op", "main.runServer"),
			zap.String("address", conf.Server.Address),
		)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Fatal("server failed",
			zap.String("op", "main.runServer"),
			zap.Error(err),
		)
	case <-quit:
		logger.Info("shutting down", zap.String("op", "main.runServer"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("shutdown error",
			zap.String("op", "main.runServer"),
			zap.Error(err),
		)
	}
}
