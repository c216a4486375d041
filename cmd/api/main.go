package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/finsight/finsight/internal/agent"
	"github.com/finsight/finsight/internal/config"
	"github.com/finsight/finsight/internal/handler"
	"github.com/finsight/finsight/internal/insight"
	"github.com/finsight/finsight/internal/snapshot"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Load the financial snapshot
	store, err := snapshot.NewStore(cfg.DataFile, logger)
	if err != nil {
		logger.Fatalf("Failed to load snapshot: %v", err)
	}
	defer store.Stop()

	if cfg.ReloadSchedule != "" {
		if err := store.StartReload(cfg.ReloadSchedule); err != nil {
			logger.Fatalf("Failed to schedule snapshot reload: %v", err)
		}
	}

	// Initialize layers
	dispatcher, err := insight.New(store, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize dispatcher: %v", err)
	}

	var responder agent.Responder
	if cfg.AnthropicKey != "" {
		s := store.Current()
		responder = agent.NewClaude(cfg.AnthropicKey, cfg.AnthropicModel, s.UserInfo(), s.CurrentNetWorth().NetWorth, logger)
	} else {
		logger.Warn("ANTHROPIC_API_KEY not set, chat endpoint disabled")
	}

	h := handler.NewHandler(store, dispatcher, responder, logger)

	// Setup router
	r := mux.NewRouter()
	r.HandleFunc("/summary", h.Summary).Methods("GET")
	r.HandleFunc("/chat", h.Chat).Methods("POST")
	r.HandleFunc("/insights/{type}", h.Insight).Methods("GET")
	r.HandleFunc("/data/{type}", h.Data).Methods("GET")
	r.HandleFunc("/health", h.Health).Methods("GET")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
