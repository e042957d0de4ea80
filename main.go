package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/PressureTank/Chirp/backend/account"
	"github.com/PressureTank/Chirp/backend/config"
	"github.com/PressureTank/Chirp/backend/database/sqlite"
	"github.com/PressureTank/Chirp/backend/message"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "loading configuration:", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewProduction()
	if cfg.Development {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync() // Flushes buffer, if any

	// Initialize SQLite database
	db, err := sql.Open("sqlite3", cfg.DatabasePath)
	if err != nil {
		logger.Error("Error opening database", zap.Error(err))
		return
	}
	defer db.Close()

	if err := sqlite.Migrate(db); err != nil {
		logger.Error("Error creating tables", zap.Error(err))
		return
	}

	// Wire the storage gateway into the rule components
	store := sqlite.NewSQLiteDB(db, logger)
	accountHandler := account.NewHandler(account.NewService(store), logger)
	messageHandler := message.NewHandler(message.NewService(store, store), logger)

	// Initialize HTTP router
	r := mux.NewRouter()
	accountHandler.Routes(r)
	messageHandler.Routes(r)

	// Start the server
	logger.Info("Server started on " + cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		logger.Error("Error starting server", zap.Error(err))
	}
}
