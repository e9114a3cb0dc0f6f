package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/jlopezga/dvdrental/internal/catalog"
	catalogStore "github.com/jlopezga/dvdrental/internal/catalog/store"
	"github.com/jlopezga/dvdrental/internal/config"
	"github.com/jlopezga/dvdrental/internal/customer"
	customerStore "github.com/jlopezga/dvdrental/internal/customer/store"
	"github.com/jlopezga/dvdrental/internal/database"
	apiHttp "github.com/jlopezga/dvdrental/internal/http"
	customerHandler "github.com/jlopezga/dvdrental/internal/http/customer"
	filmHandler "github.com/jlopezga/dvdrental/internal/http/film"
	rentalHandler "github.com/jlopezga/dvdrental/internal/http/rental"
	reportHandler "github.com/jlopezga/dvdrental/internal/http/report"
	staffHandler "github.com/jlopezga/dvdrental/internal/http/staff"
	"github.com/jlopezga/dvdrental/internal/rental"
	rentalStore "github.com/jlopezga/dvdrental/internal/rental/store"
	"github.com/jlopezga/dvdrental/internal/report"
	reportStore "github.com/jlopezga/dvdrental/internal/report/store"
	"github.com/jlopezga/dvdrental/internal/staff"
	staffStore "github.com/jlopezga/dvdrental/internal/staff/store"
)

func main() {
	// A missing .env is fine, the environment may carry everything.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), database.PoolConfig{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		rentalService   = rental.NewService(rentalStore.New(db))
		catalogService  = catalog.NewService(catalogStore.New(db))
		customerService = customer.NewService(customerStore.New(db))
		staffService    = staff.NewService(staffStore.New(db))
		reportService   = report.NewService(reportStore.New(db))
	)

	var (
		rentalH   = rentalHandler.NewHandler(rentalService)
		filmH     = filmHandler.NewHandler(catalogService)
		customerH = customerHandler.NewHandler(customerService)
		staffH    = staffHandler.NewHandler(staffService)
		reportH   = reportHandler.NewHandler(reportService)
	)

	router := apiHttp.New(rentalH, filmH, customerH, staffH, reportH)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  2 * time.Minute,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
