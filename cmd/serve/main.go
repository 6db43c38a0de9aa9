package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/3-lines-studio/banner"
	"github.com/3-lines-studio/banner/internal/assets"
	"github.com/3-lines-studio/banner/internal/component"
	"github.com/3-lines-studio/banner/internal/config"
	"github.com/3-lines-studio/banner/web"
)

func main() {
	configPath := flag.String("config", "configuration.yml", "configuration file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-config file]\n\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output())
		fmt.Fprintln(flag.CommandLine.Output(), config.Usage())
	}
	flag.Parse()

	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)
	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)

	cfg, err := config.Load(*configPath)
	if err != nil {
		errorLog.Fatal(err)
	}

	var public fs.FS = web.Public()
	if cfg.AssetDir != "" {
		public = os.DirFS(cfg.AssetDir)
		infoLog.Printf("Serving assets from %s", cfg.AssetDir)
	}

	// the page still renders without its images; the browser shows alt text
	if err := assets.Check(public, assets.Referenced(component.Default())); err != nil {
		infoLog.Printf("Warning: %v", err)
	}

	app := banner.New(public,
		banner.WithTitle(cfg.Title),
		banner.WithLang(cfg.Lang),
		banner.WithStylesheet(cfg.Stylesheet),
		banner.WithDev(cfg.Dev),
		banner.WithMaxAge(cfg.MaxCacheAge),
		banner.WithErrorLog(errorLog),
	)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	srv := &http.Server{
		Addr:         cfg.AddrHTTP,
		Handler:      app.Wrap(router),
		ErrorLog:     errorLog,
		ReadTimeout:  cfg.TimeoutRead,
		WriteTimeout: cfg.TimeoutWrite,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		infoLog.Printf("Serving on http://localhost%s", cfg.AddrHTTP)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errorLog.Fatal(err)
		}
	}()

	<-ctx.Done()
	infoLog.Print("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.TimeoutShutdown)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		errorLog.Print(err)
	}
}
