package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gyansetu/website/internal/anim"
	"github.com/gyansetu/website/internal/db"
	"github.com/gyansetu/website/internal/live"
	"github.com/gyansetu/website/internal/metrics"
	"github.com/gyansetu/website/internal/nav"
	"github.com/gyansetu/website/internal/server"
	"github.com/gyansetu/website/internal/site"
	"github.com/gyansetu/website/internal/theme"
	"github.com/gyansetu/website/internal/view"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site with the live view channel",
	Long: `Starts the HTTP server: rendered pages, the theme toggle form, static
files, the /ws/live websocket, /healthz and /metrics.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort > 0 {
		cfg.Server.Port = servePort
	}

	s, routes, renderer, err := buildSite(cfg)
	if err != nil {
		return err
	}
	ids, err := renderer.SectionIDs()
	if err != nil {
		return err
	}
	if err := nav.ValidateAnchors(ids); err != nil {
		return err
	}
	catalog := anim.Default()
	if err := catalog.Validate(); err != nil {
		return fmt.Errorf("animation catalog: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, "site.db")
	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	themes := theme.NewRegistry(func(visitorID string) theme.Persister {
		return theme.NewDBPersister(database, visitorID)
	})
	defer themes.Close()

	m := metrics.New()
	srv := server.New(server.Config{
		Port:     cfg.Server.Port,
		AllowAll: cfg.Server.AllowAllOrigins,
	}, database, m)

	pages := site.NewHandler(renderer, routes, themes, cfg.Server.VisitorCookie,
		site.WithAssets(cfg.Export.AssetsDir),
		site.WithMetrics(m),
	)
	liveHandler := live.NewHandler(&view.Deps{
		Routes:    routes,
		Site:      s,
		Fragments: renderer,
		Catalog:   catalog,
		Grace:     cfg.Loading.Grace,
		Fallback:  cfg.Loading.FallbackTimeout,
	}, themes, cfg.Server.VisitorCookie, live.WithMetrics(m))

	srv.RegisterStream(liveHandler)
	srv.Register(pages)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	fmt.Fprintf(os.Stderr, "gyansetu %s starting on port %d\n", Version, cfg.Server.Port)
	fmt.Fprintf(os.Stderr, "  Database: %s\n", dbPath)
	fmt.Fprintf(os.Stderr, "  Unmatched routes: %s\n", routes.Fallback())

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
