package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"
	"time"

	"github.com/hailam/chessmodel/internal/api"
	"github.com/hailam/chessmodel/internal/config"
	"github.com/hailam/chessmodel/internal/protocol"
	"github.com/hailam/chessmodel/internal/storage"
)

var (
	serve      = flag.Bool("serve", false, "serve the HTTP API instead of reading commands from stdin")
	addr       = flag.String("addr", "", "listen address (overrides config)")
	dbDir      = flag.String("db", "", "database directory (overrides config)")
	inMemory   = flag.Bool("inmemory", false, "keep saved positions in memory only")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

// run holds the program so that deferred cleanup happens before exit.
func run() int {
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Printf("could not create CPU profile: %v", err)
			return 1
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Printf("could not start CPU profile: %v", err)
			return 1
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	cfg, err := config.Load(config.GetEnv())
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return 1
	}
	if *dbDir != "" {
		cfg.Storage.Dir = *dbDir
	}
	if *inMemory {
		cfg.Storage.InMemory = true
	}

	// A nil interface, not a nil *storage.Storage, disables persistence.
	var store storage.PositionStore
	if s, err := openStorage(cfg); err != nil {
		log.Printf("Warning: position store unavailable: %v", err)
	} else {
		defer s.Close()
		store = s
	}

	if *serve {
		listen := cfg.Addr()
		if *addr != "" {
			listen = *addr
		}
		if err := runServer(listen, api.NewRouter(store, cfg.Server.AllowedOrigins)); err != nil {
			log.Printf("Server error: %v", err)
			return 1
		}
		return 0
	}

	p := protocol.New(store, os.Stdout, os.Stderr)
	if err := p.Run(os.Stdin); err != nil {
		log.Printf("read error: %v", err)
		return 1
	}
	return 0
}

func openStorage(cfg *config.Config) (*storage.Storage, error) {
	switch {
	case cfg.Storage.InMemory:
		return storage.OpenInMemory()
	case cfg.Storage.Dir != "":
		return storage.Open(cfg.Storage.Dir)
	default:
		return storage.NewStorage()
	}
}

// runServer serves until SIGINT/SIGTERM or a listener failure.
func runServer(addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("Server listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		return err
	case <-quit:
	}

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Println("Server stopped")
	return nil
}
