package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"mirgo/internal/editor"

	"github.com/pkg/profile"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	configPath := flag.String("config", editor.DefaultConfigPath, "editor config file")
	profileMode := flag.String("profile", "", "write a profile to the working directory: cpu|mem")
	metricsAddr := flag.String("metrics-addr", "", "serve history metrics on this address, e.g. :9090")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") && !filepath.IsAbs(*configPath) {
			os.Chdir(execDir)
		}
	}

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "":
	default:
		log.Fatalf("unknown profile mode %q", *profileMode)
	}

	cfg, err := editor.LoadConfig(*configPath)
	if err != nil {
		log.Printf("Config: %v, using defaults", err)
	}

	app := editor.NewApp(cfg, os.Stderr)

	if *metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(app.Context.Registry, promhttp.HandlerOpts{}))
		go func() {
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				log.Printf("Metrics: %v", err)
			}
		}()
	}

	app.Run()
}
