// Command chartfiles serves the stored chart directory on its own port, for
// deployments that keep the render API and the image host apart.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/MalithGihan/chart-service/internal/api"
	"github.com/MalithGihan/chart-service/internal/config"
	"github.com/MalithGihan/chart-service/internal/logging"
	"github.com/MalithGihan/chart-service/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	out, err := logging.Output(cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logging.New(out, logging.ParseLevel(cfg.LogLevel))

	fs, err := store.New(cfg.OutputDir)
	if err != nil {
		log.Fatalf("output dir: %v", err)
	}

	r := chi.NewRouter()
	api.Middleware(r, log)
	files := api.NewFiles(fs, log)
	files.Mount(r, cfg.URLPrefix())
	if cfg.URLPrefix() != "/images" {
		files.Mount(r, "/images")
	}

	log.Infof("serving %s on :%s", fs.Root, cfg.StaticPort)
	if err := http.ListenAndServe(":"+cfg.StaticPort, r); err != nil {
		log.Fatalf("%v", err)
	}
}
