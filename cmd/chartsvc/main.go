package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/MalithGihan/chart-service/internal/api"
	"github.com/MalithGihan/chart-service/internal/config"
	"github.com/MalithGihan/chart-service/internal/logging"
	"github.com/MalithGihan/chart-service/internal/render"
	"github.com/MalithGihan/chart-service/internal/store"
	"github.com/MalithGihan/chart-service/internal/style"
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

	st, err := style.Load(cfg.StyleFile)
	if err != nil {
		log.Fatalf("%v", err)
	}
	fs, err := store.New(cfg.OutputDir)
	if err != nil {
		log.Fatalf("output dir: %v", err)
	}

	srv := api.New(render.New(st), fs, cfg.URLPrefix(), log)

	log.Infof("chart-service listening on :%s (stored charts in %s, served at %s/)", cfg.Port, fs.Root, cfg.URLPrefix())
	if err := http.ListenAndServe(":"+cfg.Port, srv.Router()); err != nil {
		log.Fatalf("%v", err)
	}
}
