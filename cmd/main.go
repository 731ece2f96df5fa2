package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/rok-office/cwdetails/connector"
	"github.com/rok-office/cwdetails/internal/config"
	"github.com/rok-office/cwdetails/internal/hostsim"
	"github.com/rok-office/cwdetails/internal/log"
	"github.com/rok-office/cwdetails/internal/preview"
	"github.com/rok-office/cwdetails/internal/scene"
)

var (
	configPath  = flag.String("config", "", "YAML settings file (defaults are used when empty)")
	scenePath   = flag.String("scene", "", "YAML scene with the columns to detail")
	logLevel    = flag.String("log-level", "", "overrides log_level from the config")
	showPreview = flag.Bool("preview", false, "open a window with the detailed scene")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "cwdetails:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadFile(*configPath); err != nil {
			return err
		}
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	logger, err := log.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if *scenePath == "" {
		return errors.New("-scene is required")
	}
	host, err := hostsim.LoadSceneFile(*scenePath)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	d := connector.NewDetailer(host, cfg.Settings(), cfg.ElementNames(), logger)
	report, err := d.Run(ctx)
	if err != nil {
		return err
	}

	for i, p := range report.Placed {
		logger.Info("base detail",
			zap.Uint64("element", uint64(p.Element)),
			zap.Stringer("placement", p.ID),
			zap.Uint64("web_plate", uint64(report.Created[i][0])),
			zap.Uint64("dowel", uint64(report.Created[i][1])),
			zap.Stringer("dowel_start", p.Dowel.Start),
			zap.Stringer("dowel_end", p.Dowel.End),
		)
	}
	for _, s := range report.Skipped {
		logger.Warn("skipped", zap.Uint64("element", uint64(s.Element)), zap.Error(s.Reason))
	}

	if *showPreview {
		return preview.Run("cwdetails - "+*scenePath, scene.FromHost(host.Elements()))
	}
	return nil
}
