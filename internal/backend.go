package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/markusressel/fps2go/internal/actuator"
	"github.com/markusressel/fps2go/internal/api"
	"github.com/markusressel/fps2go/internal/configuration"
	"github.com/markusressel/fps2go/internal/controller"
	"github.com/markusressel/fps2go/internal/load"
	"github.com/markusressel/fps2go/internal/notify"
	"github.com/markusressel/fps2go/internal/persistence"
	"github.com/markusressel/fps2go/internal/sessions"
	"github.com/markusressel/fps2go/internal/statistics"
	"github.com/markusressel/fps2go/internal/ui"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

// Daemon holds every object the running daemon is made of
type Daemon struct {
	Config      configuration.Configuration
	Persistence persistence.Persistence
	Tracker     *sessions.Tracker
	Catalog     *notify.Catalog
	Source      load.Source
	Controller  controller.LimitController
}

func RunDaemon() {
	daemon, err := NewDaemon(configuration.CurrentConfig)
	if err != nil {
		ui.Fatal("Unable to initialize: %v", err)
	}

	statistics.Register(statistics.NewLimiterCollector(daemon.Controller))
	statistics.Register(statistics.NewSessionsCollector(daemon.Tracker))

	ctx, cancel := context.WithCancel(context.Background())

	var g run.Group
	{
		if daemon.Config.Statistics.Enabled {
			// === Prometheus Exporter
			port := daemon.Config.Statistics.Port
			if port <= 0 || port >= 65535 {
				port = 9000
			}
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			server := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}

			g.Add(func() error {
				ui.Info("Statistics available at %s/metrics", server.Addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("cannot start prometheus metrics endpoint: %w", err)
				}
				return nil
			}, func(err error) {
				ui.Info("Stopping statistics server...")
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer timeoutCancel()
				if err := server.Shutdown(timeoutCtx); err != nil {
					ui.Warning("Error stopping statistics server: %v", err)
				} else {
					ui.Info("Statistics server stopped.")
				}
			})
		}
	}
	{
		if daemon.Config.Api.Enabled {
			// === REST api
			rest := api.CreateRestService(daemon.ApiDependencies())
			addr := fmt.Sprintf("%s:%d", daemon.Config.Api.Host, daemon.Config.Api.Port)

			g.Add(func() error {
				ui.Info("REST api listening on %s", addr)
				if err := rest.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("cannot start REST api: %w", err)
				}
				return nil
			}, func(err error) {
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer timeoutCancel()
				if err := rest.Shutdown(timeoutCtx); err != nil {
					ui.Warning("Error stopping REST api: %v", err)
				}
			})
		}
	}
	{
		if load.IsPolled(daemon.Source) {
			// === load monitoring
			mon := load.NewMonitor(daemon.Source, daemon.Config.Load.PollingRate, daemon.Controller.OnLoadChanged)

			g.Add(func() error {
				err := mon.Run(ctx)
				ui.Info("Load monitor for source %s stopped.", daemon.Source.GetId())
				return err
			}, func(err error) {
				cancel()
			})
		}
	}
	{
		// === limit controller
		g.Add(func() error {
			err := daemon.Controller.Run(ctx)
			ui.Info("Limit controller stopped.")
			return err
		}, func(err error) {
			if err != nil {
				ui.Warning("Something went wrong: %v", err)
			}
			cancel()
		})
	}
	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			select {
			case <-sig:
				ui.Info("Received SIGTERM signal, exiting...")
			case <-ctx.Done():
			}
			return nil
		}, func(err error) {
			signal.Stop(sig)
			cancel()
		})
	}

	if err := g.Run(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	} else {
		ui.Info("Done.")
		os.Exit(0)
	}
}

// NewDaemon creates all objects of the daemon from the given configuration
func NewDaemon(config configuration.Configuration) (*Daemon, error) {
	pers := persistence.NewPersistence(config.DbPath)
	if err := pers.Init(); err != nil {
		ui.Warning("Unable to initialize database at %s, the enabled state will not survive a restart: %v", config.DbPath, err)
		pers = nil
	}

	limiterConfig := config.Limiter
	limiterConfig.Enabled = restoreEnabled(pers, limiterConfig.Enabled)

	tracker := sessions.NewTracker()
	catalog := notify.NewCatalog(config.Notification)
	notifier := notify.NewSessionNotifier(catalog, tracker, config.Notification.Desktop)

	source, err := load.NewSource(config.Load, tracker)
	if err != nil {
		return nil, fmt.Errorf("unable to create load source: %w", err)
	}
	act := actuator.NewActuator(config.Actuator)
	ui.Info("Using load source '%s' and actuator '%s'", source.GetId(), act.GetId())

	return &Daemon{
		Config:      config,
		Persistence: pers,
		Tracker:     tracker,
		Catalog:     catalog,
		Source:      source,
		Controller:  controller.NewLimitController(limiterConfig, source, act, notifier),
	}, nil
}

func (d *Daemon) ApiDependencies() api.Dependencies {
	deps := api.Dependencies{
		Config:      d.Config.Api,
		Controller:  d.Controller,
		Tracker:     d.Tracker,
		Catalog:     d.Catalog,
		Persistence: d.Persistence,
	}
	if d.Config.Statistics.Enabled {
		deps.Registerer = prometheus.DefaultRegisterer
	}
	return deps
}

// restoreEnabled returns the enabled state set at runtime, if any
func restoreEnabled(pers persistence.Persistence, configured bool) bool {
	if pers == nil {
		return configured
	}
	enabled, err := pers.LoadEnabled()
	if errors.Is(err, os.ErrNotExist) {
		return configured
	} else if err != nil {
		ui.Warning("Unable to load enabled state, using configured value: %v", err)
		return configured
	}
	if enabled != configured {
		ui.Info("Using enabled state set at runtime: %v", enabled)
	}
	return enabled
}
