package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/base/log"
	"github.com/x-xyz/salesbot/base/tracker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	root := &cobra.Command{
		Use:          "salesbot",
		Short:        "Post Flow NFT sales to social channels",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "infra/configs/salesbot/config.yaml", "config file path")
	root.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Subscribe to sale events and post the ones above threshold",
		RunE:  runBot,
	})
	root.AddCommand(&cobra.Command{
		Use:   "verify",
		Short: "Check the config and publisher credentials, then exit",
		RunE:  runVerify,
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command) (*Config, *Routing, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(cfgFile, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	if err := log.SetLevel(cfg.Log.Level); err != nil {
		return nil, nil, err
	}
	routing, err := cfg.Validate()
	if err != nil {
		return nil, nil, err
	}
	return cfg, routing, nil
}

func signalCtx() (ctx.Ctx, context.CancelFunc) {
	sc, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	return ctx.Ctx{Context: sc, Logger: log.Log()}, stop
}

func runVerify(cmd *cobra.Command, _ []string) error {
	cfg, routing, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()
	c, stop := signalCtx()
	defer stop()

	publishers, err := newPublishers(cfg)
	if err != nil {
		return err
	}
	if err := verifyPublishers(c, publishers); err != nil {
		return err
	}
	banner(c, cfg, routing)
	return nil
}

func runBot(cmd *cobra.Command, _ []string) error {
	cfg, routing, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()
	c, stop := signalCtx()
	defer stop()

	a, err := newApp(c, cfg, routing)
	if err != nil {
		c.WithField("err", err).Error("init failed")
		return err
	}
	if err := verifyPublishers(c, a.publishers); err != nil {
		return err
	}
	banner(c, cfg, routing)

	if _, ok := a.price.GetRate(c); !ok {
		c.Warn("flow usd rate unavailable at startup, flow priced sales are suppressed until it recovers")
	}

	srv := startEchoServer(c, cfg.Server.Address, a.health)

	var updater *tracker.PriceUpdater
	if cfg.Price.RefreshInterval > 0 {
		updater = tracker.NewPriceUpdater(&tracker.PriceUpdaterCfg{Price: a.price, Interval: cfg.Price.RefreshInterval})
		updater.Start(c)
	}

	errCh := make(chan error, 1)
	tr := tracker.NewSaleTracker(&tracker.SaleTrackerCfg{
		Source:      a.source,
		Handler:     a.handler,
		ErrorCh:     errCh,
		Workers:     cfg.Tracker.Workers,
		QueueLength: cfg.Tracker.QueueLength,
	})
	tr.Start(c)

	select {
	case <-c.Done():
		c.Info("shutting down")
	case err = <-errCh:
		c.WithField("err", err).Error("tracker stopped")
		stop()
	}
	tr.Wait()
	if updater != nil {
		updater.Wait()
	}

	sdc, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sdc); err != nil {
		c.WithField("err", err).Warn("server shutdown failed")
	}
	a.close()
	return err
}
