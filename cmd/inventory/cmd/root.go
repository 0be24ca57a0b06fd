package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rogerio-castellano/inventory-console/internal/client"
	"github.com/rogerio-castellano/inventory-console/internal/config"
	"github.com/rogerio-castellano/inventory-console/internal/inventory"
	"github.com/rogerio-castellano/inventory-console/internal/logger"
	"github.com/rogerio-castellano/inventory-console/internal/snapshot"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd(viper.New()).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree reading configuration from v.
func NewRootCmd(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:           "inventory",
		Short:         "Manage the products of the inventory service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			_ = godotenv.Load()
		},
	}

	config.SetDefaults(v)

	flags := root.PersistentFlags()
	flags.String("api-url", "http://localhost:3001", "Base URL of the product service")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("log-format", "console", "Log format (console, json)")
	flags.Duration("request-timeout", 0, "Timeout for each request, 0 disables it")
	flags.String("redis-addr", "", "Redis address for the product snapshot, empty disables it")
	_ = v.BindPFlag(config.KeyAPIURL, flags.Lookup("api-url"))
	_ = v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = v.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format"))
	_ = v.BindPFlag(config.KeyRequestTimeout, flags.Lookup("request-timeout"))
	_ = v.BindPFlag(config.KeyRedisAddr, flags.Lookup("redis-addr"))

	root.AddCommand(
		newListCmd(v),
		newAddCmd(v),
		newDeleteCmd(v),
		newBrowseCmd(v),
	)
	return root
}

// app wires the controller from configuration for a single command run.
type app struct {
	log       *zap.Logger
	ctrl      *inventory.Controller
	snapshots *snapshot.Store
}

func newApp(ctx context.Context, v *viper.Viper) (*app, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:             cfg.Log.Level,
		Encoding:          cfg.Log.Format,
		IsDevelopment:     cfg.Log.Format == "console",
		DisableStacktrace: true,
	})
	if err != nil {
		return nil, err
	}

	a := &app{log: log}

	api := client.New(cfg.APIURL,
		client.WithLogger(log.Named("client")),
		client.WithTimeout(cfg.RequestTimeout),
		client.WithRateLimit(cfg.RateLimit, cfg.RateBurst),
	)

	opts := []inventory.Option{inventory.WithLogger(log.Named("inventory"))}
	if cfg.Redis.SnapshotEnabled() {
		store, err := snapshot.Connect(ctx, cfg.Redis)
		if err != nil {
			log.Warn("product snapshot disabled", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		} else {
			a.snapshots = store
			opts = append(opts, inventory.WithSnapshots(store))
		}
	}

	a.ctrl = inventory.NewController(api, opts...)
	return a, nil
}

func (a *app) Close() {
	if a.snapshots != nil {
		if err := a.snapshots.Close(); err != nil {
			a.log.Warn("failed to close redis", zap.Error(err))
		}
	}
	_ = a.log.Sync()
}
