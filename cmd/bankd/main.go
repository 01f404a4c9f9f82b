package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/MarkoPoloResearchLab/bankdata/internal/bankapi"
	"github.com/MarkoPoloResearchLab/bankdata/internal/database"
	"github.com/MarkoPoloResearchLab/bankdata/internal/healthserver"
	"github.com/MarkoPoloResearchLab/bankdata/internal/store/gormstore"
	"github.com/MarkoPoloResearchLab/bankdata/internal/zaplog"
	"github.com/MarkoPoloResearchLab/bankdata/pkg/bank"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	flagSeedDatabaseURL    = "seed-database-url"
	flagTestingDatabaseURL = "testing-database-url"
	flagProdDatabaseURL    = "prod-database-url"
	flagListenAddr         = "listen-addr"
	flagGRPCListenAddr     = "grpc-listen-addr"
	flagAllowedOrigins     = "allowed-origins"
	flagAutoMigrate        = "auto-migrate"
	flagHealthInterval     = "health-interval"
	flagRequestTimeout     = "request-timeout"
	flagJWTSigningKey      = "jwt-signing-key"
	flagJWTIssuer          = "jwt-issuer"
	flagJWTCookieName      = "jwt-cookie-name"

	defaultSeedDatabaseURL    = "sqlite:///tmp/bankdata/seed.db"
	defaultTestingDatabaseURL = "sqlite:///tmp/bankdata/testing.db"
	defaultProdDatabaseURL    = "sqlite:///tmp/bankdata/prod.db"
	defaultListenAddr         = ":8080"
	defaultGRPCListenAddr     = ":7001"
	defaultAllowedOrigins     = "http://localhost:3000"
	defaultHealthInterval     = 15 * time.Second
	defaultRequestTimeout     = 10 * time.Second
	defaultJWTIssuer          = "tauth"
	defaultJWTCookieName      = "app_session"
)

// configBinding ties a flag to its viper key and environment variable.
type configBinding struct {
	flag string
	env  string
}

var configBindings = []configBinding{
	{flag: flagSeedDatabaseURL, env: "SEED_DATABASE_URL"},
	{flag: flagTestingDatabaseURL, env: "TESTING_DATABASE_URL"},
	{flag: flagProdDatabaseURL, env: "PROD_DATABASE_URL"},
	{flag: flagListenAddr, env: "LISTEN_ADDR"},
	{flag: flagGRPCListenAddr, env: "GRPC_LISTEN_ADDR"},
	{flag: flagAllowedOrigins, env: "ALLOWED_ORIGINS"},
	{flag: flagAutoMigrate, env: "AUTO_MIGRATE"},
	{flag: flagHealthInterval, env: "HEALTH_INTERVAL"},
	{flag: flagRequestTimeout, env: "REQUEST_TIMEOUT"},
	{flag: flagJWTSigningKey, env: "JWT_SIGNING_KEY"},
	{flag: flagJWTIssuer, env: "JWT_ISSUER"},
	{flag: flagJWTCookieName, env: "JWT_COOKIE_NAME"},
}

type runtimeConfig struct {
	DatabaseURLs   map[bank.Target]string
	GRPCListenAddr string
	AutoMigrate    bool
	HealthInterval time.Duration
	HTTP           bankapi.Config
}

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "bankd: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := &runtimeConfig{}
	cmd := &cobra.Command{
		Use:           "bankd",
		Short:         "Banking demo data API over seed, testing and prod databases",
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd, viper.New(), cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, cfg)
		},
	}

	cmd.Flags().String(flagSeedDatabaseURL, defaultSeedDatabaseURL, "SEED database URL (postgres:// or sqlite://)")
	cmd.Flags().String(flagTestingDatabaseURL, defaultTestingDatabaseURL, "TESTING database URL (postgres:// or sqlite://)")
	cmd.Flags().String(flagProdDatabaseURL, defaultProdDatabaseURL, "PROD database URL (postgres:// or sqlite://)")
	cmd.Flags().String(flagListenAddr, defaultListenAddr, "HTTP listen address")
	cmd.Flags().String(flagGRPCListenAddr, defaultGRPCListenAddr, "gRPC health listen address")
	cmd.Flags().String(flagAllowedOrigins, defaultAllowedOrigins, "Comma-separated CORS origins")
	cmd.Flags().Bool(flagAutoMigrate, true, "Apply the schema on startup")
	cmd.Flags().Duration(flagHealthInterval, defaultHealthInterval, "Interval between database health pings")
	cmd.Flags().Duration(flagRequestTimeout, defaultRequestTimeout, "Per-request storage timeout")
	cmd.Flags().String(flagJWTSigningKey, "", "tauth session signing key; empty leaves mutating routes open")
	cmd.Flags().String(flagJWTIssuer, defaultJWTIssuer, "tauth session issuer")
	cmd.Flags().String(flagJWTCookieName, defaultJWTCookieName, "tauth session cookie name")

	return cmd
}

func configKey(flag string) string {
	return strings.ReplaceAll(flag, "-", "_")
}

func loadConfig(cmd *cobra.Command, configuration *viper.Viper, cfg *runtimeConfig) error {
	configuration.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	configuration.AutomaticEnv()

	for _, binding := range configBindings {
		if err := configuration.BindEnv(configKey(binding.flag), binding.env); err != nil {
			return err
		}
		if err := configuration.BindPFlag(configKey(binding.flag), cmd.Flags().Lookup(binding.flag)); err != nil {
			return err
		}
	}

	cfg.DatabaseURLs = map[bank.Target]string{
		bank.TargetSeed:    configuration.GetString(configKey(flagSeedDatabaseURL)),
		bank.TargetTesting: configuration.GetString(configKey(flagTestingDatabaseURL)),
		bank.TargetProd:    configuration.GetString(configKey(flagProdDatabaseURL)),
	}
	for target, url := range cfg.DatabaseURLs {
		if strings.TrimSpace(url) == "" {
			return fmt.Errorf("%s database url is required", target)
		}
	}
	cfg.GRPCListenAddr = configuration.GetString(configKey(flagGRPCListenAddr))
	if cfg.GRPCListenAddr == "" {
		cfg.GRPCListenAddr = defaultGRPCListenAddr
	}
	cfg.AutoMigrate = configuration.GetBool(configKey(flagAutoMigrate))
	cfg.HealthInterval = configuration.GetDuration(configKey(flagHealthInterval))
	cfg.HTTP = bankapi.Config{
		ListenAddr:        configuration.GetString(configKey(flagListenAddr)),
		AllowedOrigins:    bankapi.ParseAllowedOrigins(configuration.GetString(configKey(flagAllowedOrigins))),
		RequestTimeout:    configuration.GetDuration(configKey(flagRequestTimeout)),
		SessionSigningKey: configuration.GetString(configKey(flagJWTSigningKey)),
		SessionIssuer:     configuration.GetString(configKey(flagJWTIssuer)),
		SessionCookieName: configuration.GetString(configKey(flagJWTCookieName)),
	}
	return cfg.HTTP.Validate()
}

func runServer(ctx context.Context, cfg *runtimeConfig) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("logger init: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	stores := make(map[bank.Target]*gormstore.Store, len(cfg.DatabaseURLs))
	for _, target := range bank.Targets() {
		handle, err := database.Open(ctx, cfg.DatabaseURLs[target])
		if err != nil {
			return fmt.Errorf("database open %s: %w", target, err)
		}
		defer func() { _ = handle.Close() }()
		if err := database.Prepare(ctx, handle, cfg.AutoMigrate); err != nil {
			return fmt.Errorf("database prepare %s: %w", target, err)
		}
		logger.Info("database ready", zap.String("target", target.String()), zap.String("dialect", string(handle.Dialect)))
		stores[target] = gormstore.New(handle.DB, handle.Dialect)
	}

	router, err := gormstore.NewRouter(stores[bank.TargetSeed], stores[bank.TargetTesting], stores[bank.TargetProd])
	if err != nil {
		return err
	}
	service, err := bank.NewService(router, func() time.Time { return time.Now().UTC() }, bank.WithOperationLogger(zaplog.New(logger)))
	if err != nil {
		return fmt.Errorf("bank service init: %w", err)
	}
	monitor, err := healthserver.NewMonitor(router, cfg.HealthInterval, logger)
	if err != nil {
		return fmt.Errorf("health monitor init: %w", err)
	}

	listener, err := net.Listen("tcp", cfg.GRPCListenAddr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return healthserver.Serve(groupCtx, listener, monitor)
	})
	group.Go(func() error {
		return bankapi.Run(groupCtx, cfg.HTTP, service, logger)
	})
	return group.Wait()
}
