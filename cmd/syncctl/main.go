package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"mangopay-sync/config"
	"mangopay-sync/internal/app"
	"mangopay-sync/internal/service"
	"mangopay-sync/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var Version = "dev"

// openApp is swapped in tests.
var openApp = func(ctx context.Context, cfg *config.Config) (*app.App, error) {
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	return app.Build(ctx, cfg, nil, log)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "syncctl",
		Short:         "syncctl - drive Mangopay sync operations from the command line",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringP("config", "c", os.Getenv("MPS_CONFIG"), "Path to the config file")

	rootCmd.AddCommand(tokenCmd())
	rootCmd.AddCommand(healthCmd())
	rootCmd.AddCommand(userCmd())
	rootCmd.AddCommand(documentCmd())
	rootCmd.AddCommand(bankAccountCmd())
	rootCmd.AddCommand(walletCmd())
	rootCmd.AddCommand(payInCmd())
	rootCmd.AddCommand(payOutCmd())
	rootCmd.AddCommand(transferCmd())
	rootCmd.AddCommand(refundCmd())
	rootCmd.AddCommand(cardRegistrationCmd())
	rootCmd.AddCommand(cardCmd())

	return rootCmd
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token [operator]",
		Short: "Issue an ops API token for an operator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.JWT.Secret == "" {
				return fmt.Errorf("jwt.secret must be set")
			}
			expiry, _ := cmd.Flags().GetDuration("expiry")
			if expiry <= 0 {
				expiry = cfg.JWT.Expiry
			}

			token, expiresAt, err := service.NewJWTTokenService(cfg.JWT.Secret, expiry, cfg.JWT.Issuer).Generate(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, map[string]any{
				"operator":   args[0],
				"token":      token,
				"expires_at": expiresAt,
			})
		},
	}

	cmd.Flags().Duration("expiry", 0, "Token lifetime (defaults to jwt.expiry)")

	return cmd
}

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check PostgreSQL, Redis and processor connectivity",
		RunE: withApp(func(ctx context.Context, a *app.App, _ []string) (any, error) {
			status := make(map[string]string, len(a.Health))
			var failed []string
			for _, hc := range a.Health {
				if err := hc.Ping(ctx); err != nil {
					status[hc.Name()] = err.Error()
					failed = append(failed, hc.Name())
					continue
				}
				status[hc.Name()] = "ok"
			}
			if len(failed) > 0 {
				return nil, fmt.Errorf("unhealthy: %s", strings.Join(failed, ", "))
			}
			return status, nil
		}),
	}
}

type appFunc func(ctx context.Context, a *app.App, args []string) (any, error)

// withApp builds the services, runs fn and prints its result as JSON.
func withApp(fn appFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		a, err := openApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := fn(ctx, a, args)
		if err != nil {
			return err
		}
		return printJSON(cmd, out)
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseID(arg string) (uuid.UUID, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q: %w", arg, err)
	}
	return id, nil
}
