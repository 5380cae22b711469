package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"StockPulse/internal/di"
	"StockPulse/pkg/config"
)

const version = "0.1.0"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "stockpulse",
		Short: "Predictive inventory analytics",
		Long: `StockPulse turns historical sales and current inventory snapshots into
demand forecasts, price suggestions, anomaly flags and a ranked action list.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path (built-in defaults when omitted)")
	root.AddCommand(newReportCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Default()
	}
	return config.LoadWithEnv(path)
}

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Analyze a sales export and emit the insight report",
		Long: `Read a sales export (.xlsx workbook with Sales/Inventory sheets, or a
date,product_id,quantity .csv), run the analytics engine over every product,
and write the consolidated JSON report.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if v, _ := cmd.Flags().GetString("input"); v != "" {
				cfg.Input.Path = v
			}
			if v, _ := cmd.Flags().GetString("output"); v != "" {
				cfg.Report.Path = v
			}
			if v, _ := cmd.Flags().GetInt("horizon"); v > 0 {
				cfg.Analytics.HorizonDays = v
			}
			if v, _ := cmd.Flags().GetInt64("seed"); v != 0 {
				cfg.Analytics.Seed = v
			}
			if cfg.Input.Path == "" {
				return fmt.Errorf("no input file: set --input or input.path in the config")
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("validate config: %w", err)
			}

			app, err := di.InitializeApp(cfg)
			if err != nil {
				return fmt.Errorf("app initialization failed: %w", err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return app.Run(ctx)
		},
	}

	cmd.Flags().String("input", "", "sales export to analyze (.xlsx or .csv)")
	cmd.Flags().String("output", "", "report file (stdout when omitted)")
	cmd.Flags().Int("horizon", 0, "forecast horizon in days")
	cmd.Flags().Int64("seed", 0, "seed for reproducible price factor draws")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("stockpulse v%s\n", version)
		},
	}
}
