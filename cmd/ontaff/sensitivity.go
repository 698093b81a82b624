package main

import (
	"context"
	"fmt"
	"time"

	"github.com/northrealty/ontaff/internal/calculation"
	"github.com/northrealty/ontaff/internal/compare"
	"github.com/northrealty/ontaff/internal/config"
	"github.com/northrealty/ontaff/internal/rates"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare every scenario in the file against a base scenario",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd, args[0])
		if err != nil {
			fatal("failed to load configuration", err)
		}

		baseName, _ := cmd.Flags().GetString("base")
		if baseName == "" {
			baseName = cfg.Scenarios[0].Name
		}
		altNames := []string{}
		for _, s := range cfg.Scenarios {
			if s.Name != baseName {
				altNames = append(altNames, s.Name)
			}
		}

		engine := compare.NewCompareEngine(calculation.NewEngineWithConfig(cfg.Regulatory))
		compSet, err := engine.CompareScenarios(cfg, baseName, altNames)
		if err != nil {
			fatal("comparison failed", err)
		}

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "table":
			fmt.Print((&compare.TableFormatter{}).Format(compSet))
		case "csv":
			out, err := (&compare.CSVFormatter{}).Format(compSet)
			if err != nil {
				fatal("failed to render CSV", err)
			}
			fmt.Print(out)
		case "json":
			out, err := (&compare.JSONFormatter{Pretty: true}).Format(compSet)
			if err != nil {
				fatal("failed to render JSON", err)
			}
			fmt.Println(out)
		default:
			fatal("failed to render comparison", fmt.Errorf("unsupported format %q", format))
		}
	},
}

var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity [input-file]",
	Short: "Sweep one input metric across all scenarios",
	Long:  "Recomputes the monthly payment for every scenario with a single metric perturbed across its standard step set (rate in percentage points, price in percent, down payment in percentage points).",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd, args[0])
		if err != nil {
			fatal("failed to load configuration", err)
		}

		metricFlag, _ := cmd.Flags().GetString("metric")
		metric := calculation.SensitivityMetric(metricFlag)

		analyzer := calculation.NewSensitivityAnalyzer(calculation.NewEngineWithConfig(cfg.Regulatory))
		table, err := analyzer.Run(cfg.Scenarios, metric, nil)
		if err != nil {
			fatal("sensitivity sweep failed", err)
		}

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "table":
			fmt.Print((&compare.TableFormatter{}).FormatSensitivityTable(table))
		case "csv":
			out, err := (&compare.CSVFormatter{}).FormatSensitivity(table)
			if err != nil {
				fatal("failed to render CSV", err)
			}
			fmt.Print(out)
		default:
			fatal("failed to render sweep", fmt.Errorf("unsupported format %q", format))
		}
	},
}

var stressCmd = &cobra.Command{
	Use:   "stress [input-file]",
	Short: "Run the +/-2% rate stress table for all scenarios",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd, args[0])
		if err != nil {
			fatal("failed to load configuration", err)
		}

		analyzer := calculation.NewSensitivityAnalyzer(calculation.NewEngineWithConfig(cfg.Regulatory))
		results, err := analyzer.StressTest(cfg.Scenarios)
		if err != nil {
			fatal("stress test failed", err)
		}

		fmt.Print((&compare.TableFormatter{}).FormatStressTable(results))
	},
}

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Show current lender rate quotes",
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := config.LoadSettings("")
		if err != nil {
			fatal("failed to load settings", err)
		}

		var store rates.Store
		if settings.RedisAddr != "" {
			store = rates.NewRedisStore(settings.RedisAddr)
		}
		cache := rates.NewQuoteCache(rates.StaticSource{}, store, settings.RateCacheTTL, logger)

		quotes, err := cache.GetOrRefresh(context.Background(), time.Now())
		if err != nil {
			fatal("failed to fetch rate quotes", err)
		}

		kindFilter, _ := cmd.Flags().GetString("kind")
		fmt.Printf("%-20s %-10s %8s\n", "Lender", "Type", "Rate")
		for _, quote := range quotes {
			if kindFilter != "" && string(quote.Kind) != kindFilter {
				continue
			}
			fmt.Printf("%-20s %-10s %7s%%\n", quote.Lender, quote.Kind, quote.RatePercent.StringFixed(2))
		}

		if best, ok := rates.Best(quotes, rates.KindFixed); ok && kindFilter == "" {
			fmt.Printf("\nBest fixed: %s at %s%%\n", best.Lender, best.RatePercent.StringFixed(2))
		}
	},
}
