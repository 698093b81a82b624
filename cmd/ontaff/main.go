package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/northrealty/ontaff/internal/calculation"
	"github.com/northrealty/ontaff/internal/config"
	"github.com/northrealty/ontaff/internal/domain"
	"github.com/northrealty/ontaff/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var logger *zap.Logger

// newLogger builds the process logger at the configured level.
func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return cfg.Build()
}

func fatal(msg string, err error) {
	logger.Fatal(msg, zap.Error(err))
}

// loadConfig parses the scenario file, with an optional regulatory override
// file layered on top of the built-in defaults.
func loadConfig(cmd *cobra.Command, inputFile string) (*domain.Configuration, error) {
	parser := config.NewInputParser()
	regulatoryFile, _ := cmd.Flags().GetString("regulatory-config")
	if regulatoryFile != "" {
		return parser.LoadFromFileWithRegulatory(inputFile, regulatoryFile)
	}
	return parser.LoadFromFile(inputFile)
}

// pickScenario returns the scenario named by --scenario, or the first one.
func pickScenario(cmd *cobra.Command, cfg *domain.Configuration) (*domain.Scenario, error) {
	name, _ := cmd.Flags().GetString("scenario")
	if name == "" {
		return &cfg.Scenarios[0], nil
	}
	if s := cfg.FindScenario(name); s != nil {
		return s, nil
	}
	return nil, fmt.Errorf("scenario %q not found in configuration", name)
}

func render(cmd *cobra.Command, report *output.Report) error {
	format, _ := cmd.Flags().GetString("format")
	formatter := output.GetFormatterByName(format)
	if formatter == nil {
		return fmt.Errorf("unsupported format %q (supported: %v)", format, output.FormatNames())
	}
	data, err := formatter.Format(report)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

var rootCmd = &cobra.Command{
	Use:   "ontaff",
	Short: "Ontario mortgage affordability calculator",
	Long:  "Mortgage affordability, land transfer tax, and rental investment calculator for Ontario home buyers",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Compute the affordability summary for a scenario",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd, args[0])
		if err != nil {
			fatal("failed to load configuration", err)
		}
		scenario, err := pickScenario(cmd, cfg)
		if err != nil {
			fatal("failed to select scenario", err)
		}

		engine := calculation.NewEngineWithConfig(cfg.Regulatory)
		result, err := engine.Affordability(*scenario)
		if err != nil {
			fatal("affordability calculation failed", err)
		}

		report := &output.Report{Scenario: *scenario, Result: result}
		if scenario.Rental != nil {
			rental, err := engine.AnalyzeRental(*scenario)
			if err != nil {
				fatal("rental analysis failed", err)
			}
			report.Rental = rental
		}

		if err := render(cmd, report); err != nil {
			fatal("failed to render report", err)
		}
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule [input-file]",
	Short: "Generate the amortization schedule for a scenario",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd, args[0])
		if err != nil {
			fatal("failed to load configuration", err)
		}
		scenario, err := pickScenario(cmd, cfg)
		if err != nil {
			fatal("failed to select scenario", err)
		}

		frequencyFlag, _ := cmd.Flags().GetString("frequency")
		frequency := domain.PaymentFrequency(frequencyFlag)

		engine := calculation.NewEngineWithConfig(cfg.Regulatory)
		result, err := engine.Affordability(*scenario)
		if err != nil {
			fatal("affordability calculation failed", err)
		}

		schedule, err := engine.Payment.Schedule(
			result.TotalMortgage,
			scenario.Financing.InterestRatePercent,
			scenario.Financing.AmortizationYears,
			frequency,
			result.MonthlyPayment,
		)
		if err != nil {
			fatal("schedule generation failed", err)
		}
		rollup := calculation.RollupByYear(schedule, frequency.PeriodsPerYear())

		report := &output.Report{
			Scenario: *scenario,
			Result:   result,
			Schedule: schedule,
			Rollup:   rollup,
		}
		if err := render(cmd, report); err != nil {
			fatal("failed to render report", err)
		}
	},
}

var rentalCmd = &cobra.Command{
	Use:   "rental [input-file]",
	Short: "Run the rental investment analysis for a scenario",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd, args[0])
		if err != nil {
			fatal("failed to load configuration", err)
		}
		scenario, err := pickScenario(cmd, cfg)
		if err != nil {
			fatal("failed to select scenario", err)
		}

		engine := calculation.NewEngineWithConfig(cfg.Regulatory)
		result, err := engine.Affordability(*scenario)
		if err != nil {
			fatal("affordability calculation failed", err)
		}
		rental, err := engine.AnalyzeRental(*scenario)
		if err != nil {
			fatal("rental analysis failed", err)
		}

		report := &output.Report{Scenario: *scenario, Result: result, Rental: rental}
		if err := render(cmd, report); err != nil {
			fatal("failed to render report", err)
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a configuration file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := loadConfig(cmd, args[0]); err != nil {
			fatal("configuration is invalid", err)
		}
		fmt.Printf("Configuration file %s is valid\n", args[0])
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "ontaff %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

func main() {
	settings, err := config.LoadSettings("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load settings: %v\n", err)
		os.Exit(1)
	}

	logger, err = newLogger(settings.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initiate logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	for _, cmd := range []*cobra.Command{calculateCmd, scheduleCmd, rentalCmd, compareCmd, sensitivityCmd, stressCmd, validateCmd} {
		cmd.Flags().String("regulatory-config", "", "path to a regulatory values override file")
	}
	for _, cmd := range []*cobra.Command{calculateCmd, scheduleCmd, rentalCmd} {
		cmd.Flags().String("scenario", "", "scenario name (defaults to the first)")
		cmd.Flags().String("format", settings.OutputFormat, "output format: console, csv, json, html")
	}
	scheduleCmd.Flags().String("frequency", string(domain.FrequencyMonthly), "payment frequency: monthly or biweekly")

	compareCmd.Flags().String("base", "", "base scenario name (defaults to the first)")
	compareCmd.Flags().String("format", "table", "output format: table, csv, json")
	sensitivityCmd.Flags().String("metric", string(calculation.MetricRate), "metric to sweep: rate, price, or down_payment")
	sensitivityCmd.Flags().String("format", "table", "output format: table or csv")
	ratesCmd.Flags().String("kind", "", "filter quotes: fixed or variable")

	rootCmd.AddCommand(calculateCmd, scheduleCmd, rentalCmd, compareCmd, sensitivityCmd, stressCmd, ratesCmd, validateCmd, versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
