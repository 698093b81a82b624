package config

import (
	"fmt"
	"os"

	"github.com/northrealty/ontaff/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Amortization periods lenders actually offer.
var allowedAmortizations = map[int]bool{15: true, 20: true, 25: true, 30: true}

var (
	minDownPayment = decimal.NewFromInt(5)
	maxDownPayment = decimal.NewFromInt(100)
	hundred        = decimal.NewFromInt(100)
)

// InputParser handles parsing of scenario configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a scenario configuration from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if config.Regulatory == nil {
		config.Regulatory = domain.DefaultRegulatory()
	} else {
		config.Regulatory.MergeDefaults()
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// LoadFromFileWithRegulatory loads a scenario file and overlays a separate
// regulatory values file on top of the defaults.
func (ip *InputParser) LoadFromFileWithRegulatory(filename, regulatoryFile string) (*domain.Configuration, error) {
	regData, err := os.ReadFile(regulatoryFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read regulatory file %s: %w", regulatoryFile, err)
	}

	var regulatory domain.RegulatoryConfig
	if err := yaml.Unmarshal(regData, &regulatory); err != nil {
		return nil, fmt.Errorf("failed to parse regulatory YAML: %w", err)
	}
	regulatory.MergeDefaults()

	config, err := ip.LoadFromFile(filename)
	if err != nil {
		return nil, err
	}
	config.Regulatory = &regulatory

	return config, nil
}

// ValidateConfiguration validates the loaded configuration.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if err := ip.validateScenario(&scenario); err != nil {
			return fmt.Errorf("scenario %d (%s) validation failed: %w", i, scenario.Name, err)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("duplicate scenario name: %s", scenario.Name)
		}
		seen[scenario.Name] = true
	}

	return nil
}

// validateScenario validates a single scenario.
func (ip *InputParser) validateScenario(s *domain.Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}

	if s.Property.Price.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("property price must be positive")
	}

	if err := ip.validateFinancing(&s.Financing); err != nil {
		return err
	}

	if err := ip.validateClosingCosts(&s.ClosingCosts); err != nil {
		return err
	}

	if s.Rental != nil {
		if err := ip.validateRental(s.Rental); err != nil {
			return fmt.Errorf("rental validation failed: %w", err)
		}
	}

	return nil
}

// validateFinancing validates the financing inputs.
func (ip *InputParser) validateFinancing(f *domain.FinancingInput) error {
	if f.DownPaymentPercent.LessThan(minDownPayment) || f.DownPaymentPercent.GreaterThan(maxDownPayment) {
		return fmt.Errorf("down payment percent must be between 5 and 100")
	}
	if f.InterestRatePercent.LessThan(decimal.Zero) {
		return fmt.Errorf("interest rate cannot be negative")
	}
	if !allowedAmortizations[f.AmortizationYears] {
		return fmt.Errorf("amortization years must be one of 15, 20, 25, or 30")
	}
	if f.TermYears <= 0 {
		return fmt.Errorf("term years must be positive")
	}
	if f.TermYears > f.AmortizationYears {
		return fmt.Errorf("term years cannot exceed amortization years")
	}
	if f.MortgageKind != domain.MortgageFixed && f.MortgageKind != domain.MortgageVariable {
		return fmt.Errorf("mortgage type must be %q or %q", domain.MortgageFixed, domain.MortgageVariable)
	}
	return nil
}

// validateClosingCosts validates the itemized closing costs.
func (ip *InputParser) validateClosingCosts(c *domain.ClosingCosts) error {
	for name, amount := range map[string]decimal.Decimal{
		"legal":      c.Legal,
		"appraisal":  c.Appraisal,
		"inspection": c.Inspection,
		"other":      c.Other,
	} {
		if amount.LessThan(decimal.Zero) {
			return fmt.Errorf("closing cost %s cannot be negative", name)
		}
	}
	return nil
}

// validateRental validates the rental assumptions block.
func (ip *InputParser) validateRental(r *domain.RentalAssumptions) error {
	if r.MonthlyRent.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("monthly rent must be positive")
	}
	if r.VacancyRatePercent.LessThan(decimal.Zero) || r.VacancyRatePercent.GreaterThanOrEqual(hundred) {
		return fmt.Errorf("vacancy rate percent must be at least 0 and below 100")
	}
	for i, expense := range r.AnnualExpenses {
		if expense.Name == "" {
			return fmt.Errorf("annual expense %d requires a name", i)
		}
		if expense.Amount.LessThan(decimal.Zero) {
			return fmt.Errorf("annual expense %s cannot be negative", expense.Name)
		}
	}
	if r.TargetCapRatePercent.LessThan(decimal.Zero) {
		return fmt.Errorf("target cap rate percent cannot be negative")
	}
	return nil
}
