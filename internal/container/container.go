// Package container provides dependency injection for the budget-advisor application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/budget-advisor/internal/advisor"
	"fjacquet/budget-advisor/internal/aggregator"
	"fjacquet/budget-advisor/internal/categorizer"
	"fjacquet/budget-advisor/internal/config"
	"fjacquet/budget-advisor/internal/logging"
	"fjacquet/budget-advisor/internal/parser"
	"fjacquet/budget-advisor/internal/report"
	"fjacquet/budget-advisor/internal/store"

	"github.com/shopspring/decimal"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation: all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger      logging.Logger
	config      *config.Config
	store       *store.RuleStore
	parser      *parser.CSVParser
	categorizer *categorizer.Categorizer
	aggregator  *aggregator.MonthlyAggregator
	advisor     *advisor.Advisor
	generator   *report.ReportGenerator
}

// NewContainer creates and wires all application dependencies, logging through
// a logrus logger configured from cfg.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	logger := logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg))
	return NewContainerWithLogger(cfg, logger)
}

// NewContainerWithLogger wires all dependencies around the given logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	ruleStore := store.NewRuleStore(cfg.Rules.File, logger)
	cat, err := categorizer.NewCategorizerFromStore(ruleStore, logger)
	if err != nil {
		return nil, err
	}

	csvParser := parser.NewCSVParser(logger, parser.WithDelimiter(cfg.Delimiter()))
	agg := aggregator.NewMonthlyAggregator(logger)
	adv := advisor.NewAdvisor(AdvisorOptions(cfg), logger)
	generator := report.NewReportGenerator(logger)

	logger.Debug("Container initialized successfully",
		logging.Field{Key: logging.FieldRules, Value: len(cat.Rules())},
		logging.Field{Key: logging.FieldDelimiter, Value: string(cfg.Delimiter())})

	return &Container{
		logger:      logger,
		config:      cfg,
		store:       ruleStore,
		parser:      csvParser,
		categorizer: cat,
		aggregator:  agg,
		advisor:     adv,
		generator:   generator,
	}, nil
}

// AdvisorOptions converts the advisor configuration section to advisor.Options.
func AdvisorOptions(cfg *config.Config) advisor.Options {
	return advisor.Options{
		OverspendThreshold: decimal.NewFromFloat(cfg.Advisor.OverspendThreshold),
		ReductionRate:      decimal.NewFromFloat(cfg.Advisor.ReductionRate),
		TopCategories:      cfg.Advisor.TopCategories,
	}
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the rule store the categorizer was loaded from.
func (c *Container) GetStore() *store.RuleStore {
	return c.store
}

// GetParser returns the transaction CSV parser.
func (c *Container) GetParser() parser.FullParser {
	return c.parser
}

// GetCategorizer returns the container's categorizer instance.
func (c *Container) GetCategorizer() *categorizer.Categorizer {
	return c.categorizer
}

// GetAggregator returns the monthly aggregator.
func (c *Container) GetAggregator() *aggregator.MonthlyAggregator {
	return c.aggregator
}

// GetAdvisor returns the budget advisor.
func (c *Container) GetAdvisor() *advisor.Advisor {
	return c.advisor
}

// GetReportGenerator returns the report generator.
func (c *Container) GetReportGenerator() *report.ReportGenerator {
	return c.generator
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
