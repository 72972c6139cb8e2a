package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Joseph-Carlucci/quant-platform/config"
	"github.com/Joseph-Carlucci/quant-platform/data"
	"github.com/Joseph-Carlucci/quant-platform/engine"
	"github.com/Joseph-Carlucci/quant-platform/eventhandlers/exchange"
	"github.com/Joseph-Carlucci/quant-platform/eventhandlers/portfolio"
	"github.com/Joseph-Carlucci/quant-platform/eventhandlers/portfolio/size"
	"github.com/Joseph-Carlucci/quant-platform/eventhandlers/statistics"
	"github.com/Joseph-Carlucci/quant-platform/eventhandlers/strategies"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	app := &cli.App{
		Name:  "backtester",
		Usage: "replay historical bars through a strategy and report risk-adjusted performance",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    "path to the run configuration file",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.ReadConfigFromFile(c.String("config"))
	if err != nil {
		return err
	}
	log, err := buildLogger(c.Bool("verbose"))
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck // stderr sync failure is uninteresting

	bt, err := assemble(cfg, log)
	if err != nil {
		return err
	}
	result, err := bt.Run(context.Background())
	if err != nil {
		return err
	}
	result.Report.PrintSummary(os.Stdout)
	return nil
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func assemble(cfg *config.Config, log *zap.Logger) (*engine.BackTest, error) {
	strategy, err := strategies.LoadStrategyByName(cfg.Strategy.Name)
	if err != nil {
		return nil, err
	}
	if len(cfg.Strategy.CustomSettings) > 0 {
		if err = strategy.SetCustomSettings(cfg.Strategy.CustomSettings); err != nil {
			return nil, err
		}
	}

	sizer := &size.Size{
		MaxPositionFraction: decimal.NewFromFloat(cfg.MaxPositionFraction),
		DefaultPrice:        decimal.NewFromFloat(cfg.DefaultSignalPrice),
	}
	book, err := portfolio.New(
		decimal.NewFromFloat(cfg.InitialCapital),
		decimal.NewFromFloat(cfg.CommissionRate),
		sizer,
		log)
	if err != nil {
		return nil, err
	}
	exch, err := exchange.New(
		decimal.NewFromFloat(cfg.CommissionRate),
		decimal.NewFromFloat(cfg.MinimumCommission),
		decimal.NewFromFloat(cfg.SlippageRate),
		log)
	if err != nil {
		return nil, err
	}

	var benchmark []data.Point
	if cfg.BenchmarkCSV != "" {
		benchmark, err = data.ReadBenchmarkCSV(cfg.BenchmarkCSV)
		if err != nil {
			return nil, err
		}
	}
	start, err := cfg.StartDate()
	if err != nil {
		return nil, err
	}
	end, err := cfg.EndDate()
	if err != nil {
		return nil, err
	}

	return engine.New(&engine.Settings{
		Strategy:  strategy,
		Source:    &data.CSVSource{Dir: cfg.Data.Dir},
		Portfolio: book,
		Exchange:  exch,
		Analyzer:  &statistics.Analyzer{RiskFreeRate: cfg.RiskFreeRate},
		Symbols:   cfg.Data.Symbols,
		Start:     start,
		End:       end,
		Benchmark: benchmark,
		RNGSeed:   cfg.RNGSeed,
		Logger:    log,
	})
}
