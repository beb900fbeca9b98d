package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	vajra "github.com/solquant/vajra"
	"github.com/solquant/vajra/data"
	"github.com/solquant/vajra/database"
	"github.com/solquant/vajra/models"
	"github.com/solquant/vajra/report"
	"github.com/solquant/vajra/settings"
)

var backtestCmd = &cobra.Command{
	Use:   "backtest",
	Short: "Run one or more strategies over a historical price series",
	Long: `Run a backtest over daily price data and print the performance metrics.

Examples:
  vajra backtest --csv data/sol_daily.csv --mode rsi
  vajra backtest --source alphavantage --symbol SOL --mode all
  vajra backtest --config config.yaml --export out/`,
	RunE: runBacktest,
}

var (
	btConfigPath string
	btSource     string
	btCSVPath    string
	btSymbol     string
	btMode       string
	btInterval   string
	btLimit      int
	btDays       int
	btExportDir  string
	btPublish    bool
)

func init() {
	rootCmd.AddCommand(backtestCmd)

	backtestCmd.Flags().StringVar(&btConfigPath, "config", "", "Path to a yaml config file")
	backtestCmd.Flags().StringVar(&btSource, "source", "csv", "Price data source: csv, postgres, alphavantage")
	backtestCmd.Flags().StringVar(&btCSVPath, "csv", "", "Path to a csv price file (source=csv)")
	backtestCmd.Flags().StringVar(&btSymbol, "symbol", "", "Override the configured symbol")
	backtestCmd.Flags().StringVar(&btMode, "mode", "", "Strategy mode: rsi, bollinger, combined, all (default from config)")
	backtestCmd.Flags().StringVar(&btInterval, "interval", "1d", "Candle interval (source=postgres)")
	backtestCmd.Flags().IntVar(&btLimit, "limit", 365, "Number of candles to load (source=postgres)")
	backtestCmd.Flags().IntVar(&btDays, "days", 0, "Restrict the series to the trailing N days (0 = full history)")
	backtestCmd.Flags().StringVar(&btExportDir, "export", "", "Directory to export trade and equity csv files to")
	backtestCmd.Flags().BoolVar(&btPublish, "publish", false, "Log results to the backtest database")
}

func runBacktest(cmd *cobra.Command, args []string) error {
	config := settings.Default()
	if btConfigPath != "" {
		loaded, err := settings.Load(btConfigPath)
		if err != nil {
			return err
		}
		config = loaded
	}
	if btSymbol != "" {
		config.Symbol = btSymbol
	}
	mode := config.StrategyMode
	if btMode != "" {
		mode = btMode
	}

	secret, err := loadRunSecret()
	if err != nil {
		return err
	}
	bars, err := loadBars(config.Symbol, secret)
	if err != nil {
		return err
	}
	log.Info().Str("symbol", config.Symbol).Int("bars", len(bars)).Msg("loaded price series")

	modes := []string{mode}
	if mode == "all" {
		modes = []string{
			string(models.ModeRsi),
			string(models.ModeBollinger),
			string(models.ModeCombined),
		}
	}

	results := make([]*models.Result, 0, len(modes))
	for _, m := range modes {
		var run settings.Config
		if err := copier.Copy(&run, &config); err != nil {
			return err
		}
		run.StrategyMode = m

		bt, err := vajra.NewBacktest(run)
		if err != nil {
			return err
		}
		result, err := bt.Run(bars)
		if err != nil {
			return err
		}
		results = append(results, result)
		report.Print(os.Stdout, result)

		if btExportDir != "" {
			if err := report.ExportCSV(btExportDir, result); err != nil {
				return err
			}
		}
		if btPublish {
			if err := report.LogBacktest(result); err != nil {
				log.Warn().Err(err).Msg("failed to publish backtest result")
			}
		}
	}

	for i := 1; i < len(results); i++ {
		report.Compare(os.Stdout, results[0], results[i])
	}
	return nil
}

func loadBars(symbol string, secret settings.Secret) ([]*models.Bar, error) {
	var start, end time.Time
	if btDays > 0 {
		end = time.Now().UTC()
		start = end.AddDate(0, 0, -btDays)
	}

	switch btSource {
	case "csv":
		if btCSVPath == "" {
			return nil, fmt.Errorf("--csv is required when source=csv")
		}
		bars, err := data.LoadBarsCSV(btCSVPath)
		if err != nil {
			return nil, err
		}
		if btDays > 0 {
			bars = data.FilterRange(bars, start, end)
			if len(bars) == 0 {
				return nil, fmt.Errorf("no bars in %v within the last %v days", btCSVPath, btDays)
			}
		}
		return bars, nil
	case "postgres":
		db, err := database.Connect(secret.DatabaseURL)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		if btDays > 0 {
			return database.GetCandlesByTime(db, symbol, btInterval, start, end)
		}
		return database.GetCandles(db, symbol, btInterval, btLimit)
	case "alphavantage":
		client, err := newAlphaClient(secret)
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if btDays > 0 {
			return client.FetchDailyRange(ctx, symbol, start, end)
		}
		return client.FetchDaily(ctx, symbol)
	default:
		return nil, fmt.Errorf("unknown source %q, want csv, postgres or alphavantage", btSource)
	}
}
