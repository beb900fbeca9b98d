package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/solquant/vajra/data"
	"github.com/solquant/vajra/models"
	"github.com/solquant/vajra/settings"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Print the current market snapshot for a symbol",
	Long: `Fetch recent daily candles and print the latest price alongside moving
averages, RSI and volatility.

Example:
  vajra monitor --symbol SOL`,
	RunE: runMonitor,
}

var (
	monSymbol  string
	monCSVPath string
)

func init() {
	rootCmd.AddCommand(monitorCmd)

	monitorCmd.Flags().StringVar(&monSymbol, "symbol", "SOL", "Symbol to monitor")
	monitorCmd.Flags().StringVar(&monCSVPath, "csv", "", "Read candles from a csv file instead of the network")
}

func runMonitor(cmd *cobra.Command, args []string) error {
	secret, err := loadRunSecret()
	if err != nil {
		return err
	}
	bars, err := monitorBars(secret)
	if err != nil {
		return err
	}
	if len(bars) == 0 {
		return fmt.Errorf("no candle data available for %v", monSymbol)
	}
	log.Debug().Int("bars", len(bars)).Msg("loaded candles for monitoring")

	processor := data.NewProcessor(200)
	snapshots := processor.ProcessAll(bars)
	latest := snapshots[len(snapshots)-1]

	fmt.Printf("\nMarket snapshot for %s (%s):\n", monSymbol, latest.Bar.Time().Format("2006-01-02"))
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Close:\t$%.2f\n", latest.Bar.Close)
	if latest.MA5Valid {
		fmt.Fprintf(tw, "MA5:\t$%.2f\n", latest.MA5)
	}
	if latest.MA20Valid {
		fmt.Fprintf(tw, "MA20:\t$%.2f\n", latest.MA20)
	}
	if latest.Rsi14Valid {
		fmt.Fprintf(tw, "RSI(14):\t%.2f\n", latest.Rsi14)
	}
	if latest.VolValid {
		fmt.Fprintf(tw, "Volatility(20):\t%.2f\n", latest.Volatility)
	}
	if latest.MA5Valid && latest.MA20Valid {
		trend := "downtrend"
		if latest.MA5 > latest.MA20 {
			trend = "uptrend"
		}
		fmt.Fprintf(tw, "Trend:\t%s\n", trend)
	}
	tw.Flush()

	if latest.Outlier {
		fmt.Println("\nWarning: latest close is a statistical outlier against its trailing window")
	}
	return nil
}

func monitorBars(secret settings.Secret) ([]*models.Bar, error) {
	if monCSVPath != "" {
		return data.LoadBarsCSV(monCSVPath)
	}
	client, err := newAlphaClient(secret)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	return client.FetchDaily(ctx, monSymbol)
}
