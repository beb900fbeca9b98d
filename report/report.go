// Package report formats backtest results for display and export. It only
// consumes the plain data the engine hands over.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/gocarina/gocsv"

	"github.com/solquant/vajra/models"
)

var displayNames = map[models.StrategyMode]string{
	models.ModeRsi:       "RSI Strategy",
	models.ModeBollinger: "Bollinger Bands Strategy",
	models.ModeCombined:  "Combined Strategy",
}

func displayName(mode models.StrategyMode) string {
	if name, ok := displayNames[mode]; ok {
		return name
	}
	return string(mode)
}

// Print writes the full metrics block for one result.
func Print(w io.Writer, result *models.Result) {
	m := result.Metrics
	fmt.Fprintf(w, "\n%s Results (%s):\n", displayName(result.Mode), result.Symbol)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total Trades:\t%d\n", m.TotalTrades)
	fmt.Fprintf(tw, "Win Rate:\t%.2f%%\n", m.WinRate*100)
	fmt.Fprintf(tw, "Total PnL:\t$%.2f\n", m.TotalPnl)
	fmt.Fprintf(tw, "Sharpe Ratio:\t%.2f\n", m.SharpeRatio)
	fmt.Fprintf(tw, "Max Drawdown:\t%.2f%%\n", m.MaxDrawdown*100)
	fmt.Fprintf(tw, "Average Win:\t$%.2f\n", m.AverageWin)
	fmt.Fprintf(tw, "Average Loss:\t$%.2f\n", m.AverageLoss)
	fmt.Fprintf(tw, "Largest Win:\t$%.2f\n", m.LargestWin)
	fmt.Fprintf(tw, "Largest Loss:\t$%.2f\n", m.LargestLoss)
	tw.Flush()
}

// Compare writes a side-by-side comparison of two results.
func Compare(w io.Writer, a, b *models.Result) {
	fmt.Fprintf(w, "\nStrategy Comparison (%s vs %s):\n", displayName(a.Mode), displayName(b.Mode))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Trade Count:\t%d\tvs\t%d\n", a.Metrics.TotalTrades, b.Metrics.TotalTrades)
	fmt.Fprintf(tw, "Win Rate:\t%.2f%%\tvs\t%.2f%%\n", a.Metrics.WinRate*100, b.Metrics.WinRate*100)
	fmt.Fprintf(tw, "Total PnL:\t$%.2f\tvs\t$%.2f\n", a.Metrics.TotalPnl, b.Metrics.TotalPnl)
	fmt.Fprintf(tw, "Sharpe Ratio:\t%.2f\tvs\t%.2f\n", a.Metrics.SharpeRatio, b.Metrics.SharpeRatio)
	fmt.Fprintf(tw, "Max Drawdown:\t%.2f%%\tvs\t%.2f%%\n", a.Metrics.MaxDrawdown*100, b.Metrics.MaxDrawdown*100)
	tw.Flush()
}

// ExportCSV writes the trade list and equity curve of a result to
// <mode>_trades.csv and <mode>_equity.csv in dir.
func ExportCSV(dir string, result *models.Result) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	if err := writeCSV(filepath.Join(dir, string(result.Mode)+"_trades.csv"), &result.Trades); err != nil {
		return err
	}
	return writeCSV(filepath.Join(dir, string(result.Mode)+"_equity.csv"), &result.Equity)
}

func writeCSV(path string, rows interface{}) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %v: %w", path, err)
	}
	defer file.Close()
	if err := gocsv.MarshalFile(rows, file); err != nil {
		return fmt.Errorf("failed to write %v: %w", path, err)
	}
	return nil
}
