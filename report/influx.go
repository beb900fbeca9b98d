package report

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/structs"
	"github.com/google/uuid"
	client "github.com/influxdata/influxdb1-client/v2"

	"github.com/solquant/vajra/models"
)

// LogBacktest writes a result point to the backtests influx database. The
// target is read from VAJRA_BACKTEST_DB_URL; when unset the call is a no-op
// so local runs stay offline.
func LogBacktest(result *models.Result) error {
	addr := os.Getenv("VAJRA_BACKTEST_DB_URL")
	if addr == "" {
		return nil
	}
	influx, err := client.NewHTTPClient(client.HTTPConfig{
		Addr:     addr,
		Username: os.Getenv("VAJRA_BACKTEST_DB_USER"),
		Password: os.Getenv("VAJRA_BACKTEST_DB_PASSWORD"),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to backtest database: %w", err)
	}
	defer influx.Close()

	bp, err := client.NewBatchPoints(client.BatchPointsConfig{
		Database:  "backtests",
		Precision: "us",
	})
	if err != nil {
		return err
	}

	backtestID := string(result.Mode) + "-" + uuid.New().String()
	tags := map[string]string{
		"symbol":      result.Symbol,
		"mode":        string(result.Mode),
		"backtest_id": backtestID,
	}

	fields := structs.Map(result.Metrics)
	fields["id"] = backtestID

	pt, err := client.NewPoint("result", tags, fields, time.Now())
	if err != nil {
		return err
	}
	bp.AddPoint(pt)

	if err := influx.Write(bp); err != nil {
		return fmt.Errorf("failed to log backtest result: %w", err)
	}
	return nil
}
