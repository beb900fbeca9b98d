// Package database reads cached candle data from postgres. It is a price
// data source only; trade history is never persisted.
package database

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/solquant/vajra/models"
)

// Connect opens the candle database. An explicit dsn (a secret's
// database_url) wins, then VAJRA_DB_URL; otherwise the connection is
// assembled from VAJRA_DB_HOST, VAJRA_DB_USER, VAJRA_DB_PASSWORD and
// VAJRA_DB_NAME with localhost defaults.
func Connect(dsn string) (*sqlx.DB, error) {
	if dsn == "" {
		dsn = os.Getenv("VAJRA_DB_URL")
	}
	if dsn == "" {
		host := envOr("VAJRA_DB_HOST", "localhost")
		user := envOr("VAJRA_DB_USER", "vajra")
		password := os.Getenv("VAJRA_DB_PASSWORD")
		dbname := envOr("VAJRA_DB_NAME", "vajra")
		dsn = fmt.Sprintf("host=%s port=5432 user=%s password=%s dbname=%s sslmode=disable",
			host, user, password, dbname)
	}
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to candle database: %w", err)
	}
	return db, nil
}

// GetCandlesByTime fetches candles for a symbol and interval between start
// and end, ascending by timestamp. Timestamps are stored in unix
// milliseconds.
func GetCandlesByTime(db *sqlx.DB, symbol, interval string, start, end time.Time) ([]*models.Bar, error) {
	bars := []*models.Bar{}
	query := `select timestamp, open, high, low, close, volume from candles
		where symbol = $1 and interval = $2 and timestamp >= $3 and timestamp <= $4`
	err := db.Select(&bars, query, symbol, interval, start.Unix()*1000, end.Unix()*1000)
	if err != nil {
		return nil, fmt.Errorf("candle query failed: %w", err)
	}
	return finalizeBars(bars, symbol, interval)
}

// GetCandles fetches the most recent limit candles for a symbol and
// interval, ascending by timestamp.
func GetCandles(db *sqlx.DB, symbol, interval string, limit int) ([]*models.Bar, error) {
	bars := []*models.Bar{}
	query := `select timestamp, open, high, low, close, volume from candles
		where symbol = $1 and interval = $2 order by timestamp desc limit $3`
	err := db.Select(&bars, query, symbol, interval, limit)
	if err != nil {
		return nil, fmt.Errorf("candle query failed: %w", err)
	}
	return finalizeBars(bars, symbol, interval)
}

// finalizeBars rejects empty result sets and returns rows ascending by
// timestamp regardless of the query's own ordering.
func finalizeBars(bars []*models.Bar, symbol, interval string) ([]*models.Bar, error) {
	if len(bars) == 0 {
		return nil, fmt.Errorf("no candle data for %v on the %v interval", symbol, interval)
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Timestamp < bars[j].Timestamp })
	return bars, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
