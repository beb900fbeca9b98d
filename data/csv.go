package data

import (
	"fmt"
	"os"
	"sort"

	"github.com/gocarina/gocsv"

	"github.com/solquant/vajra/models"
)

// LoadBarsCSV loads a price series from a csv file with
// timestamp,open,high,low,close,volume columns, ascending by timestamp.
func LoadBarsCSV(path string) ([]*models.Bar, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %v: %w", path, err)
	}
	defer file.Close()

	var bars []*models.Bar
	if err := gocsv.UnmarshalFile(file, &bars); err != nil {
		return nil, fmt.Errorf("failed to parse %v: %w", path, err)
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Timestamp < bars[j].Timestamp })
	return bars, nil
}
