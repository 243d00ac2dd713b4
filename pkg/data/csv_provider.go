package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/ducanhng/crypto-advisor/pkg/types"
)

// CSVProvider implements Provider for CSV files
type CSVProvider struct {
	format CSVColumnMapping
}

// NewCSVProvider creates a new CSV provider with the default format
func NewCSVProvider() *CSVProvider {
	return &CSVProvider{
		format: DefaultCSVFormat,
	}
}

// NewCSVProviderWithFormat creates a new CSV provider with a custom format
func NewCSVProviderWithFormat(format CSVColumnMapping) *CSVProvider {
	return &CSVProvider{
		format: format,
	}
}

// GetName returns the name of the provider
func (p *CSVProvider) GetName() string {
	return "CSV Provider"
}

// LoadSeries loads a historical price series from a CSV file
func (p *CSVProvider) LoadSeries(source string) ([]types.PricePoint, error) {
	file, err := os.Open(source)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	format := p.format
	reader := csv.NewReader(file)

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, err
	}

	var series []types.PricePoint

	lineNum := 1 // header already read
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("error reading CSV at line %d: %v", lineNum, err)
		}
		lineNum++

		if len(record) < format.MinColumns {
			log.Printf("⚠️ Insufficient columns at line %d (expected %d, got %d), skipping", lineNum, format.MinColumns, len(record))
			continue
		}

		timestamp, err := parseTimestamp(record[format.TimestampCol], format.DateFormat)
		if err != nil {
			log.Printf("⚠️ Invalid timestamp '%s' at line %d, skipping: %v", record[format.TimestampCol], lineNum, err)
			continue
		}

		high, err := strconv.ParseFloat(record[format.HighCol], 64)
		if err != nil {
			log.Printf("⚠️ Invalid high price '%s' at line %d, skipping: %v", record[format.HighCol], lineNum, err)
			continue
		}

		low, err := strconv.ParseFloat(record[format.LowCol], 64)
		if err != nil {
			log.Printf("⚠️ Invalid low price '%s' at line %d, skipping: %v", record[format.LowCol], lineNum, err)
			continue
		}

		close, err := strconv.ParseFloat(record[format.CloseCol], 64)
		if err != nil {
			log.Printf("⚠️ Invalid close price '%s' at line %d, skipping: %v", record[format.CloseCol], lineNum, err)
			continue
		}

		volume, err := strconv.ParseFloat(record[format.VolumeCol], 64)
		if err != nil {
			log.Printf("⚠️ Invalid volume '%s' at line %d, skipping: %v", record[format.VolumeCol], lineNum, err)
			continue
		}

		if close <= 0 || high <= 0 || low <= 0 {
			log.Printf("⚠️ Invalid price data (negative or zero) at line %d, skipping", lineNum)
			continue
		}
		if high < low || high < close || low > close {
			log.Printf("⚠️ Inconsistent high/low at line %d, skipping", lineNum)
			continue
		}

		series = append(series, types.PricePoint{
			Timestamp: timestamp,
			Price:     close,
			High:      high,
			Low:       low,
			Volume:    volume,
		})
	}

	return series, nil
}

// parseTimestamp accepts either the configured date layout or epoch millis,
// which is what exchange downloads use.
func parseTimestamp(value, layout string) (int64, error) {
	if ms, err := strconv.ParseInt(value, 10, 64); err == nil {
		return ms, nil
	}
	t, err := time.Parse(layout, value)
	if err != nil {
		return 0, err
	}
	return t.UnixMilli(), nil
}

// ValidateSeries validates the integrity of a loaded series
func (p *CSVProvider) ValidateSeries(series []types.PricePoint) error {
	if len(series) == 0 {
		return fmt.Errorf("no data provided")
	}
	if err := types.Validate(series); err != nil {
		return err
	}
	for i, point := range series {
		if point.High != 0 && point.Low != 0 && point.High < point.Low {
			return fmt.Errorf("invalid price data at index %d: high (%.4f) cannot be less than low (%.4f)",
				i, point.High, point.Low)
		}
	}
	return nil
}
