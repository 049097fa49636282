package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// ClassRate is the fare schedule for a single vehicle class.
type ClassRate struct {
	Base       float64 `json:"base"`
	PerMinute  float64 `json:"per_minute"`
	PerKm      float64 `json:"per_km"`
	BookingFee float64 `json:"booking_fee"`
	MinFare    float64 `json:"min_fare"`
}

// RateTable maps vehicle class name to its fare schedule.
type RateTable map[string]ClassRate

func defaultRateTable() RateTable {
	return RateTable{
		"economy": {Base: 1.50, PerMinute: 0.20, PerKm: 0.90, BookingFee: 1.00, MinFare: 5.00},
		"comfort": {Base: 2.50, PerMinute: 0.35, PerKm: 1.30, BookingFee: 1.50, MinFare: 8.00},
		"premium": {Base: 4.00, PerMinute: 0.55, PerKm: 2.10, BookingFee: 2.00, MinFare: 12.00},
		"courier": {Base: 2.00, PerMinute: 0.15, PerKm: 0.80, BookingFee: 1.00, MinFare: 6.00},
	}
}

// LoadRates reads the rate table from the JSON file at path. Classes absent
// from the file fall back to built-in defaults; an empty path returns the
// defaults unchanged.
func LoadRates(path string) (RateTable, error) {
	rates := defaultRateTable()
	if path == "" {
		return rates, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rates file %q: %w", path, err)
	}

	var overrides RateTable
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parsing rates file %q: %w", path, err)
	}

	for class, rate := range overrides {
		if err := validateRate(class, rate); err != nil {
			return nil, err
		}
		rates[class] = rate
	}
	return rates, nil
}

func validateRate(class string, r ClassRate) error {
	if r.Base < 0 || r.PerMinute < 0 || r.PerKm < 0 || r.BookingFee < 0 || r.MinFare < 0 {
		return fmt.Errorf("rates for class %q: negative components are not allowed", class)
	}
	if r.MinFare == 0 {
		return fmt.Errorf("rates for class %q: min_fare is required", class)
	}
	return nil
}
