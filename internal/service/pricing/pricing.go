package pricing

import (
	"math"
	"time"

	"marketplace/internal/pkg/config"
)

const avgSpeedKmh = 25.0

// SurgeInputs is the demand/supply snapshot the multiplier is computed from.
type SurgeInputs struct {
	ActiveJobs         int
	AvailableProviders int
	At                 time.Time
}

type Estimate struct {
	Class       string
	Fare        float64
	Fares       map[string]float64
	DurationMin int
	Surge       float64
}

type Service struct {
	rates config.RateTable
}

func New(rates config.RateTable) *Service {
	return &Service{rates: rates}
}

// Estimate computes the fare for the requested class plus quotes for every
// other class at the same surge. Same inputs always produce the same output.
func (s *Service) Estimate(distanceKm float64, class string, in SurgeInputs) (*Estimate, error) {
	if distanceKm <= 0 {
		return nil, ErrInvalidDistance
	}
	if _, ok := s.rates[class]; !ok {
		return nil, ErrUnknownClass
	}

	durationMin := DurationMinutes(distanceKm)
	surge := Surge(in)

	fares := make(map[string]float64, len(s.rates))
	for c, r := range s.rates {
		fares[c] = classFare(r, distanceKm, durationMin, surge)
	}

	return &Estimate{
		Class:       class,
		Fare:        fares[class],
		Fares:       fares,
		DurationMin: durationMin,
		Surge:       surge,
	}, nil
}

// SuggestedRange brackets a fare for bidding guidance. Advisory only, bids
// outside the range are still valid.
func SuggestedRange(fare float64) (min, max float64) {
	min = round2(math.Max(0.7*fare, fare-5))
	max = round2(1.3 * fare)
	return min, max
}

// DurationMinutes estimates ride time from distance at city average speed.
func DurationMinutes(distanceKm float64) int {
	return int(math.Round(distanceKm / avgSpeedKmh * 60))
}

// Surge maps the demand-to-supply ratio onto discrete multiplier tiers.
// Zero available providers is treated as scarcity with a fixed multiplier.
// A floor applies during morning and evening peak hours regardless of ratio.
func Surge(in SurgeInputs) float64 {
	var m float64
	switch {
	case in.AvailableProviders == 0:
		m = 2.0
	default:
		ratio := float64(in.ActiveJobs) / float64(in.AvailableProviders)
		switch {
		case ratio >= 3.0:
			m = 2.5
		case ratio >= 2.0:
			m = 2.0
		case ratio >= 1.5:
			m = 1.5
		case ratio > 1.0:
			m = 1.3
		default:
			m = 1.0
		}
	}

	if isPeakHour(in.At) && m < 1.2 {
		m = 1.2
	}
	return m
}

func isPeakHour(at time.Time) bool {
	h := at.Hour()
	return (h >= 7 && h < 9) || (h >= 17 && h < 19)
}

func classFare(r config.ClassRate, distanceKm float64, durationMin int, surge float64) float64 {
	base := r.Base + r.PerMinute*float64(durationMin) + r.PerKm*distanceKm + r.BookingFee
	if base < r.MinFare {
		base = r.MinFare
	}
	return round2(base * surge)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
