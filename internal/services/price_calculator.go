package services

import (
	"math"
	"time"

	"cartrans-backend/internal/config"
	"cartrans-backend/internal/domain/models"
	"cartrans-backend/internal/utils"
)

// Quote is the calculator output: the full price/duration breakdown for a
// transport between two cities starting on a given date.
type Quote struct {
	DistanceKm           int     `json:"distance"`
	AppliedTariff        float64 `json:"appliedTariff"`
	TransportPrice       float64 `json:"transportPrice"`
	InsurancePrice       float64 `json:"insurancePrice"`
	TotalPrice           float64 `json:"totalPrice"`
	DurationHours        int     `json:"durationHours"`
	DurationDays         int     `json:"durationDays"`
	EstimatedArrivalDate string  `json:"estimatedArrivalDate"`
	IsFixedRoute         bool    `json:"isFixedRoute"`
}

// PriceCalculator computes a Quote from the pricing rule tables. Distance and
// tariff lookups are injected so tests can run without a DB or network.
type PriceCalculator struct {
	Cfg config.Pricing

	// Distance resolves a city pair to kilometers (DistanceResolver.Resolve).
	Distance func(cityFrom, cityTo string) int

	// TariffByMonth loads the tariff row for a month; ok=false means no row
	// exists and the default rates apply.
	TariffByMonth func(month int) (models.Tariff, bool, error)
}

// Calculate prices a transport from cityFrom to cityTo starting on startDate.
// Fixed routes use the flat price from the rule table with rate 0 and a
// nominal distance; metered routes multiply resolved distance by the month's
// per-km rate. Insurance and duration are computed the same way for both.
func (s PriceCalculator) Calculate(cityFrom, cityTo string, startDate time.Time) (Quote, error) {
	if fixedPrice, ok := s.Cfg.FixedRoutes[config.RouteKey(cityFrom, cityTo)]; ok {
		return s.finishQuote(Quote{
			DistanceKm:     s.Cfg.FallbackDistanceKm,
			AppliedTariff:  0,
			TransportPrice: fixedPrice,
			IsFixedRoute:   true,
		}, startDate), nil
	}

	distance := s.Distance(cityFrom, cityTo)

	rate, err := s.rateFor(int(startDate.Month()), distance)
	if err != nil {
		return Quote{}, err
	}

	return s.finishQuote(Quote{
		DistanceKm:     distance,
		AppliedTariff:  rate,
		TransportPrice: utils.Round2(float64(distance) * rate),
		IsFixedRoute:   false,
	}, startDate), nil
}

func (s PriceCalculator) rateFor(month, distanceKm int) (float64, error) {
	tariff, ok, err := s.TariffByMonth(month)
	if err != nil {
		return 0, err
	}
	if distanceKm <= 1000 {
		if ok {
			return tariff.PricePerKmUnder1000, nil
		}
		return s.Cfg.DefaultRateUnder1000, nil
	}
	if ok {
		return tariff.PricePerKmOver1000, nil
	}
	return s.Cfg.DefaultRateOver1000, nil
}

// finishQuote fills the branch-independent tail: insurance, total, duration
// and estimated arrival (calendar-day addition).
func (s PriceCalculator) finishQuote(q Quote, startDate time.Time) Quote {
	q.InsurancePrice = utils.Round2(q.TransportPrice * s.Cfg.InsuranceRate)
	q.TotalPrice = utils.Round2(q.TransportPrice + q.InsurancePrice)

	q.DurationHours = int(math.Ceil(float64(q.DistanceKm) / float64(s.Cfg.KmPerDay) * 24))
	q.DurationDays = int(math.Ceil(float64(q.DurationHours) / 24))
	q.EstimatedArrivalDate = utils.FormatDate(startDate.AddDate(0, 0, q.DurationDays))

	return q
}
