package config

// Pricing holds the rule tables the price calculator and distance resolver
// work from. It is built once at startup and injected, so tests can swap
// routes and rates without touching process-wide state.
type Pricing struct {
	// FixedRoutes maps "From-To" (ordered pair) to a flat transport price.
	FixedRoutes map[string]float64

	// DistanceMatrix maps "From-To" (ordered pair) to a known driving
	// distance in kilometers.
	DistanceMatrix map[string]int

	// Default per-km rates used when no tariff row exists for the month.
	DefaultRateUnder1000 float64
	DefaultRateOver1000  float64

	InsuranceRate float64

	// KmPerDay is the transport speed norm: distance covered per 24 hours.
	KmPerDay int

	// FallbackDistanceKm is returned when no source can resolve a distance.
	FallbackDistanceKm int
}

// RouteKey builds the ordered-pair key used by FixedRoutes and DistanceMatrix.
func RouteKey(from, to string) string {
	return from + "-" + to
}

func DefaultPricing() Pricing {
	return Pricing{
		FixedRoutes: map[string]float64{
			"Москва-Сочи":   200000,
			"Сочи-Москва":   200000,
			"Бишкек-Москва": 350000,
			"Москва-Бишкек": 350000,
		},
		DistanceMatrix: map[string]int{
			"Москва-Сочи":            1600,
			"Сочи-Москва":            1600,
			"Бишкек-Москва":          3500,
			"Москва-Бишкек":          3500,
			"Москва-Санкт-Петербург": 700,
			"Санкт-Петербург-Москва": 700,
			"Екатеринбург-Москва":    1800,
			"Москва-Екатеринбург":    1800,
		},
		DefaultRateUnder1000: 150,
		DefaultRateOver1000:  100,
		InsuranceRate:        0.10,
		KmPerDay:             1000,
		FallbackDistanceKm:   1000,
	}
}
