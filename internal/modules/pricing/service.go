// README: Pricing service computes fare estimates from trip distance.
package pricing

type Service struct {
	rate Rate
}

func NewService(rate Rate) *Service {
	return &Service{rate: rate}
}

// Estimate returns the fare for a trip of the given length, never below
// the minimum fare.
func (s *Service) Estimate(distanceKm float64) float64 {
	fare := s.rate.BaseFare + distanceKm*s.rate.PerKm
	if fare < s.rate.MinFare {
		return s.rate.MinFare
	}
	return fare
}

func (s *Service) Currency() string {
	return s.rate.Currency
}
