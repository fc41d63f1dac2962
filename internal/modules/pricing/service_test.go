package pricing

import (
	"math"
	"testing"
)

func TestService_Estimate(t *testing.T) {
	tests := []struct {
		name       string
		distanceKm float64
		wantFare   float64
	}{
		// Base 10 < minimum 15, minimum wins.
		{name: "zero distance hits minimum", distanceKm: 0, wantFare: 15},
		// 10 + 2*5 = 20.
		{name: "two km", distanceKm: 2, wantFare: 20},
		// 10 + 1*5 = 15, exactly the minimum.
		{name: "one km equals minimum", distanceKm: 1, wantFare: 15},
		// 10 + 0.5*5 = 12.5 < 15.
		{name: "short hop below minimum", distanceKm: 0.5, wantFare: 15},
		// 10 + 10*5 = 60.
		{name: "ten km", distanceKm: 10, wantFare: 60},
	}

	svc := NewService(DefaultRate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Estimate(tt.distanceKm)
			if math.Abs(got-tt.wantFare) > 1e-9 {
				t.Errorf("Estimate(%v) = %v, want %v", tt.distanceKm, got, tt.wantFare)
			}
		})
	}
}

func TestService_Currency(t *testing.T) {
	svc := NewService(DefaultRate())
	if svc.Currency() != "EGP" {
		t.Errorf("Currency() = %q, want EGP", svc.Currency())
	}
}
