// README: Pricing rate definition.
package pricing

type Rate struct {
	BaseFare float64
	PerKm    float64
	MinFare  float64
	Currency string
}

// DefaultRate is the flat city tariff: 10 EGP base, 5 EGP per km,
// 15 EGP minimum.
func DefaultRate() Rate {
	return Rate{
		BaseFare: 10,
		PerKm:    5,
		MinFare:  15,
		Currency: "EGP",
	}
}
