package booking

type PriceCalculator interface {
	CalculatePriceCents(rateCents int64, nights int) (int64, error)
}

// NightlyPriceCalculator prices a stay as nights times the nightly rate.
// Amounts are integer cents, so no rounding is involved.
type NightlyPriceCalculator struct{}

func NewNightlyPriceCalculator() *NightlyPriceCalculator {
	return &NightlyPriceCalculator{}
}

func (pc *NightlyPriceCalculator) CalculatePriceCents(rateCents int64, nights int) (int64, error) {
	if rateCents < 0 {
		return 0, ErrNegativePrice
	}
	if nights <= 0 {
		return 0, ErrInvalidDateRange
	}
	return rateCents * int64(nights), nil
}
