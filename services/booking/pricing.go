package booking

import "equibook/models"

// PriceForDuration returns the currency-labelled price for a lesson
// duration. The price is fixed at booking time and never recalculated.
func PriceForDuration(duration string) (string, bool) {
	price, ok := models.DurationPrices[duration]
	return price, ok
}
