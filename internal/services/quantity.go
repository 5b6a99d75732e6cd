package services

import "math"

// effectiveQuantity derives a line's quantity from its raw inputs.
//
// An explicitly given quantity always wins, regardless of the dimensional
// fields. Otherwise the quantity is no_of_units × length × width × thickness
// where no_of_units defaults to 1 and each absent dimension contributes a
// factor of 1, so an omitted dimension never zeroes the line.
func effectiveQuantity(noOfUnits, length, width, thickness, quantity *float64) float64 {
	if quantity != nil {
		return *quantity
	}

	qty := 1.0
	if noOfUnits != nil {
		qty = *noOfUnits
	}
	for _, dim := range []*float64{length, width, thickness} {
		if dim != nil {
			qty *= *dim
		}
	}
	return qty
}

// roundAmount rounds a monetary amount to 2 decimal places.
func roundAmount(v float64) float64 {
	return math.Round(v*100) / 100
}
