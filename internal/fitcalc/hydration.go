package fitcalc

const litersPerKg = 0.033

// EstimateWaterIntake returns a daily water target in liters. It is not clamped.
func EstimateWaterIntake(weightKg float64) float64 {
	return weightKg * litersPerKg
}
