package fitcalc

// ComputeBMR estimates basal metabolic rate in kcal/day with the Mifflin-St
// Jeor equation. The two sexes differ only in the trailing constant.
func ComputeBMR(weightKg, heightCm float64, age int, sex Sex) (float64, error) {
	if age < 0 {
		return 0, invalidInput("age", "must be at least 0, got %d", age)
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch sex {
	case SexMale:
		return bmr + 5, nil
	case SexFemale:
		return bmr - 161, nil
	default:
		return 0, invalidInput("sex", "must be one of: %s, got %q", joinValues(Sexes()), sex)
	}
}
