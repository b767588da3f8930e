package fitcalc

// CalculationResult is the full set of derived metrics for one profile.
type CalculationResult struct {
	BMI                 float64     `json:"bmi"`
	BMICategory         BMICategory `json:"bmiCategory"`
	BMR                 float64     `json:"bmr"`
	TDEE                float64     `json:"tdee"`
	Macros              Macros      `json:"macros"`
	WaterIntakeLiters   float64     `json:"waterIntakeLiters"`
	SleepRecommendation string      `json:"sleepRecommendation"`
	WalkingGoal         string      `json:"walkingGoal"`
	WorkoutSuggestions  []string    `json:"workoutSuggestions"`
}

// Calculate validates in, normalizes it and runs every calculator in a fixed
// order. It either returns a complete result or a *ValidationError; a partial
// result is never returned.
func Calculate(in ProfileInput) (CalculationResult, error) {
	if err := in.Validate(); err != nil {
		return CalculationResult{}, err
	}

	p, err := NormalizeProfile(in)
	if err != nil {
		return CalculationResult{}, err
	}

	bmi, err := ComputeBMI(p.WeightKg, p.HeightCm)
	if err != nil {
		return CalculationResult{}, err
	}
	bmr, err := ComputeBMR(p.WeightKg, p.HeightCm, p.Age, p.Sex)
	if err != nil {
		return CalculationResult{}, err
	}
	tdee, err := ComputeTDEE(bmr, p.ActivityLevel)
	if err != nil {
		return CalculationResult{}, err
	}

	return CalculationResult{
		BMI:                 bmi.Value,
		BMICategory:         bmi.Category,
		BMR:                 bmr,
		TDEE:                tdee,
		Macros:              PlanMacros(p.WeightKg, tdee, p.FitnessGoal),
		WaterIntakeLiters:   EstimateWaterIntake(p.WeightKg),
		SleepRecommendation: SleepRecommendation,
		WalkingGoal:         WalkingGoal,
		WorkoutSuggestions:  SuggestWorkouts(p.FitnessGoal),
	}, nil
}

// NormalizeProfile converts a validated input into metric units. Callers that
// skip Validate still get component-level errors for bad values.
func NormalizeProfile(in ProfileInput) (NormalizedProfile, error) {
	if in.Age == nil || in.WeightValue == nil || in.HeightValue == nil {
		return NormalizedProfile{}, in.Validate()
	}

	weightKg, err := Normalize(*in.WeightValue, KindWeight, in.UnitSystem)
	if err != nil {
		return NormalizedProfile{}, err
	}
	heightCm, err := Normalize(*in.HeightValue, KindHeight, in.UnitSystem)
	if err != nil {
		return NormalizedProfile{}, err
	}

	return NormalizedProfile{
		WeightKg:      weightKg,
		HeightCm:      heightCm,
		Age:           *in.Age,
		Sex:           in.Sex,
		ActivityLevel: in.ActivityLevel,
		FitnessGoal:   in.FitnessGoal.Resolve(),
	}, nil
}
