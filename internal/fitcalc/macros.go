package fitcalc

// Energy density of each macronutrient in kcal per gram.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// weightLossEnergyFraction is the share of TDEE budgeted on a weight-loss
// plan (a 20% deficit).
const weightLossEnergyFraction = 0.8

// Macros are daily targets in grams.
type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fats    float64 `json:"fats"`
}

// Kcal returns the energy the macros add up to.
func (m Macros) Kcal() float64 {
	return m.Protein*kcalPerGramProtein + m.Carbs*kcalPerGramCarbs + m.Fats*kcalPerGramFat
}

// macroPolicy sets protein and fat per kilogram of body weight and the share
// of TDEE the whole plan may spend.
type macroPolicy struct {
	proteinPerKg   float64
	fatPerKg       float64
	energyFraction float64
}

func policyFor(goal FitnessGoal) macroPolicy {
	switch goal.Resolve() {
	case GoalMuscleGain:
		return macroPolicy{proteinPerKg: 2.2, fatPerKg: 0.8, energyFraction: 1}
	case GoalWeightLoss:
		return macroPolicy{proteinPerKg: 2.0, fatPerKg: 0.6, energyFraction: weightLossEnergyFraction}
	default:
		return macroPolicy{proteinPerKg: 1.8, fatPerKg: 0.7, energyFraction: 1}
	}
}

// PlanMacros fixes protein and fat per kilogram for the goal and gives the
// remaining calorie budget to carbohydrates. Carbs go negative when protein
// and fat alone exceed the budget; they are returned as computed.
func PlanMacros(weightKg, tdee float64, goal FitnessGoal) Macros {
	p := policyFor(goal)
	protein := weightKg * p.proteinPerKg
	fats := weightKg * p.fatPerKg
	fixedKcal := protein*kcalPerGramProtein + fats*kcalPerGramFat
	return Macros{
		Protein: protein,
		Fats:    fats,
		Carbs:   (tdee*p.energyFraction - fixedKcal) / kcalPerGramCarbs,
	}
}
