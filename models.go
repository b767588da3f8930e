package main

import "lg/totalfit-api/internal/fitcalc"

// validationErrorResponse is returned when a profile is rejected. Fields lists
// every offending input field, not just the first.
type validationErrorResponse struct {
	Error  string               `json:"error"`
	Fields []fitcalc.FieldError `json:"fields"`
}

// activityLevelOption is one entry of the activity-level select.
type activityLevelOption struct {
	Value      fitcalc.ActivityLevel `json:"value"`
	Multiplier float64               `json:"multiplier"`
}

// optionsResponse is the response shape for GET /api/options: the closed
// value sets a profile form needs to populate its inputs.
type optionsResponse struct {
	Sexes          []fitcalc.Sex         `json:"sexes"`
	ActivityLevels []activityLevelOption `json:"activity_levels"`
	FitnessGoals   []fitcalc.FitnessGoal `json:"fitness_goals"`
	UnitSystems    []fitcalc.UnitSystem  `json:"unit_systems"`
}
