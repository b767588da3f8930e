package fitcalc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// makeProfile returns a fully populated metric profile. Tests nil out or
// overwrite individual fields to exercise validation.
func makeProfile(age int, weight, height float64, sex Sex, level ActivityLevel, goal FitnessGoal) ProfileInput {
	return ProfileInput{
		Age:           &age,
		WeightValue:   &weight,
		HeightValue:   &height,
		Sex:           sex,
		ActivityLevel: level,
		FitnessGoal:   goal,
		UnitSystem:    UnitMetric,
	}
}

/* ─── Worked example ─────────────────────────────────────────────────── */

// TestCalculate_MaintenanceExample: 70kg, 175cm, 30 year old male,
// moderately active, maintenance.
//
// bmr  = 700 + 1093.75 - 150 + 5 = 1648.75
// tdee = 1648.75 * 1.55 = 2555.5625
// carbs = (2555.5625 - (126*4 + 49*9)) / 4 = 402.640625
func TestCalculate_MaintenanceExample(t *testing.T) {
	in := makeProfile(30, 70, 175, SexMale, ActivityModeratelyActive, GoalMaintenance)

	got, err := Calculate(in)
	require.NoError(t, err)

	assert.InDelta(t, 22.857142857, got.BMI, 1e-9)
	assert.Equal(t, BMINormal, got.BMICategory)
	assert.Equal(t, 1648.75, got.BMR)
	assert.InDelta(t, 2555.5625, got.TDEE, 1e-9)
	assert.InDelta(t, 126, got.Macros.Protein, 1e-9)
	assert.InDelta(t, 49, got.Macros.Fats, 1e-9)
	assert.InDelta(t, 402.640625, got.Macros.Carbs, 1e-9)
	assert.InDelta(t, 2.31, got.WaterIntakeLiters, 1e-9)
	assert.Equal(t, SleepRecommendation, got.SleepRecommendation)
	assert.Equal(t, WalkingGoal, got.WalkingGoal)
	assert.Equal(t, SuggestWorkouts(GoalMaintenance), got.WorkoutSuggestions)
}

func TestCalculate_Imperial(t *testing.T) {
	in := makeProfile(40, 160, 70, SexFemale, ActivitySedentary, GoalWeightLoss)
	in.UnitSystem = UnitImperial

	got, err := Calculate(in)
	require.NoError(t, err)

	weightKg := 160 * 0.453592
	heightCm := 70 * 2.54
	wantBMR := 10*weightKg + 6.25*heightCm - 5*40 - 161
	assert.InDelta(t, wantBMR, got.BMR, 1e-9)
	assert.InDelta(t, wantBMR*1.2, got.TDEE, 1e-9)
	assert.InDelta(t, weightKg*0.033, got.WaterIntakeLiters, 1e-9)
	assert.InDelta(t, 0.8*got.TDEE, got.Macros.Kcal(), 1e-6)
}

// TestCalculate_IgnoresForwardCompatFields verifies timeframeWeeks and
// targetWeight have no effect on the result.
func TestCalculate_IgnoresForwardCompatFields(t *testing.T) {
	base := makeProfile(25, 90, 185, SexMale, ActivityVeryActive, GoalMuscleGain)
	want, err := Calculate(base)
	require.NoError(t, err)

	weeks, target := 12.0, 80.0
	base.TimeframeWeeks = &weeks
	base.TargetWeight = &target
	got, err := Calculate(base)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

/* ─── Rejection ──────────────────────────────────────────────────────── */

func TestCalculate_MissingAge(t *testing.T) {
	in := makeProfile(30, 70, 175, SexMale, ActivitySedentary, GoalMaintenance)
	in.Age = nil

	got, err := Calculate(in)
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, CalculationResult{}, got)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, StageValidating, verr.Stage)
	assert.Equal(t, []string{"age"}, verr.FieldNames())
}

// TestCalculate_ListsEveryField verifies the rejection names all offending
// fields rather than stopping at the first.
func TestCalculate_ListsEveryField(t *testing.T) {
	_, err := Calculate(ProfileInput{})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t,
		[]string{"age", "weightValue", "heightValue", "sex", "activityLevel"},
		verr.FieldNames())
}

func TestCalculate_InvalidValues(t *testing.T) {
	cases := []struct {
		name   string
		mutFn  func(in *ProfileInput)
		fields []string
	}{
		{"negative age", func(in *ProfileInput) { age := -1; in.Age = &age }, []string{"age"}},
		{"zero weight", func(in *ProfileInput) { w := 0.0; in.WeightValue = &w }, []string{"weightValue"}},
		{"negative height", func(in *ProfileInput) { h := -170.0; in.HeightValue = &h }, []string{"heightValue"}},
		{"NaN weight", func(in *ProfileInput) { w := math.NaN(); in.WeightValue = &w }, []string{"weightValue"}},
		{"infinite height", func(in *ProfileInput) { h := math.Inf(1); in.HeightValue = &h }, []string{"heightValue"}},
		{"unknown sex", func(in *ProfileInput) { in.Sex = "other" }, []string{"sex"}},
		{"unknown activity level", func(in *ProfileInput) { in.ActivityLevel = "moderate" }, []string{"activityLevel"}},
		{"unknown unit system", func(in *ProfileInput) { in.UnitSystem = "stone" }, []string{"unitSystem"}},
		{"several at once", func(in *ProfileInput) {
			in.Sex = "x"
			in.ActivityLevel = ""
			in.WeightValue = nil
		}, []string{"weightValue", "sex", "activityLevel"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := makeProfile(30, 70, 175, SexMale, ActivitySedentary, GoalMaintenance)
			tc.mutFn(&in)

			got, err := Calculate(in)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.fields, verr.FieldNames())
			assert.Equal(t, CalculationResult{}, got)
		})
	}
}

func TestCalculate_EmptyUnitSystemIsMetric(t *testing.T) {
	in := makeProfile(30, 70, 175, SexMale, ActivitySedentary, GoalMaintenance)
	want, err := Calculate(in)
	require.NoError(t, err)

	in.UnitSystem = ""
	got, err := Calculate(in)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

/* ─── Properties ─────────────────────────────────────────────────────── */

func drawProfile(t *rapid.T) ProfileInput {
	in := makeProfile(
		rapid.IntRange(0, 110).Draw(t, "age"),
		rapid.Float64Range(20, 300).Draw(t, "weight"),
		rapid.Float64Range(50, 250).Draw(t, "height"),
		rapid.SampledFrom(Sexes()).Draw(t, "sex"),
		rapid.SampledFrom(ActivityLevels()).Draw(t, "activityLevel"),
		rapid.SampledFrom(FitnessGoals()).Draw(t, "goal"),
	)
	in.UnitSystem = rapid.SampledFrom(UnitSystems()).Draw(t, "unitSystem")
	return in
}

func TestCalculate_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := drawProfile(t)

		first, err := Calculate(in)
		require.NoError(t, err)
		second, err := Calculate(in)
		require.NoError(t, err)

		assert.Equal(t, math.Float64bits(first.BMI), math.Float64bits(second.BMI))
		assert.Equal(t, math.Float64bits(first.TDEE), math.Float64bits(second.TDEE))
		assert.Equal(t, math.Float64bits(first.Macros.Carbs), math.Float64bits(second.Macros.Carbs))
		assert.Equal(t, first, second)
	})
}

func TestCalculate_Invariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := drawProfile(t)

		got, err := Calculate(in)
		require.NoError(t, err)

		p, err := NormalizeProfile(in)
		require.NoError(t, err)
		mult, _ := in.ActivityLevel.Multiplier()

		assert.Greater(t, got.BMI, 0.0)
		assert.Equal(t, CategorizeBMI(got.BMI), got.BMICategory)
		assert.Equal(t, got.BMR*mult, got.TDEE)
		assert.Equal(t, p.WeightKg*0.033, got.WaterIntakeLiters)
		assert.Len(t, got.WorkoutSuggestions, 4)
	})
}
