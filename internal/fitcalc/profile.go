// Package fitcalc derives body-composition indices, energy expenditure, a
// macronutrient split, a hydration target and fixed lifestyle advice from a
// single user profile. Every exported function is pure and safe for
// concurrent use.
package fitcalc

import (
	"errors"
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Sex selects the Mifflin-St Jeor constant.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Valid reports whether s is one of the accepted sexes.
func (s Sex) Valid() bool {
	switch s {
	case SexMale, SexFemale:
		return true
	}
	return false
}

// Sexes lists the accepted Sex values.
func Sexes() []Sex { return []Sex{SexMale, SexFemale} }

// FitnessGoal picks the macro policy and workout advice. Anything outside the
// three known goals is treated as maintenance.
type FitnessGoal string

const (
	GoalMuscleGain  FitnessGoal = "muscleGain"
	GoalWeightLoss  FitnessGoal = "weightLoss"
	GoalMaintenance FitnessGoal = "maintenance"
)

// Resolve maps the goal onto the closed set, falling back to maintenance.
func (g FitnessGoal) Resolve() FitnessGoal {
	switch g {
	case GoalMuscleGain, GoalWeightLoss:
		return g
	default:
		return GoalMaintenance
	}
}

// FitnessGoals lists the known goals.
func FitnessGoals() []FitnessGoal {
	return []FitnessGoal{GoalMuscleGain, GoalWeightLoss, GoalMaintenance}
}

// UnitSystem is the unit system the caller entered weight and height in.
// The empty value means metric.
type UnitSystem string

const (
	UnitMetric   UnitSystem = "metric"
	UnitImperial UnitSystem = "imperial"
)

// Valid reports whether u is an accepted unit system. The empty value is not;
// callers treat it as metric before asking.
func (u UnitSystem) Valid() bool {
	switch u {
	case UnitMetric, UnitImperial:
		return true
	}
	return false
}

// UnitSystems lists the accepted unit systems.
func UnitSystems() []UnitSystem { return []UnitSystem{UnitMetric, UnitImperial} }

// Stage is a step of a single Calculate call.
type Stage string

const (
	StageCollecting Stage = "collecting"
	StageValidating Stage = "validating"
	StageComputing  Stage = "computing"
	StageDone       Stage = "done"
	StageRejected   Stage = "rejected"
)

// ProfileInput is the untrusted record supplied by the caller. Pointer fields
// distinguish "not provided" from zero.
//
// TimeframeWeeks and TargetWeight are accepted for forward compatibility and
// are not used by any calculation.
type ProfileInput struct {
	Age            *int          `json:"age"            validate:"required,gte=0"`
	WeightValue    *float64      `json:"weightValue"    validate:"required,finite,gt=0"`
	HeightValue    *float64      `json:"heightValue"    validate:"required,finite,gt=0"`
	Sex            Sex           `json:"sex"            validate:"required,sex"`
	ActivityLevel  ActivityLevel `json:"activityLevel"  validate:"required,activity_level"`
	FitnessGoal    FitnessGoal   `json:"fitnessGoal"`
	UnitSystem     UnitSystem    `json:"unitSystem"     validate:"omitempty,unit_system"`
	TimeframeWeeks *float64      `json:"timeframeWeeks,omitempty"`
	TargetWeight   *float64      `json:"targetWeight,omitempty"`
}

// NormalizedProfile is ProfileInput after validation and unit conversion.
type NormalizedProfile struct {
	WeightKg      float64
	HeightCm      float64
	Age           int
	Sex           Sex
	ActivityLevel ActivityLevel
	FitnessGoal   FitnessGoal
}

var validate = newValidator()

// newValidator registers the enum tags against the types' own Valid methods so
// the enum tables stay the single source of truth, and reports fields by their
// JSON name.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	rules := map[string]validator.Func{
		"finite": func(fl validator.FieldLevel) bool {
			f := fl.Field().Float()
			return !math.IsNaN(f) && !math.IsInf(f, 0)
		},
		"sex": func(fl validator.FieldLevel) bool {
			return Sex(fl.Field().String()).Valid()
		},
		"activity_level": func(fl validator.FieldLevel) bool {
			return ActivityLevel(fl.Field().String()).Valid()
		},
		"unit_system": func(fl validator.FieldLevel) bool {
			return UnitSystem(fl.Field().String()).Valid()
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	return v
}

// Validate checks in and returns a *ValidationError naming every offending
// field, or nil.
func (in ProfileInput) Validate() error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{
			Stage:  StageValidating,
			Fields: []FieldError{{Field: "profile", Reason: err.Error()}},
		}
	}
	verr := &ValidationError{Stage: StageValidating}
	for _, fe := range fieldErrs {
		verr.Fields = append(verr.Fields, FieldError{Field: fe.Field(), Reason: reasonFor(fe)})
	}
	return verr
}

// ValidateWith is Validate for a profile that was only partly decoded.
// decodeErrs names fields whose raw value could not be read at all (a JSON
// string where a number belongs, "30.5" for age); their reasons replace
// whatever the validator would say about the placeholder left behind. The
// merged list keeps ProfileInput field order.
func (in ProfileInput) ValidateWith(decodeErrs []FieldError) error {
	if len(decodeErrs) == 0 {
		return in.Validate()
	}

	undecoded := make(map[string]bool, len(decodeErrs))
	verr := &ValidationError{Stage: StageValidating}
	for _, fe := range decodeErrs {
		undecoded[fe.Field] = true
		verr.Fields = append(verr.Fields, fe)
	}

	var own *ValidationError
	if errors.As(in.Validate(), &own) {
		for _, fe := range own.Fields {
			if !undecoded[fe.Field] {
				verr.Fields = append(verr.Fields, fe)
			}
		}
	}

	sort.SliceStable(verr.Fields, func(i, j int) bool {
		return fieldRank(verr.Fields[i].Field) < fieldRank(verr.Fields[j].Field)
	})
	return verr
}

var profileFieldOrder = jsonFieldOrder(reflect.TypeOf(ProfileInput{}))

func jsonFieldOrder(t reflect.Type) map[string]int {
	order := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		order[name] = i
	}
	return order
}

// fieldRank sorts names that are not ProfileInput fields last.
func fieldRank(field string) int {
	if i, ok := profileFieldOrder[field]; ok {
		return i
	}
	return len(profileFieldOrder)
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "finite":
		return "must be a finite number"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "sex":
		return "must be one of: " + joinValues(Sexes())
	case "activity_level":
		return "must be one of: " + joinValues(ActivityLevels())
	case "unit_system":
		return "must be one of: " + joinValues(UnitSystems())
	default:
		return "failed " + fe.Tag() + " check"
	}
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
