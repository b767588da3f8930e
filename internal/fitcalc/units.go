package fitcalc

import "math"

// MeasurementKind says which conversion factor applies to a value.
type MeasurementKind string

const (
	KindWeight MeasurementKind = "weight"
	KindHeight MeasurementKind = "height"
)

const (
	kgPerPound = 0.453592
	cmPerInch  = 2.54
)

// Normalize converts a weight or height entered in system into kilograms or
// centimeters. Metric values pass through unchanged; nothing is rounded.
func Normalize(value float64, kind MeasurementKind, system UnitSystem) (float64, error) {
	if err := checkMeasurement(value, kind); err != nil {
		return 0, err
	}
	factor, err := imperialFactor(kind, system)
	if err != nil {
		return 0, err
	}
	return value * factor, nil
}

// Denormalize is the inverse of Normalize: it converts kilograms or
// centimeters back into system's units.
func Denormalize(value float64, kind MeasurementKind, system UnitSystem) (float64, error) {
	if err := checkMeasurement(value, kind); err != nil {
		return 0, err
	}
	factor, err := imperialFactor(kind, system)
	if err != nil {
		return 0, err
	}
	return value / factor, nil
}

func checkMeasurement(value float64, kind MeasurementKind) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return invalidInput(string(kind), "must be a finite positive number, got %v", value)
	}
	return nil
}

// imperialFactor returns 1 for metric input.
func imperialFactor(kind MeasurementKind, system UnitSystem) (float64, error) {
	switch system {
	case UnitMetric, "":
		return 1, nil
	case UnitImperial:
		switch kind {
		case KindWeight:
			return kgPerPound, nil
		case KindHeight:
			return cmPerInch, nil
		}
		return 0, invalidInput("kind", "unknown measurement kind %q", kind)
	}
	return 0, invalidInput("unitSystem", "unknown unit system %q", system)
}
