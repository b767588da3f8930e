package fitcalc

// BMICategory is the qualitative band a BMI value falls into.
type BMICategory string

const (
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal weight"
	BMIOverweight  BMICategory = "Overweight"
	BMIObese       BMICategory = "Obese"
)

// BMI is a body-mass index together with its category.
type BMI struct {
	Value    float64
	Category BMICategory
}

// ComputeBMI returns weightKg / heightM². Heights at or below zero are rejected.
func ComputeBMI(weightKg, heightCm float64) (BMI, error) {
	if heightCm <= 0 {
		return BMI{}, invalidInput("heightCm", "must be greater than 0, got %v", heightCm)
	}
	if weightKg <= 0 {
		return BMI{}, invalidInput("weightKg", "must be greater than 0, got %v", weightKg)
	}
	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)
	return BMI{Value: bmi, Category: CategorizeBMI(bmi)}, nil
}

// CategorizeBMI applies half-open bands with an inclusive lower bound, so 18.5
// is Normal weight, 25 is Overweight and 30 is Obese.
func CategorizeBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}
