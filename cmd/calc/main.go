// CLI tool to compute fitness metrics for a single profile.
// Prompts for each field on stdin and prints the result as JSON.
// Usage: go run ./cmd/calc
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"lg/totalfit-api/internal/fitcalc"
)

func main() {
	// Optional: CALC_UNITS in .env presets the unit system prompt.
	_ = godotenv.Load()

	in, parseErrs, err := readProfile(bufio.NewReader(os.Stdin), os.Stdout, os.Getenv("CALC_UNITS"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading profile: %v\n", err)
		os.Exit(1)
	}
	if err := in.ValidateWith(parseErrs); err != nil {
		exitRejected(err)
	}

	result, err := fitcalc.Calculate(in)
	if err != nil {
		exitRejected(err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\n%s\n", out)
}

func exitRejected(err error) {
	var verr *fitcalc.ValidationError
	if !errors.As(err, &verr) {
		fmt.Fprintf(os.Stderr, "Error calculating: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, "\nProfile rejected:")
	printFields(os.Stderr, verr.Fields)
	os.Exit(1)
}

func printFields(w io.Writer, fields []fitcalc.FieldError) {
	for _, f := range fields {
		fmt.Fprintf(w, "  %-14s %s\n", f.Field, f.Reason)
	}
}

// readProfile prompts for each profile field. Blank answers are left unset.
// Numeric answers that do not parse are left unset too and come back as
// field errors, so the caller can report them with the real reason.
func readProfile(r *bufio.Reader, w io.Writer, presetUnits string) (fitcalc.ProfileInput, []fitcalc.FieldError, error) {
	var in fitcalc.ProfileInput
	var parseErrs []fitcalc.FieldError

	units := presetUnits
	if units == "" {
		var err error
		if units, err = prompt(r, w, "Units (metric/imperial) [metric]: "); err != nil {
			return in, nil, err
		}
	}
	in.UnitSystem = fitcalc.UnitSystem(units)

	weightUnit, heightUnit := "kg", "cm"
	if in.UnitSystem == fitcalc.UnitImperial {
		weightUnit, heightUnit = "lbs", "inches"
	}

	ageStr, err := prompt(r, w, "Age: ")
	if err != nil {
		return in, nil, err
	}
	if ageStr != "" {
		if age, err := strconv.Atoi(ageStr); err == nil {
			in.Age = &age
		} else {
			parseErrs = append(parseErrs, fitcalc.FieldError{
				Field:  "age",
				Reason: fmt.Sprintf("must be a whole number, got %q", ageStr),
			})
		}
	}

	if in.WeightValue, err = promptFloat(r, w, fmt.Sprintf("Weight (%s): ", weightUnit), "weightValue", &parseErrs); err != nil {
		return in, nil, err
	}
	if in.HeightValue, err = promptFloat(r, w, fmt.Sprintf("Height (%s): ", heightUnit), "heightValue", &parseErrs); err != nil {
		return in, nil, err
	}

	sex, err := prompt(r, w, "Sex (male/female): ")
	if err != nil {
		return in, nil, err
	}
	in.Sex = fitcalc.Sex(sex)

	level, err := prompt(r, w, "Activity level (sedentary/lightlyActive/moderatelyActive/veryActive/extremelyActive): ")
	if err != nil {
		return in, nil, err
	}
	in.ActivityLevel = fitcalc.ActivityLevel(level)

	goal, err := prompt(r, w, "Fitness goal (muscleGain/weightLoss/maintenance) [maintenance]: ")
	if err != nil {
		return in, nil, err
	}
	in.FitnessGoal = fitcalc.FitnessGoal(goal)

	return in, parseErrs, nil
}

// prompt writes label and returns the trimmed answer. EOF is treated as a
// final (possibly empty) answer.
func prompt(r *bufio.Reader, w io.Writer, label string) (string, error) {
	fmt.Fprint(w, label)
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptFloat reads a number for field. An answer that is not a number is
// recorded in parseErrs and left unset.
func promptFloat(r *bufio.Reader, w io.Writer, label, field string, parseErrs *[]fitcalc.FieldError) (*float64, error) {
	s, err := prompt(r, w, label)
	if err != nil || s == "" {
		return nil, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*parseErrs = append(*parseErrs, fitcalc.FieldError{
			Field:  field,
			Reason: fmt.Sprintf("must be a number, got %q", s),
		})
		return nil, nil
	}
	return &v, nil
}
