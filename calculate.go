package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"lg/totalfit-api/internal/fitcalc"
	"lg/totalfit-api/internal/observability"
)

// calculate runs the metrics engine over the posted profile.
// POST /api/calculate. Returns 422 with every offending field when the
// profile is rejected; no partial result is ever returned.
func (h *Handler) calculate(c *gin.Context) {
	var in fitcalc.ProfileInput
	if err := c.ShouldBindBodyWithJSON(&in); err != nil {
		// A value of the wrong JSON type (e.g. "age": "thirty") leaves the rest
		// of the profile decoded; reject it alongside everything else wrong.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			body, _ := c.Get(gin.BodyBytesKey)
			raw, _ := body.([]byte)
			if typeErrs := jsonTypeErrors(raw); len(typeErrs) > 0 {
				h.reject(c, in, in.ValidateWith(typeErrs), 0)
				return
			}
		}
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	start := time.Now()
	result, err := fitcalc.Calculate(in)
	elapsed := time.Since(start)

	if err != nil {
		h.reject(c, in, err, elapsed)
		return
	}

	observability.RecordCalculation(observability.OutcomeDone, string(in.FitnessGoal.Resolve()), elapsed)
	c.JSON(http.StatusOK, result)
}

// reject answers a refused profile with 422 and its field list.
func (h *Handler) reject(c *gin.Context, in fitcalc.ProfileInput, err error, elapsed time.Duration) {
	var verr *fitcalc.ValidationError
	if !errors.As(err, &verr) {
		log.Printf("[calculate] request %s: unexpected error: %v", c.GetString("request_id"), err)
		apiError(c, http.StatusInternalServerError, "calculation failed")
		return
	}
	log.Printf("[calculate] request %s rejected: %v", c.GetString("request_id"), verr)
	observability.RecordCalculation(observability.OutcomeRejected, string(in.FitnessGoal.Resolve()), elapsed)
	observability.RecordRejectedFields(verr.FieldNames())
	c.JSON(http.StatusUnprocessableEntity, validationErrorResponse{
		Error:  "validation failed",
		Fields: verr.Fields,
	})
}

// jsonTypeErrors decodes each profile field of body on its own and reports
// every one whose JSON type does not fit. encoding/json only returns the
// first mismatch, so a single decode is not enough.
func jsonTypeErrors(body []byte) []fitcalc.FieldError {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil
	}

	var out []fitcalc.FieldError
	t := reflect.TypeOf(fitcalc.ProfileInput{})
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		value, ok := raw[name]
		if !ok {
			continue
		}
		var typeErr *json.UnmarshalTypeError
		if err := json.Unmarshal(value, reflect.New(sf.Type).Interface()); errors.As(err, &typeErr) {
			out = append(out, fitcalc.FieldError{
				Field:  name,
				Reason: "wrong type: got JSON " + typeErr.Value,
			})
		}
	}
	return out
}

// getOptions lists the accepted enum values and the activity multipliers.
// GET /api/options.
func (h *Handler) getOptions(c *gin.Context) {
	levels := fitcalc.ActivityLevels()
	opts := make([]activityLevelOption, 0, len(levels))
	for _, level := range levels {
		mult, _ := level.Multiplier()
		opts = append(opts, activityLevelOption{Value: level, Multiplier: mult})
	}

	c.JSON(http.StatusOK, optionsResponse{
		Sexes:          fitcalc.Sexes(),
		ActivityLevels: opts,
		FitnessGoals:   fitcalc.FitnessGoals(),
		UnitSystems:    fitcalc.UnitSystems(),
	})
}
