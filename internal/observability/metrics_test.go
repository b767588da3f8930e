package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordCalculation(t *testing.T) {
	before := testutil.ToFloat64(calculationsTotal.WithLabelValues(OutcomeDone, "weightLoss"))

	RecordCalculation(OutcomeDone, "weightLoss", 3*time.Microsecond)
	RecordCalculation(OutcomeDone, "weightLoss", 5*time.Microsecond)

	after := testutil.ToFloat64(calculationsTotal.WithLabelValues(OutcomeDone, "weightLoss"))
	assert.Equal(t, before+2, after)
}

func TestRecordRejectedFields(t *testing.T) {
	before := testutil.ToFloat64(rejectedFieldsTotal.WithLabelValues("age"))

	RecordRejectedFields([]string{"age", "sex"})

	assert.Equal(t, before+1, testutil.ToFloat64(rejectedFieldsTotal.WithLabelValues("age")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rejectedFieldsTotal.WithLabelValues("sex")))
}
