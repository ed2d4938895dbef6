package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordProgramGenerated(t *testing.T) {
	before := testutil.ToFloat64(programsGenerated.WithLabelValues("weight_loss", "beginner"))
	RecordProgramGenerated("weight_loss", "beginner", 3*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(programsGenerated.WithLabelValues("weight_loss", "beginner")))
}

func TestRecordDelivery(t *testing.T) {
	before := testutil.ToFloat64(deliveries.WithLabelValues("failed", "rest"))
	RecordDelivery("failed", "rest")
	RecordDelivery("failed", "rest")
	assert.Equal(t, before+2, testutil.ToFloat64(deliveries.WithLabelValues("failed", "rest")))
}

func TestRecordProgramFailed(t *testing.T) {
	before := testutil.ToFloat64(programsFailed.WithLabelValues("invalid_profile"))
	RecordProgramFailed("invalid_profile")
	assert.Equal(t, before+1, testutil.ToFloat64(programsFailed.WithLabelValues("invalid_profile")))
}

func TestObserveHTTP(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("POST", "/api/v1/users", "201"))
	ObserveHTTP("POST", "/api/v1/users", 201, 12*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("POST", "/api/v1/users", "201")))
}
