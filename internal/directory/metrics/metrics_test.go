package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.IncrementPCAdded()
	m.IncrementPCAdded()
	assert.Equal(t, 2.0, testutil.ToFloat64(m.PCsAdded))

	m.IncrementEmailDelivered()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EmailsDelivered))

	m.IncrementDeliveryFailure("unavailable")
	m.IncrementDeliveryFailure("unavailable")
	m.IncrementDeliveryFailure("email_not_found")
	assert.Equal(t, 2.0, testutil.ToFloat64(m.DeliveryFailures.WithLabelValues("unavailable")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DeliveryFailures.WithLabelValues("email_not_found")))

	m.IncrementDuplicateRejected()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DuplicateRejected))
}
