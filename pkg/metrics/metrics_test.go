package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveDecision(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry(), "availability")

	m.ObserveDecision("booking", "admissible")
	m.ObserveDecision("booking", "admissible")
	m.ObserveDecision("booking", "BLOCKED_BY_TIMEOFF")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.AvailabilityDecisions.WithLabelValues("availability", "booking", "admissible")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AvailabilityDecisions.WithLabelValues("availability", "booking", "BLOCKED_BY_TIMEOFF")))
}

func TestNewWithRegisterer_Isolated(t *testing.T) {
	assert.NotPanics(t, func() {
		NewWithRegisterer(prometheus.NewRegistry(), "a")
		NewWithRegisterer(prometheus.NewRegistry(), "a")
	})
}
