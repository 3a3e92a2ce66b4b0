package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.RecordRegistration("type")
	m.RecordRegistration("type")
	m.RecordUnresolved("operation")
	m.RecordContextURL("navigation_source")
	m.RecordShapeViolation("SHP201")
	m.RecordRegistrationFailure("ARG002")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ElementsRegistered.WithLabelValues("type")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UnresolvedElements.WithLabelValues("operation")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ContextURLsBuilt.WithLabelValues("navigation_source")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ShapeViolations.WithLabelValues("SHP201")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RegistrationsFailed.WithLabelValues("ARG002")))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 5)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordRegistration("type")
		m.RecordRegistrationFailure("ARG001")
		m.RecordUnresolved("type")
		m.RecordContextURL("value")
		m.RecordShapeViolation("SHP202")
	})
}

func TestNewWithoutRegistry(t *testing.T) {
	m := New(nil)
	m.RecordRegistration("term")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ElementsRegistered.WithLabelValues("term")))
}
