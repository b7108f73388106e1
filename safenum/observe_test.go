//go:build unit

package safenum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestInitMetrics(t *testing.T) {
	require.Error(t, InitMetrics(nil))

	meter := noop.NewMeterProvider().Meter("test")

	require.NoError(t, InitMetrics(meter))
	defer ResetMetrics()

	var reporter Logging

	err := reporter.OverflowError("counted")
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestRecordViolation_Unconfigured(t *testing.T) {
	var reporter Logging

	err := reporter.DomainError("division by zero")

	assert.ErrorIs(t, err, ErrDivisionByZero, "reporting works with no logger or meter configured")
}
