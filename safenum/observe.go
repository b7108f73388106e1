package safenum

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/LerianStudio/lib-safenum/safenum/log"
)

// violationMetricName is the counter incremented once per reported violation.
const violationMetricName = "safenum_violations_total"

var (
	observeMu        sync.RWMutex
	violationLogger  log.Logger
	violationCounter metric.Int64Counter
)

// SetLogger configures the logger used by the Logging report policy.
// Passing nil restores the no-op default.
func SetLogger(logger log.Logger) {
	observeMu.Lock()
	defer observeMu.Unlock()

	violationLogger = logger
}

// InitMetrics configures the meter used to count violations reported through
// the Logging policy. This should be called once during application startup
// after telemetry is initialized.
func InitMetrics(meter metric.Meter) error {
	if meter == nil {
		return fmt.Errorf("metric meter cannot be nil")
	}

	counter, err := meter.Int64Counter(
		violationMetricName,
		metric.WithUnit("1"),
		metric.WithDescription("Total number of reported safe-integer violations"),
	)
	if err != nil {
		return fmt.Errorf("create violation counter: %w", err)
	}

	observeMu.Lock()
	defer observeMu.Unlock()

	violationCounter = counter

	return nil
}

// ResetMetrics clears the configured meter (useful for tests).
func ResetMetrics() {
	observeMu.Lock()
	defer observeMu.Unlock()

	violationCounter = nil
}

func recordViolation(kind Kind, msg string) error {
	observeMu.RLock()
	logger := violationLogger
	counter := violationCounter
	observeMu.RUnlock()

	ctx := context.Background()

	if logger != nil {
		logger.Log(ctx, log.LevelError, msg, log.String("kind", kind.String()))
	}

	if counter == nil {
		counter = noopCounter()
	}

	counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind.String()),
	))

	return &Violation{Kind: kind, Message: msg}
}

func noopCounter() metric.Int64Counter {
	counter, _ := noop.NewMeterProvider().Meter("safenum").Int64Counter(violationMetricName)
	return counter
}
