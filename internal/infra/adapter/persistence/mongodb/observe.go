package mongodb

import (
	"time"

	"news-explorer/internal/observability/metrics"
)

// observe starts timing op; call the result when the operation ends.
func observe(op string) func() {
	start := time.Now()
	return func() { metrics.RecordDBOperation(op, time.Since(start)) }
}
