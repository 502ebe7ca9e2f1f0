package metrics

import (
	"time"
)

// RecordStorageOperation records object storage request metrics
func (m *Metrics) RecordStorageOperation(operation string, duration time.Duration, err error) {
	m.safeExecute("RecordStorageOperation", func() {
		m.StorageRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())

		if err != nil {
			m.StorageErrors.WithLabelValues(operation).Inc()
		}
	})
}
