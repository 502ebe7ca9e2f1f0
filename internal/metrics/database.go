package metrics

import (
	"database/sql"
	"strings"
	"time"
)

// UpdateDBStats publishes connection pool gauges from a sql.DBStats
// snapshot. The wait stats in sql.DBStats are cumulative since the pool
// was opened, so only the increase since the previous snapshot is added
// to the counters.
func (m *Metrics) UpdateDBStats(statsInterface interface{}) {
	m.safeExecute("UpdateDBStats", func() {
		stats, ok := statsInterface.(sql.DBStats)
		if !ok {
			return
		}
		m.DBConnectionsOpen.Set(float64(stats.OpenConnections))
		m.DBConnectionsInUse.Set(float64(stats.InUse))
		m.DBConnectionsIdle.Set(float64(stats.Idle))
		m.DBConnectionsMax.Set(float64(stats.MaxOpenConnections))

		m.poolMu.Lock()
		waitCount := stats.WaitCount - m.lastWaitCount
		waitDuration := stats.WaitDuration - m.lastWaitDuration
		m.lastWaitCount = stats.WaitCount
		m.lastWaitDuration = stats.WaitDuration
		m.poolMu.Unlock()

		// A negative delta means the pool was reopened; skip the sample
		// and resume counting from the new baseline.
		if waitCount > 0 {
			m.DBConnectionWaitTotal.Add(float64(waitCount))
		}
		if waitDuration > 0 {
			m.DBConnectionWaitDuration.Add(waitDuration.Seconds())
		}
	})
}

// RecordDBQuery records duration and errors for a single database query.
// Operation labels are lowercased so gorm callback names and hand-written
// call sites land in the same series.
func (m *Metrics) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	m.safeExecute("RecordDBQuery", func() {
		operation = strings.ToLower(operation)
		m.DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())

		if err != nil {
			m.DBQueryErrors.WithLabelValues(operation, table).Inc()
		}
	})
}
