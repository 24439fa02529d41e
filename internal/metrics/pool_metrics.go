package metrics

import (
	"sync"
	"time"

	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PoolStats is a snapshot of the connection pool counters
type PoolStats struct {
	AcquiredConns     int32
	IdleConns         int32
	TotalConns        int32
	MaxConns          int32
	AcquireCount      int64
	EmptyAcquireCount int64
}

// PoolMetrics интерфейс для метрик пула соединений
type PoolMetrics interface {
	Record()
	StartRecording(interval time.Duration)
	Stop()
}

type poolMetrics struct {
	log      *logger.Logger
	stats    func() PoolStats
	acquired prometheus.Gauge
	idle     prometheus.Gauge
	total    prometheus.Gauge
	max      prometheus.Gauge
	acquires prometheus.Gauge
	waits    prometheus.Gauge
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewPoolMetrics создает метрики пула, читающие счетчики через stats
func NewPoolMetrics(registry prometheus.Registerer, stats func() PoolStats, log *logger.Logger) PoolMetrics {
	gauge := func(name, help string) prometheus.Gauge {
		return promauto.With(registry).NewGauge(prometheus.GaugeOpts{Name: name, Help: help})
	}

	return &poolMetrics{
		log:      log,
		stats:    stats,
		acquired: gauge("db_pool_acquired_conns", "Connections currently checked out of the pool"),
		idle:     gauge("db_pool_idle_conns", "Idle connections held by the pool"),
		total:    gauge("db_pool_total_conns", "Total connections held by the pool"),
		max:      gauge("db_pool_max_conns", "Maximum size of the pool"),
		acquires: gauge("db_pool_acquire_count", "Cumulative successful acquires from the pool"),
		waits:    gauge("db_pool_empty_acquire_count", "Cumulative acquires that waited for a connection"),
		stopCh:   make(chan struct{}),
	}
}

// Record записывает текущее состояние пула
func (m *poolMetrics) Record() {
	s := m.stats()
	m.acquired.Set(float64(s.AcquiredConns))
	m.idle.Set(float64(s.IdleConns))
	m.total.Set(float64(s.TotalConns))
	m.max.Set(float64(s.MaxConns))
	m.acquires.Set(float64(s.AcquireCount))
	m.waits.Set(float64(s.EmptyAcquireCount))
}

// StartRecording начинает запись метрик с заданным интервалом
func (m *poolMetrics) StartRecording(interval time.Duration) {
	m.Record()
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				m.Record()
			case <-m.stopCh:
				return
			}
		}
	}()
	m.log.Info("Pool metrics recording started with interval %s", interval)
}

// Stop останавливает запись метрик
func (m *poolMetrics) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopCh)
		m.log.Info("Pool metrics recording stopped")
	})
}
