package postgres

import (
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/internal/metrics"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolStats adapts pool.Stat for the pool metrics recorder
func PoolStats(pool *pgxpool.Pool) func() metrics.PoolStats {
	return func() metrics.PoolStats {
		s := pool.Stat()
		return metrics.PoolStats{
			AcquiredConns:     s.AcquiredConns(),
			IdleConns:         s.IdleConns(),
			TotalConns:        s.TotalConns(),
			MaxConns:          s.MaxConns(),
			AcquireCount:      s.AcquireCount(),
			EmptyAcquireCount: s.EmptyAcquireCount(),
		}
	}
}
