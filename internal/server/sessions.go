package server

import (
	"context"
	"time"
)

// startSessionPruning drops idle sessions in the background until ctx is cancelled.
func (s *Server) startSessionPruning(ctx context.Context) {
	if s.sessions == nil {
		return
	}
	interval := sessionPruneInterval(s.cfg.SessionTTL)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				s.sessions.Prune(now)
			}
		}
	}()
}

func sessionPruneInterval(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return maxPruneInterval
	}
	return min(max(ttl/2, minPruneInterval), maxPruneInterval)
}
