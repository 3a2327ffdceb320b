package leave

import (
	"time"

	"rota-console/internal/events"

	"go.uber.org/zap"
)

func NewServiceWithClock(repo Repository, publisher events.Publisher, now func() time.Time) Service {
	svc := NewService(repo, publisher, zap.NewNop()).(*service)
	svc.now = now
	return svc
}
