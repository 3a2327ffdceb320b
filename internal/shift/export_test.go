package shift

import (
	"time"

	"go.uber.org/zap"
)

func NewServiceWithClock(repo Repository, now func() time.Time) Service {
	svc := NewService(repo, zap.NewNop()).(*service)
	svc.now = now
	return svc
}
