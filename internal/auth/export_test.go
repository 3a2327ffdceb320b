package auth

import "time"

func NewServiceWithClock(repo Repository, revoker Revoker, sessionTTL time.Duration, now func() time.Time) Service {
	s := NewService(repo, revoker, sessionTTL).(*service)
	s.now = now
	return s
}
