package dashboard

import "time"

func NewHandlerWithClock(service Service, now func() time.Time) *Handler {
	h := NewHandler(service)
	h.now = now
	return h
}
