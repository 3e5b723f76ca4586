package device

import (
	"context"
	"time"
)

// Simulator stands in for a hardware signing device. It answers every request
// with a scripted decision after a fixed latency.
type Simulator struct {
	Decision ResultCode
	Reason   string
	Latency  time.Duration
}

func NewSimulator(decision ResultCode, latency time.Duration) *Simulator {
	return &Simulator{Decision: decision, Latency: latency}
}

func (s *Simulator) RequestConfirmation(ctx context.Context, req ConfirmationRequest) (ConfirmationResult, error) {
	if s.Latency > 0 {
		select {
		case <-ctx.Done():
			return ConfirmationResult{}, ctx.Err()
		case <-time.After(s.Latency):
		}
	}
	reason := s.Reason
	if reason == "" && s.Decision == Rejected {
		reason = "rejected"
	}
	return ConfirmationResult{Code: s.Decision, Reason: reason}, nil
}
