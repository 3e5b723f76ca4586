package device

import (
	"context"
	"fmt"
)

type ResultCode int

const (
	Approved ResultCode = iota
	Rejected
	TimedOut
	DeviceFailure
)

func (c ResultCode) String() string {
	switch c {
	case Approved:
		return "approved"
	case Rejected:
		return "rejected"
	case TimedOut:
		return "timed out"
	case DeviceFailure:
		return "device error"
	}
	return "unknown"
}

// ConfirmationRequest is the human-readable summary shown on the signing
// device before it asks for physical approval.
type ConfirmationRequest struct {
	Account string
	To      string
	Amount  uint64
	Fee     uint64
	Memo    string
}

func (r ConfirmationRequest) Summary() string {
	s := fmt.Sprintf("send %d (fee %d) from %s to %s", r.Amount, r.Fee, r.Account, r.To)
	if r.Memo != "" {
		s += fmt.Sprintf(" memo %q", r.Memo)
	}
	return s
}

type ConfirmationResult struct {
	Code   ResultCode
	Reason string
}

func (r ConfirmationResult) Approved() bool {
	return r.Code == Approved
}

// Device is the hardware signing boundary. RequestConfirmation blocks until
// the user answers on the device, the context is cancelled, or the device
// fails.
type Device interface {
	RequestConfirmation(ctx context.Context, req ConfirmationRequest) (ConfirmationResult, error)
}
