package device

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrConfirmationPending means a second confirmation was requested while one
// was outstanding. That is a logic error upstream, never queued here.
var ErrConfirmationPending = errors.New("device confirmation already pending")

// Bridge serializes access to the signing device. It owns the one
// "outstanding request" slot and the user-visible waiting indicator.
type Bridge struct {
	dev     Device
	timeout time.Duration
	out     io.Writer
	log     *logrus.Logger

	mu      sync.Mutex
	pending bool
}

func NewBridge(dev Device, timeout time.Duration, out io.Writer, log *logrus.Logger) *Bridge {
	return &Bridge{dev: dev, timeout: timeout, out: out, log: log}
}

type reply struct {
	res ConfirmationResult
	err error
}

// Confirm presents one request to the device and returns a terminal result.
// The waiting indicator is cleared on every exit path. A timeout cancels the
// device call; a late reply is discarded.
func (b *Bridge) Confirm(ctx context.Context, req ConfirmationRequest) (ConfirmationResult, error) {
	b.mu.Lock()
	if b.pending {
		b.mu.Unlock()
		return ConfirmationResult{}, ErrConfirmationPending
	}
	b.pending = true
	b.mu.Unlock()

	fmt.Fprintf(b.out, "waiting for device confirmation: %s\n", req.Summary())
	defer func() {
		fmt.Fprintln(b.out, "device confirmation settled")
		b.mu.Lock()
		b.pending = false
		b.mu.Unlock()
	}()

	cctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	ch := make(chan reply, 1)
	go func() {
		res, err := b.dev.RequestConfirmation(cctx, req)
		ch <- reply{res: res, err: err}
	}()

	select {
	case <-cctx.Done():
		if ctx.Err() != nil {
			// parent cancelled, not a device timeout
			return ConfirmationResult{}, ctx.Err()
		}
		b.log.WithField("timeout", b.timeout).Warn("device confirmation timed out")
		return ConfirmationResult{Code: TimedOut, Reason: fmt.Sprintf("no response within %s", b.timeout)}, nil
	case r := <-ch:
		if r.err != nil {
			if ctx.Err() != nil {
				return ConfirmationResult{}, ctx.Err()
			}
			if cctx.Err() == context.DeadlineExceeded {
				return ConfirmationResult{Code: TimedOut, Reason: fmt.Sprintf("no response within %s", b.timeout)}, nil
			}
			b.log.WithField("err", r.err).Warn("device confirmation failed")
			return ConfirmationResult{Code: DeviceFailure, Reason: r.err.Error()}, nil
		}
		return r.res, nil
	}
}
