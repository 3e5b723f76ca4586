package device

import (
	"bytes"
	"context"
	"io/ioutil"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.Out = ioutil.Discard
	return log
}

type funcDevice func(ctx context.Context, req ConfirmationRequest) (ConfirmationResult, error)

func (f funcDevice) RequestConfirmation(ctx context.Context, req ConfirmationRequest) (ConfirmationResult, error) {
	return f(ctx, req)
}

func testRequest() ConfirmationRequest {
	return ConfirmationRequest{Account: "alice", To: "HALxyz", Amount: 100, Fee: 10}
}

func TestConfirmApproved(t *testing.T) {
	myassert := assert.New(t)
	out := new(bytes.Buffer)
	bridge := NewBridge(NewSimulator(Approved, 0), time.Second, out, testLogger())

	res, err := bridge.Confirm(context.Background(), testRequest())
	myassert.NoError(err)
	myassert.True(res.Approved())
	myassert.Contains(out.String(), "waiting for device confirmation")
	myassert.Contains(out.String(), "device confirmation settled")
}

func TestConfirmRejected(t *testing.T) {
	myassert := assert.New(t)
	bridge := NewBridge(NewSimulator(Rejected, 0), time.Second, new(bytes.Buffer), testLogger())

	res, err := bridge.Confirm(context.Background(), testRequest())
	myassert.NoError(err)
	myassert.False(res.Approved())
	myassert.Equal(Rejected, res.Code)
	myassert.Equal("rejected", res.Reason)
}

func TestConfirmTimesOut(t *testing.T) {
	myassert := assert.New(t)
	bridge := NewBridge(NewSimulator(Approved, time.Second), 20*time.Millisecond, new(bytes.Buffer), testLogger())

	res, err := bridge.Confirm(context.Background(), testRequest())
	myassert.NoError(err)
	myassert.Equal(TimedOut, res.Code)
}

func TestConfirmDeviceFailure(t *testing.T) {
	myassert := assert.New(t)
	dev := funcDevice(func(ctx context.Context, req ConfirmationRequest) (ConfirmationResult, error) {
		return ConfirmationResult{}, errors.New("usb unplugged")
	})
	bridge := NewBridge(dev, time.Second, new(bytes.Buffer), testLogger())

	res, err := bridge.Confirm(context.Background(), testRequest())
	myassert.NoError(err)
	myassert.Equal(DeviceFailure, res.Code)
	myassert.Equal("usb unplugged", res.Reason)
}

func TestConfirmParentCancellation(t *testing.T) {
	myassert := assert.New(t)
	bridge := NewBridge(NewSimulator(Approved, time.Second), time.Second, new(bytes.Buffer), testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	_, err := bridge.Confirm(ctx, testRequest())
	myassert.Equal(context.Canceled, err)
}

func TestConfirmRejectsSecondRequestWhilePending(t *testing.T) {
	myassert := assert.New(t)
	release := make(chan struct{})
	dev := funcDevice(func(ctx context.Context, req ConfirmationRequest) (ConfirmationResult, error) {
		<-release
		return ConfirmationResult{Code: Approved}, nil
	})
	bridge := NewBridge(dev, time.Second, new(bytes.Buffer), testLogger())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		res, err := bridge.Confirm(context.Background(), testRequest())
		assert.NoError(t, err)
		assert.True(t, res.Approved())
	}()

	// wait until the first request holds the slot
	time.Sleep(20 * time.Millisecond)
	_, err := bridge.Confirm(context.Background(), testRequest())
	myassert.Equal(ErrConfirmationPending, err)

	close(release)
	wg.Wait()

	// the slot is free again once the first request settles
	res, err := bridge.Confirm(context.Background(), testRequest())
	myassert.NoError(err)
	myassert.True(res.Approved())
}

func TestSimulatorHonorsContext(t *testing.T) {
	myassert := assert.New(t)
	sim := NewSimulator(Approved, time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := sim.RequestConfirmation(ctx, testRequest())
	myassert.Equal(context.Canceled, err)
}
