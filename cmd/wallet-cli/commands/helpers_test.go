package commands

import (
	"bytes"
	"io/ioutil"
	"sync"
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/golang/mock/gomock"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/device"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/session"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/wallet"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/wallet/mock"
	"github.com/sirupsen/logrus"
)

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type cmdFixture struct {
	engine *mock_wallet.MockEngine
	sess   *session.Session
	out    *lockedBuffer
}

func newCmdFixture(t *testing.T) *cmdFixture {
	ctrl := gomock.NewController(t)
	engine := mock_wallet.NewMockEngine(ctrl)
	log := logrus.New()
	log.Out = ioutil.Discard
	out := new(lockedBuffer)
	bridge := device.NewBridge(device.NewSimulator(device.Approved, 0), time.Second, out, log)
	sess := session.New(engine, bridge, EventBus.New(), out, log)
	return &cmdFixture{engine: engine, sess: sess, out: out}
}

// selectAccount puts the session into the ready state against the mock.
func (f *cmdFixture) selectAccount(t *testing.T, name string) *wallet.AccountHandle {
	handle := wallet.NewAccountHandle("acct-1", name)
	f.engine.EXPECT().OpenAccount(name, "123456").Return(handle, nil)
	o := f.sess.Dispatch(session.SelectAccount{Name: name, Passphrase: "123456"})
	if o == nil || o.Status != session.StatusSuccess {
		t.Fatal("failed to select account")
	}
	return handle
}

func (f *cmdFixture) waitSettled(t *testing.T) {
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if f.sess.State() != session.StateBusy {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("operation did not settle")
}
