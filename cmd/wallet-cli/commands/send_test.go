package commands

import (
	"io/ioutil"
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/golang/mock/gomock"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/device"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/device/mock"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/session"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/wallet"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/wallet/mock"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSendCommand(t *testing.T) {
	myassert := assert.New(t)
	f := newCmdFixture(t)
	handle := f.selectAccount(t, "alice")

	ptx := &wallet.PendingTransaction{
		ID:      "trx-1",
		Account: "alice",
		To:      "HALxyz",
		Amount:  100,
		Fee:     10,
		Memo:    "lunch money",
	}
	f.engine.EXPECT().PrepareSend(handle, wallet.Address("HALxyz"), uint64(100), "lunch money").Return(ptx, nil)
	f.engine.EXPECT().ConfirmAndBroadcast(ptx, gomock.Any()).Do(func(_ *wallet.PendingTransaction, d wallet.Decision) {
		myassert.True(d.Approved)
	}).Return(wallet.TxID("trx-1"), nil)

	cmd := SendCmd()
	cmd.SetContext("session", f.sess)
	cmd.SetArgs([]string{"HALxyz", "100", "lunch", "money"})
	_, err := cmd.ExecuteC()
	myassert.NoError(err)
	f.waitSettled(t)

	entries := f.sess.History()
	last := entries[len(entries)-1]
	myassert.Equal("send", last.Cmd.CommandName())
	myassert.Equal(session.StatusSuccess, last.Outcome.Status)
	myassert.Contains(f.out.String(), "trx-1")
}

func TestSendCommandDeviceFailure(t *testing.T) {
	myassert := assert.New(t)
	ctrl := gomock.NewController(t)
	engine := mock_wallet.NewMockEngine(ctrl)
	dev := mock_device.NewMockDevice(ctrl)
	log := logrus.New()
	log.Out = ioutil.Discard
	out := new(lockedBuffer)
	bridge := device.NewBridge(dev, time.Second, out, log)
	sess := session.New(engine, bridge, EventBus.New(), out, log)

	handle := wallet.NewAccountHandle("acct-1", "alice")
	engine.EXPECT().OpenAccount("alice", "123456").Return(handle, nil)
	o := sess.Dispatch(session.SelectAccount{Name: "alice", Passphrase: "123456"})
	myassert.Equal(session.StatusSuccess, o.Status)

	ptx := &wallet.PendingTransaction{ID: "trx-1", Account: "alice", To: "HALxyz", Amount: 100, Fee: 10}
	engine.EXPECT().PrepareSend(handle, wallet.Address("HALxyz"), uint64(100), "").Return(ptx, nil)
	dev.EXPECT().RequestConfirmation(gomock.Any(), gomock.Any()).
		Return(device.ConfirmationResult{}, errors.New("usb unplugged"))
	engine.EXPECT().ConfirmAndBroadcast(ptx, gomock.Any()).Do(func(_ *wallet.PendingTransaction, d wallet.Decision) {
		myassert.False(d.Approved)
	}).Return(wallet.TxID(""), nil)

	cmd := SendCmd()
	cmd.SetContext("session", sess)
	cmd.SetArgs([]string{"HALxyz", "100"})
	_, err := cmd.ExecuteC()
	myassert.NoError(err)

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) && sess.State() == session.StateBusy {
		time.Sleep(5 * time.Millisecond)
	}
	entries := sess.History()
	last := entries[len(entries)-1]
	myassert.Equal(session.StatusFailure, last.Outcome.Status)
	myassert.Equal(session.KindDevice, last.Outcome.Kind)
	myassert.Contains(last.Outcome.Message, "usb unplugged")
}

func TestSendCommandRejectsBadAmount(t *testing.T) {
	myassert := assert.New(t)
	f := newCmdFixture(t)
	f.selectAccount(t, "alice")

	cmd := SendCmd()
	cmd.SetContext("session", f.sess)
	cmd.SetArgs([]string{"HALxyz", "notanumber"})
	_, err := cmd.ExecuteC()
	myassert.NoError(err)

	// a parse failure never reaches the session
	myassert.Len(f.sess.History(), 1)
}
