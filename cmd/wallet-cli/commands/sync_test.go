package commands

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/session"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/wallet"
	"github.com/stretchr/testify/assert"
)

func TestSyncCommand(t *testing.T) {
	myassert := assert.New(t)
	f := newCmdFixture(t)
	handle := f.selectAccount(t, "alice")

	f.engine.EXPECT().Sync(gomock.Any(), handle, gomock.Any()).
		Return(&wallet.SyncSummary{Addresses: 2, Transactions: 1}, nil)

	cmd := SyncCmd()
	cmd.SetContext("session", f.sess)
	_, err := cmd.ExecuteC()
	myassert.NoError(err)
	f.waitSettled(t)

	entries := f.sess.History()
	last := entries[len(entries)-1]
	myassert.Equal("sync", last.Cmd.CommandName())
	myassert.Equal(session.StatusSuccess, last.Outcome.Status)
	myassert.Contains(last.Outcome.Message, "synced 2 addresses")
}
