package commands

import (
	"testing"

	"github.com/halochain/halo-wallet/cmd/wallet-cli/session"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/wallet"
	"github.com/stretchr/testify/assert"
)

func TestTransactionsCommandPassesLimit(t *testing.T) {
	myassert := assert.New(t)
	f := newCmdFixture(t)
	handle := f.selectAccount(t, "alice")

	records := []wallet.TxRecord{
		{ID: "trx-2", From: "alice", To: "HALxyz", Amount: 50},
		{ID: "trx-1", From: "faucet", To: "HALabc", Amount: 1000, Incoming: true},
	}
	f.engine.EXPECT().Transactions(handle, 2).Return(records, nil)

	cmd := TransactionsCmd()
	cmd.SetContext("session", f.sess)
	cmd.SetArgs([]string{"2"})
	_, err := cmd.ExecuteC()
	myassert.NoError(err)

	entries := f.sess.History()
	last := entries[len(entries)-1]
	myassert.Equal(session.StatusSuccess, last.Outcome.Status)
	myassert.Contains(last.Outcome.Message, "trx-2")
	myassert.Contains(last.Outcome.Message, "received")
}

func TestTransactionsCommandRejectsBadCount(t *testing.T) {
	myassert := assert.New(t)
	f := newCmdFixture(t)
	f.selectAccount(t, "alice")

	cmd := TransactionsCmd()
	cmd.SetContext("session", f.sess)
	cmd.SetArgs([]string{"zero"})
	_, err := cmd.ExecuteC()
	myassert.NoError(err)
	myassert.Len(f.sess.History(), 1)
}
