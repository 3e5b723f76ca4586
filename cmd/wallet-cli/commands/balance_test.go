package commands

import (
	"testing"

	"github.com/halochain/halo-wallet/cmd/wallet-cli/session"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/wallet"
	"github.com/stretchr/testify/assert"
)

func TestBalanceCommand(t *testing.T) {
	myassert := assert.New(t)
	f := newCmdFixture(t)
	handle := f.selectAccount(t, "kochiya")

	f.engine.EXPECT().Balance(handle).Return(wallet.Balance{Available: 990, Reserved: 10}, nil)

	cmd := BalanceCmd()
	cmd.SetContext("session", f.sess)
	_, err := cmd.ExecuteC()
	myassert.NoError(err)

	entries := f.sess.History()
	last := entries[len(entries)-1]
	myassert.Equal("balance", last.Cmd.CommandName())
	myassert.Equal(session.StatusSuccess, last.Outcome.Status)
	myassert.Contains(last.Outcome.Message, "990 available")
}

func TestBalanceCommandWithoutAccount(t *testing.T) {
	myassert := assert.New(t)
	f := newCmdFixture(t)

	cmd := BalanceCmd()
	cmd.SetContext("session", f.sess)
	_, err := cmd.ExecuteC()
	myassert.NoError(err)

	entries := f.sess.History()
	myassert.Equal(session.StatusFailure, entries[len(entries)-1].Outcome.Status)
}
