package commands

import (
	"testing"

	"github.com/halochain/halo-wallet/cmd/wallet-cli/session"
	"github.com/stretchr/testify/assert"
)

func TestDeleteCommand(t *testing.T) {
	myassert := assert.New(t)
	f := newCmdFixture(t)
	handle := f.selectAccount(t, "alice")

	f.engine.EXPECT().Delete(handle).Return(nil)

	cmd := DeleteCmd()
	cmd.SetContext("session", f.sess)
	_, err := cmd.ExecuteC()
	myassert.NoError(err)

	entries := f.sess.History()
	last := entries[len(entries)-1]
	myassert.Equal("delete", last.Cmd.CommandName())
	myassert.Equal(session.StatusSuccess, last.Outcome.Status)
	myassert.Equal("", f.sess.AccountName())
	myassert.Equal(session.StateIdle, f.sess.State())
}
