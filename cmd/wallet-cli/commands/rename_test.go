package commands

import (
	"testing"

	"github.com/halochain/halo-wallet/cmd/wallet-cli/session"
	"github.com/stretchr/testify/assert"
)

func TestRenameCommand(t *testing.T) {
	myassert := assert.New(t)
	f := newCmdFixture(t)
	handle := f.selectAccount(t, "alice")

	f.engine.EXPECT().Rename(handle, "carol").Return(nil)

	cmd := RenameCmd()
	cmd.SetContext("session", f.sess)
	cmd.SetArgs([]string{"carol"})
	_, err := cmd.ExecuteC()
	myassert.NoError(err)
	f.waitSettled(t)

	entries := f.sess.History()
	last := entries[len(entries)-1]
	myassert.Equal("rename", last.Cmd.CommandName())
	myassert.Equal(session.StatusSuccess, last.Outcome.Status)
}
