package commands

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/commands/utils/mock"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/wallet"
	"github.com/stretchr/testify/assert"
)

func TestCreateCommand(t *testing.T) {
	myassert := assert.New(t)
	f := newCmdFixture(t)
	ctrl := gomock.NewController(t)
	passwordReader := mock_utils.NewMockPasswordReader(ctrl)

	handle := wallet.NewAccountHandle("acct-1", "kochiya")
	passwordReader.EXPECT().ReadPassword(gomock.Any()).Return([]byte("123456"), nil)
	f.engine.EXPECT().CreateAccount("kochiya", "123456").Return(handle, nil)

	cmd := CreateCmd()
	cmd.SetContext("session", f.sess)
	cmd.SetContext("preader", passwordReader)
	cmd.SetArgs([]string{"kochiya"})
	_, err := cmd.ExecuteC()
	myassert.NoError(err)
	myassert.Equal("kochiya", f.sess.AccountName())
}

func TestUseCommand(t *testing.T) {
	myassert := assert.New(t)
	f := newCmdFixture(t)
	ctrl := gomock.NewController(t)
	passwordReader := mock_utils.NewMockPasswordReader(ctrl)

	handle := wallet.NewAccountHandle("acct-1", "kochiya")
	passwordReader.EXPECT().ReadPassword(gomock.Any()).Return([]byte("123456"), nil)
	f.engine.EXPECT().OpenAccount("kochiya", "123456").Return(handle, nil)

	cmd := UseCmd()
	cmd.SetContext("session", f.sess)
	cmd.SetContext("preader", passwordReader)
	cmd.SetArgs([]string{"kochiya"})
	_, err := cmd.ExecuteC()
	myassert.NoError(err)
	myassert.Equal("kochiya", f.sess.AccountName())
}
