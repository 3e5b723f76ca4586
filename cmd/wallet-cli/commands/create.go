package commands

import (
	"fmt"

	"github.com/coschain/cobra"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/commands/utils"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/session"
)

var CreateCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "create",
		Short:   "create a new account and select it",
		Example: "create [name]",
		Args:    cobra.ExactArgs(1),
		Run:     create,
	}
	return cmd
}

func create(cmd *cobra.Command, args []string) {
	s := sessionFromContext(cmd)
	r := cmd.Context["preader"]
	preader := r.(utils.PasswordReader)
	name := args[0]
	passphrase, err := utils.GetPassphrase(preader)
	if err != nil {
		fmt.Println(err)
		return
	}
	render(s.Dispatch(session.CreateAccount{Name: name, Passphrase: passphrase}))
}
