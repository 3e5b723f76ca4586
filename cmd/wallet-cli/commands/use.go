package commands

import (
	"fmt"

	"github.com/coschain/cobra"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/commands/utils"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/session"
)

var UseCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "use",
		Short:   "select an existing account",
		Example: "use [name]",
		Args:    cobra.ExactArgs(1),
		Run:     use,
	}
	return cmd
}

func use(cmd *cobra.Command, args []string) {
	s := sessionFromContext(cmd)
	r := cmd.Context["preader"]
	preader := r.(utils.PasswordReader)
	name := args[0]
	passphrase, err := utils.GetPassphrase(preader)
	if err != nil {
		fmt.Println(err)
		return
	}
	render(s.Dispatch(session.SelectAccount{Name: name, Passphrase: passphrase}))
}
