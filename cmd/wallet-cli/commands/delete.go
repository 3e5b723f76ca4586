package commands

import (
	"github.com/coschain/cobra"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/session"
)

var DeleteCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "delete the selected account and its local records",
		Run:   deleteAccount,
	}
	return cmd
}

func deleteAccount(cmd *cobra.Command, args []string) {
	_ = args
	s := sessionFromContext(cmd)
	render(s.Dispatch(session.DeleteAccount{}))
}
