package commands

import (
	"github.com/coschain/cobra"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/session"
)

var BalanceCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "show the balance of the selected account",
		Run:   balance,
	}
	return cmd
}

func balance(cmd *cobra.Command, args []string) {
	_ = args
	s := sessionFromContext(cmd)
	render(s.Dispatch(session.GetBalance{}))
}
