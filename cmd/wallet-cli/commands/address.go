package commands

import (
	"github.com/coschain/cobra"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/session"
)

var AddressCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "derive a new receive address for the selected account",
		Run:   address,
	}
	return cmd
}

func address(cmd *cobra.Command, args []string) {
	_ = args
	s := sessionFromContext(cmd)
	render(s.Dispatch(session.NewAddress{}))
}
