package commands

import (
	"github.com/coschain/cobra"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/session"
)

var AddressesCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addresses",
		Short: "list all known addresses of the selected account",
		Run:   addresses,
	}
	return cmd
}

func addresses(cmd *cobra.Command, args []string) {
	_ = args
	s := sessionFromContext(cmd)
	render(s.Dispatch(session.ListAddresses{}))
}
