package commands

import (
	"github.com/coschain/cobra"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/session"
)

var SyncCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "scan the network for new transactions of the selected account",
		Run:   runSync,
	}
	return cmd
}

func runSync(cmd *cobra.Command, args []string) {
	_ = args
	s := sessionFromContext(cmd)
	render(s.Dispatch(session.Sync{}))
}
