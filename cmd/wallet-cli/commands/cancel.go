package commands

import (
	"github.com/coschain/cobra"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/session"
)

var CancelCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "cancel the operation in progress",
		Run:   cancel,
	}
	return cmd
}

func cancel(cmd *cobra.Command, args []string) {
	_ = args
	s := sessionFromContext(cmd)
	render(s.Dispatch(session.Cancel{}))
}
