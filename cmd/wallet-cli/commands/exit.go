package commands

import (
	"github.com/coschain/cobra"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/session"
)

var ExitCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "exit",
		Aliases: []string{"close", "quit"},
		Short:   "end the session",
		Run:     exit,
	}
	return cmd
}

func exit(cmd *cobra.Command, args []string) {
	_ = args
	s := sessionFromContext(cmd)
	render(s.Dispatch(session.Exit{}))
}
