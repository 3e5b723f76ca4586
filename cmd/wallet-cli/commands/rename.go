package commands

import (
	"github.com/coschain/cobra"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/session"
)

var RenameCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rename",
		Short:   "rename the selected account",
		Example: "rename [newname]",
		Args:    cobra.ExactArgs(1),
		Run:     rename,
	}
	return cmd
}

func rename(cmd *cobra.Command, args []string) {
	s := sessionFromContext(cmd)
	render(s.Dispatch(session.Rename{NewName: args[0]}))
}
