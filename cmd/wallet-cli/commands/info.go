package commands

import (
	"fmt"

	"github.com/coschain/cobra"
)

var InfoCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "show session state and the selected account",
		Run:   info,
	}
	return cmd
}

func info(cmd *cobra.Command, args []string) {
	_ = args
	s := sessionFromContext(cmd)
	account := s.AccountName()
	if account == "" {
		account = "<none>"
	}
	fmt.Printf("state: %s\naccount: %s\n", s.State(), account)
}
