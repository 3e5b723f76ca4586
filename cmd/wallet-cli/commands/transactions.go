package commands

import (
	"fmt"
	"strconv"

	"github.com/coschain/cobra"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/session"
)

var TransactionsCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Short:   "list transactions of the selected account, newest first",
		Example: "transactions [count]",
		Args:    cobra.MaximumNArgs(1),
		Run:     transactions,
	}
	return cmd
}

func transactions(cmd *cobra.Command, args []string) {
	s := sessionFromContext(cmd)
	limit := 0
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			fmt.Println("invalid argument count: must be a positive number")
			return
		}
		limit = n
	}
	render(s.Dispatch(session.ListTransactions{Limit: limit}))
}
