package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/coschain/cobra"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/session"
)

var SendCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "send",
		Short:   "send funds to an address, pending device confirmation",
		Example: "send [address] [amount] [memo...]",
		Args:    cobra.MinimumNArgs(2),
		Run:     send,
	}
	return cmd
}

func send(cmd *cobra.Command, args []string) {
	s := sessionFromContext(cmd)
	to := args[0]
	amount, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		fmt.Println("invalid argument amount: must be a positive number")
		return
	}
	memo := ""
	if len(args) > 2 {
		memo = strings.Join(args[2:], " ")
	}
	render(s.Dispatch(session.Send{To: to, Amount: amount, Memo: memo}))
}
