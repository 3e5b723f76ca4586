package commands

import (
	"fmt"

	"github.com/coschain/cobra"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/session"
)

func sessionFromContext(cmd *cobra.Command) *session.Session {
	s := cmd.Context["session"]
	return s.(*session.Session)
}

// render prints a synchronous outcome; a nil outcome means the operation was
// accepted and will report when it settles.
func render(o *session.Outcome) {
	if o == nil {
		fmt.Println("operation dispatched, result will follow")
		return
	}
	fmt.Println(o.Render())
}
