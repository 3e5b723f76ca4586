package commands

import (
	"fmt"

	"github.com/coschain/cobra"
)

var ClearCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "clear the screen",
		Run:   clear,
	}
	return cmd
}

func clear(cmd *cobra.Command, args []string) {
	_, _ = cmd, args
	fmt.Print("\x1b[2J\x1b[H")
}
