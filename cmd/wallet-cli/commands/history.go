package commands

import (
	"fmt"

	"github.com/coschain/cobra"
)

var HistoryCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "show commands executed in this session and their results",
		Run:   history,
	}
	return cmd
}

func history(cmd *cobra.Command, args []string) {
	_ = args
	s := sessionFromContext(cmd)
	entries := s.History()
	if len(entries) == 0 {
		fmt.Println("no commands executed yet")
		return
	}
	for i, e := range entries {
		fmt.Printf("%3d  %-12s %s\n", i+1, e.Cmd.CommandName(), e.Outcome.Render())
	}
}
