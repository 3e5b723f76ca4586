package main

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/chzyer/readline"
	"github.com/coschain/cobra"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/commands"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/commands/utils"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/device"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/notify"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/session"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/wallet"
	"github.com/halochain/halo-wallet/common"
	"github.com/halochain/halo-wallet/mylog"
)

var rootCmd = &cobra.Command{
	Use:   clientIdentifier,
	Short: "wallet-cli is an interactive wallet session",
}

func pcFromCommands(parent readline.PrefixCompleterInterface, c *cobra.Command) {
	pc := readline.PcItem(c.Use)
	parent.SetChildren(append(parent.GetChildren(), pc))
	for _, child := range c.Commands() {
		pcFromCommands(pc, child)
	}
}

func inheritContext(c *cobra.Command) {
	for _, child := range c.Commands() {
		child.Context = c.Context
		inheritContext(child)
	}
}

// gracefulReadErr separates an ended input stream from a broken one. Only the
// former exits with status 0.
func gracefulReadErr(err error) bool {
	return err == io.EOF || err == readline.ErrInterrupt
}

func runShell(sess *session.Session) {
	completer := readline.NewPrefixCompleter()
	for _, child := range rootCmd.Commands() {
		pcFromCommands(completer, child)
	}
	shell, err := readline.NewEx(&readline.Config{
		Prompt:       "> ",
		AutoComplete: completer,
		EOFPrompt:    "exit",
	})
	if err != nil {
		panic(err)
	}
	defer shell.Close()

shell_loop:
	for {
		l, err := shell.Readline()
		if err != nil {
			if gracefulReadErr(err) {
				break shell_loop
			}
			common.Fatalf("read input: %v", err)
		}
		fields := strings.Fields(l)
		if len(fields) == 0 {
			continue
		}
		cmd, flags, err := rootCmd.Find(fields)
		if err != nil || cmd == rootCmd {
			shell.Terminal.Write([]byte("unknown command: " + fields[0] + "\n"))
			continue
		}
		if err := cmd.ParseFlags(flags); err != nil {
			shell.Terminal.Write([]byte(err.Error() + "\n"))
			continue
		}
		if cmd.Args != nil {
			if err := cmd.Args(cmd, cmd.Flags().Args()); err != nil {
				shell.Terminal.Write([]byte(err.Error() + "\n"))
				continue
			}
		}
		cmd.Run(cmd, cmd.Flags().Args())
		if sess.Closed() {
			break shell_loop
		}
	}
}

func addCommands() {
	rootCmd.AddCommand(commands.CreateCmd())
	rootCmd.AddCommand(commands.UseCmd())
	rootCmd.AddCommand(commands.ListCmd())
	rootCmd.AddCommand(commands.BalanceCmd())
	rootCmd.AddCommand(commands.AddressCmd())
	rootCmd.AddCommand(commands.AddressesCmd())
	rootCmd.AddCommand(commands.SendCmd())
	rootCmd.AddCommand(commands.SyncCmd())
	rootCmd.AddCommand(commands.CancelCmd())
	rootCmd.AddCommand(commands.TransactionsCmd())
	rootCmd.AddCommand(commands.RenameCmd())
	rootCmd.AddCommand(commands.DeleteCmd())
	rootCmd.AddCommand(commands.HistoryCmd())
	rootCmd.AddCommand(commands.InfoCmd())
	rootCmd.AddCommand(commands.ClearCmd())
	rootCmd.AddCommand(commands.ExitCmd())
}

func init() {
	addCommands()
}

func main() {
	cfg := makeConfig()
	log := mylog.Init(cfg.DataDir, cfg.LogLevel, cfg.LogDays)

	engine, err := wallet.NewLocalEngine(cfg.DataDir, log)
	if err != nil {
		common.Fatalf("open wallet data: %v", err)
	}

	decision := device.Approved
	if !cfg.DeviceApprove {
		decision = device.Rejected
	}
	sim := device.NewSimulator(decision, time.Duration(cfg.DeviceLatencyMillis)*time.Millisecond)
	bridge := device.NewBridge(sim, time.Duration(cfg.DeviceTimeoutSeconds)*time.Second, os.Stdout, log)

	bus := EventBus.New()
	if err := notify.AttachConsole(bus, os.Stdout, log); err != nil {
		common.Fatalf("attach notifier: %v", err)
	}
	sess := session.New(engine, bridge, bus, os.Stdout, log)

	rootCmd.SetContext("session", sess)
	rootCmd.SetContext("preader", utils.MyPasswordReader{})
	inheritContext(rootCmd)

	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		runShell(sess)
	}
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}

	if !sess.Shutdown(time.Duration(cfg.ShutdownTimeoutSeconds) * time.Second) {
		log.Warn("operation did not settle before shutdown deadline")
	}
	engine.Close()
}
