package session

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/device"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/notify"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/wallet"
	"github.com/sirupsen/logrus"
)

type State int

const (
	StateIdle State = iota
	StateReady
	StateBusy
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateReady:
		return "ready"
	case StateBusy:
		return "busy"
	}
	return "unknown"
}

// Entry is one (Command, Outcome) pair. History is append-only; mutating
// entries land when the operation settles, in dispatch order.
type Entry struct {
	Cmd     Command
	Outcome Outcome
	When    time.Time
}

// Session is the in-memory state of one interactive run: the selected account
// handle, the one in-flight mutating operation, and the history log.
type Session struct {
	engine  wallet.Engine
	noticer EventBus.Bus
	log     *logrus.Logger
	out     io.Writer
	exec    *executor

	mu      sync.Mutex
	state   State
	account *wallet.AccountHandle
	cancel  context.CancelFunc
	settled chan struct{}
	closed  bool
	history []Entry
}

func New(engine wallet.Engine, bridge *device.Bridge, noticer EventBus.Bus, out io.Writer, log *logrus.Logger) *Session {
	return &Session{
		engine:  engine,
		noticer: noticer,
		log:     log,
		out:     out,
		exec:    &executor{engine: engine, bridge: bridge, out: out, log: log},
		state:   StateIdle,
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) AccountName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.account == nil {
		return ""
	}
	return s.account.Name()
}

func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Session) History() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := make([]Entry, len(s.history))
	copy(entries, s.history)
	return entries
}

func (s *Session) appendLocked(cmd Command, o Outcome) {
	s.history = append(s.history, Entry{Cmd: cmd, Outcome: o, When: time.Now()})
}

func (s *Session) append(cmd Command, o Outcome) {
	s.mu.Lock()
	s.appendLocked(cmd, o)
	s.mu.Unlock()
}

// Dispatch runs cmd against the current state. Read-only commands and
// rejections return their Outcome synchronously. Accepted mutating commands
// return nil and report through the session writer when they settle.
func (s *Session) Dispatch(cmd Command) *Outcome {
	switch c := cmd.(type) {
	case CreateAccount:
		return s.bind(cmd, "account %s created", func() (*wallet.AccountHandle, error) {
			return s.engine.CreateAccount(c.Name, c.Passphrase)
		})
	case SelectAccount:
		return s.bind(cmd, "account %s selected", func() (*wallet.AccountHandle, error) {
			return s.engine.OpenAccount(c.Name, c.Passphrase)
		})
	case ListAccounts:
		return s.readOnly(cmd, false, func(*wallet.AccountHandle) Outcome {
			return s.listAccounts()
		})
	case GetBalance:
		return s.readOnly(cmd, true, func(h *wallet.AccountHandle) Outcome {
			b, err := s.engine.Balance(h)
			if err != nil {
				return Failure(KindEngine, err.Error())
			}
			return Successf("balance: %d available, %d reserved", b.Available, b.Reserved)
		})
	case NewAddress:
		return s.readOnly(cmd, true, func(h *wallet.AccountHandle) Outcome {
			addr, err := s.engine.NewAddress(h)
			if err != nil {
				return Failure(KindEngine, err.Error())
			}
			return Successf("ADDRESS %s", addr)
		})
	case ListAddresses:
		return s.readOnly(cmd, true, func(h *wallet.AccountHandle) Outcome {
			addrs, err := s.engine.Addresses(h)
			if err != nil {
				return Failure(KindEngine, err.Error())
			}
			if len(addrs) == 0 {
				return Successf("no addresses found")
			}
			lines := make([]string, len(addrs))
			for i, a := range addrs {
				lines[i] = fmt.Sprintf("ADDRESS %s | index %d", a, i)
			}
			return Successf("%s", strings.Join(lines, "\n"))
		})
	case ListTransactions:
		return s.readOnly(cmd, true, func(h *wallet.AccountHandle) Outcome {
			records, err := s.engine.Transactions(h, c.Limit)
			if err != nil {
				return Failure(KindEngine, err.Error())
			}
			if len(records) == 0 {
				return Successf("no transactions found")
			}
			lines := make([]string, len(records))
			for i, rec := range records {
				dir := "sent"
				if rec.Incoming {
					dir = "received"
				}
				lines[i] = fmt.Sprintf("TRX %s | %s %d | %s -> %s | memo %q",
					rec.ID, dir, rec.Amount, rec.From, rec.To, rec.Memo)
			}
			return Successf("%s", strings.Join(lines, "\n"))
		})
	case DeleteAccount:
		return s.deleteAccount(cmd)
	case Send, Sync, Rename:
		return s.runAsync(cmd)
	case Cancel:
		return s.cancelInflight(cmd)
	case Exit:
		return s.exit(cmd)
	}
	o := Failure(KindState, fmt.Sprintf("unhandled command %q", cmd.CommandName()))
	s.append(cmd, o)
	return &o
}

func (s *Session) listAccounts() Outcome {
	infos, err := s.engine.Accounts()
	if err != nil {
		return Failure(KindEngine, err.Error())
	}
	if len(infos) == 0 {
		return Successf("no accounts found")
	}
	current := s.AccountName()
	lines := make([]string, len(infos))
	for i, info := range infos {
		marker := " "
		if info.Name == current {
			marker = "*"
		}
		lines[i] = fmt.Sprintf("%s account:%12s | addresses: %d", marker, info.Name, info.Addresses)
	}
	return Successf("%s", strings.Join(lines, "\n"))
}

// bind selects or creates the current account. Gated by busy like any other
// mutating command, but runs inline since engine account calls are local.
func (s *Session) bind(cmd Command, successFormat string, open func() (*wallet.AccountHandle, error)) *Outcome {
	if o := s.gate(cmd); o != nil {
		return o
	}
	handle, err := open()
	s.mu.Lock()
	var o Outcome
	if err != nil {
		o = Failure(KindEngine, err.Error())
	} else {
		// the previous handle is dropped here; the engine owns its lifetime
		s.account = handle
		if s.state == StateIdle {
			s.state = StateReady
		}
		o = Successf(successFormat, handle.Name())
	}
	s.appendLocked(cmd, o)
	s.mu.Unlock()
	return &o
}

func (s *Session) readOnly(cmd Command, needAccount bool, fn func(*wallet.AccountHandle) Outcome) *Outcome {
	s.mu.Lock()
	if s.closed {
		o := Failure(KindState, "session closed")
		s.appendLocked(cmd, o)
		s.mu.Unlock()
		return &o
	}
	handle := s.account
	s.mu.Unlock()

	if needAccount && handle == nil {
		o := Failure(KindState, "no account selected")
		s.append(cmd, o)
		return &o
	}
	o := fn(handle)
	s.append(cmd, o)
	return &o
}

// gate rejects while closed or busy. Returns nil when the command may proceed.
func (s *Session) gate(cmd Command) *Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		o := Failure(KindState, "session closed")
		s.appendLocked(cmd, o)
		return &o
	}
	if s.state == StateBusy {
		o := Failure(KindBusy, "operation in progress")
		s.appendLocked(cmd, o)
		return &o
	}
	return nil
}

func (s *Session) runAsync(cmd Command) *Outcome {
	s.mu.Lock()
	if s.closed {
		o := Failure(KindState, "session closed")
		s.appendLocked(cmd, o)
		s.mu.Unlock()
		return &o
	}
	if s.state == StateBusy {
		o := Failure(KindBusy, "operation in progress")
		s.appendLocked(cmd, o)
		s.mu.Unlock()
		return &o
	}
	if s.account == nil {
		o := Failure(KindState, "no account selected")
		s.appendLocked(cmd, o)
		s.mu.Unlock()
		return &o
	}
	handle := s.account
	ctx, cancel := context.WithCancel(context.Background())
	settled := make(chan struct{})
	s.cancel = cancel
	s.settled = settled
	s.state = StateBusy
	s.mu.Unlock()

	go func() {
		outcome := s.exec.run(ctx, cmd, handle)
		cancel()

		s.mu.Lock()
		s.state = StateReady
		s.cancel = nil
		s.settled = nil
		s.appendLocked(cmd, outcome)
		s.mu.Unlock()

		s.notifyOutcome(cmd, outcome)
		fmt.Fprintf(s.out, "%s: %s\n", cmd.CommandName(), outcome.Render())
		close(settled)
	}()
	return nil
}

// deleteAccount removes the selected account and drops the selection; with no
// account left bound the session returns to idle.
func (s *Session) deleteAccount(cmd Command) *Outcome {
	if o := s.gate(cmd); o != nil {
		return o
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.account == nil {
		o := Failure(KindState, "no account selected")
		s.appendLocked(cmd, o)
		return &o
	}
	name := s.account.Name()
	var o Outcome
	if err := s.engine.Delete(s.account); err != nil {
		o = Failure(KindEngine, err.Error())
	} else {
		s.account = nil
		s.state = StateIdle
		o = Successf("account %s deleted", name)
	}
	s.appendLocked(cmd, o)
	return &o
}

func (s *Session) cancelInflight(cmd Command) *Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateBusy || s.cancel == nil {
		o := Failure(KindState, "no operation in progress")
		s.appendLocked(cmd, o)
		return &o
	}
	s.cancel()
	o := Successf("cancellation requested")
	s.appendLocked(cmd, o)
	return &o
}

func (s *Session) exit(cmd Command) *Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.state == StateBusy && s.cancel != nil {
		s.cancel()
	}
	s.account = nil
	o := Successf("exiting")
	s.appendLocked(cmd, o)
	return &o
}

// Shutdown waits for the in-flight operation to settle, bounded. Returns
// false when the wait timed out.
func (s *Session) Shutdown(timeout time.Duration) bool {
	s.mu.Lock()
	s.closed = true
	if s.cancel != nil {
		s.cancel()
	}
	settled := s.settled
	s.mu.Unlock()

	if settled == nil {
		return true
	}
	select {
	case <-settled:
		return true
	case <-time.After(timeout):
		s.log.WithField("timeout", timeout).Warn("shutdown timed out waiting for operation")
		return false
	}
}

func (s *Session) notifyOutcome(cmd Command, o Outcome) {
	var topic string
	switch cmd.(type) {
	case Send:
		topic = notify.TopicSend
	case Sync:
		topic = notify.TopicSync
	default:
		return
	}
	notify.Publish(s.noticer, topic, notify.Notice{
		Title:   "wallet-cli " + cmd.CommandName(),
		Body:    o.Render(),
		Success: o.Status == StatusSuccess,
	})
}
