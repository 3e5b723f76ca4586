package session

import (
	"context"
	"fmt"
	"io"

	"github.com/halochain/halo-wallet/cmd/wallet-cli/device"
	"github.com/halochain/halo-wallet/cmd/wallet-cli/wallet"
	"github.com/sirupsen/logrus"
)

// executor turns one validated mutating Command into a single engine call and
// watches it to a terminal Outcome. It never retries; a failed operation is
// re-attempted only by the user's next command.
type executor struct {
	engine wallet.Engine
	bridge *device.Bridge
	out    io.Writer
	log    *logrus.Logger
}

func (e *executor) run(ctx context.Context, cmd Command, handle *wallet.AccountHandle) Outcome {
	switch c := cmd.(type) {
	case Send:
		return e.send(ctx, c, handle)
	case Sync:
		return e.sync(ctx, handle)
	case Rename:
		if err := e.engine.Rename(handle, c.NewName); err != nil {
			return Failure(KindEngine, err.Error())
		}
		return Successf("account renamed to %s", c.NewName)
	}
	return Failure(KindState, fmt.Sprintf("not a mutating command: %s", cmd.CommandName()))
}

// send prepares the transfer, asks the device for exactly one confirmation,
// then feeds the decision back so the engine either broadcasts or releases
// the reservation.
func (e *executor) send(ctx context.Context, c Send, handle *wallet.AccountHandle) Outcome {
	ptx, err := e.engine.PrepareSend(handle, wallet.Address(c.To), c.Amount, c.Memo)
	if err != nil {
		return Failure(KindEngine, err.Error())
	}

	req := device.ConfirmationRequest{
		Account: ptx.Account,
		To:      string(ptx.To),
		Amount:  ptx.Amount,
		Fee:     ptx.Fee,
		Memo:    ptx.Memo,
	}
	res, err := e.bridge.Confirm(ctx, req)
	if err != nil {
		_, _ = e.engine.ConfirmAndBroadcast(ptx, wallet.Decision{Reason: err.Error()})
		if ctx.Err() != nil {
			return Cancelled()
		}
		return Failure(KindDevice, err.Error())
	}

	txid, err := e.engine.ConfirmAndBroadcast(ptx, wallet.Decision{Approved: res.Approved(), Reason: res.Reason})
	if !res.Approved() {
		reason := res.Reason
		if reason == "" {
			reason = res.Code.String()
		}
		return Failure(KindDevice, reason)
	}
	if err != nil {
		return Failure(KindEngine, err.Error())
	}
	return Successf("transaction %s broadcast", txid)
}

// sync forwards engine progress to the terminal best-effort and maps a
// cancelled context to Cancelled rather than Failure.
func (e *executor) sync(ctx context.Context, handle *wallet.AccountHandle) Outcome {
	progress := make(chan wallet.ProgressEvent, 8)
	drained := make(chan struct{})
	go func() {
		for ev := range progress {
			fmt.Fprintf(e.out, "syncing %s %d of %d\n", ev.Stage, ev.Current, ev.Total)
		}
		close(drained)
	}()

	summary, err := e.engine.Sync(ctx, handle, progress)
	close(progress)
	<-drained

	if err != nil {
		if ctx.Err() != nil || err == context.Canceled {
			return Cancelled()
		}
		return Failure(KindEngine, err.Error())
	}
	return Successf("synced %d addresses, %d transactions", summary.Addresses, summary.Transactions)
}
