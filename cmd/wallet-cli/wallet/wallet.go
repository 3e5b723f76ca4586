package wallet

import "context"

type Engine interface {
	Accounts() ([]AccountInfo, error)

	CreateAccount(name, passphrase string) (*AccountHandle, error)

	OpenAccount(name, passphrase string) (*AccountHandle, error)

	Rename(handle *AccountHandle, newName string) error

	Delete(handle *AccountHandle) error

	Balance(handle *AccountHandle) (Balance, error)

	NewAddress(handle *AccountHandle) (Address, error)

	Addresses(handle *AccountHandle) ([]Address, error)

	Sync(ctx context.Context, handle *AccountHandle, progress chan<- ProgressEvent) (*SyncSummary, error)

	PrepareSend(handle *AccountHandle, to Address, amount uint64, memo string) (*PendingTransaction, error)

	ConfirmAndBroadcast(ptx *PendingTransaction, decision Decision) (TxID, error)

	Transactions(handle *AccountHandle, limit int) ([]TxRecord, error)

	Close()
}
