package wallet

// AccountHandle is an opaque reference into the engine's account registry.
// Holders pass it back to the engine and never interpret the id.
type AccountHandle struct {
	id   string
	name string
}

func (h *AccountHandle) Name() string {
	return h.name
}

// NewAccountHandle mints a handle. Only engine implementations should call
// this; the session treats handles as opaque.
func NewAccountHandle(id, name string) *AccountHandle {
	return &AccountHandle{id: id, name: name}
}

type AccountInfo struct {
	Name      string
	Addresses uint32
}

type Address string

type Balance struct {
	Available uint64
	Reserved  uint64
}

func (b Balance) Total() uint64 {
	return b.Available + b.Reserved
}

type TxID string

type TxRecord struct {
	ID       TxID
	From     string
	To       string
	Amount   uint64
	Fee      uint64
	Memo     string
	Incoming bool
	UtcTime  int64
}

type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
}

type SyncSummary struct {
	Addresses    int
	Transactions int
}

// PendingTransaction is a prepared but unsigned transfer. The reserved amount
// is held by the engine until ConfirmAndBroadcast settles it one way or the
// other.
type PendingTransaction struct {
	ID      string
	Account string
	To      Address
	Amount  uint64
	Fee     uint64
	Memo    string
}

// Decision is the terminal device response fed back into the engine. A
// non-approved decision aborts the transaction and releases the reservation.
type Decision struct {
	Approved bool
	Reason   string
}
