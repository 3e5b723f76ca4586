package wallet

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func openTestStore(t *testing.T) *txStore {
	store, err := openTxStore(t.TempDir())
	assert.NoError(t, err)
	t.Cleanup(store.Close)
	return store
}

func TestTxStoreAppendAndList(t *testing.T) {
	myassert := assert.New(t)
	store := openTestStore(t)

	for i := 0; i < 3; i++ {
		rec := &TxRecord{ID: TxID(fmt.Sprintf("trx-%d", i)), From: "alice", To: "bob", Amount: uint64(i + 1)}
		myassert.NoError(store.Append("alice", rec))
	}

	records, err := store.List("alice", 0)
	myassert.NoError(err)
	myassert.Len(records, 3)
	myassert.Equal(TxID("trx-2"), records[0].ID)
	myassert.Equal(TxID("trx-0"), records[2].ID)

	limited, err := store.List("alice", 2)
	myassert.NoError(err)
	myassert.Len(limited, 2)
	myassert.Equal(TxID("trx-2"), limited[0].ID)

	count, err := store.Count("alice")
	myassert.NoError(err)
	myassert.Equal(3, count)
}

func TestTxStoreAccountsAreIsolated(t *testing.T) {
	myassert := assert.New(t)
	store := openTestStore(t)

	myassert.NoError(store.Append("alice", &TxRecord{ID: "trx-a"}))
	myassert.NoError(store.Append("bob", &TxRecord{ID: "trx-b"}))

	records, err := store.List("alice", 0)
	myassert.NoError(err)
	myassert.Len(records, 1)
	myassert.Equal(TxID("trx-a"), records[0].ID)
}

func TestTxStoreRename(t *testing.T) {
	myassert := assert.New(t)
	store := openTestStore(t)

	myassert.NoError(store.Append("alice", &TxRecord{ID: "trx-0"}))
	myassert.NoError(store.Append("alice", &TxRecord{ID: "trx-1"}))
	myassert.NoError(store.Rename("alice", "carol"))

	old, err := store.List("alice", 0)
	myassert.NoError(err)
	myassert.Empty(old)

	records, err := store.List("carol", 0)
	myassert.NoError(err)
	myassert.Len(records, 2)
	myassert.Equal(TxID("trx-1"), records[0].ID)

	// appends after a rename continue the sequence
	myassert.NoError(store.Append("carol", &TxRecord{ID: "trx-2"}))
	records, err = store.List("carol", 0)
	myassert.NoError(err)
	myassert.Equal(TxID("trx-2"), records[0].ID)
}
