package wallet

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	lru "github.com/hashicorp/golang-lru"
	"github.com/sirupsen/logrus"
)

const (
	// InitialGrant funds every new account from the dev faucet so transfers
	// can be exercised without an external ledger.
	InitialGrant uint64 = 1000 * 1000

	SendFee uint64 = 10

	faucetName = "faucet"

	balanceCacheSize = 128
)

// validAccountName rejects the faucet name, path separators, spaces and the
// ':' ledger key delimiter; a ':' in a name would let one account's prefix
// scan match another's records.
func validAccountName(name string) bool {
	return name != "" && name != faucetName && !strings.ContainsAny(name, "/\\ :")
}

type openAccount struct {
	key  *keyFile
	seed []byte
}

// LocalEngine is a self-contained wallet engine: encrypted key files under
// <datadir>/keys, transaction records in leveldb under <datadir>/ledger.
// Address derivation is HD (bip39 mnemonic -> bip32 path). Balances are
// derived from the transaction log and cached.
type LocalEngine struct {
	dirPath   string
	store     *txStore
	log       *logrus.Logger
	syncDelay time.Duration

	mu        sync.RWMutex
	open      map[string]*openAccount
	names     map[string]string
	pending   map[string]*PendingTransaction
	reserved  map[string]uint64
	balances  *lru.Cache
	handleSeq uint64
}

func NewLocalEngine(dataDir string, log *logrus.Logger) (*LocalEngine, error) {
	keysDir := filepath.Join(dataDir, "keys")
	if err := os.MkdirAll(keysDir, 0700); err != nil {
		return nil, err
	}
	store, err := openTxStore(filepath.Join(dataDir, "ledger"))
	if err != nil {
		return nil, err
	}
	cache, err := lru.New(balanceCacheSize)
	if err != nil {
		store.Close()
		return nil, err
	}
	return &LocalEngine{
		dirPath:   keysDir,
		store:     store,
		log:       log,
		syncDelay: 100 * time.Millisecond,
		open:      make(map[string]*openAccount),
		names:     make(map[string]string),
		pending:   make(map[string]*PendingTransaction),
		reserved:  make(map[string]uint64),
		balances:  cache,
	}, nil
}

func (e *LocalEngine) Close() {
	e.store.Close()
}

func (e *LocalEngine) Accounts() ([]AccountInfo, error) {
	files, err := listKeyFiles(e.dirPath)
	if err != nil {
		return nil, err
	}
	var infos []AccountInfo
	for _, k := range files {
		infos = append(infos, AccountInfo{Name: k.Name, Addresses: k.AddressCount})
	}
	return infos, nil
}

func (e *LocalEngine) CreateAccount(name, passphrase string) (*AccountHandle, error) {
	if !validAccountName(name) {
		return nil, ErrInvalidName.Format(name)
	}
	if _, err := os.Stat(filepath.Join(e.dirPath, generateFilename(name))); err == nil {
		return nil, ErrAccountExists.Format(name)
	}

	mnemonic, err := newMnemonic()
	if err != nil {
		return nil, err
	}
	seed := seedFromMnemonic(mnemonic)
	pubKey, err := accountPubKey(seed)
	if err != nil {
		return nil, err
	}
	key, err := newKeyFile(name, pubKey, seed, []byte(passphrase))
	if err != nil {
		return nil, err
	}
	key.AddressCount = 1
	if err := key.seal(e.dirPath); err != nil {
		return nil, err
	}

	addr, err := deriveAddress(seed, 0)
	if err != nil {
		return nil, err
	}
	grant := &TxRecord{
		ID:       TxID(e.newTxID(name)),
		From:     faucetName,
		To:       string(addr),
		Amount:   InitialGrant,
		Incoming: true,
		UtcTime:  time.Now().Unix(),
	}
	if err := e.store.Append(name, grant); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.balances.Remove(name)
	e.log.WithField("account", name).Info("account created")
	return e.registerLocked(name, &openAccount{key: key, seed: seed}), nil
}

func (e *LocalEngine) OpenAccount(name, passphrase string) (*AccountHandle, error) {
	key, err := loadKeyFile(e.dirPath, name)
	if err != nil {
		return nil, err
	}
	seed, err := key.decryptSeed([]byte(passphrase))
	if err != nil {
		return nil, err
	}
	pubKey, err := accountPubKey(seed)
	if err != nil {
		return nil, err
	}
	if pubKey != key.PubKey {
		return nil, ErrWrongPassphrase.Format(name)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registerLocked(name, &openAccount{key: key, seed: seed}), nil
}

// registerLocked binds a fresh handle; any previous handle for the same
// account becomes stale.
func (e *LocalEngine) registerLocked(name string, acc *openAccount) *AccountHandle {
	if old, ok := e.names[name]; ok {
		delete(e.open, old)
	}
	e.handleSeq++
	id := fmt.Sprintf("acct-%d", e.handleSeq)
	e.open[id] = acc
	e.names[name] = id
	return &AccountHandle{id: id, name: name}
}

func (e *LocalEngine) lookup(handle *AccountHandle) (*openAccount, error) {
	if handle == nil {
		return nil, ErrAccountNotOpen.Format("<none>")
	}
	acc, ok := e.open[handle.id]
	if !ok {
		return nil, ErrAccountNotOpen.Format(handle.name)
	}
	return acc, nil
}

func (e *LocalEngine) Rename(handle *AccountHandle, newName string) error {
	if !validAccountName(newName) {
		return ErrInvalidName.Format(newName)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	acc, err := e.lookup(handle)
	if err != nil {
		return err
	}
	if _, err := os.Stat(filepath.Join(e.dirPath, generateFilename(newName))); err == nil {
		return ErrAccountExists.Format(newName)
	}

	oldName := acc.key.Name
	acc.key.Name = newName
	if err := acc.key.seal(e.dirPath); err != nil {
		acc.key.Name = oldName
		return err
	}
	if err := e.store.Rename(oldName, newName); err != nil {
		// keep key file and ledger agreeing on the old name
		acc.key.Name = oldName
		_ = os.Remove(filepath.Join(e.dirPath, generateFilename(newName)))
		return err
	}
	_ = os.Remove(filepath.Join(e.dirPath, generateFilename(oldName)))

	delete(e.names, oldName)
	e.names[newName] = handle.id
	e.reserved[newName] = e.reserved[oldName]
	delete(e.reserved, oldName)
	e.balances.Remove(oldName)
	e.balances.Remove(newName)
	handle.name = newName
	e.log.WithField("account", oldName).WithField("new", newName).Info("account renamed")
	return nil
}

// Delete removes the account's key file, its transaction log and every
// in-memory trace. The handle is stale afterwards.
func (e *LocalEngine) Delete(handle *AccountHandle) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	acc, err := e.lookup(handle)
	if err != nil {
		return err
	}
	name := acc.key.Name

	if err := os.Remove(filepath.Join(e.dirPath, generateFilename(name))); err != nil && !os.IsNotExist(err) {
		return err
	}
	if err := e.store.Delete(name); err != nil {
		return err
	}

	delete(e.open, handle.id)
	delete(e.names, name)
	delete(e.reserved, name)
	for id, ptx := range e.pending {
		if ptx.Account == name {
			delete(e.pending, id)
		}
	}
	e.balances.Remove(name)
	e.log.WithField("account", name).Info("account deleted")
	return nil
}

func (e *LocalEngine) totalLocked(name string) (uint64, error) {
	if cached, ok := e.balances.Get(name); ok {
		return cached.(uint64), nil
	}
	records, err := e.store.List(name, 0)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, rec := range records {
		if rec.Incoming {
			total += int64(rec.Amount)
		} else {
			total -= int64(rec.Amount + rec.Fee)
		}
	}
	if total < 0 {
		total = 0
	}
	e.balances.Add(name, uint64(total))
	return uint64(total), nil
}

func (e *LocalEngine) Balance(handle *AccountHandle) (Balance, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	acc, err := e.lookup(handle)
	if err != nil {
		return Balance{}, err
	}
	name := acc.key.Name
	total, err := e.totalLocked(name)
	if err != nil {
		return Balance{}, err
	}
	reserved := e.reserved[name]
	if reserved > total {
		reserved = total
	}
	return Balance{Available: total - reserved, Reserved: reserved}, nil
}

func (e *LocalEngine) NewAddress(handle *AccountHandle) (Address, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	acc, err := e.lookup(handle)
	if err != nil {
		return "", err
	}
	addr, err := deriveAddress(acc.seed, acc.key.AddressCount)
	if err != nil {
		return "", err
	}
	acc.key.AddressCount++
	if err := acc.key.seal(e.dirPath); err != nil {
		return "", err
	}
	return addr, nil
}

func (e *LocalEngine) Addresses(handle *AccountHandle) ([]Address, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	acc, err := e.lookup(handle)
	if err != nil {
		return nil, err
	}
	var addrs []Address
	for i := uint32(0); i < acc.key.AddressCount; i++ {
		addr, err := deriveAddress(acc.seed, i)
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, addr)
	}
	return addrs, nil
}

// Sync walks the derived addresses, one checkpoint per address, so a
// cancelled context aborts between steps rather than mid-write.
func (e *LocalEngine) Sync(ctx context.Context, handle *AccountHandle, progress chan<- ProgressEvent) (*SyncSummary, error) {
	e.mu.RLock()
	acc, err := e.lookup(handle)
	if err != nil {
		e.mu.RUnlock()
		return nil, err
	}
	name := acc.key.Name
	total := int(acc.key.AddressCount)
	e.mu.RUnlock()

	for i := 0; i < total; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(e.syncDelay):
		}
		if progress != nil {
			select {
			case progress <- ProgressEvent{Stage: "address", Current: i + 1, Total: total}:
			default:
			}
		}
	}

	e.mu.Lock()
	e.balances.Remove(name)
	e.mu.Unlock()

	count, err := e.store.Count(name)
	if err != nil {
		return nil, err
	}
	return &SyncSummary{Addresses: total, Transactions: count}, nil
}

func (e *LocalEngine) PrepareSend(handle *AccountHandle, to Address, amount uint64, memo string) (*PendingTransaction, error) {
	if err := ValidateAddress(string(to)); err != nil {
		return nil, err
	}
	if amount == 0 {
		return nil, ErrZeroAmount
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	acc, err := e.lookup(handle)
	if err != nil {
		return nil, err
	}
	name := acc.key.Name
	total, err := e.totalLocked(name)
	if err != nil {
		return nil, err
	}
	available := total - e.reserved[name]
	if available < amount+SendFee {
		return nil, ErrInsufficientFunds.Format(available, amount+SendFee)
	}

	ptx := &PendingTransaction{
		ID:      e.newTxID(name),
		Account: name,
		To:      to,
		Amount:  amount,
		Fee:     SendFee,
		Memo:    memo,
	}
	e.pending[ptx.ID] = ptx
	e.reserved[name] += amount + SendFee
	return ptx, nil
}

func (e *LocalEngine) ConfirmAndBroadcast(ptx *PendingTransaction, decision Decision) (TxID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if ptx == nil {
		return "", ErrUnknownPending.Format("<nil>")
	}
	pending, ok := e.pending[ptx.ID]
	if !ok {
		return "", ErrUnknownPending.Format(ptx.ID)
	}
	delete(e.pending, ptx.ID)
	if e.reserved[pending.Account] >= pending.Amount+pending.Fee {
		e.reserved[pending.Account] -= pending.Amount + pending.Fee
	} else {
		e.reserved[pending.Account] = 0
	}

	if !decision.Approved {
		e.log.WithField("account", pending.Account).WithField("reason", decision.Reason).Info("transaction aborted")
		return "", ErrSendAborted.Format(decision.Reason)
	}

	rec := &TxRecord{
		ID:      TxID(pending.ID),
		From:    pending.Account,
		To:      string(pending.To),
		Amount:  pending.Amount,
		Fee:     pending.Fee,
		Memo:    pending.Memo,
		UtcTime: time.Now().Unix(),
	}
	if err := e.store.Append(pending.Account, rec); err != nil {
		return "", err
	}
	e.balances.Remove(pending.Account)
	e.log.WithField("account", pending.Account).WithField("trx", pending.ID).Info("transaction broadcast")
	return rec.ID, nil
}

func (e *LocalEngine) Transactions(handle *AccountHandle, limit int) ([]TxRecord, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	acc, err := e.lookup(handle)
	if err != nil {
		return nil, err
	}
	return e.store.List(acc.key.Name, limit)
}

var txSeq uint64

func (e *LocalEngine) newTxID(name string) string {
	seq := atomic.AddUint64(&txSeq, 1)
	digest := crypto.Keccak256([]byte(fmt.Sprintf("%s:%d:%d", name, time.Now().UnixNano(), seq)))
	return hex.EncodeToString(digest[:16])
}
