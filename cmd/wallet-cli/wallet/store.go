package wallet

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// txStore keeps per-account transaction records in leveldb, keyed by an
// ascending sequence number so iteration order is broadcast order.
type txStore struct {
	db *leveldb.DB
}

func openTxStore(path string) (*txStore, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}
	return &txStore{db: db}, nil
}

func (s *txStore) Close() {
	_ = s.db.Close()
}

func txKey(account string, seq uint64) []byte {
	key := []byte(fmt.Sprintf("tx:%s:", account))
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], seq)
	return append(key, b[:]...)
}

func seqKey(account string) []byte {
	return []byte(fmt.Sprintf("seq:%s", account))
}

func (s *txStore) Append(account string, rec *TxRecord) error {
	var seq uint64
	if raw, err := s.db.Get(seqKey(account), nil); err == nil {
		seq = binary.BigEndian.Uint64(raw)
	} else if err != leveldb.ErrNotFound {
		return err
	}
	value, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	batch := new(leveldb.Batch)
	batch.Put(txKey(account, seq), value)
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], seq+1)
	batch.Put(seqKey(account), b[:])
	return s.db.Write(batch, nil)
}

// List returns up to limit records, newest first. limit <= 0 means all.
func (s *txStore) List(account string, limit int) ([]TxRecord, error) {
	prefix := []byte(fmt.Sprintf("tx:%s:", account))
	iter := s.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer iter.Release()

	var records []TxRecord
	for iter.Next() {
		var rec TxRecord
		if err := json.Unmarshal(iter.Value(), &rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (s *txStore) Count(account string) (int, error) {
	var count uint64
	if raw, err := s.db.Get(seqKey(account), nil); err == nil {
		count = binary.BigEndian.Uint64(raw)
	} else if err != leveldb.ErrNotFound {
		return 0, err
	}
	return int(count), nil
}

func (s *txStore) Delete(account string) error {
	count, err := s.Count(account)
	if err != nil {
		return err
	}
	batch := new(leveldb.Batch)
	for i := 0; i < count; i++ {
		batch.Delete(txKey(account, uint64(i)))
	}
	batch.Delete(seqKey(account))
	return s.db.Write(batch, nil)
}

func (s *txStore) Rename(oldName, newName string) error {
	records, err := s.List(oldName, 0)
	if err != nil {
		return err
	}
	batch := new(leveldb.Batch)
	for i := len(records) - 1; i >= 0; i-- {
		value, err := json.Marshal(&records[i])
		if err != nil {
			return err
		}
		batch.Put(txKey(newName, uint64(len(records)-1-i)), value)
	}
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(len(records)))
	batch.Put(seqKey(newName), b[:])
	for i := 0; i < len(records); i++ {
		batch.Delete(txKey(oldName, uint64(i)))
	}
	batch.Delete(seqKey(oldName))
	return s.db.Write(batch, nil)
}
