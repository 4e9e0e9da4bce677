package storage

import (
	"encoding/json"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	leveldbIterator "github.com/syndtr/goleveldb/leveldb/iterator"
	leveldbOpt "github.com/syndtr/goleveldb/leveldb/opt"
	leveldbStorage "github.com/syndtr/goleveldb/leveldb/storage"
	leveldbUtil "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/tequdev/xahau-governance-hook-test/lib/common"
	"github.com/tequdev/xahau-governance-hook-test/lib/errors"
)

type LevelDBCore interface {
	Has([]byte, *leveldbOpt.ReadOptions) (bool, error)
	Get([]byte, *leveldbOpt.ReadOptions) ([]byte, error)
	NewIterator(*leveldbUtil.Range, *leveldbOpt.ReadOptions) leveldbIterator.Iterator
	Put([]byte, []byte, *leveldbOpt.WriteOptions) error
	Write(*leveldb.Batch, *leveldbOpt.WriteOptions) error
	Delete([]byte, *leveldbOpt.WriteOptions) error
}

type LevelDBBackend struct {
	DB *leveldb.DB

	Core LevelDBCore
}

func setLevelDBCoreError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := err.(*errors.Error); ok {
		return err
	}

	return errors.NewError(
		errors.StorageCoreError.Code,
		fmt.Sprintf("%s: %s", errors.StorageCoreError.Message, err.Error()),
	)
}

func NewStorage(config *Config) (*LevelDBBackend, error) {
	st := &LevelDBBackend{}
	if err := st.Init(config); err != nil {
		return nil, err
	}

	return st, nil
}

func (st *LevelDBBackend) Init(config *Config) (err error) {
	var db *leveldb.DB

	switch config.Scheme {
	case "file":
		if db, err = leveldb.OpenFile(config.Path, nil); err != nil {
			err = setLevelDBCoreError(err)
			return
		}
	case "memory":
		sto := leveldbStorage.NewMemStorage()
		if db, err = leveldb.Open(sto, nil); err != nil {
			err = setLevelDBCoreError(err)
			return
		}
	default:
		err = errors.InvalidStorageConfig.Clone().SetData("scheme", config.Scheme)
		return
	}

	st.DB = db
	st.Core = db

	return
}

func (st *LevelDBBackend) Close() error {
	return st.DB.Close()
}

// OpenTransaction opens a leveldb transaction; nothing is visible outside
// of it until `Commit`.
func (st *LevelDBBackend) OpenTransaction() (*LevelDBBackend, error) {
	db, ok := st.Core.(*leveldb.DB)
	if !ok {
		return nil, setLevelDBCoreError(fmt.Errorf("transaction can be opened only on *leveldb.DB"))
	}

	transaction, err := db.OpenTransaction()
	if err != nil {
		return nil, setLevelDBCoreError(err)
	}

	return &LevelDBBackend{
		DB:   st.DB,
		Core: transaction,
	}, nil
}

// OpenJournal stacks a `Journal` on the current core; journals can be
// opened on a transaction or on another journal.
func (st *LevelDBBackend) OpenJournal() *LevelDBBackend {
	return &LevelDBBackend{
		DB:   st.DB,
		Core: NewJournal(st.Core),
	}
}

func (st *LevelDBBackend) Discard() error {
	switch core := st.Core.(type) {
	case *leveldb.Transaction:
		core.Discard()
		return nil
	case *Journal:
		return core.Discard()
	default:
		return setLevelDBCoreError(fmt.Errorf("not transaction or journal: %T", st.Core))
	}
}

func (st *LevelDBBackend) Commit() error {
	switch core := st.Core.(type) {
	case *leveldb.Transaction:
		return setLevelDBCoreError(core.Commit())
	case *Journal:
		return setLevelDBCoreError(core.Commit())
	default:
		return setLevelDBCoreError(fmt.Errorf("not transaction or journal: %T", st.Core))
	}
}

func (st *LevelDBBackend) Has(k []byte) (bool, error) {
	ok, err := st.Core.Has(k, nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return false, nil
		}
		return false, setLevelDBCoreError(err)
	}

	return ok, nil
}

func (st *LevelDBBackend) GetRaw(k []byte) (b []byte, err error) {
	b, err = st.Core.Get(k, nil)
	if err == leveldb.ErrNotFound {
		return nil, errors.StorageRecordDoesNotExist
	}

	err = setLevelDBCoreError(err)
	return
}

// PutRaw creates or overwrites.
func (st *LevelDBBackend) PutRaw(k, v []byte) error {
	return setLevelDBCoreError(st.Core.Put(k, v, nil))
}

func (st *LevelDBBackend) Remove(k []byte) (err error) {
	var exists bool
	if exists, err = st.Has(k); !exists || err != nil {
		if !exists {
			err = errors.StorageRecordDoesNotExist
			return
		}
		return
	}

	err = setLevelDBCoreError(st.Core.Delete(k, nil))

	return
}

func (st *LevelDBBackend) Get(k string, i interface{}) (err error) {
	var b []byte
	if b, err = st.GetRaw([]byte(k)); err != nil {
		return
	}

	if err = json.Unmarshal(b, i); err != nil {
		err = setLevelDBCoreError(err)
		return
	}

	return
}

func encodeValue(v interface{}) ([]byte, error) {
	if serializable, ok := v.(Serializable); ok {
		return serializable.Serialize()
	}

	return common.EncodeJSONValue(v)
}

func (st *LevelDBBackend) New(k string, v interface{}) (err error) {
	var encoded []byte
	if encoded, err = encodeValue(v); err != nil {
		err = setLevelDBCoreError(err)
		return
	}

	var exists bool
	if exists, err = st.Has([]byte(k)); exists || err != nil {
		if exists {
			err = errors.StorageRecordAlreadyExists
			return
		}
		return
	}

	err = st.PutRaw([]byte(k), encoded)

	return
}

// Set overwrites an existing record or creates a new one.
func (st *LevelDBBackend) Set(k string, v interface{}) (err error) {
	var encoded []byte
	if encoded, err = encodeValue(v); err != nil {
		err = setLevelDBCoreError(err)
		return
	}

	err = st.PutRaw([]byte(k), encoded)

	return
}

type WalkFunc func(key, value []byte) (bool, error)

// Walk visits every record under prefix in key order until walkFunc returns
// false. `Journal` does not support iteration, so pending journal writes are
// not visited.
func (st *LevelDBBackend) Walk(prefix []byte, walkFunc WalkFunc) error {
	var dbRange *leveldbUtil.Range
	if len(prefix) > 0 {
		dbRange = leveldbUtil.BytesPrefix(prefix)
	}

	iter := st.Core.NewIterator(dbRange, nil)
	defer iter.Release()

	for iter.Next() {
		if next, err := walkFunc(iter.Key(), iter.Value()); err != nil {
			return err
		} else if !next {
			break
		}
	}

	return setLevelDBCoreError(iter.Error())
}
