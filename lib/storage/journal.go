package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	leveldbIterator "github.com/syndtr/goleveldb/leveldb/iterator"
	leveldbOpt "github.com/syndtr/goleveldb/leveldb/opt"
	leveldbUtil "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/tequdev/xahau-governance-hook-test/lib/errors"
)

// Journal collects puts and deletes over a core and writes them in one
// batch on `Commit`. Reads see the journal's own writes first.
type Journal struct {
	sync.RWMutex

	core  LevelDBCore
	batch *leveldb.Batch

	inserted map[string][]byte
	deleted  map[string]struct{}
	closed   bool
}

func NewJournal(core LevelDBCore) *Journal {
	return &Journal{
		core:     core,
		batch:    &leveldb.Batch{},
		inserted: map[string][]byte{},
		deleted:  map[string]struct{}{},
	}
}

func (j *Journal) convertKey(key []byte) string {
	return string(key)
}

func (j *Journal) Has(key []byte, opt *leveldbOpt.ReadOptions) (bool, error) {
	j.RLock()
	defer j.RUnlock()

	k := j.convertKey(key)
	if _, found := j.inserted[k]; found {
		return true, nil
	}
	if _, found := j.deleted[k]; found {
		return false, nil
	}

	return j.core.Has(key, opt)
}

func (j *Journal) Get(key []byte, opt *leveldbOpt.ReadOptions) (b []byte, err error) {
	j.RLock()
	defer j.RUnlock()

	k := j.convertKey(key)
	var found bool
	if b, found = j.inserted[k]; found {
		return
	}
	if _, found = j.deleted[k]; found {
		return nil, leveldb.ErrNotFound
	}

	return j.core.Get(key, opt)
}

// NewIterator does not see the journal's pending writes.
func (j *Journal) NewIterator(r *leveldbUtil.Range, opt *leveldbOpt.ReadOptions) leveldbIterator.Iterator {
	return j.core.NewIterator(r, opt)
}

func (j *Journal) Put(key []byte, v []byte, opt *leveldbOpt.WriteOptions) error {
	j.Lock()
	defer j.Unlock()

	if j.closed {
		return errors.StorageJournalClosed
	}

	k := j.convertKey(key)
	value := make([]byte, len(v))
	copy(value, v)

	delete(j.deleted, k)
	j.inserted[k] = value
	j.batch.Put(key, value)

	return nil
}

func (j *Journal) Delete(key []byte, opt *leveldbOpt.WriteOptions) error {
	j.Lock()
	defer j.Unlock()

	if j.closed {
		return errors.StorageJournalClosed
	}

	k := j.convertKey(key)
	delete(j.inserted, k)
	j.deleted[k] = struct{}{}
	j.batch.Delete(key)

	return nil
}

// Write appends the given batch to the journal.
func (j *Journal) Write(batch *leveldb.Batch, opt *leveldbOpt.WriteOptions) (err error) {
	if batch == nil {
		return nil
	}

	return batch.Replay(journalReplay{j})
}

// Len is the number of pending operations.
func (j *Journal) Len() int {
	j.RLock()
	defer j.RUnlock()

	return j.batch.Len()
}

func (j *Journal) Discard() error {
	j.Lock()
	defer j.Unlock()

	if j.closed {
		return errors.StorageJournalClosed
	}

	j.clear()
	j.closed = true

	return nil
}

func (j *Journal) Commit() (err error) {
	j.Lock()
	defer j.Unlock()

	if j.closed {
		return errors.StorageJournalClosed
	}

	if j.batch.Len() > 0 {
		if err = j.core.Write(j.batch, nil); err != nil {
			return
		}
	}

	j.clear()
	j.closed = true

	return
}

func (j *Journal) Dump() []byte {
	j.RLock()
	defer j.RUnlock()

	return j.batch.Dump()
}

func (j *Journal) clear() {
	j.batch = &leveldb.Batch{}
	j.inserted = map[string][]byte{}
	j.deleted = map[string]struct{}{}
}

type journalReplay struct {
	j *Journal
}

func (r journalReplay) Put(key, value []byte) {
	r.j.Put(key, value, nil)
}

func (r journalReplay) Delete(key []byte) {
	r.j.Delete(key, nil)
}
