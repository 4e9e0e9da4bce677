package storage

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tequdev/xahau-governance-hook-test/lib/errors"
)

func TestJournalReadsOwnWrites(t *testing.T) {
	st := NewTestStorage()
	defer st.Close()

	require.NoError(t, st.PutRaw([]byte("kept"), []byte("old")))

	jt := st.OpenJournal()

	require.NoError(t, jt.PutRaw([]byte("new"), []byte("value")))
	require.NoError(t, jt.PutRaw([]byte("kept"), []byte("changed")))

	{ // in journal
		b, err := jt.GetRaw([]byte("new"))
		require.NoError(t, err)
		require.Equal(t, []byte("value"), b)

		b, err = jt.GetRaw([]byte("kept"))
		require.NoError(t, err)
		require.Equal(t, []byte("changed"), b)
	}

	{ // not yet in storage
		_, err := st.GetRaw([]byte("new"))
		require.Equal(t, errors.StorageRecordDoesNotExist, err)

		b, err := st.GetRaw([]byte("kept"))
		require.NoError(t, err)
		require.Equal(t, []byte("old"), b)
	}

	require.NoError(t, jt.Commit())

	b, err := st.GetRaw([]byte("new"))
	require.NoError(t, err)
	require.Equal(t, []byte("value"), b)
}

func TestJournalDelete(t *testing.T) {
	st := NewTestStorage()
	defer st.Close()

	require.NoError(t, st.PutRaw([]byte("C"), []byte{1}))

	jt := st.OpenJournal()
	require.NoError(t, jt.Remove([]byte("C")))

	exists, err := jt.Has([]byte("C"))
	require.NoError(t, err)
	require.False(t, exists)

	_, err = jt.GetRaw([]byte("C"))
	require.Equal(t, errors.StorageRecordDoesNotExist, err)

	{ // put after delete is visible again
		require.NoError(t, jt.PutRaw([]byte("C"), []byte{2}))
		b, err := jt.GetRaw([]byte("C"))
		require.NoError(t, err)
		require.Equal(t, []byte{2}, b)
		require.NoError(t, jt.Remove([]byte("C")))
	}

	require.NoError(t, jt.Commit())

	exists, err = st.Has([]byte("C"))
	require.NoError(t, err)
	require.False(t, exists)
}

func TestJournalDiscard(t *testing.T) {
	st := NewTestStorage()
	defer st.Close()

	jt := st.OpenJournal()
	require.NoError(t, jt.PutRaw([]byte("a"), []byte{1}))
	require.NoError(t, jt.Discard())

	exists, _ := st.Has([]byte("a"))
	require.False(t, exists)

	// closed journal can not be used again
	require.Equal(t, errors.StorageJournalClosed, jt.Commit())
	require.Equal(t, errors.StorageJournalClosed, jt.PutRaw([]byte("a"), []byte{1}))
}

func TestJournalOverTransaction(t *testing.T) {
	st := NewTestStorage()
	defer st.Close()

	ts, err := st.OpenTransaction()
	require.NoError(t, err)

	{ // first journal is committed into the transaction
		jt := ts.OpenJournal()
		require.NoError(t, jt.PutRaw([]byte("a"), []byte{1}))
		require.NoError(t, jt.Commit())
	}

	{ // second journal is discarded
		jt := ts.OpenJournal()
		require.NoError(t, jt.PutRaw([]byte("b"), []byte{2}))
		require.NoError(t, jt.Discard())
	}

	require.NoError(t, ts.Commit())

	exists, _ := st.Has([]byte("a"))
	require.True(t, exists)
	exists, _ = st.Has([]byte("b"))
	require.False(t, exists)
}

func TestNestedJournal(t *testing.T) {
	st := NewTestStorage()
	defer st.Close()

	outer := st.OpenJournal()
	inner := outer.OpenJournal()

	require.NoError(t, inner.PutRaw([]byte("a"), []byte{1}))
	require.NoError(t, inner.Commit())

	b, err := outer.GetRaw([]byte("a"))
	require.NoError(t, err)
	require.Equal(t, []byte{1}, b)

	exists, _ := st.Has([]byte("a"))
	require.False(t, exists)

	require.NoError(t, outer.Commit())
	exists, _ = st.Has([]byte("a"))
	require.True(t, exists)
}
