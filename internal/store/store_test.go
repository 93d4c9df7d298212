package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStoreRoundTrip(t *testing.T) {
	st := NewMemStore()

	_, ok, err := st.Load(KeyReports)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, st.Save(KeyReports, []byte(`[{"id":"r-1"}]`)))
	v, ok, err := st.Load(KeyReports)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"r-1"}]`, string(v))

	// Replace-whole-value semantics.
	require.NoError(t, st.Save(KeyReports, []byte(`[]`)))
	v, _, _ = st.Load(KeyReports)
	assert.Equal(t, `[]`, string(v))

	require.NoError(t, st.Delete(KeyReports))
	_, ok, _ = st.Load(KeyReports)
	assert.False(t, ok)
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eodly.db")
	st, err := OpenSQLite(path)
	require.NoError(t, err)

	_, ok, err := st.Load(KeySession)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, st.Save(KeySession, []byte(`{"id":"u-1"}`)))
	require.NoError(t, st.Save(KeySession, []byte(`{"id":"u-2"}`)))

	v, ok, err := st.Load(KeySession)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"id":"u-2"}`, string(v), "save replaces the previous value")

	require.NoError(t, st.Delete(KeySession))
	_, ok, _ = st.Load(KeySession)
	assert.False(t, ok)

	// Values survive reopening the file.
	require.NoError(t, st.Save(KeyTheme, []byte("dark")))
	st2, err := OpenSQLite(path)
	require.NoError(t, err)
	v, ok, err = st2.Load(KeyTheme)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "dark", string(v))
}
