package metadata

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSetAndGet_InsertThenGet(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "auth_token", []byte("tok-123")))

	v, err := r.Get(ctx, "auth_token")
	require.NoError(t, err)
	require.Equal(t, []byte("tok-123"), v)
}

func TestGet_NotExists_ReturnsNilNil(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSet_UpsertOverwritesValue(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "auth_token", []byte("old")))
	require.NoError(t, r.Set(ctx, "auth_token", []byte("new")))

	v, err := r.Get(ctx, "auth_token")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)
}

func TestDelete_RemovesKey(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "user_data", []byte(`{}`)))
	require.NoError(t, r.Delete(ctx, "user_data"))

	v, err := r.Get(ctx, "user_data")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestClear_RemovesEverything(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "auth_token", []byte("t")))
	require.NoError(t, r.Set(ctx, "user_data", []byte(`{}`)))
	require.NoError(t, r.Clear(ctx))

	for _, k := range []string{"auth_token", "user_data"} {
		v, err := r.Get(ctx, k)
		require.NoError(t, err)
		require.Nil(t, v)
	}
}
