package records

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func newPostgresWithMock(t *testing.T) (*SQLRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

const (
	pgGetRe    = `(?s)^SELECT\s+value\s+FROM\s+records\s+WHERE\s+key\s*=\s*\$1$`
	pgUpsertRe = `(?s)INSERT\s+INTO\s+records\s*\(key,\s*value,\s*updated_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*now\(\)\)\s*ON\s+CONFLICT\s*\(key\)`
)

func TestPostgres_Get_Found(t *testing.T) {
	r, mock := newPostgresWithMock(t)

	mock.ExpectQuery(pgGetRe).
		WithArgs("site_content_v1").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`{}`)))

	v, err := r.Get(context.Background(), "site_content_v1")
	require.NoError(t, err)
	require.Equal(t, []byte(`{}`), v)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Get_NoRows(t *testing.T) {
	r, mock := newPostgresWithMock(t)

	mock.ExpectQuery(pgGetRe).
		WithArgs("absent").
		WillReturnError(sql.ErrNoRows)

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestPostgres_Get_DBError(t *testing.T) {
	r, mock := newPostgresWithMock(t)

	mock.ExpectQuery(pgGetRe).
		WithArgs("k").
		WillReturnError(errors.New("db down"))

	_, err := r.Get(context.Background(), "k")
	require.ErrorContains(t, err, "failed to get record[k]: db down")
}

func TestPostgres_Set(t *testing.T) {
	r, mock := newPostgresWithMock(t)

	mock.ExpectExec(pgUpsertRe).
		WithArgs("k", []byte("v")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, r.Set(context.Background(), "k", []byte("v")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Atomic_CommitsBothWrites(t *testing.T) {
	r, mock := newPostgresWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(pgUpsertRe).WithArgs("a", []byte("1")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(pgUpsertRe).WithArgs("b", []byte("2")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := r.Atomic(context.Background(), func(ctx context.Context, s Store) error {
		if err := s.Set(ctx, "a", []byte("1")); err != nil {
			return err
		}
		return s.Set(ctx, "b", []byte("2"))
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Atomic_RollsBackOnWriteError(t *testing.T) {
	r, mock := newPostgresWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(pgUpsertRe).WithArgs("a", []byte("1")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(pgUpsertRe).WithArgs("b", []byte("2")).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := r.Atomic(context.Background(), func(ctx context.Context, s Store) error {
		if err := s.Set(ctx, "a", []byte("1")); err != nil {
			return err
		}
		return s.Set(ctx, "b", []byte("2"))
	})
	require.ErrorContains(t, err, "disk full")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Atomic_CommitError(t *testing.T) {
	r, mock := newPostgresWithMock(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

	err := r.Atomic(context.Background(), func(ctx context.Context, s Store) error { return nil })
	require.ErrorContains(t, err, "failed to commit transaction")
	require.NoError(t, mock.ExpectationsWereMet())
}
