package visits

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 18, 15, 30, 0, 0, time.UTC)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := NewStore(db)
	s.now = func() time.Time { return fixedNow }
	return s, mock
}

func TestStore_Migrate(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS visits").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_visits_created_at").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Migrate_Error(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("CREATE TABLE").WillReturnError(errors.New("disk full"))

	err := s.Migrate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestStore_Record_DefaultsTimestamp(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO visits").
		WithArgs("abc123", "Mozilla/5.0", "/achievements", fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := s.Record(context.Background(), Visit{HashedIP: "abc123", UserAgent: "Mozilla/5.0", Path: "/achievements"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Stats(t *testing.T) {
	s, mock := newMockStore(t)
	startOfDay := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	weekAgo := fixedNow.Add(-7 * 24 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM visits")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(DISTINCT hashed_ip) FROM visits")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM visits WHERE created_at >= ?")).
		WithArgs(startOfDay).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM visits WHERE created_at >= ?")).
		WithArgs(weekAgo).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(20))
	mock.ExpectQuery("SELECT path, COUNT").
		WithArgs(topPathsLimit).
		WillReturnRows(sqlmock.NewRows([]string{"path", "views"}).
			AddRow("/", 30).
			AddRow("/achievements", 12))
	mock.ExpectQuery("SELECT id, hashed_ip").
		WithArgs(recentLimit).
		WillReturnRows(sqlmock.NewRows([]string{"id", "hashed_ip", "user_agent", "path", "created_at"}).
			AddRow(2, "h2", "ua", "/", fixedNow).
			AddRow(1, "h1", "ua", "/achievements", fixedNow.Add(-time.Hour)))

	stats, err := s.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(42), stats.TotalVisits)
	assert.Equal(t, int64(7), stats.UniqueVisitors)
	assert.Equal(t, int64(3), stats.VisitsToday)
	assert.Equal(t, int64(20), stats.VisitsThisWeek)
	assert.Equal(t, []PathCount{{Path: "/", Views: 30}, {Path: "/achievements", Views: 12}}, stats.TopPaths)
	require.Len(t, stats.Recent, 2)
	assert.Equal(t, int64(2), stats.Recent[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Stats_QueryError(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM visits")).WillReturnError(errors.New("locked"))

	_, err := s.Stats(context.Background())
	assert.Error(t, err)
}

func TestStore_Cleanup(t *testing.T) {
	s, mock := newMockStore(t)
	retention := 30 * 24 * time.Hour

	mock.ExpectExec("DELETE FROM visits WHERE created_at").
		WithArgs(fixedNow.Add(-retention)).
		WillReturnResult(sqlmock.NewResult(0, 5))

	n, err := s.Cleanup(context.Background(), retention)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
