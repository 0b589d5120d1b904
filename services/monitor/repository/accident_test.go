package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praditya/siaga/internal/pkg/models"
	"github.com/praditya/siaga/services/monitor"
)

var accidentColumns = []string{
	"id", "camera_id", "latitude", "longitude", "severity", "timestamp", "video_url", "status",
}

func newTestRepo(t *testing.T) (*AccidentRepo, sqlmock.Sqlmock, func()) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := &AccidentRepo{
		db:  sqlxDB,
		cfg: &models.Config{},
	}

	return repo, mock, func() { mockDB.Close() }
}

func TestGetAccidents(t *testing.T) {
	id1 := uuid.New()
	id2 := uuid.New()
	now := time.Now()
	clip := "https://storage.example.com/clip.mp4"

	tests := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		wantLen   int
		wantErr   bool
	}{
		{
			name: "returns rows newest first",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(accidentColumns).
					AddRow(id1, "cam-01", -6.2, 106.8, "severe", now, clip, models.AccidentStatusPending).
					AddRow(id2, "cam-02", -6.3, 106.9, "minor", now.Add(-time.Hour), nil, models.AccidentStatusResponding)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, camera_id, latitude, longitude, severity, timestamp, video_url, status")).
					WillReturnRows(rows)
			},
			wantLen: 2,
		},
		{
			name: "empty table yields empty slice",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, camera_id")).
					WillReturnRows(sqlmock.NewRows(accidentColumns))
			},
			wantLen: 0,
		},
		{
			name: "query failure",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, camera_id")).
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newTestRepo(t)
			defer cleanup()

			tt.mockSetup(mock)

			accidents, err := repo.GetAccidents(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Len(t, accidents, tt.wantLen)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetAccidentsByStatus(t *testing.T) {
	repo, mock, cleanup := newTestRepo(t)
	defer cleanup()

	id := uuid.New()
	rows := sqlmock.NewRows(accidentColumns).
		AddRow(id, "cam-01", -6.2, 106.8, "severe", time.Now(), nil, models.AccidentStatusPending)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE status = $1")).
		WithArgs(models.AccidentStatusPending).
		WillReturnRows(rows)

	accidents, err := repo.GetAccidentsByStatus(context.Background(), models.AccidentStatusPending)
	require.NoError(t, err)
	require.Len(t, accidents, 1)
	assert.Equal(t, id, accidents[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUploadedAccidents(t *testing.T) {
	repo, mock, cleanup := newTestRepo(t)
	defer cleanup()

	id := uuid.New()
	clip := "https://storage.example.com/clip.mp4"
	rows := sqlmock.NewRows(accidentColumns).
		AddRow(id, "cam-01", -6.2, 106.8, "severe", time.Now(), clip, models.AccidentStatusPending)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE status = $1 AND video_url IS NOT NULL")).
		WithArgs(models.AccidentStatusPending).
		WillReturnRows(rows)

	accidents, err := repo.GetUploadedAccidents(context.Background())
	require.NoError(t, err)
	require.Len(t, accidents, 1)
	assert.True(t, accidents[0].HasVideo())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAccidentByID(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(accidentColumns).
					AddRow(id, "cam-01", -6.2, 106.8, "severe", time.Now(), nil, models.AccidentStatusPending)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
					WithArgs(id).
					WillReturnRows(rows)
			},
		},
		{
			name: "not found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
					WithArgs(id).
					WillReturnRows(sqlmock.NewRows(accidentColumns))
			},
			wantErr: monitor.ErrAccidentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newTestRepo(t)
			defer cleanup()

			tt.mockSetup(mock)

			accident, err := repo.GetAccidentByID(context.Background(), id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, id, accident.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		wantErr   bool
	}{
		{
			name: "one row updated",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE accidents")).
					WithArgs(models.AccidentStatusResponding, id).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "zero rows is not an error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE accidents")).
					WithArgs(models.AccidentStatusResponding, id).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
		},
		{
			name: "exec failure",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE accidents")).
					WithArgs(models.AccidentStatusResponding, id).
					WillReturnError(errors.New("write failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newTestRepo(t)
			defer cleanup()

			tt.mockSetup(mock)

			err := repo.UpdateStatus(context.Background(), id, models.AccidentStatusResponding)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
