package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/gophframe/internal/model"
)

func newMockConnection(t *testing.T) (*Connection, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return &Connection{DB: db}, mock
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func sampleGroup() model.Group {
	return model.Group{
		ID:   "g-1",
		Name: "Snacks",
		Products: []model.Product{
			{ID: "p-1", Name: "Chips", ImageID: "img-1", IsActive: true},
			{ID: "p-2", Name: "Soda", ImageID: "img-2", IsActive: false},
		},
		Background: model.ImageBackground("img-bg"),
		ThemeID:    "retro-funk",
	}
}

var groupRowColumns = []string{"id", "name", "products", "background", "theme_id", "created_at", "updated_at", "version"}

func TestGroupRepository_Create(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		g := sampleGroup()

		mock.ExpectQuery(`INSERT INTO groups`).
			WithArgs(g.ID, g.Name, mustJSON(t, g.Products), mustJSON(t, g.Background), g.ThemeID).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at", "version"}).AddRow(created, created, int64(1)))

		saved, err := NewGroupRepository(conn).Create(ctx, g)
		require.NoError(t, err)
		assert.Equal(t, created, saved.CreatedAt)
		assert.Equal(t, g.Products, saved.Products)
	})

	t.Run("nil products and background", func(t *testing.T) {
		conn, mock := newMockConnection(t)

		mock.ExpectQuery(`INSERT INTO groups`).
			WithArgs("g-2", "Empty", "[]", nil, "").
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at", "version"}).AddRow(created, created, int64(1)))

		_, err := NewGroupRepository(conn).Create(ctx, model.Group{ID: "g-2", Name: "Empty"})
		require.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectQuery(`INSERT INTO groups`).WillReturnError(errors.New("duplicate key"))

		_, err := NewGroupRepository(conn).Create(ctx, sampleGroup())
		assert.ErrorContains(t, err, "duplicate key")
	})
}

func TestGroupRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	want := sampleGroup()
	want.CreatedAt, want.UpdatedAt = now, now
	want.Version = 4

	tests := []struct {
		name    string
		setup   func(sqlmock.Sqlmock)
		want    model.Group
		wantErr error
	}{
		{
			name: "found",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`SELECT (.+) FROM groups WHERE id = \$1`).
					WithArgs("g-1").
					WillReturnRows(sqlmock.NewRows(groupRowColumns).AddRow(
						"g-1", "Snacks",
						[]byte(`[{"id":"p-1","name":"Chips","imageId":"img-1","isActive":true},{"id":"p-2","name":"Soda","imageId":"img-2","isActive":false}]`),
						[]byte(`{"type":"image","imageId":"img-bg"}`),
						"retro-funk", now, now, int64(4),
					))
			},
			want: want,
		},
		{
			name: "null background",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`SELECT (.+) FROM groups WHERE id = \$1`).
					WithArgs("g-1").
					WillReturnRows(sqlmock.NewRows(groupRowColumns).AddRow(
						"g-1", "Snacks", []byte(`[]`), nil, "", now, now, int64(1),
					))
			},
			want: model.Group{ID: "g-1", Name: "Snacks", Products: []model.Product{}, CreatedAt: now, UpdatedAt: now, Version: 1},
		},
		{
			name: "not found",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`SELECT (.+) FROM groups WHERE id = \$1`).
					WithArgs("g-1").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			tt.setup(mock)

			got, err := NewGroupRepository(conn).GetByID(ctx, "g-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGroupRepository_GetByIDCorruptProducts(t *testing.T) {
	conn, mock := newMockConnection(t)
	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM groups`).
		WillReturnRows(sqlmock.NewRows(groupRowColumns).AddRow("g-1", "Snacks", []byte(`{broken`), nil, "", now, now, int64(1)))

	_, err := NewGroupRepository(conn).GetByID(context.Background(), "g-1")
	assert.ErrorContains(t, err, "failed to decode products")
}

func TestGroupRepository_List(t *testing.T) {
	conn, mock := newMockConnection(t)
	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM groups ORDER BY created_at ASC, id ASC`).
		WillReturnRows(sqlmock.NewRows(groupRowColumns).
			AddRow("g-1", "A", []byte(`[]`), nil, "", now, now, int64(1)).
			AddRow("g-2", "B", []byte(`[{"id":"p","name":"x","imageId":"i","isActive":true}]`), []byte(`{"type":"color","value":"#fff"}`), "light-clean", now, now, int64(2)))

	groups, err := NewGroupRepository(conn).List(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "A", groups[0].Name)
	assert.Equal(t, model.ColorBackground("#fff"), groups[1].Background)
	assert.Equal(t, []model.BlobID{"i"}, groups[1].ImageIDs())
}

func TestGroupRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success bumps the version", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		g := sampleGroup()
		g.Version = 3
		updated := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(`UPDATE groups SET (.+) WHERE id = \$1 AND version = \$6`).
			WithArgs(g.ID, g.Name, mustJSON(t, g.Products), mustJSON(t, g.Background), g.ThemeID, int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at", "version"}).AddRow(updated, updated, int64(4)))

		saved, err := NewGroupRepository(conn).Update(ctx, g)
		require.NoError(t, err)
		assert.Equal(t, updated, saved.UpdatedAt)
		assert.Equal(t, int64(4), saved.Version)
	})

	t.Run("stale version", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectQuery(`UPDATE groups`).WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(`SELECT EXISTS`).WithArgs("g-1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		_, err := NewGroupRepository(conn).Update(ctx, sampleGroup())
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("missing row", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectQuery(`UPDATE groups`).WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(`SELECT EXISTS`).WithArgs("g-1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		_, err := NewGroupRepository(conn).Update(ctx, sampleGroup())
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("existence check error", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectQuery(`UPDATE groups`).WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(`SELECT EXISTS`).WillReturnError(errors.New("connection reset"))

		_, err := NewGroupRepository(conn).Update(ctx, sampleGroup())
		assert.ErrorContains(t, err, "connection reset")
	})
}

func TestGroupRepository_Delete(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "deleted",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec(`DELETE FROM groups WHERE id = \$1`).WithArgs("g-1").WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec(`DELETE FROM groups`).WithArgs("g-1").WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			tt.setup(mock)

			err := NewGroupRepository(conn).Delete(context.Background(), "g-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
