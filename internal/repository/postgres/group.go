package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dtroode/gophframe/internal/model"
)

var _ model.GroupStore = (*GroupRepository)(nil)

type GroupRepository struct {
	db *Connection
}

func NewGroupRepository(db *Connection) *GroupRepository {
	return &GroupRepository{
		db: db,
	}
}

const groupColumns = `id, name, products, background, theme_id, created_at, updated_at, version`

func (r *GroupRepository) Create(ctx context.Context, group model.Group) (model.Group, error) {
	products, background, err := encodeGroup(group)
	if err != nil {
		return model.Group{}, err
	}

	query := `
		INSERT INTO groups (id, name, products, background, theme_id)
		VALUES ($1, $2, $3::jsonb, $4::jsonb, $5)
		RETURNING created_at, updated_at, version`

	err = r.db.QueryRowContext(ctx, query,
		group.ID, group.Name, products, background, group.ThemeID,
	).Scan(&group.CreatedAt, &group.UpdatedAt, &group.Version)
	if err != nil {
		return model.Group{}, err
	}

	return group, nil
}

func (r *GroupRepository) GetByID(ctx context.Context, id string) (model.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM groups WHERE id = $1`

	group, err := scanGroup(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Group{}, model.ErrNotFound
		}
		return model.Group{}, err
	}

	return group, nil
}

func (r *GroupRepository) List(ctx context.Context) ([]model.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM groups ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []model.Group
	for rows.Next() {
		group, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}

// Update writes group only when its version matches the stored row and bumps
// the version. A mismatch is model.ErrConflict, a missing row model.ErrNotFound.
func (r *GroupRepository) Update(ctx context.Context, group model.Group) (model.Group, error) {
	products, background, err := encodeGroup(group)
	if err != nil {
		return model.Group{}, err
	}

	query := `
		UPDATE groups
		SET name = $2, products = $3::jsonb, background = $4::jsonb, theme_id = $5,
			version = version + 1, updated_at = NOW()
		WHERE id = $1 AND version = $6
		RETURNING created_at, updated_at, version`

	err = r.db.QueryRowContext(ctx, query,
		group.ID, group.Name, products, background, group.ThemeID, group.Version,
	).Scan(&group.CreatedAt, &group.UpdatedAt, &group.Version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Group{}, r.missedUpdate(ctx, group.ID)
		}
		return model.Group{}, err
	}

	return group, nil
}

// missedUpdate tells a stale version apart from a deleted group.
func (r *GroupRepository) missedUpdate(ctx context.Context, id string) error {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM groups WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return model.ErrConflict
	}
	return model.ErrNotFound
}

func (r *GroupRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM groups WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGroup(row rowScanner) (model.Group, error) {
	var (
		group      model.Group
		products   []byte
		background []byte
	)
	err := row.Scan(
		&group.ID, &group.Name, &products, &background, &group.ThemeID,
		&group.CreatedAt, &group.UpdatedAt, &group.Version,
	)
	if err != nil {
		return model.Group{}, err
	}

	group.Products = []model.Product{}
	if len(products) > 0 {
		if err := json.Unmarshal(products, &group.Products); err != nil {
			return model.Group{}, fmt.Errorf("failed to decode products of group %s: %w", group.ID, err)
		}
	}
	if len(background) > 0 && string(background) != "null" {
		var bg model.Background
		if err := json.Unmarshal(background, &bg); err != nil {
			return model.Group{}, fmt.Errorf("failed to decode background of group %s: %w", group.ID, err)
		}
		group.Background = &bg
	}

	return group, nil
}

// encodeGroup returns the JSONB parameters of a group. A nil background
// is stored as SQL NULL.
func encodeGroup(group model.Group) (string, any, error) {
	products := group.Products
	if products == nil {
		products = []model.Product{}
	}
	p, err := json.Marshal(products)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode products: %w", err)
	}

	if group.Background == nil {
		return string(p), nil, nil
	}
	bg, err := json.Marshal(group.Background)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode background: %w", err)
	}
	return string(p), string(bg), nil
}
