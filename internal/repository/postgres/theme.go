package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dtroode/gophframe/internal/model"
)

var _ model.ThemeStore = (*ThemeRepository)(nil)

// ThemeRepository stores custom themes in insertion order.
type ThemeRepository struct {
	db *Connection
}

func NewThemeRepository(db *Connection) *ThemeRepository {
	return &ThemeRepository{
		db: db,
	}
}

func (r *ThemeRepository) List(ctx context.Context) ([]model.Theme, error) {
	query := `SELECT id, name, styles FROM themes ORDER BY position ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var themes []model.Theme
	for rows.Next() {
		var (
			t      model.Theme
			styles []byte
		)
		if err := rows.Scan(&t.ID, &t.Name, &styles); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(styles, &t.Styles); err != nil {
			return nil, fmt.Errorf("failed to decode styles of theme %s: %w", t.ID, err)
		}
		t.IsCustom = true
		themes = append(themes, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return themes, nil
}

func (r *ThemeRepository) Create(ctx context.Context, theme model.Theme) error {
	styles, err := json.Marshal(theme.Styles)
	if err != nil {
		return fmt.Errorf("failed to encode styles: %w", err)
	}

	const query = `INSERT INTO themes (id, name, styles) VALUES ($1, $2, $3::jsonb)`
	_, err = r.db.ExecContext(ctx, query, theme.ID, theme.Name, string(styles))
	return err
}

func (r *ThemeRepository) Update(ctx context.Context, theme model.Theme) error {
	styles, err := json.Marshal(theme.Styles)
	if err != nil {
		return fmt.Errorf("failed to encode styles: %w", err)
	}

	const query = `UPDATE themes SET name = $2, styles = $3::jsonb WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, theme.ID, theme.Name, string(styles))
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

func (r *ThemeRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM themes WHERE id = $1`
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
