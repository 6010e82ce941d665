package theme

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dtroode/gophframe/internal/logger"
	"github.com/dtroode/gophframe/internal/model"
)

// Registry catalogs built-in and custom themes. Built-ins are fixed and come
// first; customs keep their insertion order. When a model.ThemeStore is set,
// custom mutations are written to it before the in-memory catalog changes.
type Registry struct {
	mu       sync.RWMutex
	builtins []model.Theme
	customs  []model.Theme
	store    model.ThemeStore
	log      *logger.Logger
}

// NewRegistry creates a registry. store may be nil for a memory-only catalog.
func NewRegistry(store model.ThemeStore, log *logger.Logger) *Registry {
	return &Registry{
		builtins: builtins(),
		store:    store,
		log:      log,
	}
}

// Load replaces the custom themes with the ones held by the store.
func (r *Registry) Load(ctx context.Context) error {
	if r.store == nil {
		return nil
	}
	themes, err := r.store.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load custom themes: %w", err)
	}

	customs := make([]model.Theme, 0, len(themes))
	for _, t := range themes {
		if r.isBuiltin(t.ID) {
			r.log.Warn("skipping stored theme shadowing a built-in", "theme_id", t.ID)
			continue
		}
		t.IsCustom = true
		customs = append(customs, t)
	}

	r.mu.Lock()
	r.customs = customs
	r.mu.Unlock()

	r.log.Debug("custom themes loaded", "count", len(customs))
	return nil
}

// List returns built-ins followed by customs.
func (r *Registry) List() []model.Theme {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Theme, 0, len(r.builtins)+len(r.customs))
	out = append(out, r.builtins...)
	out = append(out, r.customs...)
	return out
}

// Resolve returns the theme with id, or the default theme. It never fails.
func (r *Registry) Resolve(id string) model.Theme {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if id != "" {
		for _, t := range r.builtins {
			if t.ID == id {
				return t
			}
		}
		for _, t := range r.customs {
			if t.ID == id {
				return t
			}
		}
	}
	for _, t := range r.builtins {
		if t.ID == DefaultID {
			return t
		}
	}
	return r.builtins[0]
}

// Default returns the designated default theme.
func (r *Registry) Default() model.Theme {
	return r.Resolve(DefaultID)
}

// Add mints a custom theme with a fresh id.
func (r *Registry) Add(ctx context.Context, name string, styles model.ThemeStyles) (model.Theme, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Theme{}, fmt.Errorf("%w: theme name is required", model.ErrInvalidArgument)
	}

	t := model.Theme{
		ID:       CustomPrefix + uuid.NewString(),
		Name:     name,
		IsCustom: true,
		Styles:   styles,
	}

	if r.store != nil {
		if err := r.store.Create(ctx, t); err != nil {
			return model.Theme{}, fmt.Errorf("failed to store theme: %w", err)
		}
	}

	r.mu.Lock()
	r.customs = append(r.customs, t)
	r.mu.Unlock()

	r.log.Info("custom theme added", "theme_id", t.ID, "name", t.Name)
	return t, nil
}

// Update replaces the custom theme with the same id. Themes not flagged as
// custom, including every built-in, are ignored.
func (r *Registry) Update(ctx context.Context, t model.Theme) error {
	if !t.IsCustom || r.isBuiltin(t.ID) {
		return nil
	}

	r.mu.RLock()
	idx := r.customIndex(t.ID)
	r.mu.RUnlock()
	if idx < 0 {
		return nil
	}

	if r.store != nil {
		if err := r.store.Update(ctx, t); err != nil {
			return fmt.Errorf("failed to update theme: %w", err)
		}
	}

	r.mu.Lock()
	if i := r.customIndex(t.ID); i >= 0 {
		r.customs[i] = t
	}
	r.mu.Unlock()
	return nil
}

// Delete removes a custom theme. Unknown ids and built-ins are ignored.
func (r *Registry) Delete(ctx context.Context, id string) error {
	r.mu.RLock()
	idx := r.customIndex(id)
	r.mu.RUnlock()
	if idx < 0 {
		return nil
	}

	if r.store != nil {
		if err := r.store.Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete theme: %w", err)
		}
	}

	r.mu.Lock()
	if i := r.customIndex(id); i >= 0 {
		r.customs = append(r.customs[:i], r.customs[i+1:]...)
	}
	r.mu.Unlock()

	r.log.Info("custom theme deleted", "theme_id", id)
	return nil
}

func (r *Registry) isBuiltin(id string) bool {
	for _, t := range r.builtins {
		if t.ID == id {
			return true
		}
	}
	return false
}

// customIndex must be called with mu held.
func (r *Registry) customIndex(id string) int {
	for i, t := range r.customs {
		if t.ID == id {
			return i
		}
	}
	return -1
}
