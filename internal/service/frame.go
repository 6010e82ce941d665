package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dtroode/gophframe/internal/layout"
	"github.com/dtroode/gophframe/internal/logger"
	"github.com/dtroode/gophframe/internal/metrics"
	"github.com/dtroode/gophframe/internal/model"
	"github.com/dtroode/gophframe/internal/render"
)

// State is a step of a composition.
type State string

const (
	StateValidating       State = "validating"
	StateLoadingResources State = "loading_resources"
	StateRendering        State = "rendering"
	StateDone             State = "done"
	StateFailed           State = "failed"
)

// BlobReader loads many blobs at once, leaving out the ones it cannot read.
type BlobReader interface {
	GetMany(ctx context.Context, ids []model.BlobID) map[model.BlobID][]byte
}

// FontPreloader makes theme fonts available before drawing.
type FontPreloader interface {
	Preload(ctx context.Context, styles ...model.FontStyle) error
}

// Composition is the result of one successful Compose call.
type Composition struct {
	PNG       []byte
	Grid      layout.Grid
	Fallbacks []render.Fallback
}

// DataURL returns the PNG as a data URL.
func (c Composition) DataURL() string {
	return render.DataURL(c.PNG)
}

// Frame composes groups into themed PNG frames. It keeps no state between
// calls and is safe for concurrent use.
type Frame struct {
	blobs    BlobReader
	fonts    FontPreloader
	renderer *render.Renderer
	metrics  *metrics.Metrics
	logger   *logger.Logger
}

// NewFrame creates the composition pipeline. m may be nil.
func NewFrame(
	blobs BlobReader,
	fonts FontPreloader,
	renderer *render.Renderer,
	m *metrics.Metrics,
	logger *logger.Logger,
) *Frame {
	return &Frame{
		blobs:    blobs,
		fonts:    fonts,
		renderer: renderer,
		metrics:  m,
		logger:   logger,
	}
}

// Compose renders group with an already resolved theme. It fails only with
// model.ErrNoActiveItems or an encoding error; missing or broken resources
// are recovered and listed in Composition.Fallbacks.
func (f *Frame) Compose(ctx context.Context, group model.Group, theme model.Theme) (Composition, error) {
	started := time.Now()
	log := f.logger.With("group_id", group.ID, "theme_id", theme.ID)

	comp, err := f.compose(ctx, log, group, theme)
	if err != nil {
		log.Warn("frame composition failed", "state", StateFailed, "error", err)
		f.metrics.ObserveComposition(string(StateFailed), time.Since(started))
		return Composition{}, err
	}

	log.Info("frame composed",
		"state", StateDone,
		"items", comp.Grid.Items,
		"width", comp.Grid.Width,
		"height", comp.Grid.Height,
		"fallbacks", len(comp.Fallbacks),
		"duration", time.Since(started))
	f.metrics.ObserveComposition(string(StateDone), time.Since(started))
	return comp, nil
}

func (f *Frame) compose(ctx context.Context, log *logger.Logger, group model.Group, theme model.Theme) (Composition, error) {
	log.Debug("frame state", "state", StateValidating)
	active := group.ActiveProducts()
	if len(active) == 0 {
		return Composition{}, model.ErrNoActiveItems
	}
	grid, err := layout.Compute(len(active))
	if err != nil {
		return Composition{}, fmt.Errorf("failed to compute layout: %w", err)
	}

	log.Debug("frame state", "state", StateLoadingResources,
		"title_font", theme.Styles.TitleFont.String(),
		"caption_font", theme.Styles.CaptionFont.String())
	loaded := f.load(ctx, log, group, active, theme)
	if err := ctx.Err(); err != nil {
		return Composition{}, err
	}

	log.Debug("frame state", "state", StateRendering)
	scene := render.Scene{
		Grid:       grid,
		Title:      group.Name,
		Styles:     theme.Styles,
		Background: group.Background,
		Items:      make([]render.Item, len(active)),
	}
	if bg := group.Background; bg != nil && bg.Kind == model.BackgroundImage {
		scene.BackgroundData, scene.BackgroundLoaded = loaded[bg.ImageID]
	}
	for i, p := range active {
		data, ok := loaded[p.ImageID]
		scene.Items[i] = render.Item{Name: p.Name, Data: data, Loaded: ok}
	}

	img, fallbacks := f.renderer.Render(scene)
	for _, fb := range fallbacks {
		f.metrics.AddFallback(string(fb.Kind))
		log.Warn("render fallback applied", "kind", fb.Kind, "subject", fb.Subject, "error", fb.Err)
	}

	png, err := render.EncodePNG(img)
	if err != nil {
		return Composition{}, err
	}

	return Composition{PNG: png, Grid: grid, Fallbacks: fallbacks}, nil
}

// load runs font preloading and the batched blob read side by side. Neither
// can fail the composition.
func (f *Frame) load(ctx context.Context, log *logger.Logger, group model.Group, active []model.Product, theme model.Theme) map[model.BlobID][]byte {
	ids := make([]model.BlobID, 0, len(active)+1)
	for _, p := range active {
		ids = append(ids, p.ImageID)
	}
	if bg := group.Background; bg != nil && bg.Kind == model.BackgroundImage {
		ids = append(ids, bg.ImageID)
	}

	var loaded map[model.BlobID][]byte
	var g errgroup.Group
	g.Go(func() error {
		if err := f.fonts.Preload(ctx, theme.Styles.TitleFont, theme.Styles.CaptionFont); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				log.Warn("font preload interrupted", "error", err)
			} else {
				log.Warn("could not preload fonts, substitutes will be used", "error", err)
			}
		}
		return nil
	})
	g.Go(func() error {
		loaded = f.blobs.GetMany(ctx, ids)
		return nil
	})
	_ = g.Wait()

	log.Debug("resources loaded", "requested", len(ids), "loaded", len(loaded))
	return loaded
}
