package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/dtroode/gophframe/internal/logger"
	"github.com/dtroode/gophframe/internal/model"
)

// GroupLister lists every group whose images must be kept.
type GroupLister interface {
	List(ctx context.Context) ([]model.Group, error)
}

// BlobSweeper enumerates and deletes blobs.
type BlobSweeper interface {
	IDs(ctx context.Context) ([]model.BlobID, error)
	Delete(ctx context.Context, id model.BlobID) error
}

// AuditReport summarizes one sweep.
type AuditReport struct {
	Scanned    int
	Referenced int
	Orphans    []model.BlobID
	Deleted    int
	Failed     int
	Applied    bool
}

// Auditor finds blobs no group references. It never runs on its own; an
// operator triggers it, and must do so while no edits are in flight since a
// blob stored but not yet committed looks exactly like an orphan.
type Auditor struct {
	groups GroupLister
	blobs  BlobSweeper
	logger *logger.Logger
}

// NewAuditor creates an orphan auditor.
func NewAuditor(groups GroupLister, blobs BlobSweeper, logger *logger.Logger) *Auditor {
	return &Auditor{groups: groups, blobs: blobs, logger: logger}
}

// Sweep reports orphaned blobs and deletes them when apply is true.
func (a *Auditor) Sweep(ctx context.Context, apply bool) (AuditReport, error) {
	groups, err := a.groups.List(ctx)
	if err != nil {
		return AuditReport{}, fmt.Errorf("failed to list groups: %w", err)
	}
	referenced := make(map[model.BlobID]struct{})
	for _, g := range groups {
		for _, id := range g.ImageIDs() {
			referenced[id] = struct{}{}
		}
	}

	ids, err := a.blobs.IDs(ctx)
	if err != nil {
		return AuditReport{}, fmt.Errorf("failed to list blobs: %w", err)
	}

	report := AuditReport{Scanned: len(ids), Applied: apply}
	for _, id := range ids {
		if _, ok := referenced[id]; ok {
			report.Referenced++
			continue
		}
		report.Orphans = append(report.Orphans, id)
	}
	sort.Slice(report.Orphans, func(i, j int) bool { return report.Orphans[i] < report.Orphans[j] })

	if apply {
		for _, id := range report.Orphans {
			if err := a.blobs.Delete(ctx, id); err != nil {
				report.Failed++
				a.logger.Warn("failed to delete orphaned blob", "image_id", id, "error", err)
				continue
			}
			report.Deleted++
		}
	}

	a.logger.Info("blob audit finished",
		"scanned", report.Scanned,
		"referenced", report.Referenced,
		"orphans", len(report.Orphans),
		"deleted", report.Deleted,
		"failed", report.Failed,
		"applied", apply)
	return report, nil
}
