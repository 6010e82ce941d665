package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dtroode/gophframe/internal/model"
)

var errReadOnlyThemes = errors.New("theme file is read-only")

type themeFile struct {
	Themes []model.Theme `yaml:"themes"`
}

// loadGroup reads one group from a YAML file. A missing id defaults to the
// file name without extension.
func loadGroup(path string) (model.Group, error) {
	var group model.Group
	if err := decodeFile(path, &group); err != nil {
		return model.Group{}, err
	}

	if strings.TrimSpace(group.Name) == "" {
		return model.Group{}, fmt.Errorf("%s: group name is required", path)
	}
	if group.ID == "" {
		group.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	for i, p := range group.Products {
		if p.ID == "" {
			group.Products[i].ID = fmt.Sprintf("%s-%d", group.ID, i+1)
		}
	}
	if bg := group.Background; bg != nil {
		switch bg.Kind {
		case model.BackgroundColor, model.BackgroundImage:
		default:
			return model.Group{}, fmt.Errorf("%s: unknown background type %q", path, bg.Kind)
		}
	}
	return group, nil
}

func loadGroups(paths []string) ([]model.Group, error) {
	groups := make([]model.Group, 0, len(paths))
	for _, p := range paths {
		g, err := loadGroup(p)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// loadThemes reads custom themes from a YAML file with a top-level themes list.
func loadThemes(path string) ([]model.Theme, error) {
	var file themeFile
	if err := decodeFile(path, &file); err != nil {
		return nil, err
	}
	for i, t := range file.Themes {
		if t.ID == "" {
			return nil, fmt.Errorf("%s: theme %d has no id", path, i+1)
		}
	}
	return file.Themes, nil
}

func decodeFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// fileThemes serves themes loaded from a file to theme.Registry.
type fileThemes []model.Theme

func (f fileThemes) List(context.Context) ([]model.Theme, error) { return f, nil }

func (fileThemes) Create(context.Context, model.Theme) error { return errReadOnlyThemes }

func (fileThemes) Update(context.Context, model.Theme) error { return errReadOnlyThemes }

func (fileThemes) Delete(context.Context, string) error { return errReadOnlyThemes }

// staticGroups lists groups loaded from files for the auditor.
type staticGroups []model.Group

func (s staticGroups) List(context.Context) ([]model.Group, error) { return s, nil }
