package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/dtroode/gophframe/internal/render"
	"github.com/dtroode/gophframe/internal/service"
	"github.com/dtroode/gophframe/internal/theme"
)

func newRenderCmd(opts *options) *cobra.Command {
	var (
		groupPaths []string
		themesPath string
		outDir     string
		fontDirs   []string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render group files into PNG frames",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := opts.logger(cmd)
			groups, err := loadGroups(groupPaths)
			if err != nil {
				return err
			}

			var custom fileThemes
			if themesPath != "" {
				custom, err = loadThemes(themesPath)
				if err != nil {
					return err
				}
			}
			registry := theme.NewRegistry(custom, log)
			if err := registry.Load(cmd.Context()); err != nil {
				return err
			}

			blobs, err := opts.blobStore(log)
			if err != nil {
				return err
			}
			fonts := render.NewFontBook(fontDirs, log)
			frame := service.NewFrame(blobs, fonts, render.NewRenderer(fonts), nil, log)

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("failed to create output dir: %w", err)
			}

			now := time.Now()
			for _, g := range groups {
				comp, err := frame.Compose(cmd.Context(), g, registry.Resolve(g.ThemeID))
				if err != nil {
					return fmt.Errorf("group %q: %w", g.Name, err)
				}
				path := filepath.Join(outDir, service.Filename(g.Name, now))
				if err := os.WriteFile(path, comp.PNG, 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%dx%d\t%d fallbacks\n", path, comp.Grid.Width, comp.Grid.Height, len(comp.Fallbacks))
				for _, fb := range comp.Fallbacks {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", fb.Kind, fb.Subject)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&groupPaths, "group", "g", nil, "group YAML file (repeatable)")
	cmd.Flags().StringVarP(&themesPath, "themes", "t", "", "custom themes YAML file")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	cmd.Flags().StringSliceVar(&fontDirs, "font-dir", nil, "directories searched for theme fonts")
	_ = cmd.MarkFlagRequired("group")
	return cmd
}
