package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dtroode/gophframe/internal/service"
)

func newAuditCmd(opts *options) *cobra.Command {
	var (
		groupPaths []string
		apply      bool
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Report blobs no group file references",
		Long: "Audit lists blobs in the local root that none of the given group files reference.\n" +
			"With --apply the orphans are deleted. Run it only while nothing else writes to the root.",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := opts.logger(cmd)
			groups, err := loadGroups(groupPaths)
			if err != nil {
				return err
			}
			blobs, err := opts.blobStore(log)
			if err != nil {
				return err
			}

			report, err := service.NewAuditor(staticGroups(groups), blobs, log).Sweep(cmd.Context(), apply)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, id := range report.Orphans {
				fmt.Fprintln(w, id)
			}
			fmt.Fprintf(w, "scanned %d, referenced %d, orphans %d", report.Scanned, report.Referenced, len(report.Orphans))
			if report.Applied {
				fmt.Fprintf(w, ", deleted %d, failed %d", report.Deleted, report.Failed)
			}
			fmt.Fprintln(w)
			if report.Failed > 0 {
				return fmt.Errorf("failed to delete %d orphans", report.Failed)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&groupPaths, "group", "g", nil, "group YAML file (repeatable)")
	cmd.Flags().BoolVar(&apply, "apply", false, "delete the orphans")
	return cmd
}
