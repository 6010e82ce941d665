package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dtroode/gophframe/internal/model"
)

func newBlobCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blob",
		Short: "Manage blobs in the local blob root",
	}

	cmd.AddCommand(
		newBlobPutCmd(opts),
		newBlobGetCmd(opts),
		newBlobRmCmd(opts),
	)
	return cmd
}

func newBlobPutCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "put FILE",
		Short: "Store a file and print its blob id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}
			store, err := opts.blobStore(opts.logger(cmd))
			if err != nil {
				return err
			}
			id, err := store.Put(cmd.Context(), data)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}

func newBlobGetCmd(opts *options) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "get ID",
		Short: "Write the bytes of a blob to a file or stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.blobStore(opts.logger(cmd))
			if err != nil {
				return err
			}
			data, err := store.Get(cmd.Context(), model.BlobID(args[0]))
			if err != nil {
				return err
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return os.WriteFile(out, data, 0o644)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func newBlobRmCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a blob",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.blobStore(opts.logger(cmd))
			if err != nil {
				return err
			}
			return store.Delete(cmd.Context(), model.BlobID(args[0]))
		},
	}
}
