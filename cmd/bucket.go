package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// bucketsCmd lists all buckets
var bucketsCmd = &cobra.Command{
	Use:   "buckets",
	Short: "List all buckets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := connect()
		if err != nil {
			return err
		}
		defer logg.Sync()

		names, err := svc.ListBuckets(cmd.Context())
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

// bucketCmd groups bucket management commands
var bucketCmd = &cobra.Command{
	Use:   "bucket",
	Short: "Create or delete buckets",
}

var bucketCreateCmd = &cobra.Command{
	Use:   "create <bucket>",
	Short: "Create a bucket (warns if it already exists)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := connect()
		if err != nil {
			return err
		}
		defer logg.Sync()

		return svc.CreateBucket(cmd.Context(), args[0])
	},
}

var bucketDeleteCmd = &cobra.Command{
	Use:   "delete <bucket>",
	Short: "Delete an empty bucket (warns if it does not exist)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := connect()
		if err != nil {
			return err
		}
		defer logg.Sync()

		return svc.DeleteBucket(cmd.Context(), args[0])
	},
}

func init() {
	bucketCmd.AddCommand(bucketCreateCmd)
	bucketCmd.AddCommand(bucketDeleteCmd)
	RootCmd.AddCommand(bucketsCmd)
	RootCmd.AddCommand(bucketCmd)
}
