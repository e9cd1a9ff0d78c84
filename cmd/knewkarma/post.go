package main

import (
	"context"

	"github.com/spf13/cobra"
)

var postCmd = &cobra.Command{
	Use:   "post <id> <subreddit>",
	Short: "Fetch a post and its top-level comments",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}

		detail, err := svc.Post(context.Background(), args[0], args[1])
		if err != nil {
			return err
		}
		return emit("post", detail)
	},
}

func init() {
	rootCmd.AddCommand(postCmd)
}
