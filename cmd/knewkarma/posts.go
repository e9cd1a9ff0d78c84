package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Fetch site-wide post listings",
	Long: `Fetch posts from the front page or the sitewide new feed.

Examples:
  knewkarma posts
  knewkarma posts --listing new --limit 200 --export csv`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		listing, _ := cmd.Flags().GetString("listing")

		svc, _, err := newService()
		if err != nil {
			return err
		}
		ctx := context.Background()

		switch listing {
		case "front_page":
			items, err := svc.FrontPage(ctx, listingOptions())
			if err != nil {
				return err
			}
			return emit("front_page", items)
		case "new":
			items, err := svc.New(ctx, listingOptions())
			if err != nil {
				return err
			}
			return emit("new", items)
		default:
			return fmt.Errorf("invalid --listing %q: use front_page or new", listing)
		}
	},
}

func init() {
	postsCmd.Flags().String("listing", "front_page", "Listing to fetch: front_page or new")
	rootCmd.AddCommand(postsCmd)
}
