package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search Reddit for posts, subreddits or users",
	Long: `Search Reddit.

Examples:
  knewkarma search "mechanical keyboards" --limit 50
  knewkarma search cats --kind subreddits
  knewkarma search AutoModerator --kind users`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]
		kind, _ := cmd.Flags().GetString("kind")

		svc, _, err := newService()
		if err != nil {
			return err
		}
		ctx := context.Background()

		switch kind {
		case "posts":
			items, err := svc.SearchPosts(ctx, query, listingOptions())
			if err != nil {
				return err
			}
			return emit("search_posts", items)
		case "subreddits":
			items, err := svc.SearchSubreddits(ctx, query, listingOptions())
			if err != nil {
				return err
			}
			return emit("search_subreddits", items)
		case "users":
			items, err := svc.SearchUsers(ctx, query, listingOptions())
			if err != nil {
				return err
			}
			return emit("search_users", items)
		default:
			return fmt.Errorf("invalid --kind %q: use posts, subreddits or users", kind)
		}
	},
}

func init() {
	searchCmd.Flags().String("kind", "posts", "What to search: posts, subreddits or users")
	rootCmd.AddCommand(searchCmd)
}
