package main

import (
	"context"

	"github.com/spf13/cobra"
)

var subredditCmd = &cobra.Command{
	Use:   "subreddit <name>",
	Short: "Fetch a subreddit's posts or profile",
	Long: `Fetch data for a subreddit (without the r/ prefix).

Examples:
  # Latest posts
  knewkarma subreddit AskReddit --sort new --limit 50

  # Community profile
  knewkarma subreddit AskReddit --profile`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		profile, _ := cmd.Flags().GetBool("profile")

		svc, _, err := newService()
		if err != nil {
			return err
		}
		ctx := context.Background()

		if profile {
			item, err := svc.SubredditProfile(ctx, name)
			if err != nil {
				return err
			}
			return emit("subreddit_profile", item)
		}

		items, err := svc.SubredditPosts(ctx, name, listingOptions())
		if err != nil {
			return err
		}
		return emit("subreddit_posts", items)
	},
}

func init() {
	subredditCmd.Flags().Bool("profile", false, "Fetch the subreddit profile instead of posts")
	rootCmd.AddCommand(subredditCmd)
}
