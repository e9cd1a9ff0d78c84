package main

import (
	"context"

	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user <username>",
	Short: "Fetch a Reddit user's profile, posts or comments",
	Long: `Fetch data for a Reddit user.

Examples:
  # Profile only (default)
  knewkarma user AutoModerator

  # Posts and comments, 250 each
  knewkarma user AutoModerator --posts --comments --limit 250

  # Mixed recent activity, exported to CSV
  knewkarma user AutoModerator --overview --export csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]

		posts, _ := cmd.Flags().GetBool("posts")
		comments, _ := cmd.Flags().GetBool("comments")
		overview, _ := cmd.Flags().GetBool("overview")
		activity, _ := cmd.Flags().GetBool("activity")

		svc, _, err := newService()
		if err != nil {
			return err
		}
		ctx := context.Background()

		switch {
		case activity:
			result, err := svc.UserActivity(ctx, username, listingOptions())
			if err != nil {
				return err
			}
			return emit("user_activity", result)
		case overview:
			items, err := svc.UserOverview(ctx, username, listingOptions())
			if err != nil {
				return err
			}
			return emit("user_overview", items)
		case posts && comments:
			result, err := svc.UserActivity(ctx, username, listingOptions())
			if err != nil {
				return err
			}
			return emit("user_activity", result)
		case posts:
			items, err := svc.UserPosts(ctx, username, listingOptions())
			if err != nil {
				return err
			}
			return emit("user_posts", items)
		case comments:
			items, err := svc.UserComments(ctx, username, listingOptions())
			if err != nil {
				return err
			}
			return emit("user_comments", items)
		default:
			profile, err := svc.UserProfile(ctx, username)
			if err != nil {
				return err
			}
			return emit("user_profile", profile)
		}
	},
}

func init() {
	userCmd.Flags().Bool("posts", false, "Fetch the user's submissions")
	userCmd.Flags().Bool("comments", false, "Fetch the user's comments")
	userCmd.Flags().Bool("overview", false, "Fetch the user's mixed recent activity")
	userCmd.Flags().Bool("activity", false, "Fetch profile, posts and comments together")
	rootCmd.AddCommand(userCmd)
}
