package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"knewkarma/internal/config"
	"knewkarma/internal/update"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version and optionally check for updates",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("knewkarma %s\n", Version)

		check, _ := cmd.Flags().GetBool("check")
		if !check {
			return nil
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		release, err := update.Check(ctx, cfg.ReleaseRepo, cfg.UserAgent)
		if err != nil {
			return fmt.Errorf("update check failed: %w", err)
		}

		if release.IsNewer(Version) {
			fmt.Printf("%s a newer release is available: %s (%s)\n", statusWarn("!"), release.Name, release.TagName)
			if release.Body != "" {
				fmt.Println(release.Body)
			}
		} else {
			fmt.Printf("%s up to date\n", statusOK("✓"))
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("check", false, "Check GitHub for a newer release")
	rootCmd.AddCommand(versionCmd)
}
