package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/beatmap/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored beatmaps",
		Run:   runList,
	}

	cmd.Flags().StringP("tags", "t", "", "Filter by tags (comma-separated)")
	cmd.Flags().IntP("limit", "l", 20, "Max results")
	cmd.Flags().Bool("keys-only", false, "Only output keys")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	tagsStr, _ := cmd.Flags().GetString("tags")
	limit, _ := cmd.Flags().GetInt("limit")
	keysOnly, _ := cmd.Flags().GetBool("keys-only")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	beatmaps, err := s.List(cmd.Context(), store.ListParams{
		Tags:  splitTags(tagsStr),
		Limit: limit,
	})
	if err != nil {
		exitErr("list", err)
	}

	if keysOnly {
		for _, b := range beatmaps {
			fmt.Fprintln(cmd.OutOrStdout(), b.Key)
		}
		return
	}

	printBeatmaps(cmd.OutOrStdout(), beatmaps)
}
