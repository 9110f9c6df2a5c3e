package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/beatmap/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Retrieve a stored beatmap",
		Run:   runGet,
	}

	cmd.Flags().StringP("key", "k", "", "Key (required)")
	cmd.Flags().Bool("history", false, "Return all versions (newest first)")
	cmd.Flags().Int("version", 0, "Specific version number")
	cmd.Flags().Bool("doc", false, "Print only the decoded document")

	cmd.MarkFlagRequired("key")

	RootCmd.AddCommand(cmd)
}

func runGet(cmd *cobra.Command, args []string) {
	key, _ := cmd.Flags().GetString("key")
	history, _ := cmd.Flags().GetBool("history")
	version, _ := cmd.Flags().GetInt("version")
	docOnly, _ := cmd.Flags().GetBool("doc")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	beatmaps, err := s.Get(cmd.Context(), store.GetParams{
		Key:     key,
		History: history,
		Version: version,
	})
	if err != nil {
		exitErr("get", err)
	}

	out := cmd.OutOrStdout()
	if docOnly {
		b, _ := json.MarshalIndent(beatmaps[0].Document, "", "  ")
		fmt.Fprintln(out, string(b))
		return
	}
	if history || len(beatmaps) > 1 {
		b, _ := json.MarshalIndent(beatmaps, "", "  ")
		fmt.Fprintln(out, string(b))
	} else {
		b, _ := json.MarshalIndent(beatmaps[0], "", "  ")
		fmt.Fprintln(out, string(b))
	}
}
