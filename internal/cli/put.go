package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/beatmap/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "put [file]",
		Short: "Decode a beatmap and store it",
		Long:  "Decode a beatmap (file or stdin) and store it in the library. Storing an existing key adds a new version.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runPut,
	}

	cmd.Flags().StringP("key", "k", "", "Key (default: file name without extension)")
	cmd.Flags().StringP("tags", "t", "", "Comma-separated tags")

	RootCmd.AddCommand(cmd)
}

func runPut(cmd *cobra.Command, args []string) {
	key, _ := cmd.Flags().GetString("key")
	tagsStr, _ := cmd.Flags().GetString("tags")

	var source string
	if len(args) > 0 {
		source = args[0]
		if key == "" {
			key = strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
		}
	}
	if key == "" {
		exitErr("put", fmt.Errorf("--key is required when reading stdin"))
	}

	doc, err := decodeInput(args)
	if err != nil {
		exitErr("decode", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	bm, err := s.Put(cmd.Context(), store.PutParams{
		Key:      key,
		Source:   source,
		Tags:     splitTags(tagsStr),
		Document: doc,
	})
	if err != nil {
		exitErr("put", err)
	}

	b, _ := json.Marshal(bm)
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}
