package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/beatmap/internal/decoder"
	"github.com/rcliao/beatmap/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode a beatmap to JSON",
		Long:  "Decode a beatmap file, or stdin when no file is given, and print the document as JSON.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runDecode,
	}

	cmd.Flags().Bool("compact", false, "Print JSON on a single line")

	RootCmd.AddCommand(cmd)
}

func runDecode(cmd *cobra.Command, args []string) {
	compact, _ := cmd.Flags().GetBool("compact")

	doc, err := decodeInput(args)
	if err != nil {
		exitErr("decode", err)
	}

	var b []byte
	if compact {
		b, err = json.Marshal(doc)
	} else {
		b, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		exitErr("encode", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}

// decodeInput decodes args[0], or stdin without arguments.
func decodeInput(args []string) (*model.Document, error) {
	if len(args) > 0 {
		return decoder.DecodeFile(args[0], decoder.WithLogger(newLogger()))
	}
	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return nil, fmt.Errorf("a file argument or piped stdin is required")
	}
	return decoder.Decode(os.Stdin, decoder.WithLogger(newLogger()))
}
