package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/rcliao/beatmap/internal/model"
)

// printBeatmaps writes beatmaps as JSON or, with --format text, as a table.
func printBeatmaps(w io.Writer, beatmaps []model.Beatmap) {
	if formatFlag == "text" {
		renderTable(w, beatmaps)
		return
	}
	if len(beatmaps) == 0 {
		fmt.Fprintln(w, "[]")
		return
	}
	b, _ := json.MarshalIndent(beatmaps, "", "  ")
	fmt.Fprintln(w, string(b))
}

func renderTable(w io.Writer, beatmaps []model.Beatmap) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault

	t.AppendHeader(table.Row{"Key", "Ver", "Title", "Artist", "Creator", "Difficulty", "Circles", "Sliders", "Tags", "Created"})
	for _, b := range beatmaps {
		t.AppendRow(table.Row{
			b.Key,
			b.Version,
			truncate(b.Title, 40),
			truncate(b.Artist, 24),
			b.Creator,
			b.DiffName,
			b.Circles,
			b.Sliders,
			strings.Join(b.Tags, ","),
			b.CreatedAt.Local().Format("2006-01-02 15:04"),
		})
	}

	t.Render()
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
