package batch

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func renderSummary(s Summary) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Video", "Segments", "Audio", "Outputs"})

	for _, r := range s.Results {
		tw.AppendRow(table.Row{
			r.Video,
			r.Segments,
			time.Duration(r.AudioSeconds * float64(time.Second)).Round(100 * time.Millisecond).String(),
			outputs(r.TranscriptPath, r.SRTPath, r.DocxPath, r.AudioPath, r.SubtitledPath),
		})
	}
	tw.AppendFooter(table.Row{"Total", s.Count(), "", s.Elapsed.Round(time.Second).String()})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	return tw.Render()
}

// outputs lists the file names written for a video, in write order.
func outputs(paths ...string) string {
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		if p != "" {
			names = append(names, filepath.Base(p))
		}
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}
