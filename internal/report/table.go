package report

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ccin2p3/fistsum/internal/summary"
)

// RenderTable writes a human-readable rendering of the summary report.
// The JSON output is the machine interface; this view is for eyeballing
// a report on a terminal.
func RenderTable(w io.Writer, rep *summary.Report, noColor bool) error {
	header := color.New(color.FgCyan, color.Bold)
	if noColor {
		header.DisableColor()
	}

	_, err := header.Fprintf(w, "%s (%s)\n\n", rep.Name, rep.Date)
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false

	tbl.AppendHeader(table.Row{
		"owner", "files", "dirs", "links", "bytes", "overhead",
		"median fsize", "max fsize", "last mtime",
	})

	for _, user := range rep.Users {
		tbl.AppendRow(table.Row{
			user.Name,
			user.NFiles,
			user.NDirs,
			user.NLinks,
			humanize.IBytes(uint64(user.Bytes)),
			user.Overhead,
			humanize.IBytes(uint64(user.MedFSize)),
			humanize.IBytes(uint64(user.MaxFSize)),
			formatTime(user.LMtime),
		})
	}

	totals := rep.Totals
	tbl.AppendFooter(table.Row{
		fmt.Sprintf("%d owners", totals.NUsers),
		totals.NFiles,
		totals.NDirs,
		totals.NLinks,
		humanize.IBytes(uint64(totals.Bytes)),
		totals.Overhead,
		humanize.IBytes(uint64(totals.MedFSize)),
		humanize.IBytes(uint64(totals.MaxFSize)),
		formatTime(totals.LMtime),
	})

	tbl.Render()

	return nil
}

func formatTime(unix int64) string {
	if unix == 0 {
		return "-"
	}

	return time.Unix(unix, 0).UTC().Format(time.DateOnly)
}
