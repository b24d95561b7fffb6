// Package report prints styled terminal summaries of callgraph snapshots.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/danpilch/tracegraph/pkg/callgraph"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginBottom(1)
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)
	cellStyle = lipgloss.NewStyle().Padding(0, 1)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	boldStyle = lipgloss.NewStyle().Bold(true)
)

// Options configure the terminal report.
type Options struct {
	// TimeResolution is the number of decimals shown for cumulative time.
	TimeResolution int
	// RunInfo, when set, adds a process-context block below the table.
	RunInfo *RunInfo
}

// Write prints a per-function summary table in first-invocation order,
// followed by a total row and optional run metadata.
func Write(w io.Writer, snap callgraph.Snapshot, opts Options) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Call Graph Report"))
	fmt.Fprintln(w, dimStyle.Render(strings.Repeat("═", 60)))
	fmt.Fprintln(w)

	rows := make([][]string, 0, len(snap.Functions))
	var totalMS float64
	var totalCalls int
	for _, rec := range snap.Functions {
		st := snap.Stats[rec.Name]
		rows = append(rows, []string{
			rec.Name,
			strconv.Itoa(st.Calls),
			formatMS(st.CumulativeMS, opts.TimeResolution),
			joinSources(st.Sources),
		})
		totalMS += st.CumulativeMS
		totalCalls += st.Calls
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(dimStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("FUNCTION", "CALLS", "TIME (MS)", "SOURCES").
		Rows(rows...)

	fmt.Fprintln(w, t)
	fmt.Fprintf(w, "  %s %d calls, %s ms across %d functions\n",
		boldStyle.Render("TOTAL"), totalCalls,
		formatMS(totalMS, opts.TimeResolution), len(snap.Functions))

	if opts.RunInfo != nil {
		fmt.Fprintln(w)
		writeRunInfo(w, *opts.RunInfo)
	}
}

func joinSources(sources []callgraph.CallRecord) string {
	if len(sources) == 0 {
		return "-"
	}
	names := make([]string, len(sources))
	for i, s := range sources {
		names[i] = s.Name
	}
	return strings.Join(names, ", ")
}

func writeRunInfo(w io.Writer, info RunInfo) {
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf(
		"host=%s pid=%d cpus=%d rss=%s cputime=%.2fs",
		info.Hostname, info.PID, info.NumCPU, formatBytes(info.RSSBytes), info.CPUSeconds)))
}

func formatBytes(n uint64) string {
	switch {
	case n >= 1<<30:
		return fmt.Sprintf("%.1fGiB", float64(n)/(1<<30))
	case n >= 1<<20:
		return fmt.Sprintf("%.1fMiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1fKiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%dB", n)
	}
}

func formatMS(ms float64, resolution int) string {
	if resolution < 0 {
		resolution = 0
	}
	p := math.Pow10(resolution)
	return strconv.FormatFloat(math.Round(ms*p)/p, 'f', -1, 64)
}
