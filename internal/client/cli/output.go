package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/nextboard/boardcli/internal/client/models"
	"github.com/nextboard/boardcli/internal/usage"
)

const ansiReset = "\033[0m"

func printTable(headers []string, rows [][]string) {
	if len(rows) == 0 {
		_, _ = printlnFn("no results")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		_, _ = fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	_ = w.Flush()
}

func printKV(rows [][2]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, row := range rows {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", row[0], row[1])
	}
	_ = w.Flush()
}

// pageFooter renders "page 2/3 (45 total)". An out-of-range page still has
// valid pagination metadata, so this never panics on an empty page.
func pageFooter(p models.Pagination) string {
	return fmt.Sprintf("page %d/%d (%d total)", p.Page, p.Pages, p.Total)
}

// usageBar renders a 20-cell bar colored by the percentage's band.
func usageBar(pct float64) string {
	const cells = 20
	filled := int(pct / 100 * cells)
	if filled > cells {
		filled = cells
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", cells-filled)
	return fmt.Sprintf("%s%s%s %.1f%%", usage.ANSIColor(pct), bar, ansiReset, pct)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04:05")
}

func formatMaybeInt(v *int64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(*v)
}

func labelNames(labels []models.Label) string {
	if len(labels) == 0 {
		return "-"
	}
	names := make([]string, 0, len(labels))
	for _, l := range labels {
		names = append(names, fmt.Sprintf("%s(x%.2f)", l.Name, l.Multiplier))
	}
	return strings.Join(names, ",")
}
