// Package format renders dates, sizes and text for terminal output.
package format

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// DefaultLayout is used by DateTime when layout is empty.
const DefaultLayout = "YYYY-MM-DD HH:mm:ss"

// DateTime renders t with the tokens YYYY, MM, DD, HH, mm and ss. The zero
// time renders as "".
func DateTime(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	if layout == "" {
		layout = DefaultLayout
	}
	r := strings.NewReplacer(
		"YYYY", t.Format("2006"),
		"MM", t.Format("01"),
		"DD", t.Format("02"),
		"HH", t.Format("15"),
		"mm", t.Format("04"),
		"ss", t.Format("05"),
	)
	return r.Replace(layout)
}

// ParseDateTime parses the RFC 3339 timestamps the API returns and renders
// them with DateTime. Unparsable input is returned unchanged.
func ParseDateTime(s, layout string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse("2006-01-02T15:04:05", s)
		if err != nil {
			return s
		}
	}
	return DateTime(t, layout)
}

var units = []string{"B", "KB", "MB", "GB", "TB"}

// FileSize renders a byte count in binary units with two decimals,
// e.g. 1536 -> "1.50 KB". Negative input renders as "0 B". Units are labelled
// KB/MB/GB/TB; humanize.IBytes would print "1.5 KiB".
func FileSize(bytes int64) string {
	if bytes < 0 {
		return "0 B"
	}
	size := float64(bytes)
	i := 0
	for size >= 1024 && i < len(units)-1 {
		size /= 1024
		i++
	}
	return humanize.FormatFloat("####.##", size) + " " + units[i]
}

// Truncate shortens s to at most n runes, marking the cut with "...".
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
