package cli

import (
	"database/sql"
	"fmt"
	"os"
	"text/tabwriter"
	"time"
)

// dateLayout is the format every date flag and positional date uses.
const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

// parseDateOrToday treats an empty flag as "today", truncated to the
// day in UTC so date comparisons behave like calendar comparisons.
func parseDateOrToday(s string) (time.Time, error) {
	if s == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return parseDate(s)
}

func newTabWriter() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
}

func fmtDate(t time.Time) string {
	return t.Format(dateLayout)
}

func fmtNullDate(t sql.NullTime) string {
	if !t.Valid {
		return "-"
	}
	return t.Time.Format(dateLayout)
}

func fmtNullID(id sql.NullInt64) string {
	if !id.Valid {
		return "-"
	}
	return fmt.Sprintf("%d", id.Int64)
}

func fmtNullFloat(f sql.NullFloat64) string {
	if !f.Valid {
		return "-"
	}
	return fmt.Sprintf("%.1f", f.Float64)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
