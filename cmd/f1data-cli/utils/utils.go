package utils

import (
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
)

func NewTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

// OptInt renders an absent numeric field as an empty cell instead of
// a misleading zero.
func OptInt(n *int) any {
	if n == nil {
		return ""
	}
	return *n
}

func Date(t time.Time) string {
	return t.Format("2006-01-02")
}

func OptDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return Date(*t)
}
