// Package export renders the item list as downloadable files.
package export

import (
	"fmt"
	"time"
)

// Filename builds a timestamped download name like
// inventory_items_2026-01-29_1730.xlsx.
func Filename(prefix, ext string) string {
	return fmt.Sprintf("%s_%s.%s", prefix, time.Now().Format("2006-01-02_1504"), ext)
}
