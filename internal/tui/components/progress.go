package components

import (
	"fmt"
	"strings"
)

const (
	filledChar = "■"
	emptyChar  = "□"
)

// Completion renders the share of completed tasks: ■■■□□□□□ 12/30 done
type Completion struct {
	Done  int
	Total int
	Width int // character width of the bar portion
}

// View returns the rendered meter, or "" when there is nothing to show.
func (c Completion) View() string {
	if c.Total <= 0 || c.Width <= 0 {
		return ""
	}
	done := min(max(c.Done, 0), c.Total)
	filled := done * c.Width / c.Total
	bar := strings.Repeat(filledChar, filled) + strings.Repeat(emptyChar, c.Width-filled)
	return fmt.Sprintf("%s %d/%d done", bar, done, c.Total)
}
