package components

import "strings"

// Scrollbar renders a 1-column track for a list of total rows showing view
// rows starting at offset. It renders a blank gutter when everything fits.
func Scrollbar(view, total, offset int) string {
	if view <= 0 {
		return ""
	}
	rows := make([]string, view)
	if total <= view {
		for i := range rows {
			rows[i] = " "
		}
		return strings.Join(rows, "\n")
	}

	thumb := max(view*view/total, 1)
	top := 0
	if span := total - view; span > 0 {
		top = offset * (view - thumb) / span
	}
	top = min(max(top, 0), view-thumb)

	for i := range rows {
		if i >= top && i < top+thumb {
			rows[i] = "█"
		} else {
			rows[i] = "│"
		}
	}
	return strings.Join(rows, "\n")
}
