package state

const (
	// MaxVisibleRows caps the number of list rows drawn at once.
	MaxVisibleRows = 10
	// chromeRows covers the title, mode, status and instruction lines.
	chromeRows = 4
)

// VisibleWindow returns the contiguous part of list that fits in height rows
// and the position of selected within it (-1 for an empty list).
//
// The window scrolls as late as possible, keeping one row of look-ahead below
// the highlight: offset = selected - height + 2, clamped so the window never
// runs past the end of the list or above the highlight.
func VisibleWindow(list []FileEntry, selected, height int) ([]FileEntry, int) {
	n := len(list)
	if n == 0 {
		return nil, -1
	}
	if height < 1 {
		height = 1
	}
	if selected < 0 {
		selected = 0
	}
	if selected >= n {
		selected = n - 1
	}

	offset := selected - height + 2
	if maxOffset := n - height; offset > maxOffset {
		offset = maxOffset
	}
	if offset > selected {
		offset = selected
	}
	if offset < 0 {
		offset = 0
	}

	end := offset + height
	if end > n {
		end = n
	}
	return list[offset:end], selected - offset
}
