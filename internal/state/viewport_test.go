package state

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeList(n int) []FileEntry {
	list := make([]FileEntry, n)
	for i := range list {
		list[i] = script(fmt.Sprintf("s%02d.sh", i))
	}
	return list
}

func TestVisibleWindowEmpty(t *testing.T) {
	window, hl := VisibleWindow(nil, 0, 10)
	assert.Empty(t, window)
	assert.Equal(t, -1, hl)
}

func TestVisibleWindowScrollsLateWithLookahead(t *testing.T) {
	list := makeList(20)
	tests := []struct {
		selected  int
		wantFirst int
		wantHL    int
	}{
		{selected: 0, wantFirst: 0, wantHL: 0},
		{selected: 8, wantFirst: 0, wantHL: 8},
		{selected: 9, wantFirst: 1, wantHL: 8},
		{selected: 15, wantFirst: 7, wantHL: 8},
		{selected: 19, wantFirst: 10, wantHL: 9},
	}
	for _, tt := range tests {
		window, hl := VisibleWindow(list, tt.selected, 10)
		require.Len(t, window, 10)
		assert.Equal(t, list[tt.wantFirst], window[0], "selected=%d", tt.selected)
		assert.Equal(t, tt.wantHL, hl, "selected=%d", tt.selected)
	}
}

func TestVisibleWindowInvariants(t *testing.T) {
	for n := 1; n <= 25; n++ {
		list := makeList(n)
		for h := 1; h <= 12; h++ {
			for sel := 0; sel < n; sel++ {
				window, hl := VisibleWindow(list, sel, h)
				want := n
				if h < n {
					want = h
				}
				require.Len(t, window, want, "n=%d h=%d sel=%d", n, h, sel)
				require.GreaterOrEqual(t, hl, 0)
				require.Less(t, hl, len(window))
				require.Equal(t, list[sel], window[hl], "n=%d h=%d sel=%d", n, h, sel)
			}
		}
	}
}

func TestVisibleWindowClampsOutOfRangeSelection(t *testing.T) {
	list := makeList(3)
	window, hl := VisibleWindow(list, 7, 10)
	assert.Len(t, window, 3)
	assert.Equal(t, 2, hl)
}

func TestViewportHeight(t *testing.T) {
	s := NewAppState()
	assert.Equal(t, MaxVisibleRows, s.ViewportHeight())

	s.ScreenHeight = 40
	assert.Equal(t, MaxVisibleRows, s.ViewportHeight())

	s.ScreenHeight = 3
	assert.Equal(t, 1, s.ViewportHeight())
}
