//go:build !windows

package fs

func isHiddenEntry(_ string, name string) bool {
	return IsHidden(name)
}
