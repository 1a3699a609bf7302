//go:build windows

package fs

import "golang.org/x/sys/windows"

// isHiddenEntry also honours the Windows hidden attribute.
func isHiddenEntry(fullPath string, name string) bool {
	if IsHidden(name) {
		return true
	}

	ptr, err := windows.UTF16PtrFromString(fullPath)
	if err != nil {
		return false
	}
	attrs, err := windows.GetFileAttributes(ptr)
	if err != nil {
		return false
	}
	return attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0
}
