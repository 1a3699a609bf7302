package fs

// IsHidden reports whether a file name is a dotfile. Hidden entries are never
// listed and hidden directories are never descended into.
func IsHidden(name string) bool {
	return len(name) > 0 && name[0] == '.'
}
