package filesystem

import "path/filepath"

// parentDir returns the directory holding name, or "" when name has no
// parent component worth checking.
func parentDir(name string) string {
	dir := filepath.Dir(name)
	if dir == "." || dir == string(filepath.Separator) {
		return ""
	}
	return dir
}
