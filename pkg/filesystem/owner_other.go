//go:build !unix

package filesystem

import "io/fs"

func Owner(info fs.FileInfo) (uid, gid int, ok bool) {
	return 0, 0, false
}
