package saves

import (
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
)

// archivePattern matches archive save base names. The match is case
// sensitive; the extension the saver writes is always lowercase.
var archivePattern = glob.MustCompile("*" + Extension)

// ListArchive returns the full paths of archive saves directly inside dir.
// The scan is non-recursive and only regular files count; directories with a
// matching name are skipped. A missing or unreadable directory yields an
// empty listing, not an error: the archive simply has nothing in it yet.
// Ordering is whatever the filesystem returns and callers must not rely on it.
func ListArchive(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var found []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if archivePattern.Match(entry.Name()) {
			found = append(found, filepath.Join(dir, entry.Name()))
		}
	}
	return found
}
