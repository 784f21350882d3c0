// Package saves implements the core of the CoG Saver: tracking the live save
// file of a Choice of Games title, deriving its archive directory and
// quicksave slot, and copying bytes between the three locations without ever
// touching the save content itself.
package saves

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// Extension carried by every archived save, quicksave included.
	Extension = ".cogsav"

	// MarkerSuffix is the filename suffix a file must carry to be accepted
	// as a live save. ChoiceScript writes its Steam-synced state to a
	// storePS<gamename>PSstate file; the suffix is fixed and not
	// user-configurable.
	MarkerSuffix = "PSstate"

	archiveDirName    = "saves"
	quickSaveFileName = "quicksave" + Extension
)

// Locations holds the three paths a session operates on, all derived from the
// canonicalized live save path. ArchiveDir and QuickSave are never persisted;
// they are recomputed whenever the live save changes.
type Locations struct {
	LiveSave   string
	ArchiveDir string
	QuickSave  string
}

// Resolve canonicalizes livePath and derives the archive directory and
// quicksave path as siblings inside the live save's containing directory.
// It also ensures the archive directory exists.
//
// A canonicalization failure returns a *ResolveError and zero Locations.
// A directory creation failure returns a *DirCreateError but the derived
// Locations are still returned: the selection succeeds structurally and
// archive-dependent operations degrade individually.
func Resolve(livePath string) (Locations, error) {
	absPath, err := filepath.Abs(livePath)
	if err != nil {
		return Locations{}, &ResolveError{Path: livePath, Err: err}
	}

	// Evaluate symlinks so derived paths land next to the real file, not
	// next to a link pointing at it.
	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return Locations{}, &ResolveError{Path: livePath, Err: err}
	}

	dir := filepath.Dir(resolved)
	loc := Locations{
		LiveSave:   resolved,
		ArchiveDir: filepath.Join(dir, archiveDirName),
		QuickSave:  filepath.Join(dir, quickSaveFileName),
	}

	if err := os.MkdirAll(loc.ArchiveDir, 0o755); err != nil {
		return loc, &DirCreateError{Dir: loc.ArchiveDir, Err: err}
	}

	return loc, nil
}

// IsLiveSaveName reports whether name carries the live save marker suffix.
// Only the base name is considered.
func IsLiveSaveName(path string) bool {
	return strings.HasSuffix(filepath.Base(path), MarkerSuffix)
}
