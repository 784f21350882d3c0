package saves

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// noGameSelectedMsg is emitted whenever a transfer is attempted before a
// live save has been selected.
const noGameSelectedMsg = "ERROR! Please select your game's save file with Select Game"

// RequireSelection returns ErrNoLiveSave, after emitting the guidance
// message, when no live save is selected. Every transfer starts with this
// check so no file I/O is ever attempted against an unset path.
func (s *Session) RequireSelection() error {
	if s.liveSave == "" {
		s.notify(noGameSelectedMsg)
		return ErrNoLiveSave
	}
	return nil
}

// QuickSave copies the live save into the quicksave slot, overwriting any
// previous quicksave.
func (s *Session) QuickSave() error {
	if err := s.RequireSelection(); err != nil {
		return err
	}

	if err := copyPreserving(s.liveSave, s.loc.QuickSave); err != nil {
		cerr := &CopyError{Op: "quicksave", Src: s.liveSave, Dst: s.loc.QuickSave, Err: err}
		s.debugf("quicksave failed: %v", cerr)
		s.notify(fmt.Sprintf("Error: %v", err))
		s.notify("Quicksave failed")
		return cerr
	}

	s.debugf("quicksaved %s -> %s", s.liveSave, s.loc.QuickSave)
	s.notify("Quicksaved")
	return nil
}

// QuickLoad copies the quicksave slot back over the live save. A missing
// quicksave is a benign no-op reported as ErrNoQuickSave; the live save is
// left untouched.
func (s *Session) QuickLoad() error {
	if err := s.RequireSelection(); err != nil {
		return err
	}

	if s.loc.QuickSave == "" || !fileExists(s.loc.QuickSave) {
		s.notify("No quicksave found")
		return ErrNoQuickSave
	}

	if err := copyPreserving(s.loc.QuickSave, s.liveSave); err != nil {
		cerr := &CopyError{Op: "quickload", Src: s.loc.QuickSave, Dst: s.liveSave, Err: err}
		s.debugf("quickload failed: %v", cerr)
		s.notify(fmt.Sprintf("Error: %v", err))
		s.notify("Load failed")
		return cerr
	}

	s.debugf("quickloaded %s -> %s", s.loc.QuickSave, s.liveSave)
	s.notify("Loaded")
	return nil
}

// CreateArchiveSave copies the live save to target, appending the archive
// extension when target has none. An existing file at target is overwritten
// without prompting; confirming overwrites is the picker's job.
func (s *Session) CreateArchiveSave(target string) error {
	if err := s.RequireSelection(); err != nil {
		return err
	}

	if filepath.Ext(target) == "" {
		target += Extension
	}

	if err := copyPreserving(s.liveSave, target); err != nil {
		cerr := &CopyError{Op: "create save", Src: s.liveSave, Dst: target, Err: err}
		s.debugf("create save failed: %v", cerr)
		s.notify(fmt.Sprintf("Error: %v", err))
		s.notify("Save failed")
		return cerr
	}

	s.debugf("archived %s -> %s", s.liveSave, target)
	s.notify(fmt.Sprintf("Saved to %s", target))
	return nil
}

// LoadArchiveSave copies source over the live save. Source is normally an
// archive entry but any readable path is accepted.
func (s *Session) LoadArchiveSave(source string) error {
	if err := s.RequireSelection(); err != nil {
		return err
	}

	if err := copyPreserving(source, s.liveSave); err != nil {
		cerr := &CopyError{Op: "load save", Src: source, Dst: s.liveSave, Err: err}
		s.debugf("load save failed: %v", cerr)
		s.notify(fmt.Sprintf("Error: %v", err))
		s.notify("Error loading save")
		return cerr
	}

	s.debugf("loaded %s -> %s", source, s.liveSave)
	s.notify(fmt.Sprintf("Loaded: %s", s.displayPath(source)))
	return nil
}

// displayPath shortens a path inside the game's directory tree for messages.
func (s *Session) displayPath(path string) string {
	if s.loc.ArchiveDir == "" {
		return path
	}
	base := filepath.Dir(s.loc.ArchiveDir)
	rel, err := filepath.Rel(base, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

// copyPreserving copies src to dst as a whole file, carrying over the source
// mode bits and modification time so freshness heuristics applied to the
// live save keep working after a load.
func copyPreserving(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return os.Chtimes(dst, time.Now(), info.ModTime())
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
