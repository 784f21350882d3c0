package saves

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/amerikrainian/CoG-saver/pkg/logging"
)

// prefKeySaveLocation is the preference store key holding the live save path.
const prefKeySaveLocation = "saveLocation"

// PreferenceStore persists user preferences across runs. Implemented by
// config.FileStore; abstracted here so tests can substitute an in-memory map.
type PreferenceStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Session is the long-lived state of the saver: the currently selected live
// save, its derived locations, and the archive listing taken at selection
// time. A Session is driven by a single control thread; operations run to
// completion before the next one starts.
type Session struct {
	prefs    PreferenceStore
	notifier Notifier
	log      *logging.Logger

	liveSave string
	loc      Locations
	archive  []string
}

// Option configures a Session.
type Option func(*Session)

// WithNotifier sets the status message sink.
func WithNotifier(n Notifier) Option {
	return func(s *Session) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithLogger sets the debug logger.
func WithLogger(l *logging.Logger) Option {
	return func(s *Session) { s.log = l }
}

// SetNotifier replaces the status message sink. The presentation layer
// attaches its sink before Restore so startup messages land in its log.
func (s *Session) SetNotifier(n Notifier) {
	if n == nil {
		s.notifier = discardNotifier{}
		return
	}
	s.notifier = n
}

// NewSession creates an empty session backed by the given preference store.
func NewSession(prefs PreferenceStore, opts ...Option) *Session {
	s := &Session{
		prefs:    prefs,
		notifier: discardNotifier{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore populates the session from the persisted preference, if any.
// The stored path is trusted as-is (no marker re-validation) but must still
// exist on disk; a stale path degrades to the unselected state with guidance.
func (s *Session) Restore() {
	path, ok := s.prefs.Get(prefKeySaveLocation)
	if !ok || path == "" {
		s.notifyNoGame()
		return
	}

	s.debugf("restoring live save from preferences: %s", path)
	s.liveSave = path
	s.refresh()
}

// SelectLiveSave validates and installs a new live save path. The filename
// must end with the live save marker suffix; on mismatch the live save path
// is cleared (the rejection discards the candidate rather than retrying a
// stale prior value) and ErrInvalidSaveFile is returned. Derived paths and
// the archive listing are left as they were.
//
// On success the path is persisted, the derived locations are recomputed and
// the archive directory is re-listed.
func (s *Session) SelectLiveSave(path string) error {
	s.notify(fmt.Sprintf("Selected %s", path))

	if !IsLiveSaveName(path) {
		s.liveSave = ""
		s.debugf("rejected live save candidate: %s", path)
		s.notify("ERROR: Please select only a 'storePS<gamename>PSstate' file. " +
			"This file may be found in " +
			`'\Steam\userdata\<yourSteamID#>\<SteamGame#>\remote'. ` +
			`The file selected MUST be the one that ends with "PSstate" only!`)
		return ErrInvalidSaveFile
	}

	s.liveSave = path
	if err := s.prefs.Set(prefKeySaveLocation, path); err != nil {
		// Selection still works for this run; it just won't survive a restart.
		s.debugf("failed to persist save location: %v", err)
		s.notify(fmt.Sprintf("Warning: could not remember save location: %v", err))
	}

	s.refresh()
	return nil
}

// refresh recomputes derived locations from the current live save and takes a
// fresh snapshot of the archive listing, narrating each step. A resolve
// failure is reported but does not clear the already-installed live save
// path; archive-dependent operations degrade on their own.
func (s *Session) refresh() {
	if s.liveSave == "" {
		s.notifyNoGame()
		return
	}
	if _, err := os.Stat(s.liveSave); err != nil {
		s.debugf("live save missing at %s: %v", s.liveSave, err)
		s.notifyNoGame()
		return
	}

	loc, err := Resolve(s.liveSave)
	if err != nil {
		var dirErr *DirCreateError
		if !errors.As(err, &dirErr) {
			s.notify(fmt.Sprintf("Error: %v", err))
			s.notify(fmt.Sprintf("Failed to use %s as a base file!", s.liveSave))
			return
		}
		// Archive directory creation failed; the derived paths are still
		// valid, so keep them and let archive operations fail individually.
		s.notify(fmt.Sprintf("Error: %v", err))
	}

	s.liveSave = loc.LiveSave
	s.loc = loc
	s.notify(fmt.Sprintf("Custom saves directory: %s", loc.ArchiveDir))
	s.notify(fmt.Sprintf("Quicksave file: %s", loc.QuickSave))

	s.archive = ListArchive(loc.ArchiveDir)
	for _, entry := range s.archive {
		s.notify(fmt.Sprintf("Found file: %s", filepath.Base(entry)))
	}
	s.notify(fmt.Sprintf("Found %d files.", len(s.archive)))
}

// SuggestedName derives an archive filename from the live save content.
// Derivation never fails: read problems are reported as messages and the
// result falls back to a bare timestamp.
func (s *Session) SuggestedName() string {
	s.notify("Parsing current save...")
	name, err := SuggestName(s.liveSave, time.Now())
	if err != nil {
		s.notify(fmt.Sprintf("Error parsing save: %v", err))
	}
	s.notify(name)
	return name
}

// Selected reports whether a live save is currently selected.
func (s *Session) Selected() bool { return s.liveSave != "" }

// LiveSave returns the current live save path, empty if unselected.
func (s *Session) LiveSave() string { return s.liveSave }

// ArchiveDir returns the derived archive directory, empty until a selection
// has resolved successfully.
func (s *Session) ArchiveDir() string { return s.loc.ArchiveDir }

// QuickSavePath returns the derived quicksave slot path.
func (s *Session) QuickSavePath() string { return s.loc.QuickSave }

// Archive returns the archive listing snapshot from the last refresh.
// The order is filesystem-native and not meaningful.
func (s *Session) Archive() []string { return s.archive }

// DisplayName returns the live save's base name for use in a title bar,
// empty if unselected.
func (s *Session) DisplayName() string {
	if s.liveSave == "" {
		return ""
	}
	return filepath.Base(s.liveSave)
}

func (s *Session) notify(msg string) {
	s.notifier.Notify(msg)
}

func (s *Session) notifyNoGame() {
	s.notify("No game selected! Choose your game's storePS<gamename>PSstate " +
		"file with Select Game.")
}

func (s *Session) debugf(format string, v ...interface{}) {
	if s.log != nil {
		s.log.Debugf(format, v...)
	}
}
