package saves

// Notifier receives human-readable status messages as operations run. It is
// the only user-facing output of this package besides the file changes
// themselves; sinks own the timestamping and presentation.
type Notifier interface {
	Notify(msg string)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(msg string)

// Notify calls f(msg).
func (f NotifierFunc) Notify(msg string) { f(msg) }

// discardNotifier drops all messages. Used when no sink is configured.
type discardNotifier struct{}

func (discardNotifier) Notify(string) {}
