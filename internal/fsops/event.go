package fsops

// EventKind says what kind of entity an Event is about.
type EventKind int

const (
	EventRoot EventKind = iota
	EventDir
	EventFile
)

// Event is emitted once for the root folder and once per folder and file.
type Event struct {
	Kind    EventKind
	Path    string
	Existed bool // folder reused or file overwritten
	DryRun  bool
}

// Reporter receives progress events.
type Reporter interface {
	Report(Event)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Event)

func (f ReporterFunc) Report(e Event) { f(e) }

type nopReporter struct{}

func (nopReporter) Report(Event) {}
