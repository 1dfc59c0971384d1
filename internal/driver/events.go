package driver

// Stage describes a step of checking a single file.
type Stage string

const (
	StageLoad  Stage = "load"
	StageCache Stage = "cache"
	StageParse Stage = "parse"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting for a worker.
	StatusQueued Status = "queued"
	// StatusWorking indicates the file is being processed.
	StatusWorking Status = "working"
	// StatusDone indicates the file parsed cleanly.
	StatusDone Status = "done"
	// StatusError indicates a load or syntax error.
	StatusError Status = "error"
)

// Event is a progress notification emitted by Check.
type Event struct {
	File   string
	Stage  Stage
	Status Status
	Err    error
}

// EventSink receives progress events. Implementations must be safe for
// concurrent use.
type EventSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// SinkFunc adapts a function to EventSink.
type SinkFunc func(Event)

func (f SinkFunc) OnEvent(evt Event) { f(evt) }

func emit(s EventSink, evt Event) {
	if s != nil {
		s.OnEvent(evt)
	}
}
