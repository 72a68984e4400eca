package composite

type EventKind string

const (
	EventCreated   EventKind = "created"
	EventLeaf      EventKind = "leaf"
	EventComposite EventKind = "composite"
)

// Event is what a node reports during Operation. Children is the number of
// direct children and is only meaningful for EventComposite.
type Event struct {
	Kind     EventKind `json:"kind"`
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Depth    int       `json:"depth"`
	Children int       `json:"children"`
}

type Reporter interface {
	Report(ev Event)
}

type ReporterFunc func(ev Event)

func (f ReporterFunc) Report(ev Event) {
	f(ev)
}

// Recorder keeps every reported event in order.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Report(ev Event) {
	r.Events = append(r.Events, ev)
}

func (r *Recorder) Names() []string {
	res := make([]string, len(r.Events))
	for i, ev := range r.Events {
		res[i] = ev.Name
	}
	return res
}

func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}

// Multi fans every event out to each non-nil reporter, in order.
func Multi(reporters ...Reporter) Reporter {
	return ReporterFunc(func(ev Event) {
		for _, r := range reporters {
			report(r, ev)
		}
	})
}

func report(r Reporter, ev Event) {
	if r != nil {
		r.Report(ev)
	}
}
