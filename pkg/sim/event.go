package sim

import "container/heap"

// Kind enumerates the closed set of event types. The ordinal values are the
// event queue's secondary sort key and are load-bearing: FINISH_CPU must be
// processed before a colliding ARRIVAL so that SJF and SRT compare against
// an updated tau.
type Kind int

const (
	KindFinishCPU Kind = iota + 1
	KindCPU
	KindFinishIO
	KindIO
	KindPreempt
	KindArrival
	KindExit
	KindExpire
)

var kindNames = map[Kind]string{
	KindFinishCPU: "FINISH_CPU",
	KindCPU:       "CPU",
	KindFinishIO:  "FINISH_IO",
	KindIO:        "IO",
	KindPreempt:   "PREEMPT",
	KindArrival:   "ARRIVAL",
	KindExit:      "EXIT",
	KindExpire:    "EXPIRE",
}

func (k Kind) String() string { return kindNames[k] }

// Event is one scheduled occurrence for a process. Events are unique by
// their (time, kind, process) triple; duplicates are a programmer bug.
type Event struct {
	Time int
	Kind Kind
	Proc *Process
}

// eventQueue is a min-heap ordered by (time, kind ordinal, process name).
// The full ordering makes dispatch deterministic for any colliding
// timestamps.
type eventQueue []*Event

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	a, b := q[i], q[j]
	if a.Time != b.Time {
		return a.Time < b.Time
	}
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	return a.Proc.Name < b.Proc.Name
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x any) { *q = append(*q, x.(*Event)) }

func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return e
}

// removeFor discards every pending event for p and restores heap order.
// Preemption relies on this to cancel an in-flight FINISH_CPU or EXPIRE.
func (q *eventQueue) removeFor(p *Process) {
	kept := (*q)[:0]
	for _, e := range *q {
		if e.Proc != p {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(*q); i++ {
		(*q)[i] = nil
	}
	*q = kept
	heap.Init(q)
}
