package sim

import "slices"

// Policy is a scheduling discipline: a ready queue plus a reaction to each
// event kind. The kind set is closed and fixed, so the policy surface is one
// method per kind rather than a callback registry.
type Policy interface {
	Name() string

	// QueueNames returns the ready queue's process names in queue order,
	// for trace rendering.
	QueueNames() []string

	// OnEvented is the dispatch opportunity: the kernel calls it once all
	// events at the current timestamp have drained. It reports whether a
	// process was moved toward the CPU.
	OnEvented(s *Simulator) bool

	OnArrival(p *Process, s *Simulator)
	OnCPU(p *Process, s *Simulator)
	OnFinishCPU(p *Process, s *Simulator)
	OnIO(p *Process, s *Simulator)
	OnFinishIO(p *Process, s *Simulator)
	OnPreempt(p *Process, s *Simulator)
	OnExpire(p *Process, s *Simulator)
	OnExit(p *Process, s *Simulator)

	reset()
}

// readyEntry pairs a process with its ordering key: the enqueue time for
// FIFO disciplines, tau or remaining estimate for SJF and SRT.
type readyEntry struct {
	key  int
	proc *Process
}

// ready is the ordered ready queue shared by all four disciplines.
type ready struct {
	entries []readyEntry
}

func (r *ready) len() int { return len(r.entries) }

func (r *ready) push(key int, p *Process) {
	r.entries = append(r.entries, readyEntry{key: key, proc: p})
}

// sort orders by (key, name). FIFO users never call it; their enqueue-time
// keys already arrive in order.
func (r *ready) sort() {
	slices.SortStableFunc(r.entries, func(a, b readyEntry) int {
		if a.key != b.key {
			return a.key - b.key
		}
		return compareNames(a.proc.Name, b.proc.Name)
	})
}

func (r *ready) head() *Process {
	if len(r.entries) == 0 {
		return nil
	}
	return r.entries[0].proc
}

func (r *ready) remove(p *Process) {
	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.proc != p {
			kept = append(kept, e)
		}
	}
	r.entries = kept
}

func (r *ready) names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.proc.Name
	}
	return names
}

func compareNames(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// base carries the event reactions every discipline shares; the concrete
// policies override the handlers where their queue discipline differs.
type base struct {
	q ready
}

func (b *base) reset() { b.q.entries = nil }

func (b *base) QueueNames() []string { return b.q.names() }

// OnEvented dispatches the ready-queue head when the CPU is idle and no
// context switch is in progress: the head's wait interval is banked, its
// CPU event is scheduled after the switch-in half, and the CPU is reserved.
func (b *base) OnEvented(s *Simulator) bool {
	if s.current != nil || s.switching {
		return false
	}
	p := b.q.head()
	if p == nil {
		return false
	}
	b.q.remove(p)
	p.onWillCPU(s.clock)
	s.addEvent(KindCPU, p, s.params.TCS/2)
	s.switching = true
	return true
}

func (b *base) OnArrival(p *Process, s *Simulator) { p.onArrival(s.clock) }

func (b *base) OnCPU(p *Process, s *Simulator) { p.onCPU(s.clock) }

func (b *base) OnFinishCPU(p *Process, s *Simulator) { p.onFinishCPU(s.clock) }

// OnIO banks the turnaround interval and parks the process on I/O; the
// switch-out is complete, so the CPU is released.
func (b *base) OnIO(p *Process, s *Simulator) {
	p.onIO(s.clock)
	bu := p.burst()
	if !bu.HasIO() {
		return
	}
	s.releaseCPU()
	s.addEvent(KindFinishIO, p, bu.IO)
}

func (b *base) OnFinishIO(p *Process, s *Simulator) { p.onFinishIO(s.clock) }

func (b *base) OnPreempt(p *Process, s *Simulator) { p.onPreempt(s.clock) }

func (b *base) OnExpire(p *Process, s *Simulator) {}

func (b *base) OnExit(p *Process, s *Simulator) {
	p.onExit(s.clock)
	s.releaseCPU()
}
