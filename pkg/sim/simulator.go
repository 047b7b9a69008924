package sim

import (
	"container/heap"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MajorDroolz/schedsim/pkg/types"
)

// Trace lines stop printing from this timestamp on, unless forced or the
// ALL environment variable is set.
const traceHorizon = 10000

// Simulator drives one scheduling run at a time: a global clock advanced by
// a time-ordered event queue, the single CPU conveyed by the current slot
// and the switching flag, and occupancy accounting for utilization.
type Simulator struct {
	params Params

	clock     int
	current   *Process
	switching bool
	queue     eventQueue
	procs     []*Process

	cpuTime  int
	cpuSince int

	policy Policy

	out     io.Writer
	showAll bool

	// probe, when set, runs after every dispatched event. Tests hang
	// invariant checks on it.
	probe func(*Simulator)
}

// New returns a simulator writing its trace to out. A nil out means
// os.Stdout. The ALL environment variable disables trace suppression.
func New(params Params, out io.Writer) *Simulator {
	if out == nil {
		out = os.Stdout
	}
	return &Simulator{
		params:  params,
		out:     out,
		showAll: os.Getenv("ALL") != "",
	}
}

// Run executes one full simulation under policy and returns its statistics.
// The workload is regenerated from the seed and every piece of run state is
// reset first, so nothing leaks between algorithm runs. A non-nil error
// reports a truncated or degenerate run; the statistics are still valid for
// whatever was observed.
func (s *Simulator) Run(policy Policy) (Stats, error) {
	s.clock = 0
	s.queue = s.queue[:0]
	s.current = nil
	s.switching = false
	s.cpuTime = 0
	s.cpuSince = 0

	s.policy = policy
	policy.reset()
	s.procs = Generate(s.params)

	for _, p := range s.procs {
		s.addEvent(KindArrival, p, p.Arrival)
	}

	s.trace(true, "Simulator started for %s", policy.Name())

	var err error
	if len(s.procs) == 0 {
		err = ErrNoProcesses
	}
	for s.queue.Len() > 0 {
		e := heap.Pop(&s.queue).(*Event)
		s.clock = e.Time
		if s.params.TimeLimit > 0 && s.clock >= s.params.TimeLimit {
			err = ErrTruncated
			break
		}
		s.dispatch(e)
		if s.probe != nil {
			s.probe(s)
		}
		if s.queue.Len() == 0 || s.queue[0].Time != s.clock {
			policy.OnEvented(s)
		}
	}

	s.trace(true, "Simulator ended for %s", policy.Name())
	return s.stats(), err
}

func (s *Simulator) dispatch(e *Event) {
	switch e.Kind {
	case KindArrival:
		s.policy.OnArrival(e.Proc, s)
	case KindCPU:
		s.policy.OnCPU(e.Proc, s)
	case KindFinishCPU:
		s.policy.OnFinishCPU(e.Proc, s)
	case KindIO:
		s.policy.OnIO(e.Proc, s)
	case KindFinishIO:
		s.policy.OnFinishIO(e.Proc, s)
	case KindPreempt:
		s.policy.OnPreempt(e.Proc, s)
	case KindExpire:
		s.policy.OnExpire(e.Proc, s)
	case KindExit:
		s.policy.OnExit(e.Proc, s)
	}
}

// addEvent schedules kind for p at now+delay.
func (s *Simulator) addEvent(kind Kind, p *Process, delay int) {
	heap.Push(&s.queue, &Event{Time: s.clock + delay, Kind: kind, Proc: p})
}

// removeEventsFor cancels all pending events for p.
func (s *Simulator) removeEventsFor(p *Process) {
	s.queue.removeFor(p)
}

// runProcess hands the CPU to p and opens the occupancy interval.
func (s *Simulator) runProcess(p *Process) {
	s.switching = false
	s.current = p
	s.cpuSince = s.clock
}

// stopProcess closes the occupancy interval. The CPU stays reserved for the
// switch-out half of the context switch.
func (s *Simulator) stopProcess() {
	s.cpuTime += s.clock - s.cpuSince
	s.current = nil
	s.switching = true
}

// releaseCPU ends a switch-out; the CPU is free to dispatch again.
func (s *Simulator) releaseCPU() {
	s.switching = false
}

// trace emits one line of the cycle trace with the ready queue rendered in
// its current order.
func (s *Simulator) trace(forced bool, format string, args ...any) {
	if !forced && s.clock >= traceHorizon && !s.showAll {
		return
	}
	names := s.policy.QueueNames()
	if len(names) == 0 {
		names = []string{"<empty>"}
	}
	fmt.Fprintf(s.out, "time %dms: %s [Q %s]\n",
		s.clock, fmt.Sprintf(format, args...), strings.Join(names, " "))
}

// stats aggregates the per-process accounting into the run's summary.
func (s *Simulator) stats() Stats {
	st := Stats{
		Algorithm: s.policy.Name(),
		Elapsed:   types.Millis(s.clock),
	}
	if s.clock > 0 {
		st.Utilization = ceil3(100 * float64(s.cpuTime) / float64(s.clock))
	}

	all := group(s.procs, func(*Process) bool { return true })
	cpu := group(s.procs, func(p *Process) bool { return p.Bound == CPUBound })
	ioB := group(s.procs, func(p *Process) bool { return p.Bound == IOBound })

	st.Burst = Triple{All: all.meanBurst(), CPU: cpu.meanBurst(), IO: ioB.meanBurst()}
	st.Wait = Triple{All: all.meanWait(), CPU: cpu.meanWait(), IO: ioB.meanWait()}
	st.Turnaround = Triple{All: all.meanTurnaround(), CPU: cpu.meanTurnaround(), IO: ioB.meanTurnaround()}
	st.Switches = Counts{All: all.switches, CPU: cpu.switches, IO: ioB.switches}
	st.Preempts = Counts{All: all.preempts, CPU: cpu.preempts, IO: ioB.preempts}
	return st
}
