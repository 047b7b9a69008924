package sim

// RR is FCFS with a time quantum. Expiry preempts only when another process
// is waiting; with an empty ready queue the runner just keeps the CPU for
// another slice (or to completion) with no context switch.
type RR struct {
	FCFS
}

// NewRR returns a round-robin policy.
func NewRR() *RR { return &RR{} }

func (r *RR) Name() string { return "RR" }

func (r *RR) OnCPU(p *Process, s *Simulator) {
	r.base.OnCPU(p, s)
	cpu := p.burst().CPU
	s.runProcess(p)
	r.armSlice(p, s)
	if p.cpuDone == 0 {
		s.trace(false, "Process %s started using the CPU for %dms burst", p.Name, cpu)
	} else {
		s.trace(false, "Process %s started using the CPU for remaining %dms of %dms burst",
			p.Name, p.cpuLeft, cpu)
	}
}

// armSlice schedules the end of this stint: burst completion if it fits the
// quantum, expiry otherwise.
func (r *RR) armSlice(p *Process, s *Simulator) {
	if p.cpuLeft <= s.params.TSlice {
		s.addEvent(KindFinishCPU, p, p.cpuLeft)
	} else {
		s.addEvent(KindExpire, p, s.params.TSlice)
	}
}

func (r *RR) OnExpire(p *Process, s *Simulator) {
	if r.q.len() == 0 {
		p.onFinishCPU(s.clock)
		p.startCPU = s.clock
		s.trace(false, "Time slice expired; no preemption because ready queue is empty")
		r.armSlice(p, s)
		return
	}

	s.removeEventsFor(p)
	s.stopProcess()
	s.addEvent(KindPreempt, p, s.params.TCS/2)
	p.onFinishCPU(s.clock)
	s.trace(false, "Time slice expired; preempting process %s with %dms remaining",
		p.Name, p.cpuLeft)
}

func (r *RR) OnPreempt(p *Process, s *Simulator) {
	r.base.OnPreempt(p, s)
	s.releaseCPU()
	r.q.push(s.clock, p)
}
