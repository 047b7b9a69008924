package sim

// SRT is SJF with preemption: whenever a ready process's remaining estimate
// beats the runner's, the runner is switched out. The check runs at every
// dispatch opportunity and again when a process returns from I/O.
type SRT struct {
	SJF
}

// NewSRT returns a shortest-remaining-time policy.
func NewSRT() *SRT { return &SRT{} }

func (r *SRT) Name() string { return "SRT" }

func (r *SRT) OnEvented(s *Simulator) bool {
	dispatched := r.SJF.OnEvented(s)

	cur := s.current
	if cur == nil || s.switching || r.q.len() == 0 {
		return dispatched
	}
	p := r.q.head()
	if cur.remaining()-(s.clock-cur.startCPU) <= p.remaining() {
		return dispatched
	}

	r.preempt(cur, s)
	s.trace(false, "Process %s (tau %dms) will preempt %s", p.Name, p.tau, cur.Name)
	return dispatched
}

func (r *SRT) OnPreempt(p *Process, s *Simulator) {
	r.base.OnPreempt(p, s)
	s.releaseCPU()
	r.q.push(p.remaining(), p)
	r.q.sort()
}

func (r *SRT) OnFinishIO(p *Process, s *Simulator) {
	p.onFinishIO(s.clock)

	cur := s.current
	r.q.push(p.tau, p)
	r.q.sort()

	if cur != nil && !s.switching && cur.remaining()-(s.clock-cur.startCPU) > p.tau {
		r.preempt(cur, s)
		s.trace(false, "Process %s (tau %dms) completed I/O; preempting %s",
			p.Name, p.tau, cur.Name)
		return
	}
	s.trace(false, "Process %s (tau %dms) completed I/O; added to ready queue",
		p.Name, p.tau)
}

// preempt pulls the runner off the CPU: its pending events are cancelled,
// the occupancy interval closes, its CPU progress rolls back into cpuDone,
// and the PREEMPT event lands after the switch-out half.
func (r *SRT) preempt(cur *Process, s *Simulator) {
	s.removeEventsFor(cur)
	s.stopProcess()
	s.addEvent(KindPreempt, cur, s.params.TCS/2)
	cur.onFinishCPU(s.clock)
}
