package sim

// FCFS schedules in strict arrival order with no preemption.
type FCFS struct {
	base
}

// NewFCFS returns a first-come-first-served policy.
func NewFCFS() *FCFS { return &FCFS{} }

func (f *FCFS) Name() string { return "FCFS" }

func (f *FCFS) OnArrival(p *Process, s *Simulator) {
	f.base.OnArrival(p, s)
	f.q.push(s.clock, p)
	s.trace(false, "Process %s arrived; added to ready queue", p.Name)
}

func (f *FCFS) OnCPU(p *Process, s *Simulator) {
	f.base.OnCPU(p, s)
	cpu := p.burst().CPU
	s.runProcess(p)
	s.addEvent(KindFinishCPU, p, p.cpuLeft)
	s.trace(false, "Process %s started using the CPU for %dms burst", p.Name, cpu)
}

func (f *FCFS) OnFinishCPU(p *Process, s *Simulator) {
	f.base.OnFinishCPU(p, s)
	s.stopProcess()
	f.finishOrBlock(p, s)
}

// finishOrBlock schedules the switch-out destination after a completed
// burst: EXIT for the final burst, IO otherwise, both after the switch-out
// half of the context-switch cost.
func (f *FCFS) finishOrBlock(p *Process, s *Simulator) {
	bu := p.burst()
	if !bu.HasIO() {
		s.trace(true, "Process %s terminated", p.Name)
		s.addEvent(KindExit, p, s.params.TCS/2)
		return
	}
	left := p.burstsLeft()
	s.addEvent(KindIO, p, s.params.TCS/2)
	s.trace(false, "Process %s completed a CPU burst; %d burst%s to go",
		p.Name, left, plural(left))
	s.trace(false, "Process %s switching out of CPU; blocking on I/O until time %dms",
		p.Name, s.clock+bu.IO+s.params.TCS/2)
}

func (f *FCFS) OnFinishIO(p *Process, s *Simulator) {
	f.base.OnFinishIO(p, s)
	f.q.push(s.clock, p)
	s.trace(false, "Process %s completed I/O; added to ready queue", p.Name)
}
