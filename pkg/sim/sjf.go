package sim

import "math"

// SJF dispatches the smallest predicted next burst first, without
// preemption. Predictions start at ceil(1/lambda) and fold each finished
// burst in with an exponential average.
type SJF struct {
	base
}

// NewSJF returns a shortest-job-first policy.
func NewSJF() *SJF { return &SJF{} }

func (j *SJF) Name() string { return "SJF" }

func (j *SJF) OnArrival(p *Process, s *Simulator) {
	j.base.OnArrival(p, s)
	p.tau = int(math.Ceil(1 / s.params.Lambda))
	j.q.push(p.tau, p)
	j.q.sort()
	s.trace(false, "Process %s (tau %dms) arrived; added to ready queue", p.Name, p.tau)
}

func (j *SJF) OnCPU(p *Process, s *Simulator) {
	j.base.OnCPU(p, s)
	cpu := p.burst().CPU
	s.runProcess(p)
	s.addEvent(KindFinishCPU, p, p.cpuLeft)
	if p.cpuLeft != cpu {
		s.trace(false, "Process %s (tau %dms) started using the CPU for remaining %dms of %dms burst",
			p.Name, p.tau, p.cpuLeft, cpu)
	} else {
		s.trace(false, "Process %s (tau %dms) started using the CPU for %dms burst",
			p.Name, p.tau, cpu)
	}
}

func (j *SJF) OnFinishCPU(p *Process, s *Simulator) {
	j.base.OnFinishCPU(p, s)
	s.stopProcess()

	bu := p.burst()
	if !bu.HasIO() {
		s.trace(true, "Process %s terminated", p.Name)
		s.addEvent(KindExit, p, s.params.TCS/2)
		return
	}

	left := p.burstsLeft()
	old := p.tau
	p.tau = nextTau(s.params.Alpha, bu.CPU, old)

	s.addEvent(KindIO, p, s.params.TCS/2)
	s.trace(false, "Process %s (tau %dms) completed a CPU burst; %d burst%s to go",
		p.Name, old, left, plural(left))
	s.trace(false, "Recalculating tau for process %s: old tau %dms ==> new tau %dms",
		p.Name, old, p.tau)
	s.trace(false, "Process %s switching out of CPU; blocking on I/O until time %dms",
		p.Name, s.clock+bu.IO+s.params.TCS/2)
}

func (j *SJF) OnFinishIO(p *Process, s *Simulator) {
	j.base.OnFinishIO(p, s)
	j.q.push(p.tau, p)
	j.q.sort()
	s.trace(false, "Process %s (tau %dms) completed I/O; added to ready queue", p.Name, p.tau)
}

// nextTau folds a finished burst into the estimate:
// ceil(alpha*t + (1-alpha)*old). Each product is computed at single
// precision; the ceil applies to the double-precision sum of the narrowed
// products. Widening the products before multiplying changes the result.
func nextTau(alpha float32, burst, old int) int {
	at := alpha * float32(burst)
	rest := (1 - alpha) * float32(old)
	return int(math.Ceil(float64(at) + float64(rest)))
}
