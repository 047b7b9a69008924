package sim

import (
	"fmt"
	"math"
	"strings"

	"github.com/MajorDroolz/schedsim/pkg/types"
)

// Stats is the aggregate outcome of one algorithm run. A run with no
// processes reports zeros. A truncated run still averages burst lengths over
// the whole generated workload and reports the clock at the cut as Elapsed;
// waits, turnarounds and counts cover only the events before the cut.
type Stats struct {
	Algorithm   string       `json:"algorithm"`
	Elapsed     types.Millis `json:"elapsed_ms"`
	Utilization float64      `json:"cpu_utilization_pct"`
	Burst       Triple       `json:"avg_cpu_burst_ms"`
	Wait        Triple       `json:"avg_wait_ms"`
	Turnaround  Triple       `json:"avg_turnaround_ms"`
	Switches    Counts       `json:"context_switches"`
	Preempts    Counts       `json:"preemptions"`
}

// Triple is a mean reported overall and split by process classification.
type Triple struct {
	All float64 `json:"all"`
	CPU float64 `json:"cpu_bound"`
	IO  float64 `json:"io_bound"`
}

// Counts is an event tally reported overall and split by classification.
type Counts struct {
	All int `json:"all"`
	CPU int `json:"cpu_bound"`
	IO  int `json:"io_bound"`
}

// Block renders the simout entry for this run. Means are ceiled to three
// decimal places, never rounded; parenthesized pairs are
// (CPU-bound/I/O-bound).
func (st Stats) Block() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Algorithm %s\n", st.Algorithm)
	fmt.Fprintf(&b, "-- CPU utilization: %.3f%%\n", st.Utilization)
	fmt.Fprintf(&b, "-- average CPU burst time: %.3f ms (%.3f ms/%.3f ms)\n",
		st.Burst.All, st.Burst.CPU, st.Burst.IO)
	fmt.Fprintf(&b, "-- average wait time: %.3f ms (%.3f ms/%.3f ms)\n",
		st.Wait.All, st.Wait.CPU, st.Wait.IO)
	fmt.Fprintf(&b, "-- average turnaround time: %.3f ms (%.3f ms/%.3f ms)\n",
		st.Turnaround.All, st.Turnaround.CPU, st.Turnaround.IO)
	fmt.Fprintf(&b, "-- number of context switches: %d (%d/%d)\n",
		st.Switches.All, st.Switches.CPU, st.Switches.IO)
	fmt.Fprintf(&b, "-- number of preemptions: %d (%d/%d)\n",
		st.Preempts.All, st.Preempts.CPU, st.Preempts.IO)
	return b.String()
}

// ceil3 ceils to three decimal places: ceil(1000x)/1000.
func ceil3(x float64) float64 {
	return math.Ceil(x*1000) / 1000
}

// tally sums one classification slice of the process set. Wait and
// turnaround means divide by the number of CPU bursts, so waits from
// preemption re-queues fold into their burst's total.
type tally struct {
	bursts   int
	burstSum int
	waitSum  int
	taSum    int
	switches int
	preempts int
}

func group(procs []*Process, keep func(*Process) bool) tally {
	var t tally
	for _, p := range procs {
		if !keep(p) {
			continue
		}
		t.bursts += len(p.Bursts)
		for _, b := range p.Bursts {
			t.burstSum += b.CPU
		}
		for _, w := range p.waits {
			t.waitSum += w
		}
		for _, ta := range p.turnarounds {
			t.taSum += ta
		}
		t.switches += p.switches
		t.preempts += p.preempts
	}
	return t
}

func (t tally) meanBurst() float64 {
	if t.bursts == 0 {
		return 0
	}
	return ceil3(float64(t.burstSum) / float64(t.bursts))
}

func (t tally) meanWait() float64 {
	if t.bursts == 0 {
		return 0
	}
	return ceil3(float64(t.waitSum) / float64(t.bursts))
}

func (t tally) meanTurnaround() float64 {
	if t.bursts == 0 {
		return 0
	}
	return ceil3(float64(t.taSum) / float64(t.bursts))
}
