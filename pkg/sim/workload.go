package sim

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/MajorDroolz/schedsim/pkg/rand48"
)

// Bound classifies a process at generation time. CPU-bound processes get
// their CPU times multiplied by 4 and their I/O times divided by 8.
type Bound string

const (
	CPUBound Bound = "CPU"
	IOBound  Bound = "I/O"
)

// Burst is one (CPU, optional I/O) unit of a process's execution sequence.
// IO is 0 on the final burst, which has no I/O; generated I/O times are
// always at least 1ms.
type Burst struct {
	CPU int
	IO  int
}

// HasIO reports whether the burst is followed by an I/O phase.
func (b Burst) HasIO() bool { return b.IO > 0 }

// Generate produces the deterministic process set for p. The order of RNG
// draws is part of the contract: per process, arrival first, then the burst
// count, then cpu [, io] for each burst, in name order A..Z.
func Generate(p Params) []*Process {
	rng := rand48.New(0)
	rng.Srand(p.Seed)

	threshold := float64(p.Threshold)
	procs := make([]*Process, 0, p.N)
	for i := 0; i < p.N; i++ {
		arrival := int(math.Floor(rng.NextExp(p.Lambda, threshold)))
		nBursts := int(math.Ceil(64 * rng.Drand()))
		bound := IOBound
		if i >= p.NIO() {
			bound = CPUBound
		}

		bursts := make([]Burst, 0, nBursts)
		for j := 0; j < nBursts; j++ {
			cpu := int(math.Ceil(rng.NextExp(p.Lambda, threshold)))
			io := 0
			if j != nBursts-1 {
				io = 10 * int(math.Ceil(rng.NextExp(p.Lambda, threshold)))
				if bound == CPUBound {
					io /= 8
				}
			}
			if bound == CPUBound {
				cpu *= 4
			}
			bursts = append(bursts, Burst{CPU: cpu, IO: io})
		}

		procs = append(procs, newProcess(string(rune('A'+i)), arrival, bound, bursts))
	}
	return procs
}

// Banner renders the part-I process-set listing followed by the part-II
// parameter line.
func Banner(p Params, procs []*Process) string {
	var b strings.Builder
	es := "es"
	if p.NCPU == 1 {
		es = ""
	}
	fmt.Fprintf(&b, "<<< PROJECT PART I -- process set (n=%d) with %d CPU-bound process%s >>>\n",
		p.N, p.NCPU, es)
	for _, pr := range procs {
		fmt.Fprintf(&b, "%s-bound process %s: arrival time %dms; %d CPU burst%s:\n",
			pr.Bound, pr.Name, pr.Arrival, len(pr.Bursts), plural(len(pr.Bursts)))
		for _, bu := range pr.Bursts {
			if bu.HasIO() {
				fmt.Fprintf(&b, "--> CPU burst %dms --> I/O burst %dms\n", bu.CPU, bu.IO)
			} else {
				fmt.Fprintf(&b, "--> CPU burst %dms\n", bu.CPU)
			}
		}
	}
	fmt.Fprintf(&b, "<<< PROJECT PART II -- t_cs=%dms; alpha=%s; t_slice=%dms >>>\n",
		p.TCS, strconv.FormatFloat(float64(p.Alpha), 'g', -1, 32), p.TSlice)
	return b.String()
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
