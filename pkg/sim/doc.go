// Package sim is a deterministic discrete-event simulator of single-CPU
// process scheduling.
//
// A run starts from a synthetic workload: processes named A..Z, each an
// alternating sequence of CPU and I/O bursts drawn from a truncated
// exponential distribution over a bit-exact drand48 stream, so the same
// seed always yields the same byte-identical trace and statistics.
//
// The kernel owns a global clock driven by a time-ordered event queue.
// Ties at a timestamp break on the event kind's ordinal, then on the
// process name; this ordering is observable in the output and must not
// change. After all events at a timestamp have drained, the active policy
// gets a dispatch opportunity to move a ready process onto the CPU, paying
// half the context-switch cost on the way in and half on the way out.
//
// Four policies implement the Policy interface: FCFS, SJF (exponential-
// average burst prediction), SRT (preemptive SJF) and RR. Each Run
// regenerates the workload from the seed and resets all run state, then
// returns the aggregate Stats for the simout report.
package sim
