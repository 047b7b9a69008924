package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MajorDroolz/schedsim/pkg/config"
	"github.com/MajorDroolz/schedsim/pkg/sim"
)

// errInvalidParams triggers the single-line error banner required for any
// argument validation failure.
var errInvalidParams = errors.New("invalid parameters")

type opts struct {
	configPath string
	outPath    string

	// report outputs
	csvPath  string
	jsonPath string
	htmlPath string
	pretty   bool
}

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "schedsim [n n_cpu seed lambda threshold t_cs alpha t_slice]",
		Short: "Deterministic single-CPU scheduling simulator",
		Long: `schedsim simulates four scheduling disciplines (FCFS, SJF, SRT, RR) over
a synthetic process workload generated from a drand48 seed. It prints the
cycle-by-cycle event trace to stdout and writes the per-algorithm summary
statistics to simout.txt.

The workload is deterministic: the same parameters always produce the same
byte-identical trace and statistics. Set the ALL environment variable to
keep tracing past 10000ms.

Examples:
  schedsim 8 2 3 0.001 3000 4 0.5 128
  schedsim --config scenario.yaml --csv stats.csv --html report.html`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(o, args)
		},
	}

	root.Flags().StringVar(&o.configPath, "config", "", "load parameters from a YAML scenario file instead of argv")
	root.Flags().StringVar(&o.outPath, "out", "simout.txt", "path of the statistics file")
	root.Flags().StringVar(&o.csvPath, "csv", "", "write per-algorithm statistics rows to CSV file")
	root.Flags().StringVar(&o.jsonPath, "json", "", "write per-algorithm statistics rows to JSON file")
	root.Flags().StringVar(&o.htmlPath, "html", "", "write per-algorithm statistics and summary to HTML file")
	root.Flags().BoolVar(&o.pretty, "pretty", false, "print a summary table after the trace")

	if err := root.Execute(); err != nil {
		if errors.Is(err, errInvalidParams) || errors.Is(err, sim.ErrBadParams) {
			fmt.Fprintln(os.Stderr, "ERROR: Invalid number of parameters.")
			os.Exit(1)
		}
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(o opts, args []string) error {
	params, err := parseParams(o, args)
	if err != nil {
		return err
	}

	procs := sim.Generate(params)
	fmt.Print(sim.Banner(params, procs))

	simulator := sim.New(params, os.Stdout)
	policies := []sim.Policy{sim.NewFCFS(), sim.NewSJF(), sim.NewSRT(), sim.NewRR()}

	stats := make([]sim.Stats, 0, len(policies))
	for i, policy := range policies {
		if i > 0 {
			fmt.Println()
		}
		st, err := simulator.Run(policy)
		if err != nil {
			slog.Warn("run incomplete", "algorithm", policy.Name(), "err", err)
		}
		stats = append(stats, st)
	}

	var out bytes.Buffer
	for _, st := range stats {
		out.WriteString(st.Block())
	}
	if err := os.WriteFile(o.outPath, out.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", o.outPath, err)
	}

	if err := writeReports(o, stats); err != nil {
		return err
	}
	if o.pretty {
		printTable(stats)
	}
	return nil
}

// parseParams resolves the simulation parameters from the scenario file or
// the eight positional arguments. Any shape or range problem maps to the
// invalid-parameters banner.
func parseParams(o opts, args []string) (sim.Params, error) {
	if o.configPath != "" {
		return config.Load(o.configPath)
	}
	if len(args) != 8 {
		return sim.Params{}, errInvalidParams
	}

	var (
		p    sim.Params
		errs [8]error
	)
	p.N, errs[0] = strconv.Atoi(args[0])
	p.NCPU, errs[1] = strconv.Atoi(args[1])
	p.Seed, errs[2] = strconv.ParseInt(args[2], 10, 64)
	p.Lambda, errs[3] = strconv.ParseFloat(args[3], 64)
	p.Threshold, errs[4] = strconv.Atoi(args[4])
	p.TCS, errs[5] = strconv.Atoi(args[5])
	var alpha float64
	alpha, errs[6] = strconv.ParseFloat(args[6], 32)
	p.Alpha = float32(alpha)
	p.TSlice, errs[7] = strconv.Atoi(args[7])

	for _, err := range errs {
		if err != nil {
			return sim.Params{}, errInvalidParams
		}
	}
	if err := p.Validate(); err != nil {
		return sim.Params{}, err
	}
	return p, nil
}

func writeReports(o opts, stats []sim.Stats) error {
	if o.csvPath != "" {
		if err := writeCSV(o.csvPath, stats); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}
	if o.jsonPath != "" {
		if err := writeJSON(o.jsonPath, stats); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
	}
	if o.htmlPath != "" {
		if err := writeHTML(o.htmlPath, stats); err != nil {
			return fmt.Errorf("write html: %w", err)
		}
	}
	return nil
}

func writeCSV(path string, stats []sim.Stats) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{
		"algorithm", "elapsed_ms", "cpu_utilization_pct",
		"avg_burst_ms", "avg_wait_ms", "avg_turnaround_ms",
		"context_switches", "preemptions",
	}); err != nil {
		return err
	}
	for _, st := range stats {
		if err := w.Write([]string{
			st.Algorithm,
			strconv.FormatInt(int64(st.Elapsed), 10),
			fmtFloat(st.Utilization),
			fmtFloat(st.Burst.All),
			fmtFloat(st.Wait.All),
			fmtFloat(st.Turnaround.All),
			strconv.Itoa(st.Switches.All),
			strconv.Itoa(st.Preempts.All),
		}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeJSON(path string, stats []sim.Stats) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}

func writeHTML(path string, stats []sim.Stats) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, stats); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func printTable(stats []sim.Stats) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "ALG\tELAPSED\tUTIL\tBURST\tWAIT\tTURNAROUND\tSWITCHES\tPREEMPTIONS")
	fmt.Fprintln(tw, "---\t-------\t----\t-----\t----\t----------\t--------\t-----------")
	for _, st := range stats {
		fmt.Fprintf(tw, "%s\t%s\t%.3f%%\t%.3f ms\t%.3f ms\t%.3f ms\t%d\t%d\n",
			st.Algorithm, st.Elapsed.Humanized(), st.Utilization,
			st.Burst.All, st.Wait.All, st.Turnaround.All,
			st.Switches.All, st.Preempts.All)
	}
	tw.Flush()
}

func fmtFloat(v float64) string {
	return strings.TrimRight(strings.TrimRight(strconv.FormatFloat(v, 'f', 3, 64), "0"), ".")
}

var tpl = template.Must(template.New("rep").Parse(`<!doctype html>
<html lang="en"><meta charset="utf-8">
<title>Scheduling Report</title>
<style>
body{font-family:system-ui,Segoe UI,Roboto,Helvetica,Arial,sans-serif;margin:20px}
h1,h2{margin:0 0 8px}
table{border-collapse:collapse;width:100%;font-size:14px}
th,td{border:1px solid #ddd;padding:6px 8px;text-align:right}
th:first-child,td:first-child{text-align:left}
.small{color:#555}
</style>

<h1>Scheduling Report</h1>

<p class="small">Per-algorithm summary over one workload; parenthesized pairs are CPU-bound/I/O-bound.</p>

<h2>Summary</h2>
<table>
<thead>
<tr>
<th>algorithm</th><th>elapsed</th><th>CPU util</th>
<th>avg burst (ms)</th><th>avg wait (ms)</th><th>avg turnaround (ms)</th>
<th>switches</th><th>preemptions</th>
</tr>
</thead>
<tbody>
{{range .}}
<tr>
<td>{{.Algorithm}}</td>
<td>{{.Elapsed.Humanized}}</td>
<td>{{printf "%.3f%%" .Utilization}}</td>
<td>{{printf "%.3f (%.3f/%.3f)" .Burst.All .Burst.CPU .Burst.IO}}</td>
<td>{{printf "%.3f (%.3f/%.3f)" .Wait.All .Wait.CPU .Wait.IO}}</td>
<td>{{printf "%.3f (%.3f/%.3f)" .Turnaround.All .Turnaround.CPU .Turnaround.IO}}</td>
<td>{{printf "%d (%d/%d)" .Switches.All .Switches.CPU .Switches.IO}}</td>
<td>{{printf "%d (%d/%d)" .Preempts.All .Preempts.CPU .Preempts.IO}}</td>
</tr>
{{end}}
</tbody>
</table>
</html>`))
