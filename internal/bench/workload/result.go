package workload

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/yndnr/stripelist-go/internal/cli/output"
	"github.com/yndnr/stripelist-go/pkg/stripelist"
)

// OpCount is the outcome tally for one operation kind.
type OpCount struct {
	Op     string `json:"op" yaml:"op"`
	OK     uint64 `json:"ok" yaml:"ok"`
	Failed uint64 `json:"failed" yaml:"failed"`
}

// Layout is the list layout at the end of a run.
type Layout struct {
	Capacity     int    `json:"capacity" yaml:"capacity"`
	Len          int    `json:"len" yaml:"len"`
	StripeFactor int    `json:"stripe_factor" yaml:"stripe_factor"`
	Stripes      int    `json:"stripes" yaml:"stripes"`
	Growths      uint64 `json:"growths" yaml:"growths"`
}

// Result summarizes a finished run.
type Result struct {
	RunID     string    `json:"run_id" yaml:"run_id"`
	Mix       string    `json:"mix" yaml:"mix"`
	Workers   int       `json:"workers" yaml:"workers"`
	ElapsedMS float64   `json:"elapsed_ms" yaml:"elapsed_ms"`
	Ops       []OpCount `json:"ops" yaml:"ops"`
	Total     uint64    `json:"total" yaml:"total"`
	OpsPerSec float64   `json:"ops_per_sec" yaml:"ops_per_sec"`
	Layout    Layout    `json:"layout" yaml:"layout"`
}

func newResult(runID string, cfg Config, elapsed time.Duration, counts []counters, st stripelist.Stats) *Result {
	res := &Result{
		RunID:     runID,
		Mix:       cfg.Mix.String(),
		Workers:   cfg.Workers,
		ElapsedMS: float64(elapsed.Microseconds()) / 1000,
		Layout: Layout{
			Capacity:     st.Capacity,
			Len:          st.Len,
			StripeFactor: st.StripeFactor,
			Stripes:      st.Stripes,
			Growths:      st.Growths,
		},
	}

	for _, op := range Ops() {
		oc := OpCount{Op: op.String()}
		for i := range counts {
			oc.OK += counts[i].ok[op]
			oc.Failed += counts[i].failed[op]
		}
		res.Total += oc.OK + oc.Failed
		if cfg.Mix.Weight(op) > 0 || oc.OK+oc.Failed > 0 {
			res.Ops = append(res.Ops, oc)
		}
	}

	if secs := elapsed.Seconds(); secs > 0 {
		res.OpsPerSec = float64(res.Total) / secs
	}
	return res
}

// Table renders the per-operation tally followed by totals.
func (r *Result) Table() *output.Table {
	t := &output.Table{Headers: []string{"OP", "OK", "FAILED"}}
	for _, oc := range r.Ops {
		t.AddRow(oc.Op, comma(oc.OK), comma(oc.Failed))
	}
	t.AddRow("total", comma(r.Total), "")
	t.AddRow("", "", "")
	t.AddRow("run", r.RunID, "")
	t.AddRow("workers", r.Workers, "")
	t.AddRow("elapsed", time.Duration(r.ElapsedMS*float64(time.Millisecond)).Round(time.Microsecond), "")
	t.AddRow("ops/sec", humanize.CommafWithDigits(r.OpsPerSec, 0), "")
	t.AddRow("capacity", humanize.Comma(int64(r.Layout.Capacity)), "")
	t.AddRow("stripes", fmt.Sprintf("%s x %d", humanize.Comma(int64(r.Layout.Stripes)), r.Layout.StripeFactor), "")
	t.AddRow("growths", r.Layout.Growths, "")
	return t
}

func comma(n uint64) string {
	return humanize.Comma(int64(n))
}
