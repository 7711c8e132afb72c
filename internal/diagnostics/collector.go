package diagnostics

import (
	"fmt"
	"io"
)

type Diag struct {
	Message string
	Err     error
}

func New() *Collector {
	return &Collector{
		Diags: nil,
	}
}

// NewWithWriter returns a collector that also prints every diagnostic to w.
func NewWithWriter(w io.Writer) *Collector {
	return &Collector{Diags: nil, out: w}
}

type Collector struct {
	Diags []Diag

	out io.Writer
}

func (collector *Collector) ReportAndSave(diag Diag) {
	if collector.out != nil {
		fmt.Fprintln(collector.out, diag.Message)
	}
	collector.Diags = append(collector.Diags, diag)
}

// Report builds a diagnostic from err and saves it.
func (collector *Collector) Report(err error) {
	collector.ReportAndSave(Diag{Message: fmt.Sprintf("error: %s", err), Err: err})
}

func (collector *Collector) HasErrors() bool {
	return len(collector.Diags) > 0
}

func (collector *Collector) Reset() {
	collector.Diags = nil
}
