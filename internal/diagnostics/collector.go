package diagnostics

import (
	"fmt"
	"io"
	"os"
)

type Diag struct {
	Message string
}

// Collector reports diagnostics as they happen and keeps them around so
// callers can inspect what was emitted. The output format is advisory, not
// a parseable protocol.
type Collector struct {
	Out   io.Writer
	Diags []Diag
}

func New() *Collector {
	return &Collector{
		Out:   os.Stderr,
		Diags: nil,
	}
}

func NewWithOutput(out io.Writer) *Collector {
	return &Collector{
		Out:   out,
		Diags: nil,
	}
}

func (collector *Collector) ReportAndSave(diag Diag) {
	fmt.Fprintf(collector.Out, "LogError: %s\n", diag.Message)
	collector.Diags = append(collector.Diags, diag)
}
