package main

import (
	"io"

	"luna/internal/observ"
)

func printTimings(out io.Writer, report observ.Report) {
	if out == nil || len(report.Phases) == 0 {
		return
	}
	if err := report.Aggregate().WriteSummary(out); err != nil {
		panic(err)
	}
}
