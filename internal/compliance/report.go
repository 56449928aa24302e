package compliance

import (
	"fmt"
	"strings"
)

// Status of a report line.
type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
	StatusWarn Status = "WARN"
)

// ReportLine is a single check outcome.
type ReportLine struct {
	Status  Status
	Message string
}

func (l ReportLine) String() string {
	return fmt.Sprintf("%s: %s", l.Status, l.Message)
}

func pass(format string, args ...any) ReportLine {
	return ReportLine{Status: StatusPass, Message: fmt.Sprintf(format, args...)}
}

func finding(sev Severity, format string, args ...any) ReportLine {
	status := StatusFail
	if sev == SeverityWarn {
		status = StatusWarn
	}
	return ReportLine{Status: status, Message: fmt.Sprintf(format, args...)}
}

// Report is the outcome of a compliance check. Findings (FAIL and WARN)
// and passes each keep evaluation order.
type Report struct {
	Repo     string
	Type     ProjectType
	Findings []ReportLine
	Passes   []ReportLine
}

func (r *Report) add(l ReportLine) {
	if l.Status == StatusPass {
		r.Passes = append(r.Passes, l)
		return
	}
	r.Findings = append(r.Findings, l)
}

// Failures counts FAIL findings.
func (r *Report) Failures() int {
	n := 0
	for _, f := range r.Findings {
		if f.Status == StatusFail {
			n++
		}
	}
	return n
}

// String renders the report. The Issues block is omitted when there are
// no findings.
func (r *Report) String() string {
	lines := []string{
		"# Compliance Report",
		fmt.Sprintf("Repo: %s (%s)", r.Repo, r.Type),
		"",
	}
	if len(r.Findings) > 0 {
		lines = append(lines, fmt.Sprintf("## Issues (%d)", len(r.Findings)))
		for _, f := range r.Findings {
			lines = append(lines, f.String())
		}
		lines = append(lines, "")
	}

	lines = append(lines, fmt.Sprintf("## Passed (%d)", len(r.Passes)))
	for _, p := range r.Passes {
		lines = append(lines, p.String())
	}
	return strings.Join(lines, "\n")
}
