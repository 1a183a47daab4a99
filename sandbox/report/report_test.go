package report_test

import (
	"testing"

	pkgerrors "lrungo/pkg/errors"
	"lrungo/sandbox/report"
	"lrungo/sandbox/result"
)

func TestParseFullReport(t *testing.T) {
	text := "MEMORY 1048576\nCPUTIME 0.125\nEXITCODE 0\nSIGNALED 0\nTERMSIG 0\nEXCEED none\n"
	stats, err := report.Parse(text, false)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if stats.MemoryBytes != 1048576 {
		t.Fatalf("expected memory 1048576, got %d", stats.MemoryBytes)
	}
	if stats.CPUTime != 0.125 {
		t.Fatalf("expected cputime 0.125, got %f", stats.CPUTime)
	}
	if stats.ExitCode != 0 || stats.Signaled || stats.Signal != 0 {
		t.Fatalf("unexpected termination fields: %+v", stats)
	}
	if stats.Exceeded != result.ExceedNone {
		t.Fatalf("expected no exceeded limit, got %s", stats.Exceeded)
	}
}

func TestParseSignaled(t *testing.T) {
	text := "MEMORY 2048\nCPUTIME 1.5\nEXITCODE 0\nSIGNALED 1\nTERMSIG 9\nEXCEED CPU_TIME\n"
	stats, err := report.Parse(text, false)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !stats.Signaled || stats.Signal != 9 {
		t.Fatalf("expected signal 9, got %+v", stats)
	}
	if stats.Exceeded != result.ExceedTime {
		t.Fatalf("expected time limit, got %s", stats.Exceeded)
	}
}

func TestParseSignalIgnoredWhenNotSignaled(t *testing.T) {
	text := "SIGNALED 0\nTERMSIG 11\nEXCEED none\n"
	stats, err := report.Parse(text, false)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if stats.Signaled || stats.Signal != 0 {
		t.Fatalf("TERMSIG should be meaningless without SIGNALED, got %+v", stats)
	}
}

func TestParseMissingKeysDefaultToZero(t *testing.T) {
	stats, err := report.Parse("", false)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if stats.MemoryBytes != 0 || stats.CPUTime != 0 || stats.ExitCode != 0 {
		t.Fatalf("expected zero defaults, got %+v", stats)
	}
	if stats.Exceeded != result.ExceedNone {
		t.Fatalf("expected default exceeded none, got %s", stats.Exceeded)
	}
}

func TestParseGarbledNumbersDegrade(t *testing.T) {
	text := "MEMORY garbage\nCPUTIME nan?\nEXITCODE x\nEXCEED none\n"
	stats, err := report.Parse(text, false)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if stats.MemoryBytes != 0 || stats.ExitCode != 0 {
		t.Fatalf("expected garbled numerics to degrade to zero, got %+v", stats)
	}
}

func TestParseExceedClassification(t *testing.T) {
	cases := []struct {
		value string
		want  result.Exceeded
	}{
		{"none", result.ExceedNone},
		{"CPU_TIME", result.ExceedTime},
		{"REAL_TIME", result.ExceedTime},
		{"MEMORY", result.ExceedMemory},
		{"memory", result.ExceedMemory},
		{"OUTPUT", result.ExceedOutput},
	}
	for _, tc := range cases {
		stats, err := report.Parse("EXCEED "+tc.value+"\n", false)
		if err != nil {
			t.Fatalf("parse EXCEED %q failed: %v", tc.value, err)
		}
		if stats.Exceeded != tc.want {
			t.Fatalf("EXCEED %q: expected %s, got %s", tc.value, tc.want, stats.Exceeded)
		}
	}
}

func TestParseUnknownExceedFails(t *testing.T) {
	_, err := report.Parse("EXCEED BANANAS\n", false)
	if err == nil {
		t.Fatal("expected decode error for unknown EXCEED value")
	}
	if !pkgerrors.Is(err, pkgerrors.UnknownExceedValue) {
		t.Fatalf("expected UnknownExceedValue code, got %v", err)
	}
}

func TestParseExactMatching(t *testing.T) {
	// Substring matching accepts CPU_TIME, exact matching rejects it.
	if _, err := report.Parse("EXCEED CPU_TIME\n", true); err == nil {
		t.Fatal("expected exact matching to reject CPU_TIME")
	}
	stats, err := report.Parse("EXCEED TIME\n", true)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if stats.Exceeded != result.ExceedTime {
		t.Fatalf("expected time limit, got %s", stats.Exceeded)
	}
}
