package service

import (
	"testing"

	"omnirag/internal/history"
	"omnirag/internal/rag"
)

func TestSettingsInstructionDefault(t *testing.T) {
	settings := NewSettingsService()
	if got := settings.Instruction(); got != rag.BaseSystemInstruction {
		t.Errorf("Instruction() = %q, want the base instruction", got)
	}
}

func TestSettingsInstructionOverrideAndReset(t *testing.T) {
	settings := NewSettingsService()

	settings.SetInstruction("You are terse.")
	if got := settings.Instruction(); got != "You are terse." {
		t.Errorf("Instruction() = %q", got)
	}

	settings.SetInstruction("")
	if got := settings.Instruction(); got != rag.BaseSystemInstruction {
		t.Errorf("Instruction() after reset = %q, want the base instruction", got)
	}
}

func TestMetricsReport(t *testing.T) {
	metrics := NewMetricsService()

	metrics.RecordQuery(100, false)
	metrics.RecordQuery(50, true)
	metrics.RecordFeedback(history.FeedbackPositive)
	metrics.RecordFeedback(history.FeedbackNegative)
	metrics.RecordFeedback(history.FeedbackNone)

	report := metrics.Report()
	if report.QueriesServed != 2 {
		t.Errorf("QueriesServed = %d, want 2", report.QueriesServed)
	}
	if report.AvgLatencyMs != 75 {
		t.Errorf("AvgLatencyMs = %d, want 75", report.AvgLatencyMs)
	}
	if report.FallbackRate != 0.5 {
		t.Errorf("FallbackRate = %v, want 0.5", report.FallbackRate)
	}
	if report.PositiveFeedback != 1 || report.NegativeFeedback != 1 {
		t.Errorf("feedback counts = %d/%d, want 1/1", report.PositiveFeedback, report.NegativeFeedback)
	}
	if len(report.Evaluation) != 4 {
		t.Errorf("len(Evaluation) = %d, want 4", len(report.Evaluation))
	}
}
