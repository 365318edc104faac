// Package report formats signal decisions for the console. It only builds
// strings; printing and exit handling belong to the caller.
package report

import (
	"fmt"
	"strings"

	"SignalScout/internal/model"
)

// Triggered formats the headline and per-flag breakdown for a triggered decision.
func Triggered(ticker string, d model.SignalDecision) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📈 Buy signal detected for %s on %s.\n", ticker, d.AsOf.Format("2006-01-02")))
	b.WriteString(Breakdown(d))
	return b.String()
}

// Breakdown formats the per-flag ✔/✘ lines and the confidence percentage.
func Breakdown(d model.SignalDecision) string {
	var b strings.Builder
	b.WriteString("\n📊 Buy Signal Breakdown:\n")
	b.WriteString(fmt.Sprintf("→ SMA20 crossover:     %s\n", mark(d.Flags.SMACrossover)))
	b.WriteString(fmt.Sprintf("→ RSI recovery (>30):  %s\n", mark(d.Flags.RSIRecovery)))
	b.WriteString(fmt.Sprintf("→ MACD crossover:      %s\n", mark(d.Flags.MACDCrossover)))
	b.WriteString(fmt.Sprintf("→ Signal Confidence:   %d%%\n", d.Confidence))
	return b.String()
}

// NoSignal formats the one-line message for a non-triggered decision.
func NoSignal(ticker string) string {
	return fmt.Sprintf("No buy signal for %s at this time.", ticker)
}

func mark(set bool) string {
	if set {
		return "✔"
	}
	return "✘"
}
