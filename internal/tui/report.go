package tui

import (
	"fmt"
	"strings"

	"multimr/internal/mergerequest"
)

// RenderReport formats the per-repository results printed after the wizard
// exits.
func RenderReport(results []mergerequest.Result) string {
	var b strings.Builder
	var failed int
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
			b.WriteString(errStyle.Render("✗ "+r.Repository.Name) + ": " + r.Err.Error() + "\n")
		case r.DryRun:
			b.WriteString(warnStyle.Render("• "+r.Repository.Name) + dimStyle.Render(" (dry run)") + "\n")
			b.WriteString("  Current directory: " + r.Invocation.Dir + "\n")
			if r.NewBranch {
				b.WriteString("  Would create branch: " + r.Branch + "\n")
			}
			b.WriteString("  Dry run command: " + r.Invocation.Render() + "\n")
		default:
			detail := "merge request created from " + r.Branch
			if r.URL != "" {
				detail = r.URL
			}
			b.WriteString(okStyle.Render("✓ "+r.Repository.Name) + ": " + detail + "\n")
		}
	}
	if len(results) > 0 {
		b.WriteString("\n" + dimStyle.Render(fmt.Sprintf("%d repositories, %d failed", len(results), failed)) + "\n")
	}
	return b.String()
}
