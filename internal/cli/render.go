package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/credlens/credlens/internal/model"
)

// renderJSON writes the result as indented JSON
func renderJSON(w io.Writer, result *model.VerificationResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// renderText writes the human-readable verdict report
func renderText(w io.Writer, result *model.VerificationResult) error {
	fmt.Fprintln(w, strings.Repeat("─", 60))
	fmt.Fprintf(w, "Claim:   %s\n", result.ExtractedClaim)
	fmt.Fprintf(w, "Verdict: %s (confidence %.2f)\n", result.Verdict, result.Confidence)
	fmt.Fprintln(w, strings.Repeat("─", 60))
	fmt.Fprintln(w)
	fmt.Fprintln(w, result.Explanation)

	if len(result.Reasons) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Reasons:")
		for _, reason := range result.Reasons {
			fmt.Fprintf(w, "  - %s\n", reason)
		}
	}

	fmt.Fprintln(w)
	fp := result.Fingerprint
	fmt.Fprintln(w, "Credibility fingerprint:")
	fmt.Fprintf(w, "  Source credibility:  %.2f\n", fp.SourceCredibility)
	fmt.Fprintf(w, "  Corroboration:       %d independent domains\n", fp.CorroborationCount)
	fmt.Fprintf(w, "  Language risk:       %.2f\n", fp.LanguageRisk)
	fmt.Fprintf(w, "  Overall score:       %.2f\n", fp.OverallScore)

	if len(result.SuspiciousPhrases) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Suspicious language:")
		for _, p := range result.SuspiciousPhrases {
			fmt.Fprintf(w, "  %q (%s)\n", p.Phrase, p.Reason)
		}
	}

	if len(result.Evidence) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Evidence:")
		for _, item := range result.Evidence {
			fmt.Fprintf(w, "  [%s %.2f] %s\n", item.Relation, item.RelationConfidence, item.Text)
			if item.Source != "" || item.URL != "" {
				fmt.Fprintf(w, "      source: %s %s\n", item.Source, item.URL)
			}
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Lesson (%s):\n  %s\n", result.Lesson.Category, result.Lesson.Tip)

	return nil
}
