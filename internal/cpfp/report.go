package cpfp

import (
	"fmt"
	"io"
)

// WriteReport renders the final percentage report for a scanned height
// range. Descendant lines derive from parent counts, ancestor lines from
// child counts. The trailing candidates line is skipped when the summary
// carries no defined candidate-parent percentage.
func WriteReport(w io.Writer, start, stop uint64, s Summary) error {
	lines := []string{
		fmt.Sprintf("Between block heights %d and %d:", start, stop),
		fmt.Sprintf("    - The average percentage of transactions with a descendant in the same block is %v%%", s.AvgParentPercent),
		fmt.Sprintf("    - The average percentage of transactions with an ancestor in the same block is %v%%", s.AvgChildPercent),
		fmt.Sprintf("    - The highest percentage of transactions with a descendant in the same block is %v%%", s.MaxParentPercent),
		fmt.Sprintf("    - The highest percentage of transactions with an ancestor in the same block is %v%%", s.MaxChildPercent),
		fmt.Sprintf("    - The lowest percentage of transactions with a descendant in the same block is %v%%", s.MinParentPercent),
		fmt.Sprintf("    - The lowest percentage of transactions with an ancestor in the same block is %v%%", s.MinChildPercent),
		fmt.Sprintf("    - The average percentage of transactions in a block that would be considered for fee estimation is %v%%", s.AvgCandidatePercent),
	}
	if s.CandidateParentDefined {
		lines = append(lines, fmt.Sprintf("    - The average percentage of transactions with a descendant in the same block among candidates is %v%%", s.AvgCandidateParentPercent))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}
