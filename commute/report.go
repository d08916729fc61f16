// SPDX-License-Identifier: MIT

package commute

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	headerBaseline = "Version without parallel chunking:"
	headerParallel = "Chunked parallel version:"
	conditionMet   = "The condition AB = BA is met"
	conditionUnmet = "The condition AB = BA is not met for matrices with indices:"
)

// ReportBaseline prints the section for a passed Baseline check.
func ReportBaseline(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n", headerBaseline, conditionMet)
	return err
}

// Report prints the pipeline section: the met message for an empty failing
// set, otherwise the sorted failing indices.
func Report(w io.Writer, res *Result) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", headerParallel); err != nil {
		return err
	}
	if res.Passed() {
		_, err := fmt.Fprintln(w, conditionMet)
		return err
	}
	_, err := fmt.Fprintf(w, "%s %s\n", conditionUnmet, formatIndices(res.Failing))

	return err
}

// formatIndices renders [0, 2, 4].
func formatIndices(idx []int) string {
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = strconv.Itoa(v)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
