// SPDX-License-Identifier: MIT

package commute_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/commute/commute"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, commute.ReportBaseline(&buf))
	require.NoError(t, commute.Report(&buf, &commute.Result{}))
	require.NoError(t, commute.Report(&buf, &commute.Result{Summary: commute.Summary{Failing: []int{0, 2, 4}}}))

	assert.Equal(t, "Version without parallel chunking:\n"+
		"The condition AB = BA is met\n"+
		"\nChunked parallel version:\n"+
		"The condition AB = BA is met\n"+
		"\nChunked parallel version:\n"+
		"The condition AB = BA is not met for matrices with indices: [0, 2, 4]\n", buf.String())
}
