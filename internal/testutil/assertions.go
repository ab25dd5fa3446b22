package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertWarnedToken checks the log output for the warning emitted for an
// ignored token.
func AssertWarnedToken(t *testing.T, result *HarnessResult, token string) {
	t.Helper()

	expected := fmt.Sprintf("token=%s", token)
	require.True(t,
		strings.Contains(result.LogOutput, "Ignored invalid instruction") && strings.Contains(result.LogOutput, expected),
		"expected a warning for token %q in logs:\n%s", token, result.LogOutput,
	)
}
