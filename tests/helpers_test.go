package tests_test

import (
	"fmt"
	"strings"

	"github.com/containerd/nerdctl/mod/tigron/test"
	"github.com/containerd/nerdctl/mod/tigron/tig"
)

const sampleReport = `[` +
	`{"filePath":"src/app/page.js","errorCount":1,"warningCount":1,"messages":[` +
	`{"line":5,"ruleId":"no-unused-vars","message":"x is unused","severity":2},` +
	`{"line":6,"ruleId":"no-console","message":"unexpected console","severity":1}]},` +
	`{"filePath":"src/lib/clean.js","errorCount":0,"messages":[]}` +
	`]`

const sampleSummary = "File: src/app/page.js\n  Line 5: no-unused-vars - x is unused\n"

// expectExact returns a comparator verifying the output is exactly the expected text.
func expectExact(expected string) test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		if stdout == expected {
			return
		}

		testing.Log(fmt.Sprintf("expected output:\n%q\ngot:\n%q", expected, stdout))
		testing.Fail()
	}
}

// expectParseError returns a comparator verifying the output is a single parse diagnostic line.
func expectParseError() test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
		if len(lines) == 1 && strings.HasPrefix(lines[0], "Error parsing JSON: ") {
			return
		}

		testing.Log(fmt.Sprintf("expected a single parse error line, got:\n%s", stdout))
		testing.Fail()
	}
}

// expectContains returns a comparator verifying the output contains a substring.
func expectContains(substr string) test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		if !strings.Contains(stdout, substr) {
			testing.Log(fmt.Sprintf("expected substring %q not found in output:\n%s", substr, stdout))
			testing.Fail()
		}
	}
}
