// Package testutils provides test infrastructure for lintsum integration tests.
package testutils

import (
	"path/filepath"
	"runtime"

	"github.com/containerd/nerdctl/mod/tigron/test"
	"golang.org/x/text/encoding/unicode"

	"github.com/farcloser/agar/pkg/agar"
)

// ReportName is the file name lintsum reads when no argument is given.
const ReportName = "lint_json.txt"

// Setup creates a test case configured to run the lintsum binary.
func Setup() *test.Case {
	_, thisFile, _, _ := runtime.Caller(0) //nolint:dogsled // runtime.Caller returns 4 values, only file is needed
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(thisFile)))
	binaryPath := filepath.Join(projectRoot, "bin", "lintsum")

	return agar.Setup(binaryPath)
}

// SaveReport writes content as the UTF-8 report file of the test and returns its path.
func SaveReport(data test.Data, content string) string {
	return data.Temp().Save(content, ReportName)
}

// SaveReportUTF16 writes content as a UTF-16LE report file with a byte order mark, the way
// PowerShell redirection does, and returns its path.
func SaveReportUTF16(data test.Data, content string) string {
	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(content)
	if err != nil {
		panic(err)
	}

	return data.Temp().Save(encoded, ReportName)
}
