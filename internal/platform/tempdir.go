package platform

import (
	"fmt"
	"os"
	"sync"
)

// TempDirPattern is the os.MkdirTemp pattern for the process scratch
// directory that holds rendered figures.
const TempDirPattern = "aastex-tmp-"

var (
	tempOnce sync.Once
	tempDir  string
	tempErr  error
)

// TempDir returns a directory shared by the whole process, creating it on
// first use. It is never removed by this package: the .tex output refers to
// files inside it until the caller compiles the document.
func TempDir() (string, error) {
	tempOnce.Do(func() {
		tempDir, tempErr = os.MkdirTemp("", TempDirPattern)
		if tempErr != nil {
			tempErr = fmt.Errorf("failed to create temp dir: %w", tempErr)
		}
	})
	return tempDir, tempErr
}
