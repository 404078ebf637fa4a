// internal/pipeline/main_test.go
package pipeline

import (
	"testing"

	"go.uber.org/goleak"
)

// Attempts spawn a synthesis goroutine per call; none may outlive its test.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
