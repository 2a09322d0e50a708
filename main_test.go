package lumen

import (
	"os"
	"testing"
)

// TestMain installs a synchronous FrameCallback for the whole package's
// tests, so post-paint effects are observable immediately after Act/Flush
// instead of after the real ~35ms fallback timer.
func TestMain(m *testing.M) {
	SetScheduler(Scheduler{FrameCallback: func(fn func()) { fn() }})
	os.Exit(m.Run())
}
