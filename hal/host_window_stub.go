//go:build !cgo

package hal

import "fmt"

// RunWindow reports ErrNotImplemented: the window backend needs cgo.
func RunWindow(_ HAL, _ func() error, _ WindowConfig) error {
	return fmt.Errorf("window mode requires cgo (build/run with CGO_ENABLED=1): %w", ErrNotImplemented)
}
