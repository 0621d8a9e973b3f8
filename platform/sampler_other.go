//go:build !windows && !linux && !darwin

package platform

import (
	"fmt"
	"runtime"
)

// NewSampler reports that keyboard sampling is unavailable on this OS
func NewSampler() (Sampler, error) {
	return nil, fmt.Errorf("keyboard sampling is not supported on %s", runtime.GOOS)
}
