// Package devscan enumerates V4L capture devices by globbing /dev/video*.
package devscan

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/user/camrec/pkg/ports"
)

// defaultPattern matches Video4Linux device nodes.
const defaultPattern = "/dev/video*"

// Scanner implements ports.DeviceLister.
type Scanner struct {
	pattern string
}

// New creates a scanner over /dev/video*.
func New() *Scanner {
	return &Scanner{pattern: defaultPattern}
}

// NewWithPattern creates a scanner over a custom glob, used by tests.
func NewWithPattern(pattern string) *Scanner {
	return &Scanner{pattern: pattern}
}

// ListDevices scans for device nodes, ordered by device number.
func (s *Scanner) ListDevices(ctx context.Context) ([]ports.DeviceInfo, error) {
	matches, err := filepath.Glob(s.pattern)
	if err != nil {
		return nil, fmt.Errorf("scan devices: %w", err)
	}
	sort.Slice(matches, func(i, j int) bool {
		return deviceNumber(matches[i]) < deviceNumber(matches[j])
	})

	devices := make([]ports.DeviceInfo, 0, len(matches))
	for i, match := range matches {
		select {
		case <-ctx.Done():
			return devices, ctx.Err()
		default:
		}
		devices = append(devices, ports.DeviceInfo{Index: i, Name: match})
	}
	return devices, nil
}

// deviceNumber extracts the trailing number of a device node path, so
// /dev/video10 sorts after /dev/video2.
func deviceNumber(path string) int {
	base := filepath.Base(path)
	digits := strings.TrimLeftFunc(base, func(r rune) bool {
		return r < '0' || r > '9'
	})
	n, err := strconv.Atoi(digits)
	if err != nil {
		return -1
	}
	return n
}

var _ ports.DeviceLister = (*Scanner)(nil)
