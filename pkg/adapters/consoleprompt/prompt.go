// Package consoleprompt implements interactive device selection on the
// console. It is the only place in the program that reads standard input;
// the core depends on the ports.DeviceSelector capability instead.
package consoleprompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/user/camrec/pkg/ports"
)

// Selector implements ports.DeviceSelector over an io pair, normally
// stdin/stdout.
type Selector struct {
	in     *bufio.Reader
	out    io.Writer
	logger ports.Logger
}

// New creates a selector reading from in and prompting on out.
func New(in io.Reader, out io.Writer, logger ports.Logger) *Selector {
	return &Selector{
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger.WithComponent("select"),
	}
}

// SelectDevice renders the numbered device list and reads one index. An
// out-of-range or non-numeric answer is an error; the caller decides whether
// to re-prompt.
func (s *Selector) SelectDevice(devices []ports.DeviceInfo) (int, error) {
	if len(devices) == 0 {
		return 0, fmt.Errorf("no capture devices found")
	}

	s.logger.Info("Available cameras as follow, please choose one: (range: [0-%d])", len(devices)-1)
	fmt.Fprintln(s.out, strings.Repeat("=", 50))
	for _, d := range devices {
		fmt.Fprintf(s.out, "%d : %s\n", d.Index, d.Name)
	}
	fmt.Fprintln(s.out, strings.Repeat("=", 50))
	fmt.Fprintf(s.out, "Please select the camera index from [0-%d]: ", len(devices)-1)

	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return 0, fmt.Errorf("read selection: %w", err)
	}
	index, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("selection %q is not a number", strings.TrimSpace(line))
	}
	if index < 0 || index >= len(devices) {
		return 0, fmt.Errorf("selection %d out of range [0-%d]", index, len(devices)-1)
	}
	s.logger.Info("Your selection is: [ %d: %s ]", index, devices[index].Name)
	return index, nil
}

var _ ports.DeviceSelector = (*Selector)(nil)
