//go:build windows

package mdtopdf

import "os/exec"

// configureProcessGroup is a no-op on Windows; exec.CommandContext's
// default cancellation kills the process directly.
func configureProcessGroup(cmd *exec.Cmd) {}
