//go:build !windows

package mdtopdf

import (
	"os/exec"
	"syscall"
)

// configureProcessGroup places the command in its own process group and
// arranges for cancellation to kill the group, so the browser's child
// processes are not orphaned when the tool is interrupted.
func configureProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
