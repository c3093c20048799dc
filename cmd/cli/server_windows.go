//go:build windows

package main

import (
	"os/exec"
	"syscall"
)

// setSysProcAttr puts the spawned server in its own process group so console
// events aimed at the CLI do not reach it.
func setSysProcAttr(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP,
	}
}
