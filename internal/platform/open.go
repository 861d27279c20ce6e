// Package platform wraps the few OS-specific interactions savekeeper needs.
package platform

import (
	"os/exec"
	"runtime"
)

// OpenFileBrowser opens dir in the platform's file browser. The browser is
// spawned, not waited on; some browsers (explorer in particular) report
// nonzero exit codes even on success.
func OpenFileBrowser(dir string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("explorer", dir)
	case "darwin":
		cmd = exec.Command("open", dir)
	default:
		cmd = exec.Command("xdg-open", dir)
	}
	return cmd.Start()
}
