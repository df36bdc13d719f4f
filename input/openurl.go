package input

import (
	"os/exec"
	"runtime"
)

// OpenURL asks the platform to open a URL in the default browser
// Fire-and-forget: failures are ignored, nothing observes the result
func OpenURL(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
