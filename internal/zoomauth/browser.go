package zoomauth

import (
	"fmt"
	"os/exec"
	"runtime"
)

// openBrowser launches the platform's default browser. Best effort: the
// wizard always prints the URL so the user can open it manually.
func openBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", url).Start()
	}
	return fmt.Errorf("unsupported platform %q", runtime.GOOS)
}
