// Package open launches folders and URLs with the system's default handler.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/radiodl-cli/radiodl/constant"
)

// Start opens target without waiting for the handler to exit.
func Start(target string) error {
	cmd, err := Command(runtime.GOOS, target)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// Command builds the handler invocation for goos.
func Command(goos, target string) (*exec.Cmd, error) {
	switch goos {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", target), nil
	case constant.Darwin:
		return exec.Command("open", target), nil
	case constant.Linux:
		return exec.Command("xdg-open", target), nil
	case constant.Android:
		return exec.Command("termux-open", target), nil
	default:
		return nil, fmt.Errorf("unsupported OS: %s", goos)
	}
}
