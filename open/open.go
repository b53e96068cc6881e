// Package open hands URLs to the desktop's default handler, e.g. a poster to the image viewer.
package open

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/movieflix-cli/movieflix/constant"
)

// Start opens target without waiting for the handler to exit. Only http(s) URLs are accepted.
func Start(target string) error {
	cmd, err := command(target)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// Run is Start but waits for the handler.
func Run(target string) error {
	cmd, err := command(target)
	if err != nil {
		return err
	}
	return cmd.Run()
}

func command(target string) (*exec.Cmd, error) {
	u, err := url.Parse(strings.TrimSpace(target))
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", target, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("open %q: only http(s) URLs are supported", target)
	}

	link := u.String()
	switch runtime.GOOS {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", link), nil
	case constant.Darwin:
		return exec.Command("open", link), nil
	case constant.Linux:
		return exec.Command("xdg-open", link), nil
	case constant.Android:
		return exec.Command("termux-open", link), nil
	default:
		return nil, fmt.Errorf("open: unsupported OS %s", runtime.GOOS)
	}
}
