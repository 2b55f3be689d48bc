package adapter

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
)

// CommandStarter starts an external process without waiting for it
type CommandStarter func(name string, args ...string) error

func startCommand(name string, args ...string) error {
	if _, err := exec.LookPath(name); err != nil {
		return err
	}
	return exec.Command(name, args...).Start()
}

// ImageOpener hands sprite URLs to an external viewer.
// Image loading and caching stay with that viewer.
type ImageOpener struct {
	command string   // configured viewer, empty for the system default
	args    []string // extra arguments placed before the URL
	goos    string
	start   CommandStarter
	logger  *slog.Logger
}

// NewImageOpener creates an opener using the configured command or the platform default
func NewImageOpener(command string, args []string, logger *slog.Logger) *ImageOpener {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImageOpener{
		command: command,
		args:    args,
		goos:    runtime.GOOS,
		start:   startCommand,
		logger:  logger,
	}
}

// commandFor returns the program and arguments that open url
func (o *ImageOpener) commandFor(url string) (string, []string, error) {
	if o.command != "" {
		args := append(append([]string{}, o.args...), url)
		return o.command, args, nil
	}

	switch o.goos {
	case "darwin":
		return "open", []string{url}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{url}, nil
	default:
		return "", nil, fmt.Errorf("no default image viewer for %s", o.goos)
	}
}

// Open launches the viewer for url
func (o *ImageOpener) Open(url string) error {
	if url == "" {
		return fmt.Errorf("no image url")
	}

	name, args, err := o.commandFor(url)
	if err != nil {
		return err
	}

	o.logger.Debug("opening image", "command", name, "url", url)
	if err := o.start(name, args...); err != nil {
		o.logger.Error("failed to open image", "command", name, "error", err)
		return fmt.Errorf("failed to launch %s: %w", name, err)
	}
	return nil
}
