package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/grovetools/partui/cli"
	"github.com/grovetools/partui/config"
	"github.com/grovetools/partui/errors"
	"github.com/grovetools/partui/tui/menu"
	"github.com/grovetools/partui/tui/screen"
)

// env is what every full-screen command needs before it draws.
type env struct {
	cfg    *config.Config
	logger *logrus.Entry
}

func loadEnv(cmd *cobra.Command) (*env, error) {
	logger := cli.GetLogger(cmd)
	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return nil, err
	}
	menu.Configure(cfg)
	return &env{cfg: cfg, logger: logger}, nil
}

// startSession takes over the terminal with the configured geometry.
func (e *env) startSession() (*screen.Session, error) {
	return screen.Start(screen.Options{
		MinLines:  e.cfg.Terminal.MinLines,
		AltScreen: e.cfg.Terminal.AltScreenEnabled(),
		Logger:    e.logger,
	})
}

// readFile reads path whole, reporting failures as FILE_READ errors.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.FileRead(path, err)
	}
	return data, nil
}

// readPrefix reads at most limit bytes of path starting at offset.
// A limit of 0 reads to the end.
func readPrefix(path string, offset, limit int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.FileRead(path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.FileRead(path, err)
	}
	size := info.Size() - offset
	if size < 0 {
		size = 0
	}
	if limit > 0 && limit < size {
		size = limit
	}
	buf := make([]byte, size)
	n, err := f.ReadAt(buf, offset)
	if err != nil && int64(n) != size {
		return nil, errors.FileRead(path, err)
	}
	return buf[:n], nil
}
