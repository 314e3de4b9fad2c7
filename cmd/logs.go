package cmd

import (
	"fmt"
	"os/exec"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/grovetools/partui/tui/components/logviewer"
	"github.com/grovetools/partui/tui/keymap"
)

// NewLogsCmd creates the logs command.
func NewLogsCmd() *cobra.Command {
	var (
		fromEnd bool
		command string
	)

	cmd := &cobra.Command{
		Use:   "logs [file]...",
		Short: "Follow recovery log files",
		Long:  "Follows one or more log files in a scrollable viewer. Lines of several files are prefixed with the file name. With --exec the output of a shell command is shown as well. Press F to pause or resume following.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && command == "" {
				return fmt.Errorf("requires at least one log file or --exec")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			files := make(map[string]string, len(args))
			for _, path := range args {
				files[filepath.Base(path)] = path
			}

			m := logviewer.New(80, 24).WithKeyMap(keymap.Load(e.cfg))
			if len(files) > 0 {
				m.Start(files, fromEnd)
			}
			defer m.Stop()

			opts := []tea.ProgramOption{}
			if e.cfg.Terminal.AltScreenEnabled() {
				opts = append(opts, tea.WithAltScreen())
			}
			p := tea.NewProgram(m, opts...)

			if command != "" {
				out := logviewer.NewStreamWriter(p, "exec")
				out.NoPrefix = len(files) == 0
				c := exec.Command("sh", "-c", command)
				c.Stdout = out
				c.Stderr = out
				if err := c.Start(); err != nil {
					return err
				}
				go func() {
					if err := c.Wait(); err != nil {
						e.logger.WithError(err).WithField("command", command).Warn("Command failed")
					}
				}()
				defer func() { _ = c.Process.Kill() }()
			}

			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&fromEnd, "from-end", false, "Skip existing content and show only new lines")
	cmd.Flags().StringVar(&command, "exec", "", "Shell command whose output is shown with the logs")
	return cmd
}
