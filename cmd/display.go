package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/grovetools/partui/tui/components"
	"github.com/grovetools/partui/tui/components/logviewer"
	"github.com/grovetools/partui/tui/keymap"
	"github.com/grovetools/partui/tui/screen"
)

// NewDisplayCmd creates the display command.
func NewDisplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "display <file>",
		Short: "Page through a text report",
		Long:  "Loads a text report into the screen buffer and pages through it with Previous and Next. Only the last 200 lines are kept.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			data, err := readFile(args[0])
			if err != nil {
				return err
			}

			b := logviewer.NewBuffer()
			if _, err := b.Write(data); err != nil {
				return err
			}

			s, err := e.startSession()
			if err != nil {
				return err
			}
			defer s.Close()

			title := fmt.Sprintf("%s, %s", args[0], humanize.IBytes(uint64(len(data))))
			return showReport(s, b, title)
		},
	}
}

// showReport draws the header and title, then pages through b until the
// user quits.
func showReport(s screen.Screen, b *logviewer.Buffer, title string) error {
	cursor := 0
	for {
		components.DrawHeader(s)
		screen.WriteAt(s, 5, 0, title, screen.Normal)
		k, err := logviewer.Display(s, b, "", nil, &cursor)
		if err != nil {
			return err
		}
		if k == keymap.None {
			return nil
		}
	}
}
