package cmd

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/grovetools/partui/errors"
	"github.com/grovetools/partui/tui/keymap"
	"github.com/grovetools/partui/tui/menu"
	"github.com/grovetools/partui/tui/theme"
)

// parseChoices turns "K:Name[:Description]" arguments into menu items.
func parseChoices(args []string) ([]menu.Item, error) {
	items := make([]menu.Item, 0, len(args))
	for _, arg := range args {
		parts := strings.SplitN(arg, ":", 3)
		if len(parts) < 2 || utf8.RuneCountInString(parts[0]) != 1 || parts[1] == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				fmt.Sprintf("choice %q is not KEY:Name[:Description]", arg))
		}
		r, _ := utf8.DecodeRuneInString(parts[0])
		item := menu.Item{Key: keymap.Key(r), Name: parts[1]}
		if len(parts) == 3 {
			item.Description = parts[2]
		}
		items = append(items, item)
	}
	return items, nil
}

// NewChooseCmd creates the choose command.
func NewChooseCmd() *cobra.Command {
	var vertical bool
	var cursor int

	cmd := &cobra.Command{
		Use:   "choose <KEY:Name[:Description]>...",
		Short: "Ask for one of several choices and print its key",
		Long:  "Shows a menu of the given choices and prints the key of the chosen one on standard output. The menu is drawn on standard error so the result can be captured.",
		Example: `  # Yes or no
  partui choose "Y:Yes" "N:No:Keep the current table"

  # Vertical list starting on the second item
  partui choose --vertical --default 1 "I:Intel" "G:EFI GPT" "N:None"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			items, err := parseChoices(args)
			if err != nil {
				return err
			}

			flags := menu.Horizontal | menu.Button
			if vertical {
				flags = menu.Vertical | menu.Button | menu.SidePanel
			}
			m, err := menu.NewModel(items, menu.AllKeys(items), menu.Options{
				StatusRow: len(items) + 1,
				Flags:     flags,
			}, cursor, menu.WithQuitOnSelect(), menu.WithTheme(theme.DefaultTheme))
			if err != nil {
				return err
			}

			final, err := tea.NewProgram(m, tea.WithOutput(os.Stderr)).Run()
			if err != nil {
				return err
			}
			sel, ok := final.(menu.Model).Selected()
			if !ok {
				return errors.New(errors.ErrCodeInputClosed, "menu closed without a selection")
			}
			e.logger.WithField("key", sel.Key.String()).Debug("Choice made")
			fmt.Fprintln(cmd.OutOrStdout(), sel.Key.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&vertical, "vertical", false, "Stack the choices vertically with descriptions alongside")
	cmd.Flags().IntVar(&cursor, "default", 0, "Index of the initially highlighted choice")
	return cmd
}
