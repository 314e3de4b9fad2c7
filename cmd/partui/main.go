package main

import (
	"os"

	"github.com/grovetools/partui/cli"
	"github.com/grovetools/partui/cmd"
	"github.com/grovetools/partui/tui"
	"github.com/grovetools/partui/tui/keymap"
	"github.com/grovetools/partui/version"
)

func main() {
	tui.InitializeTUI()

	rootCmd := cli.NewStandardCommand(
		version.Name,
		"Terminal screens for disk and partition recovery",
	)
	cli.SetVersionTemplate(rootCmd, version.GetInfo())
	cli.SetStyledHelpWithExtras(rootCmd, cli.KeysHelp(keymap.DefaultKeyMap()))

	rootCmd.AddCommand(cmd.NewMenuCmd())
	rootCmd.AddCommand(cmd.NewChooseCmd())
	rootCmd.AddCommand(cmd.NewScanCmd())
	rootCmd.AddCommand(cmd.NewDumpCmd())
	rootCmd.AddCommand(cmd.NewCompareCmd())
	rootCmd.AddCommand(cmd.NewDisplayCmd())
	rootCmd.AddCommand(cmd.NewLogsCmd())
	rootCmd.AddCommand(cmd.NewPartTypeCmd())
	rootCmd.AddCommand(cmd.NewConfigCmd())
	rootCmd.AddCommand(cli.NewVersionCommand(version.GetInfo()))

	if err := rootCmd.Execute(); err != nil {
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		_ = cli.NewErrorHandler(verbose).Handle(err)
		os.Exit(1)
	}
}
