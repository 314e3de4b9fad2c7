package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/partui/tui/components"
	"github.com/grovetools/partui/version"
)

// SetVersionTemplate makes --version print the build banner.
func SetVersionTemplate(cmd *cobra.Command, info version.Info) {
	cmd.Version = info.Version
	cmd.SetVersionTemplate(info.Banner() + "\n")
}

// NewVersionCommand creates the version command.
func NewVersionCommand(info version.Info) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: fmt.Sprintf("Print the version of %s", version.Name),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if GetOptions(cmd).JSONOutput {
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			fmt.Fprintln(out, info.Banner())
			for _, kv := range [][2]string{
				{"Commit", info.Commit},
				{"Built", info.BuildDate},
				{"Go", info.GoVersion},
				{"Platform", info.Platform},
			} {
				fmt.Fprintln(out, "  "+components.RenderKeyValue(kv[0], kv[1]))
			}
			return nil
		},
	}
}
