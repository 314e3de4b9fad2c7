package cmd

import (
	"github.com/spf13/cobra"

	"github.com/grovetools/partui/logging"
	"github.com/grovetools/partui/tui/components/hexdump"
)

const defaultDumpLength = 512

// NewDumpCmd creates the dump command.
func NewDumpCmd() *cobra.Command {
	var offset, length int64

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Show a hexadecimal dump of a file or disk image",
		Long:  "Shows a hexadecimal dump of a region of a file or disk image, one sector by default. The dump is also written to the log.",
		Example: `  # First sector of an image
  partui dump disk.img

  # Second sector
  partui dump disk.img --offset 512`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			hexdump.Configure(e.cfg)

			data, err := readPrefix(args[0], offset, length)
			if err != nil {
				return err
			}

			s, err := e.startSession()
			if err != nil {
				return err
			}
			defer s.Close()

			return hexdump.DumpWindow(s, data, e.logger.WithField("file", args[0]))
		},
	}

	cmd.Flags().Int64Var(&offset, "offset", 0, "Byte offset of the first dumped byte")
	cmd.Flags().Int64Var(&length, "length", defaultDumpLength, "Number of bytes to dump, 0 for the whole file")
	return cmd
}

// NewCompareCmd creates the compare command.
func NewCompareCmd() *cobra.Command {
	var offset, length int64

	cmd := &cobra.Command{
		Use:   "compare <file-a> <file-b>",
		Short: "Compare two sectors side by side",
		Long:  "Shows the same region of two files side by side, eight bytes per line each. Bytes that differ are shown in reverse video.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			hexdump.Configure(e.cfg)

			a, err := readPrefix(args[0], offset, length)
			if err != nil {
				return err
			}
			b, err := readPrefix(args[1], offset, length)
			if err != nil {
				return err
			}

			s, err := e.startSession()
			if err != nil {
				return err
			}
			err = hexdump.Compare(s, a, b)
			if closeErr := s.Close(); err == nil {
				err = closeErr
			}
			if err != nil {
				return err
			}

			diff := countDifferences(a, b)
			e.logger.WithField("differences", diff).Info("Compared sectors")
			pretty := logging.NewPrettyLogger().WithWriter(cmd.OutOrStdout())
			if diff == 0 {
				pretty.Success("%d bytes identical", max(len(a), len(b)))
			} else {
				pretty.Warn("%d of %d bytes differ", diff, max(len(a), len(b)))
			}
			pretty.Divider(40)
			pretty.Path("first", args[0])
			pretty.Path("second", args[1])
			pretty.Field("offset", offset)
			return nil
		},
	}

	cmd.Flags().Int64Var(&offset, "offset", 0, "Byte offset of the compared region")
	cmd.Flags().Int64Var(&length, "length", defaultDumpLength, "Number of bytes to compare, 0 for the whole files")
	return cmd
}

// countDifferences counts byte positions that differ, a byte present in
// only one of a and b included.
func countDifferences(a, b []byte) int {
	n := max(len(a), len(b))
	diff := 0
	for i := 0; i < n; i++ {
		if i >= len(a) || i >= len(b) || a[i] != b[i] {
			diff++
		}
	}
	return diff
}
