package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/grovetools/partui/errors"
	"github.com/grovetools/partui/logging"
	"github.com/grovetools/partui/tui/components/parttype"
	"github.com/grovetools/partui/tui/keymap"
)

const sectorSize = 512

// defaultGeometry is the translation BIOSes use for large disks.
var defaultGeometry = parttype.Geometry{HeadsPerCylinder: 255, SectorsPerHead: 63}

// describeDisk is the one-line disk summary shown above disk menus.
func describeDisk(path string, size int64, geo parttype.Geometry) string {
	sectors := uint64(size) / sectorSize
	if sectors == 0 {
		return fmt.Sprintf("Disk %s - %s", path, humanize.IBytes(uint64(size)))
	}
	return fmt.Sprintf("Disk %s - %s - CHS %s",
		path, humanize.IBytes(uint64(size)), geo.LBAToCHS(sectors-1))
}

func statSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, errors.FileRead(path, err)
	}
	return info.Size(), nil
}

// NewPartTypeCmd creates the parttype command.
func NewPartTypeCmd() *cobra.Command {
	var current string

	cmd := &cobra.Command{
		Use:   "parttype <image>",
		Short: "Choose the partition table type of a disk image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			size, err := statSize(args[0])
			if err != nil {
				return err
			}

			var cur *parttype.Arch
			if current != "" {
				a, ok := parttype.Lookup(keymap.Key(current[0]))
				if !ok {
					return errors.New(errors.ErrCodeInvalidInput, fmt.Sprintf("unknown partition table type %q", current))
				}
				cur = &a
			}

			s, err := e.startSession()
			if err != nil {
				return err
			}
			arch, ok, err := parttype.Select(s, describeDisk(args[0], size, defaultGeometry), cur)
			if closeErr := s.Close(); err == nil {
				err = closeErr
			}
			if err != nil {
				return err
			}

			pretty := logging.NewPrettyLogger().WithWriter(cmd.OutOrStdout())
			if !ok {
				pretty.Info("No partition table type selected")
				return nil
			}
			e.logger.WithField("type", arch.Name).Info("Partition table type selected")
			pretty.Success("%s partition table", arch.Name)
			pretty.Divider(40)
			pretty.Field("description", arch.Description)
			pretty.Size("disk", size)
			return nil
		},
	}

	cmd.Flags().StringVar(&current, "current", "", "Initially selected type key: I, G, M, N, S or X")
	return cmd
}
