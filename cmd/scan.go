package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/grovetools/partui/cli"
	"github.com/grovetools/partui/errors"
	"github.com/grovetools/partui/tui/components"
	"github.com/grovetools/partui/tui/components/parttype"
	"github.com/grovetools/partui/tui/components/table"
)

// signature is one boot signature found by scan.
type signature struct {
	Sector uint64 `json:"sector"`
	Offset uint64 `json:"offset"`
	CHS    string `json:"chs"`
}

type scanReport struct {
	Image      string      `json:"image"`
	Size       int64       `json:"size"`
	Sectors    uint64      `json:"sectors"`
	Signatures []signature `json:"signatures"`
}

// scanImage lists the sectors of path that end with the boot signature.
func scanImage(path string, geo parttype.Geometry) (scanReport, error) {
	size, err := statSize(path)
	if err != nil {
		return scanReport{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return scanReport{}, errors.FileRead(path, err)
	}
	defer f.Close()

	report := scanReport{Image: path, Size: size, Signatures: []signature{}}
	report.Sectors, err = scanSignatures(f, uint64(size)/sectorSize,
		func(uint64) (bool, error) { return false, nil },
		func(sector uint64) {
			report.Signatures = append(report.Signatures, signature{
				Sector: sector,
				Offset: sector * sectorSize,
				CHS:    geo.LBAToCHS(sector).String(),
			})
		})
	if err != nil {
		return scanReport{}, errors.FileRead(path, err)
	}
	return report, nil
}

func (r scanReport) render() string {
	rows := make([][]string, 0, len(r.Signatures))
	for _, s := range r.Signatures {
		rows = append(rows, []string{strconv.FormatUint(s.Sector, 10), humanize.Comma(int64(s.Offset)), s.CHS})
	}
	summary := table.KeyValue([][2]string{
		{"image", r.Image},
		{"size", humanize.IBytes(uint64(r.Size))},
		{"sectors", humanize.Comma(int64(r.Sectors))},
		{"found", strconv.Itoa(len(r.Signatures))},
	})
	header := components.RenderHeader("Boot signatures", r.Image) + "\n" + components.RenderDivider(40)
	if len(rows) == 0 {
		return header + "\n" + summary
	}
	return header + "\n" + summary + "\n" + table.Simple([]string{"Sector", "Offset", "CHS"}, rows, 0, 1)
}

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	var heads, spt uint64

	cmd := &cobra.Command{
		Use:   "scan <image>",
		Short: "List the boot signatures of a disk image",
		Long:  "Reads every sector of a disk image and lists those ending with the 55AA boot signature, without taking over the terminal.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cli.GetLogger(cmd)
			geo := parttype.Geometry{HeadsPerCylinder: heads, SectorsPerHead: spt}

			report, err := scanImage(args[0], geo)
			if err != nil {
				return err
			}
			logger.WithField("found", len(report.Signatures)).Debug("Scan done")

			if cli.GetOptions(cmd).JSONOutput {
				data, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.render())
			return nil
		},
	}

	cmd.Flags().Uint64Var(&heads, "heads", defaultGeometry.HeadsPerCylinder, "Heads per cylinder used for CHS addresses")
	cmd.Flags().Uint64Var(&spt, "sectors", defaultGeometry.SectorsPerHead, "Sectors per head used for CHS addresses")
	return cmd
}
