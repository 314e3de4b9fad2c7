package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/grovetools/partui/logging"
	"github.com/grovetools/partui/tui/components"
	"github.com/grovetools/partui/tui/components/hexdump"
	"github.com/grovetools/partui/tui/components/logviewer"
	"github.com/grovetools/partui/tui/components/parttype"
	"github.com/grovetools/partui/tui/components/prompt"
	"github.com/grovetools/partui/tui/menu"
	"github.com/grovetools/partui/tui/screen"
)

var mainItems = []menu.Item{
	{Key: 'A', Name: "Analyse", Description: "Search the image for boot sector signatures"},
	{Key: 'T', Name: "Type", Description: "Choose the partition table type"},
	{Key: 'G', Name: "Geometry", Description: "Change the disk geometry"},
	{Key: 'D', Name: "Dump", Description: "Hexadecimal dump of the first sector"},
	{Key: 'L', Name: "Log", Description: "Show the messages of this session"},
	{Key: 'W', Name: "Write", Description: "Write the partition structure to disk"},
	{Key: 'Q', Name: "Quit", Description: "Quit program"},
}

const (
	mainMenuRow   = 18
	mainStatusRow = 23
)

// recovery is the state of an interactive recovery session.
type recovery struct {
	s      screen.Screen
	log    *logrus.Entry
	report *logviewer.Buffer
	image  string
	size   int64
	geo    parttype.Geometry
	arch   *parttype.Arch
}

func newRecovery(s screen.Screen, logger *logrus.Entry, image string, size int64) *recovery {
	return &recovery{
		s:      s,
		log:    logger,
		report: logviewer.NewBuffer(),
		image:  image,
		size:   size,
		geo:    defaultGeometry,
	}
}

func (r *recovery) describe() string {
	if r.image == "" {
		return fmt.Sprintf("No disk image, geometry %d heads, %d sectors per head",
			r.geo.HeadsPerCylinder, r.geo.SectorsPerHead)
	}
	return describeDisk(r.image, r.size, r.geo)
}

// available dims the actions that need an image.
func (r *recovery) available() menu.Available {
	if r.image == "" {
		return "TGLWQ"
	}
	return menu.AllKeys(mainItems)
}

// run shows the main menu until Quit, then copies the session messages
// to the log.
func (r *recovery) run() error {
	defer r.report.ToLog(r.log)

	cursor := 0
	for {
		components.DrawHeader(r.s)
		screen.WriteAt(r.s, 5, 0, r.describe(), screen.Normal)
		if r.arch != nil {
			screen.WriteAt(r.s, 6, 0, fmt.Sprintf("Partition table type: %s", r.arch.Name), screen.Normal)
		}

		k, err := menu.Select(r.s, mainItems, r.available(), menu.Options{
			Row:       mainMenuRow,
			StatusRow: mainStatusRow,
			ItemWidth: 8,
			Flags:     menu.Horizontal | menu.Button,
		}, &cursor)
		if err != nil {
			return err
		}

		switch k {
		case 'A':
			err = r.analyse()
		case 'T':
			err = r.chooseType()
		case 'G':
			err = r.changeGeometry()
		case 'D':
			err = r.dump()
		case 'L':
			err = showReport(r.s, r.report, "Session messages")
		case 'W':
			err = r.write()
		case 'Q':
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (r *recovery) analyse() error {
	f, err := os.Open(r.image)
	if err != nil {
		return prompt.DisplayMessage(r.s, r.log, fmt.Sprintf("Cannot open %s: %v", r.image, err))
	}
	defer f.Close()

	sectors := uint64(r.size) / sectorSize
	found := 0
	r.report.Printf("Analyse %s\n", r.image)

	components.DrawHeader(r.s)
	screen.WriteAt(r.s, 5, 0, r.describe(), screen.Normal)
	scanned, err := scanSignatures(f, sectors,
		func(sector uint64) (bool, error) {
			screen.WriteAt(r.s, 6, 0, fmt.Sprintf("Analyse sector %d/%d: %d%%, press Enter to stop",
				sector, sectors, sector*100/sectors), screen.Normal)
			if err := logviewer.DrawTail(r.s, r.report); err != nil {
				return false, err
			}
			return prompt.CheckEnterKeyOrS(r.s)
		},
		func(sector uint64) {
			found++
			r.report.Printf("Boot signature at sector %d (CHS %s)\n", sector, r.geo.LBAToCHS(sector))
		})
	if err != nil {
		return err
	}
	if scanned < sectors {
		r.report.Printf("Analyse stopped at sector %d\n", scanned)
	}
	r.report.Printf("%d sectors scanned, %d boot signatures\n", scanned, found)
	r.log.WithFields(logrus.Fields{"sectors": scanned, "found": found}).Info("Analyse done")

	return showReport(r.s, r.report, fmt.Sprintf("Analyse %s", r.image))
}

func (r *recovery) chooseType() error {
	arch, ok, err := parttype.Select(r.s, r.describe(), r.arch)
	if err != nil || !ok {
		return err
	}
	r.arch = &arch
	r.report.Printf("Partition table type: %s\n", arch.Name)
	return nil
}

func (r *recovery) changeGeometry() error {
	components.DrawHeader(r.s)
	screen.WriteAt(r.s, 5, 0, r.describe(), screen.Normal)

	r.s.MoveTo(7, 0)
	heads, err := prompt.AskNumber(r.s, r.geo.HeadsPerCylinder, 1, 255, "Number of heads ")
	if err != nil {
		return err
	}
	r.s.MoveTo(8, 0)
	spt, err := prompt.AskNumber(r.s, r.geo.SectorsPerHead, 1, 63, "Number of sectors per head ")
	if err != nil {
		return err
	}

	r.geo = parttype.Geometry{HeadsPerCylinder: heads, SectorsPerHead: spt}
	r.report.Printf("Geometry: %d heads, %d sectors per head\n", heads, spt)
	return nil
}

func (r *recovery) dump() error {
	data, err := readPrefix(r.image, 0, sectorSize)
	if err != nil {
		return prompt.DisplayMessage(r.s, r.log, err.Error())
	}
	return hexdump.DumpWindow(r.s, data, r.log.WithField("file", r.image))
}

func (r *recovery) write() error {
	ok, err := prompt.AskConfirmation(r.s, "Write partition table, confirm ? (Y/N)")
	if err != nil {
		return err
	}
	if !ok {
		r.report.Printf("Write cancelled\n")
		return nil
	}
	return prompt.NotImplemented(r.s, r.log, "write partition table")
}

// openLog sends the log to path. While the file cannot be opened it asks
// for another name; an empty answer runs without a log file.
func openLog(s screen.Screen, path string) (*os.File, error) {
	for path != "" {
		f, err := logging.OpenFile(path)
		if err == nil {
			return f, nil
		}
		path, err = prompt.AskLogLocation(s, path, err)
		if err != nil {
			return nil, err
		}
	}
	return nil, nil
}

// NewMenuCmd creates the interactive recovery menu command.
func NewMenuCmd() *cobra.Command {
	var logPath string

	cmd := &cobra.Command{
		Use:   "menu [image]",
		Short: "Run the interactive recovery menu",
		Long:  "Runs the main recovery menu on a disk image. Without an image only the geometry, type and log screens are available.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			hexdump.Configure(e.cfg)

			var image string
			var size int64
			if len(args) == 1 {
				image = args[0]
				if size, err = statSize(image); err != nil {
					return err
				}
			}

			s, err := e.startSession()
			if err != nil {
				return err
			}
			defer s.Close()

			logFile, err := openLog(s, logPath)
			if err != nil {
				return err
			}
			if logFile != nil {
				defer logging.CloseFile(logFile)
			}

			return newRecovery(s, e.logger, image, size).run()
		},
	}

	cmd.Flags().StringVar(&logPath, "log", "", "Write the session log to this file")
	return cmd
}
