// Package parttype lets the user pick the partition table type of a disk
// and converts sector addresses for display.
package parttype

import (
	"fmt"

	"github.com/grovetools/partui/tui/components"
	"github.com/grovetools/partui/tui/components/prompt"
	"github.com/grovetools/partui/tui/keymap"
	"github.com/grovetools/partui/tui/menu"
	"github.com/grovetools/partui/tui/screen"
)

// Arch is a partition table type.
type Arch struct {
	Key         keymap.Key
	Name        string
	Description string
}

// Archs lists the supported partition table types in menu order.
var Archs = []Arch{
	{Key: 'I', Name: "Intel", Description: "Intel/PC partition"},
	{Key: 'G', Name: "EFI GPT", Description: "EFI GPT partition map (Mac i386, some x86_64...)"},
	{Key: 'M', Name: "Mac", Description: "Apple partition map"},
	{Key: 'N', Name: "None", Description: "Non partitioned media"},
	{Key: 'S', Name: "Sun", Description: "Sun Solaris partition"},
	{Key: 'X', Name: "XBox", Description: "XBox partition"},
}

var returnItem = menu.Item{Key: 'Q', Name: "Return", Description: "Return to disk selection"}

const (
	// Row is the first row of the type menu.
	Row       = 8
	itemWidth = 7
	noteRow   = 20
	note      = "Note: Do NOT select 'None' for media with only a single partition. It's very rare for a drive to be 'Non-partitioned'."
)

// Lookup returns the type bound to k, ignoring case.
func Lookup(k keymap.Key) (Arch, bool) {
	for _, a := range Archs {
		if a.Key == k.Upper() {
			return a, true
		}
	}
	return Arch{}, false
}

// Select asks for the partition table type of the disk described by
// disk. The menu starts on current when it is one of Archs. ok is false
// when the user chose Return.
func Select(s screen.Screen, disk string, current *Arch) (arch Arch, ok bool, err error) {
	items := make([]menu.Item, 0, len(Archs)+1)
	cursor := 0
	for i, a := range Archs {
		items = append(items, menu.Item{Key: a.Key, Name: a.Name, Description: a.Description})
		if current != nil && current.Key == a.Key {
			cursor = i
		}
	}
	items = append(items, returnItem)

	components.DrawHeader(s)
	screen.WriteAt(s, 5, 0, disk, screen.Normal)
	screen.WriteAt(s, Row-1, 0, "Please select the partition table type, press Enter when done.", screen.Normal)
	prompt.DrawWrapped(s, noteRow, note)

	k, err := menu.Select(s, items, menu.AllKeys(items), menu.Options{
		Row:       Row,
		StatusRow: 23,
		ItemWidth: itemWidth,
		Flags:     menu.Vertical | menu.Button | menu.SidePanel,
	}, &cursor)
	if err != nil {
		return Arch{}, false, err
	}
	if k == returnItem.Key {
		return Arch{}, false, nil
	}
	arch, ok = Lookup(k)
	return arch, ok, nil
}

// Geometry is the legacy addressing of a disk.
type Geometry struct {
	HeadsPerCylinder uint64
	SectorsPerHead   uint64
}

// CHS is a cylinder/head/sector address. Sectors count from 1.
type CHS struct {
	Cylinder uint64
	Head     uint64
	Sector   uint64
}

func (c CHS) String() string {
	return fmt.Sprintf("%d/%d/%d", c.Cylinder, c.Head, c.Sector)
}

// LBAToCHS converts a linear sector address. A zero geometry field is
// treated as one.
func (g Geometry) LBAToCHS(lba uint64) CHS {
	spt := max(g.SectorsPerHead, 1)
	hpc := max(g.HeadsPerCylinder, 1)
	track := lba / spt
	return CHS{
		Cylinder: track / hpc,
		Head:     track % hpc,
		Sector:   lba%spt + 1,
	}
}

// CHSToLBA is the inverse of LBAToCHS.
func (g Geometry) CHSToLBA(c CHS) uint64 {
	spt := max(g.SectorsPerHead, 1)
	hpc := max(g.HeadsPerCylinder, 1)
	if c.Sector == 0 {
		return (c.Cylinder*hpc + c.Head) * spt
	}
	return (c.Cylinder*hpc+c.Head)*spt + c.Sector - 1
}
