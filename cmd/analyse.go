package cmd

import (
	"bytes"
	"io"
)

// pollEvery is how many sectors the scan reads between two progress
// updates, one MiB of 512-byte sectors.
const pollEvery = 2048

// bootSignature ends an MBR, a boot sector and an extended partition record.
var bootSignature = []byte{0x55, 0xAA}

// scanSignatures reads sectors of r from 0 to sectors-1 and calls found
// for every sector that ends with the boot signature. poll is called
// every pollEvery sectors with the next sector to read; the scan stops
// early when it returns true. It returns the number of sectors read.
func scanSignatures(r io.ReaderAt, sectors uint64, poll func(sector uint64) (bool, error), found func(sector uint64)) (uint64, error) {
	buf := make([]byte, sectorSize)
	var sector uint64
	for ; sector < sectors; sector++ {
		if sector > 0 && sector%pollEvery == 0 {
			stop, err := poll(sector)
			if err != nil {
				return sector, err
			}
			if stop {
				return sector, nil
			}
		}

		n, err := r.ReadAt(buf, int64(sector)*sectorSize)
		if n < sectorSize {
			if err == nil || err == io.EOF {
				return sector, nil
			}
			return sector, err
		}
		if bytes.Equal(buf[sectorSize-len(bootSignature):], bootSignature) {
			found(sector)
		}
	}
	return sector, nil
}
