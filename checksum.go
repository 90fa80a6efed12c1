package kstring

import "github.com/snksoft/crc"

var checksumTable = crc.NewTable(crc.CRC32)

// Checksum returns the CRC-32 of str's content bytes, suitable as an index
// key for string tables. The checksum covers the raw bytes, so the same
// text in two encodings produces different checksums. Invalid values
// return 0.
func (str KString) Checksum() uint32 {
	if !str.IsValid() {
		return 0
	}

	hash := crc.NewHashWithTable(checksumTable)
	hash.Write(str.Bytes())
	return hash.CRC32()
}
