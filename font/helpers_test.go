package font

import "sort"
import "testing"
import "encoding/binary"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font/gofont/goregular"

func newTestFace(t *testing.T) *Face {
	t.Helper()
	face, _, err := ParseFaceFromBytes(goregular.TTF)
	if err != nil { t.Fatalf("parsing goregular: %s", err) }
	return face
}

func doesNotPanic(function func()) (didNotPanic bool) {
	didNotPanic = true
	defer func() { didNotPanic = (recover() == nil) }()
	function()
	return
}

// Returns a copy of the given TrueType data with a format 0 'kern'
// table holding the given pairs (values in font units). An existing
// 'kern' table is replaced.
func withKernTable(t *testing.T, ttf []byte, pairs map[[2]sfnt.GlyphIndex]int16) []byte {
	t.Helper()
	const kernTag = 0x6B65726E // "kern"
	be := binary.BigEndian

	// kern table, a single horizontal format 0 subtable
	keys := make([][2]sfnt.GlyphIndex, 0, len(pairs))
	for key := range pairs { keys = append(keys, key) }
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] { return keys[i][0] < keys[j][0] }
		return keys[i][1] < keys[j][1]
	})
	entrySelector := 0
	for (2 << entrySelector) <= len(keys) { entrySelector += 1 }
	searchRange := 6*(1 << entrySelector)
	subtableLen := 6 + 8 + 6*len(keys)
	kern := make([]byte, 4 + subtableLen)
	be.PutUint16(kern[2:], 1) // one subtable
	be.PutUint16(kern[6:], uint16(subtableLen))
	be.PutUint16(kern[8:], 0x0001) // format 0, horizontal
	be.PutUint16(kern[10:], uint16(len(keys)))
	be.PutUint16(kern[12:], uint16(searchRange))
	be.PutUint16(kern[14:], uint16(entrySelector))
	be.PutUint16(kern[16:], uint16(6*len(keys) - searchRange))
	for i, key := range keys {
		entry := kern[18 + 6*i:]
		be.PutUint16(entry[0:], uint16(key[0]))
		be.PutUint16(entry[2:], uint16(key[1]))
		be.PutUint16(entry[4:], uint16(pairs[key]))
	}

	// table records, with offsets shifted if the directory grows
	type record struct{ tag, checksum, offset, length uint32 }
	numTables := int(be.Uint16(ttf[4:]))
	dirEnd := 12 + 16*numTables
	records := make([]record, 0, numTables + 1)
	hasKern := false
	for i := 0; i < numTables; i++ {
		raw := ttf[12 + 16*i:]
		rec := record{ be.Uint32(raw), be.Uint32(raw[4:]), be.Uint32(raw[8:]), be.Uint32(raw[12:]) }
		if rec.tag == kernTag { hasKern = true }
		records = append(records, rec)
	}
	shift := 16
	if hasKern { shift = 0 }
	kernOffset := (len(ttf) + shift + 3) &^ 3
	for i := range records {
		records[i].offset += uint32(shift)
		if records[i].tag == kernTag {
			records[i].offset, records[i].length = uint32(kernOffset), uint32(len(kern))
		}
	}
	if !hasKern {
		records = append(records, record{ kernTag, 0, uint32(kernOffset), uint32(len(kern)) })
		sort.Slice(records, func(i, j int) bool { return records[i].tag < records[j].tag })
	}

	out := make([]byte, kernOffset + len(kern))
	copy(out, ttf[:12])
	be.PutUint16(out[4:], uint16(len(records)))
	for i, rec := range records {
		raw := out[12 + 16*i:]
		be.PutUint32(raw, rec.tag)
		be.PutUint32(raw[4:], rec.checksum)
		be.PutUint32(raw[8:], rec.offset)
		be.PutUint32(raw[12:], rec.length)
	}
	copy(out[12 + 16*len(records):], ttf[dirEnd:])
	copy(out[kernOffset:], kern)
	return out
}
