// Package ico packages PNG image streams into the Windows ICO container
// format and inspects existing ICO data without decoding pixel payloads.
//
// Format reference: https://en.wikipedia.org/wiki/ICO_(file_format)
package ico

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	fileHeaderSize = 6
	dirEntrySize   = 16

	// MaxImages caps how many images a single container may hold.
	MaxImages = 256

	// MaxDimension is the largest width or height a directory entry can
	// express. The entry stores each dimension in one byte, with 0
	// standing in for 256.
	MaxDimension = 256

	// minPNGHeader covers the signature plus the IHDR chunk header and
	// its width/height fields.
	minPNGHeader = 24

	iconType   = 1
	cursorType = 2
)

var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// ImageInfo holds the validated metadata of one PNG input.
type ImageInfo struct {
	Width  int
	Height int
	Size   int
}

// fileHeader mirrors the fixed 6-byte ICONDIR structure.
type fileHeader struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

// dirEntry mirrors the fixed 16-byte ICONDIRENTRY structure.
type dirEntry struct {
	Width        uint8
	Height       uint8
	ColorCount   uint8
	Reserved     uint8
	ColorPlanes  uint16
	BitsPerPixel uint16
	Size         uint32
	Offset       uint32
}

func newDirEntry(info ImageInfo, offset uint32) dirEntry {
	return dirEntry{
		// uint8 conversion wraps 256 to 0, which is exactly the
		// encoding the format wants for the maximum dimension.
		Width:        uint8(info.Width),
		Height:       uint8(info.Height),
		ColorPlanes:  1,
		BitsPerPixel: 32,
		Size:         uint32(info.Size),
		Offset:       offset,
	}
}

// PNGInfo validates buf as a PNG stream and reads its IHDR dimensions.
// Only the header is inspected; the pixel data is never decoded.
func PNGInfo(buf []byte) (ImageInfo, error) {
	return parsePNG(buf, 0)
}

func parsePNG(buf []byte, index int) (ImageInfo, error) {
	if len(buf) < minPNGHeader {
		return ImageInfo{}, &ValidationError{
			Kind:  KindTruncated,
			Index: index,
			Cause: fmt.Sprintf("buffer is %d bytes, need at least %d for a PNG header", len(buf), minPNGHeader),
		}
	}
	if !bytes.Equal(buf[:8], pngSignature) {
		return ImageInfo{}, &ValidationError{
			Kind:  KindBadSignature,
			Index: index,
			Cause: "missing PNG signature",
		}
	}
	if l := binary.BigEndian.Uint32(buf[8:12]); l != 13 {
		return ImageInfo{}, &ValidationError{
			Kind:  KindBadIHDR,
			Index: index,
			Cause: fmt.Sprintf("IHDR chunk length is %d, want 13", l),
		}
	}
	if string(buf[12:16]) != "IHDR" {
		return ImageInfo{}, &ValidationError{
			Kind:  KindBadIHDR,
			Index: index,
			Cause: fmt.Sprintf("first chunk is %q, want IHDR", buf[12:16]),
		}
	}
	width := binary.BigEndian.Uint32(buf[16:20])
	height := binary.BigEndian.Uint32(buf[20:24])
	if width == 0 || height == 0 {
		return ImageInfo{}, &ValidationError{
			Kind:  KindBadDimensions,
			Index: index,
			Cause: fmt.Sprintf("zero dimension in %dx%d", width, height),
		}
	}
	if width > MaxDimension || height > MaxDimension {
		return ImageInfo{}, &ValidationError{
			Kind:  KindBadDimensions,
			Index: index,
			Cause: fmt.Sprintf("%dx%d exceeds the %d pixel directory limit", width, height, MaxDimension),
		}
	}
	return ImageInfo{Width: int(width), Height: int(height), Size: len(buf)}, nil
}

// Encode serializes the given PNG streams into a single ICO container.
// Inputs keep their order; consuming applications conventionally prefer
// earlier entries. Validation is atomic: any bad input fails the whole
// batch and no partial container is produced. Returned warnings report
// duplicate dimensions in the batch and never affect the output bytes.
func Encode(pngs [][]byte) ([]byte, []Warning, error) {
	if len(pngs) == 0 {
		return nil, nil, &ValidationError{Kind: KindBadBatch, Cause: "no images to encode"}
	}
	if len(pngs) > MaxImages {
		return nil, nil, &ValidationError{
			Kind:  KindBadBatch,
			Cause: fmt.Sprintf("%d images, container holds at most %d", len(pngs), MaxImages),
		}
	}

	infos := make([]ImageInfo, len(pngs))
	for i, p := range pngs {
		info, err := parsePNG(p, i+1)
		if err != nil {
			return nil, nil, err
		}
		infos[i] = info
	}
	warns := duplicateWarnings(infos)

	total := fileHeaderSize + dirEntrySize*len(pngs)
	for _, info := range infos {
		total += info.Size
	}

	buf := bytes.NewBuffer(make([]byte, 0, total))
	binary.Write(buf, binary.LittleEndian, fileHeader{Type: iconType, Count: uint16(len(pngs))})

	offset := uint32(fileHeaderSize + dirEntrySize*len(pngs))
	for _, info := range infos {
		binary.Write(buf, binary.LittleEndian, newDirEntry(info, offset))
		offset += uint32(info.Size)
	}
	for _, p := range pngs {
		buf.Write(p)
	}
	return buf.Bytes(), warns, nil
}

// IsValid reports whether buf starts with a plausible ICO header. It
// never returns an error; malformed input is simply not valid.
func IsValid(buf []byte) bool {
	if len(buf) < fileHeaderSize {
		return false
	}
	if binary.LittleEndian.Uint16(buf[0:2]) != 0 {
		return false
	}
	if t := binary.LittleEndian.Uint16(buf[2:4]); t != iconType && t != cursorType {
		return false
	}
	n := binary.LittleEndian.Uint16(buf[4:6])
	return n > 0 && n <= MaxImages
}

// Entry is the directory metadata of one embedded image, as declared by
// the container. Offsets and sizes are reported verbatim, not verified
// against the payload section.
type Entry struct {
	Width  int
	Height int
	Size   uint32
	Offset uint32
}

// Info is the parsed directory of an ICO container.
type Info struct {
	Type   int
	Images []Entry
}

// ParseInfo reads the directory of an ICO container. Trailing entries
// that would run past the end of buf are silently dropped, so the
// reported image list may be shorter than the declared count.
func ParseInfo(buf []byte) (*Info, error) {
	if !IsValid(buf) {
		return nil, &ValidationError{Kind: KindNotIco, Cause: "not an ICO container"}
	}
	count := int(binary.LittleEndian.Uint16(buf[4:6]))
	info := &Info{Type: int(binary.LittleEndian.Uint16(buf[2:4]))}
	for i := 0; i < count; i++ {
		off := fileHeaderSize + i*dirEntrySize
		if off+dirEntrySize > len(buf) {
			break
		}
		e := buf[off : off+dirEntrySize]
		width, height := int(e[0]), int(e[1])
		if width == 0 {
			width = MaxDimension
		}
		if height == 0 {
			height = MaxDimension
		}
		info.Images = append(info.Images, Entry{
			Width:  width,
			Height: height,
			Size:   binary.LittleEndian.Uint32(e[8:12]),
			Offset: binary.LittleEndian.Uint32(e[12:16]),
		})
	}
	return info, nil
}
