package ico

import "fmt"

// ErrorKind distinguishes the ways a validation can fail, so callers
// can react to a bad signature differently from a bad dimension.
type ErrorKind int

const (
	// KindTruncated means the buffer is too short to hold the headers
	// being inspected.
	KindTruncated ErrorKind = iota + 1
	// KindBadSignature means the PNG magic bytes are wrong.
	KindBadSignature
	// KindBadIHDR means the first PNG chunk is not a well-formed IHDR.
	KindBadIHDR
	// KindBadDimensions means a width or height is zero or above the
	// directory limit.
	KindBadDimensions
	// KindBadBatch means the batch itself is unencodable: empty, or
	// more images than a container holds.
	KindBadBatch
	// KindNotIco means the buffer handed to ParseInfo is not an ICO
	// container.
	KindNotIco
)

func (k ErrorKind) String() string {
	switch k {
	case KindTruncated:
		return "truncated buffer"
	case KindBadSignature:
		return "bad signature"
	case KindBadIHDR:
		return "bad IHDR chunk"
	case KindBadDimensions:
		return "bad dimensions"
	case KindBadBatch:
		return "bad batch"
	case KindNotIco:
		return "not an ICO"
	default:
		return "unknown"
	}
}

// ValidationError is returned for every input the encoder or inspector
// rejects. Index is the 1-based position of the offending image within
// the batch, or 0 when the batch as a whole is at fault.
type ValidationError struct {
	Kind  ErrorKind
	Index int
	Cause string
}

func (e *ValidationError) Error() string {
	if e.Index > 0 {
		return fmt.Sprintf("ico: image %d: %s", e.Index, e.Cause)
	}
	return "ico: " + e.Cause
}

// Warning reports a non-fatal condition noticed while encoding.
// Currently the only producer is duplicate-dimension detection.
type Warning struct {
	Width   int
	Height  int
	Indexes []int // 1-based positions of the inputs sharing the dimensions
}

func (w Warning) String() string {
	return fmt.Sprintf("ico: %d inputs share dimensions %dx%d", len(w.Indexes), w.Width, w.Height)
}

func duplicateWarnings(infos []ImageInfo) []Warning {
	type dims struct{ w, h int }
	seen := make(map[dims][]int, len(infos))
	order := make([]dims, 0, len(infos))
	for i, info := range infos {
		d := dims{info.Width, info.Height}
		if _, ok := seen[d]; !ok {
			order = append(order, d)
		}
		seen[d] = append(seen[d], i+1)
	}

	var warns []Warning
	for _, d := range order {
		if idx := seen[d]; len(idx) > 1 {
			warns = append(warns, Warning{Width: d.w, Height: d.h, Indexes: idx})
		}
	}
	return warns
}
