package loader

import (
	"errors"

	"golang.org/x/text/transform"
)

var errInvalidUTF16 = errors.New("invalid utf-16")

// utf16Validator passes UTF-16 bytes through unchanged, failing on an odd trailing byte or an unpaired
// surrogate. The x/text decoder substitutes U+FFFD for those, which would hide a corrupt file.
// The byte order mark, when present, selects the byte order; little endian otherwise.
type utf16Validator struct {
	started     bool
	bigEndian   bool
	pendingHigh bool
}

func (v *utf16Validator) Reset() {
	*v = utf16Validator{}
}

func (v *utf16Validator) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	nDst, nSrc := 0, 0

	for nSrc+1 < len(src) {
		if nDst+2 > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}

		if !v.started {
			v.started = true
			v.bigEndian = src[nSrc] == 0xfe && src[nSrc+1] == 0xff
		}

		unit := uint16(src[nSrc]) | uint16(src[nSrc+1])<<8
		if v.bigEndian {
			unit = uint16(src[nSrc])<<8 | uint16(src[nSrc+1])
		}

		isHigh := unit >= 0xd800 && unit <= 0xdbff
		isLow := unit >= 0xdc00 && unit <= 0xdfff

		switch {
		case v.pendingHigh && !isLow, !v.pendingHigh && isLow:
			return nDst, nSrc, errInvalidUTF16
		default:
			v.pendingHigh = isHigh
		}

		dst[nDst], dst[nDst+1] = src[nSrc], src[nSrc+1]
		nDst += 2
		nSrc += 2
	}

	if nSrc < len(src) {
		if atEOF {
			return nDst, nSrc, errInvalidUTF16
		}

		return nDst, nSrc, transform.ErrShortSrc
	}

	if atEOF && v.pendingHigh {
		return nDst, nSrc, errInvalidUTF16
	}

	return nDst, nSrc, nil
}
