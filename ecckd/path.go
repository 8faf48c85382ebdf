package ecckd

import (
	"strconv"
	"strings"
)

// ParsePath parses a human readable derivation path such as "m/44'/0'/0/1"
// into the child indices Derive expects.  The leading "m" (or "M") element is
// optional, and hardened indices may be marked with an apostrophe or an
// h/H suffix.  Each index must be below 2^31 before the hardened marker is
// applied.
func ParsePath(path string) ([]uint32, error) {
	parts := strings.Split(path, "/")
	if len(parts) > 0 && (parts[0] == "m" || parts[0] == "M") {
		parts = parts[1:]
	}

	indices := make([]uint32, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return nil, ErrInvalidPath
		}

		hardened := false
		switch part[len(part)-1] {
		case '\'', 'h', 'H':
			hardened = true
			part = part[:len(part)-1]
		}

		idx, err := strconv.ParseUint(part, 10, 32)
		if err != nil || idx >= uint64(HardenedBit) {
			return nil, ErrInvalidPath
		}
		if hardened {
			idx |= uint64(HardenedBit)
		}
		indices = append(indices, uint32(idx))
	}
	return indices, nil
}

// DerivePath derives the descendant extended key at the given human readable
// path, for example "m/44'/0'/0'/0/1".
func (k *ExtendedKey) DerivePath(path string) (*ExtendedKey, error) {
	indices, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return k.Derive(indices)
}
