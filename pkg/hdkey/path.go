package hdkey

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePath splits a derivation path of the form m(/NUMBER'?)* into child
// indices. A trailing apostrophe marks a segment hardened; numeric
// segments must be below 2^31. The returned bool reports whether the path
// began with the root marker "m", which is only legal as the first
// segment.
func ParsePath(path string) ([]uint32, bool, error) {
	if path == "" {
		return nil, false, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	segments := strings.Split(path, "/")
	rooted := segments[0] == "m"
	if rooted {
		segments = segments[1:]
	}

	indices := make([]uint32, 0, len(segments))
	for _, seg := range segments {
		hardened := strings.HasSuffix(seg, "'")
		if hardened {
			seg = strings.TrimSuffix(seg, "'")
		}
		n, err := strconv.ParseUint(seg, 10, 32)
		if err != nil || n >= uint64(FirstHardened) {
			return nil, false, fmt.Errorf("%w: segment %q", ErrInvalidPath, seg)
		}
		index := uint32(n)
		if hardened {
			index |= FirstHardened
		}
		indices = append(indices, index)
	}
	return indices, rooted, nil
}

// DerivePath walks a path string from this key, one child per segment,
// strictly left to right. The root marker "m" is only legal when this key
// is at depth 0.
func (k *Key) DerivePath(path string) (*Key, error) {
	indices, rooted, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	if rooted && k.depth != 0 {
		return nil, fmt.Errorf("%w: %q is a root path but key depth is %d", ErrInvalidPath, path, k.depth)
	}
	return k.Derive(indices...)
}
