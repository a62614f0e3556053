// Package idutil derives 64-bit identifiers from random UUIDs and folds
// strings into existing identifiers.
package idutil

import (
	"encoding/binary"
	"unicode/utf16"

	"github.com/google/uuid"
)

// Random returns half of a freshly generated version 4 UUID: the least
// significant 64 bits when least is set, otherwise the most significant.
func Random(least bool) int64 {
	return half(uuid.New(), least)
}

func half(u uuid.UUID, least bool) int64 {
	if least {
		return int64(binary.BigEndian.Uint64(u[8:]))
	}
	return int64(binary.BigEndian.Uint64(u[:8]))
}

// AddTo folds data into id the way string hash codes are built: for every
// UTF-16 code unit c, id = 31*id + c. Overflow wraps.
func AddTo(id int64, data string) int64 {
	for _, c := range utf16.Encode([]rune(data)) {
		id = 31*id + int64(c)
	}
	return id
}
