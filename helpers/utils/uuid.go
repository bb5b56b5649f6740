// Package utils holds small standalone helpers shared by the cmd
// entrypoints.
package utils

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// GenerateUUID returns a random UUID v4, used to tag a batch/worker run
// in log output.
func GenerateUUID() string {
	b := make([]byte, 16)
	rand.Read(b)
	b[6] = (b[6] & 0x0f) | 0x40 // version 4
	b[8] = (b[8] & 0x3f) | 0x80 // RFC 4122 variant
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:])
}

// GenerateShortID returns an 8-hex-character random ID.
func GenerateShortID() string {
	b := make([]byte, 4)
	rand.Read(b)
	return fmt.Sprintf("%x", b)
}

// GenerateNumericID returns a random non-negative 63-bit ID.
func GenerateNumericID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return fmt.Sprintf("%d", binary.BigEndian.Uint64(b)>>1)
}
