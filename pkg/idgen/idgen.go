// Package idgen produces record identifiers and millisecond timestamps.
package idgen

import (
	"encoding/binary"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const suffixLen = 9

// NowMillis returns the current Unix time in milliseconds.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// NewID returns an opaque identifier of the form "<unix-ms>-<9 base36 chars>".
// The millisecond prefix keeps ids roughly sortable by creation time.
func NewID() string {
	return newIDAt(NowMillis())
}

func newIDAt(ms int64) string {
	return strconv.FormatInt(ms, 10) + "-" + randomSuffix()
}

func randomSuffix() string {
	u := uuid.New()
	s := strconv.FormatUint(binary.BigEndian.Uint64(u[:8]), 36)
	if len(s) < suffixLen {
		s = strings.Repeat("0", suffixLen-len(s)) + s
	}
	return s[:suffixLen]
}
