package utils

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"
)

// NewSeed 取一个随机种子, crypto/rand不可用时退回时间戳
func NewSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
