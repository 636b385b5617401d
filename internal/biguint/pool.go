// This file provides buffer pooling for NTT multiplications to reduce GC pressure.

package biguint

import (
	"math/bits"
	"sync"
)

// ─────────────────────────────────────────────────────────────────────────────
// Word Buffer Pools
// ─────────────────────────────────────────────────────────────────────────────

// wordBufferPools pools []uint64 transform buffers by size class.
// Size classes are powers of 4 from 64 to 16M words.
var wordBufferPools = [...]sync.Pool{
	{New: func() any { return make([]uint64, 64) }},
	{New: func() any { return make([]uint64, 256) }},
	{New: func() any { return make([]uint64, 1024) }},
	{New: func() any { return make([]uint64, 4096) }},
	{New: func() any { return make([]uint64, 16384) }},
	{New: func() any { return make([]uint64, 65536) }},
	{New: func() any { return make([]uint64, 262144) }},
	{New: func() any { return make([]uint64, 1048576) }},  // 8MB
	{New: func() any { return make([]uint64, 4194304) }},  // 32MB
	{New: func() any { return make([]uint64, 16777216) }}, // 128MB
}

// wordBufferSizes defines the size classes for wordBufferPools.
var wordBufferSizes = [...]int{64, 256, 1024, 4096, 16384, 65536, 262144, 1048576, 4194304, 16777216}

// wordBufferPoolIndex returns the pool index for a given size, or -1 if the
// size is too large for pooling.
//
// Sizes are 4^(i+3), so bits.Len(size-1) maps directly to the index.
func wordBufferPoolIndex(size int) int {
	if size <= 0 {
		return 0
	}
	if size > wordBufferSizes[len(wordBufferSizes)-1] {
		return -1
	}
	idx := (bits.Len(uint(size-1)) - 5) / 2
	if idx < 0 {
		idx = 0
	}
	return idx
}

// acquireWordBuffer returns a zeroed buffer of exactly size words.
//
//	buf := acquireWordBuffer(size)
//	defer releaseWordBuffer(buf)
func acquireWordBuffer(size int) []uint64 {
	idx := wordBufferPoolIndex(size)
	if idx < 0 {
		return make([]uint64, size)
	}
	buf := wordBufferPools[idx].Get().([]uint64)
	clear(buf)
	return buf[:size]
}

// releaseWordBuffer returns buf to its pool. Buffers that were allocated
// directly are left to the GC. Safe to call with nil.
func releaseWordBuffer(buf []uint64) {
	if buf == nil {
		return
	}
	c := cap(buf)
	idx := wordBufferPoolIndex(c)
	if idx >= 0 && wordBufferSizes[idx] == c {
		wordBufferPools[idx].Put(buf[:c])
	}
}
