// SPDX-License-Identifier: MIT

package pool

import (
	"fmt"

	"github.com/katalvlaran/mxjet/monomial"
	"go.uber.org/zap"
)

// Scalar is the set of coefficient rings a pool can store.
type Scalar interface {
	float64 | complex128
}

// Handle identifies one record inside a Pool: block*blockSize + offset.
type Handle int32

// noSlot terminates the free list.
const noSlot Handle = -1

// Record is one pooled (monomial, coefficient) pair.
type Record[T Scalar] struct {
	Exp  monomial.Exponents
	Coef T

	next  Handle // free-list link, valid while !inUse
	inUse bool
}

// Pool hands out Records from fixed-size blocks.
//   - blocks grow append-only; a Handle stays valid for the pool's lifetime.
//   - carved counts slots ever handed out from the newest block.
//   - free is the head of the intrusive free list (noSlot when empty).
type Pool[T Scalar] struct {
	blocks    [][]Record[T]
	blockSize  int
	maxRecords int
	carved     int
	free       Handle
	live       int
	log        *zap.Logger
}

// New returns an empty pool. No block is allocated until the first Acquire.
func New[T Scalar](opts ...Option) *Pool[T] {
	o := gatherOptions(opts)

	return &Pool[T]{
		blockSize:  o.blockSize,
		maxRecords: o.maxRecords,
		carved:     o.blockSize, // forces a block on first Acquire
		free:       noSlot,
		log:        o.logger,
	}
}

// Acquire returns a handle to a zeroed record.
//
// Implementation:
//   - Stage 1: pop the free list when non-empty.
//   - Stage 2: otherwise carve the next slot of the newest block.
//   - Stage 3: otherwise allocate a new block and carve its first slot.
//
// Acquire panics with ErrExhausted when no slot is free and a new block
// would take the capacity past the record limit (see WithMaxRecords).
//
// Complexity: O(1) amortised; a new block costs O(blockSize).
func (p *Pool[T]) Acquire() Handle {
	var h Handle
	if p.free != noSlot {
		h = p.free
		p.free = p.Slot(h).next
	} else {
		if p.carved == p.blockSize {
			p.grow()
		}
		h = Handle((len(p.blocks)-1)*p.blockSize + p.carved)
		p.carved++
	}
	r := p.Slot(h)
	*r = Record[T]{inUse: true}
	p.live++

	return h
}

// grow appends one block, refusing to outgrow the int32 handle space.
func (p *Pool[T]) grow() {
	if len(p.blocks)+1 > p.maxRecords/p.blockSize {
		panic(fmt.Errorf("Pool.Acquire: %d blocks of %d: %w", len(p.blocks), p.blockSize, ErrExhausted))
	}
	p.blocks = append(p.blocks, make([]Record[T], p.blockSize))
	p.carved = 0
	p.log.Debug("pool block allocated",
		zap.Int("blocks", len(p.blocks)),
		zap.Int("blockSize", p.blockSize),
		zap.Int("live", p.live),
	)
}

// Release returns h to the free list.
// Errors: ErrInvalidHandle, ErrDoubleRelease.
// Complexity: O(1).
func (p *Pool[T]) Release(h Handle) error {
	if !p.valid(h) {
		return poolErrorf("Release", h, ErrInvalidHandle)
	}
	r := p.Slot(h)
	if !r.inUse {
		return poolErrorf("Release", h, ErrDoubleRelease)
	}
	r.inUse = false
	r.next = p.free
	p.free = h
	p.live--

	return nil
}

// Slot returns the record behind h. It panics on a handle this pool never
// issued; the jet package only passes handles it obtained from Acquire.
func (p *Pool[T]) Slot(h Handle) *Record[T] {
	if !p.valid(h) {
		panic(poolErrorf("Slot", h, ErrInvalidHandle))
	}

	return &p.blocks[int(h)/p.blockSize][int(h)%p.blockSize]
}

// valid reports whether h lies inside the carved region.
func (p *Pool[T]) valid(h Handle) bool {
	if h < 0 || len(p.blocks) == 0 {
		return false
	}
	issued := (len(p.blocks)-1)*p.blockSize + p.carved

	return int(h) < issued
}

// Live returns the number of records currently acquired.
func (p *Pool[T]) Live() int { return p.live }

// Capacity returns the number of records allocated across all blocks.
func (p *Pool[T]) Capacity() int { return len(p.blocks) * p.blockSize }

// Blocks returns the number of allocated blocks.
func (p *Pool[T]) Blocks() int { return len(p.blocks) }

// BlockSize returns the configured block size.
func (p *Pool[T]) BlockSize() int { return p.blockSize }
