// SPDX-License-Identifier: MIT
package index

import (
	"container/list"
	"fmt"
)

// Indexer allocates dense Index values with reuse and validity
// tracking. It is not safe for concurrent use.
type Indexer struct {
	validMask       *bitset
	highWater       Index
	initialCapacity Index
	maxCapacity     Index

	// freeQueue holds freed indices in FIFO order. freePos lets a
	// rollback remove an arbitrary in-flight entry (not necessarily
	// the queue tail) in O(1) instead of scanning. Grounded on the
	// opa arena's freelist-of-nodes shape; see DESIGN.md.
	freeQueue *list.List
	freePos   map[Index]*list.Element
}

// New constructs an Indexer with the given initial and maximum
// capacity. maxCapacity must be >= initialCapacity; it bounds the
// doubling growth policy.
func New(initialCapacity, maxCapacity Index) *Indexer {
	if maxCapacity < initialCapacity {
		maxCapacity = initialCapacity
	}
	return &Indexer{
		validMask:       newBitset(initialCapacity),
		initialCapacity: initialCapacity,
		maxCapacity:     maxCapacity,
		freeQueue:       list.New(),
		freePos:         make(map[Index]*list.Element),
	}
}

// NewIndex allocates an Index: reuse the oldest freed slot if one
// exists, otherwise take the high-water mark, growing capacity first
// if the mask is full.
func (ix *Indexer) NewIndex() (AssignedIndex, error) {
	if front := ix.freeQueue.Front(); front != nil {
		i := front.Value.(Index)
		ix.freeQueue.Remove(front)
		delete(ix.freePos, i)
		ix.validMask.set(i)

		return AssignedIndex{Index: i, IsReused: true}, nil
	}

	var grownTo *Index
	if ix.highWater == ix.validMask.len() {
		newCap, err := ix.grow()
		if err != nil {
			return AssignedIndex{}, err
		}
		grownTo = &newCap
	}

	i := ix.highWater
	ix.highWater++
	ix.validMask.set(i)

	return AssignedIndex{Index: i, NewCapacity: grownTo, IsReused: false}, nil
}

// grow doubles capacity (bounded by maxCapacity, floored at
// initialCapacity) and resizes the mask in place.
func (ix *Indexer) grow() (Index, error) {
	current := ix.validMask.len()
	target := ix.initialCapacity
	if doubled := current * 2; doubled > target {
		target = doubled
	}
	if target > ix.maxCapacity {
		target = ix.maxCapacity
	}
	if target <= current {
		return 0, fmt.Errorf("Indexer.NewIndex: at capacity %d: %w", current, ErrCapacityExhausted)
	}
	ix.validMask.growTo(target)

	return target, nil
}

// FreeValidIndex releases i for reuse. i must currently be valid;
// otherwise ErrIndexOutOfBounds or ErrIndexNotValid is returned.
func (ix *Indexer) FreeValidIndex(i Index) error {
	if i >= ix.validMask.len() {
		return fmt.Errorf("Indexer.FreeValidIndex(%d): %w", i, ErrIndexOutOfBounds)
	}
	if !ix.validMask.get(i) {
		return fmt.Errorf("Indexer.FreeValidIndex(%d): %w", i, ErrIndexNotValid)
	}
	ix.freeIndex(i)

	return nil
}

// FreeIndexUnchecked releases i without checking validity first.
// Behavior is undefined if i was not valid; callers that have already
// validated i (e.g. a higher-level checked operation) use this to
// avoid a redundant mask lookup.
func (ix *Indexer) FreeIndexUnchecked(i Index) {
	ix.freeIndex(i)
}

func (ix *Indexer) freeIndex(i Index) {
	ix.validMask.clear(i)
	elem := ix.freeQueue.PushBack(i)
	ix.freePos[i] = elem
}

// IsValid reports whether i is currently live. An out-of-range index
// is not an error; it simply reports false.
func (ix *Indexer) IsValid(i Index) bool {
	return ix.validMask.get(i)
}

// TryIsValid is IsValid, but returns ErrIndexNotValid instead of false.
func (ix *Indexer) TryIsValid(i Index) error {
	if !ix.validMask.get(i) {
		return fmt.Errorf("Indexer.TryIsValid(%d): %w", i, ErrIndexNotValid)
	}
	return nil
}

// NumberOfIndexedElements returns the count of currently live indices.
func (ix *Indexer) NumberOfIndexedElements() int {
	return ix.validMask.popCount()
}

// IndexCapacity returns the current mask length.
func (ix *Indexer) IndexCapacity() Index {
	return ix.validMask.len()
}

// HighWaterMark returns the smallest index never yet assigned.
func (ix *Indexer) HighWaterMark() Index {
	return ix.highWater
}

// SetCapacity grows (never shrinks) the mask to length n. It is a
// caller-driven counterpart to the automatic growth NewIndex performs.
func (ix *Indexer) SetCapacity(n Index) error {
	if n < ix.validMask.len() {
		return fmt.Errorf("Indexer.SetCapacity(%d): shrinking not permitted, current=%d", n, ix.validMask.len())
	}
	ix.validMask.growTo(n)

	return nil
}

// Stats returns a read-only snapshot for diagnostics.
func (ix *Indexer) Stats() Stats {
	return Stats{
		NumberOfIndexedElements: ix.NumberOfIndexedElements(),
		IndexCapacity:           ix.IndexCapacity(),
		HighWaterMark:           ix.highWater,
		FreeQueueLength:         ix.freeQueue.Len(),
	}
}

// --- Rollback-only operations -----------------------------------------
//
// These are never called by ordinary Graph operations; graph.Transaction
// is the sole caller, replaying its inverse log in strict LIFO order on
// abort. They deliberately bypass the invariants that guard the normal
// entry points above (e.g. RestoreCapacity can shrink), which is only
// safe under LIFO replay.

// RestoreIndex undoes a prior free of i: re-marks i valid and removes
// it from the free queue if it is still queued there (it will have
// already been popped if a later allocation within the same
// transaction reused it — that allocation's own inverse, "free i",
// will already be ahead of this one in the log and will run first
// under LIFO order, so by the time RestoreIndex runs i is always back
// in the queue).
func (ix *Indexer) RestoreIndex(i Index) {
	if elem, ok := ix.freePos[i]; ok {
		ix.freeQueue.Remove(elem)
		delete(ix.freePos, i)
	}
	ix.validMask.set(i)
}

// RestoreCapacity undoes a prior capacity growth from c0 to the
// current capacity, shrinking the mask back to c0 and dropping every
// index >= c0 from the free queue. Safe only when every index >= c0
// has already been freed by the time this runs, which LIFO replay
// order guarantees (the allocation that triggered the growth is
// always undone, via RestoreIndex/FreeIndexUnchecked, before the
// growth itself is undone).
func (ix *Indexer) RestoreCapacity(c0 Index) {
	for i, elem := range ix.freePos {
		if i >= c0 {
			ix.freeQueue.Remove(elem)
			delete(ix.freePos, i)
		}
	}
	if ix.highWater > c0 {
		ix.highWater = c0
	}
	ix.validMask.shrinkTo(c0)
}
