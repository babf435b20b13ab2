// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package pooler

import (
	"gopkg.in/typ.v4/sync2"

	"github.com/AccelByte/extend-core-objectpool/pkg/entity"
	"github.com/AccelByte/extend-core-objectpool/pkg/models"
)

// checkout is the bookkeeping kept for one acquired instance.
type checkout struct {
	tag models.Tag
	seq uint64
}

// checkoutEntry pairs an instance with its checkout record while it is being reclaimed.
type checkoutEntry struct {
	instance entity.Poolable
	checkout
}

const scratchCapacity = 64

// scratch reuses slices to reduce garbage collector pressure when reclaiming instances every round.
type scratch struct {
	entries *sync2.Pool[[]checkoutEntry]
}

func newScratch() scratch {
	return scratch{
		entries: &sync2.Pool[[]checkoutEntry]{
			New: func() []checkoutEntry {
				return make([]checkoutEntry, 0, scratchCapacity)
			},
		},
	}
}

func (s scratch) get() []checkoutEntry {
	return s.entries.Get()[:0]
}

func (s scratch) put(entries []checkoutEntry) {
	clear(entries)
	s.entries.Put(entries[:0])
}
