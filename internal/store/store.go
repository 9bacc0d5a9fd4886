package store

import (
	"sync"

	"homeharbor/internal/domain"
)

// MemStore holds every entity collection in process memory. Each kind keeps
// its own map, its own id sequence and its own insertion-order slice; the
// sequences are independent and ids are never reused. A restart starts over
// from whatever the caller seeds.
//
// A single RWMutex serializes writers. An update's read-merge-write runs
// entirely under the write lock, so concurrent updates to one id collapse to
// last-write-wins at whole-operation granularity.
type MemStore struct {
	mu sync.RWMutex

	accounts   map[int]domain.Account
	properties map[int]domain.Property
	posts      map[int]domain.Post
	messages   map[int]domain.Message

	accountOrder  []int
	propertyOrder []int
	postOrder     []int
	messageOrder  []int

	accountSeq  int
	propertySeq int
	postSeq     int
	messageSeq  int
}

// New returns an empty store. It performs no seeding; see Seed.
func New() *MemStore {
	return &MemStore{
		accounts:    make(map[int]domain.Account),
		properties:  make(map[int]domain.Property),
		posts:       make(map[int]domain.Post),
		messages:    make(map[int]domain.Message),
		accountSeq:  1,
		propertySeq: 1,
		postSeq:     1,
		messageSeq:  1,
	}
}

func removeID(order []int, id int) []int {
	out := order[:0]
	for _, v := range order {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
