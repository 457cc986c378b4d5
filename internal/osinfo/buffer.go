package osinfo

import "sync"

// Buffer owns the raw records of a single platform query. The records are
// only valid until Release is called.
type Buffer[T any] struct {
	Records []T
	release func([]T)
}

// Release hands the records back to their owner. Calls after the first
// are no-ops.
func (b *Buffer[T]) Release() {
	if b == nil || b.release == nil {
		return
	}
	release := b.release
	records := b.Records
	b.release = nil
	b.Records = nil
	release(records)
}

// NewBuffer wraps records with a release callback. A nil callback is allowed.
func NewBuffer[T any](records []T, release func([]T)) *Buffer[T] {
	if release == nil {
		release = func([]T) {}
	}
	return &Buffer[T]{Records: records, release: release}
}

// recordPool recycles raw record slices between queries.
type recordPool[T any] struct {
	pool sync.Pool
}

func (p *recordPool[T]) get() []T {
	if s, ok := p.pool.Get().(*[]T); ok {
		return (*s)[:0]
	}
	return make([]T, 0, 16)
}

func (p *recordPool[T]) put(s []T) {
	clear(s)
	s = s[:0]
	p.pool.Put(&s)
}

func (p *recordPool[T]) buffer(records []T) *Buffer[T] {
	return NewBuffer(records, p.put)
}
