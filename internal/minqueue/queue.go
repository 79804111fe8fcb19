package minqueue

import (
	"cmp"

	apperrors "github.com/agbru/karatmul/internal/errors"
)

// Queue is a FIFO queue built from two min-tracking stacks. Elements are
// pushed onto in and popped from out; when out runs dry the whole of in is
// moved over, reversing its order. Every element is moved at most once, so
// all operations are amortized O(1).
type Queue[T cmp.Ordered] struct {
	in, out Stack[T]
}

// PushBack appends v to the back of the queue.
func (q *Queue[T]) PushBack(v T) { q.in.Push(v) }

// Pop removes and returns the front element. ok is false if the queue is
// empty.
func (q *Queue[T]) Pop() (v T, ok bool) {
	if q.out.Empty() {
		for {
			x, more := q.in.Pop()
			if !more {
				break
			}
			q.out.Push(x)
		}
	}
	return q.out.Pop()
}

// Min returns the smallest element in the queue.
func (q *Queue[T]) Min() (v T, ok bool) {
	inMin, inOK := q.in.Min()
	outMin, outOK := q.out.Min()
	switch {
	case inOK && outOK:
		return min(inMin, outMin), true
	case inOK:
		return inMin, true
	default:
		return outMin, outOK
	}
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.in.Len() + q.out.Len() }

// SlidingMin returns the minimum of every contiguous window of k values,
// len(values)-k+1 results in order.
func SlidingMin[T cmp.Ordered](values []T, k int) ([]T, error) {
	if k < 1 {
		return nil, apperrors.ValidationError{Field: "k", Message: "window size must be at least 1"}
	}
	if k > len(values) {
		return nil, apperrors.ValidationError{Field: "k", Message: "window size exceeds the number of values"}
	}

	var q Queue[T]
	out := make([]T, 0, len(values)-k+1)
	for i, v := range values {
		q.PushBack(v)
		if i >= k {
			q.Pop()
		}
		if i >= k-1 {
			m, _ := q.Min()
			out = append(out, m)
		}
	}
	return out, nil
}
