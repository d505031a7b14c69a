package morph

import "fmt"

// deque is a bounded ring buffer of int indices. Capacity equals the
// window size, which the sliding-window invariant never exceeds.
type deque struct {
	buf   []int
	start int
	end   int
	size  int
}

func newDeque(capacity int) *deque {
	return &deque{buf: make([]int, capacity)}
}

func (q *deque) empty() bool { return q.size == 0 }

func (q *deque) reset() {
	q.start, q.end, q.size = 0, 0, 0
}

func (q *deque) front() int { return q.buf[q.start] }

func (q *deque) popFront() int {
	v := q.front()
	q.start = (q.start + 1) % len(q.buf)
	q.size--
	return v
}

func (q *deque) back() int {
	return q.buf[(q.end+len(q.buf)-1)%len(q.buf)]
}

func (q *deque) popBack() int {
	v := q.back()
	q.end = (q.end + len(q.buf) - 1) % len(q.buf)
	q.size--
	return v
}

func (q *deque) pushBack(v int) {
	if q.size >= len(q.buf) {
		panic(fmt.Sprintf("morph: attempted to insert into a full deque (capacity %d)", len(q.buf)))
	}
	q.buf[q.end] = v
	q.end = (q.end + 1) % len(q.buf)
	q.size++
}
