package sat

import "testing"

func TestBoundedQueueAverage(t *testing.T) {
	q := newBoundedQueue(3)

	if q.isFull() {
		t.Error("empty queue should not be full")
	}

	q.push(2)
	q.push(4)
	if got, want := q.avg(), 3.0; got != want {
		t.Errorf("avg: got %f, want %f", got, want)
	}

	q.push(6)
	if !q.isFull() {
		t.Error("queue should be full after cap pushes")
	}
	if got, want := q.avg(), 4.0; got != want {
		t.Errorf("avg: got %f, want %f", got, want)
	}
}

func TestBoundedQueueEvictsOldest(t *testing.T) {
	q := newBoundedQueue(3)
	for _, v := range []int64{1, 2, 3, 10, 20} {
		q.push(v)
	}

	// Retained values are 3, 10, 20.
	if got, want := q.avg(), 11.0; got != want {
		t.Errorf("avg: got %f, want %f", got, want)
	}
}

func TestBoundedQueueFastClear(t *testing.T) {
	q := newBoundedQueue(2)
	q.push(5)
	q.push(7)
	q.fastClear()

	if q.isFull() {
		t.Error("cleared queue should not be full")
	}

	q.push(1)
	q.push(3)
	if got, want := q.avg(), 2.0; got != want {
		t.Errorf("avg after clear: got %f, want %f", got, want)
	}
}
