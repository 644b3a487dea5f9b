package utils

import "testing"

func TestCircularQueueFIFO(t *testing.T) {
	q := NewCircularQueue[int](4)
	for i := 1; i <= 3; i++ {
		if err := q.Append(i); err != nil {
			t.Fatal(err)
		}
	}
	if q.Len() != 3 {
		t.Fatalf("len = %d, want 3", q.Len())
	}
	for want := 1; want <= 3; want++ {
		got, ok := q.Pop()
		if !ok || got != want {
			t.Fatalf("pop = %d,%v, want %d", got, ok, want)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Fatal("pop from empty queue returned ok")
	}
}

func TestCircularQueueOverwritesOldestWhenFull(t *testing.T) {
	q := NewCircularQueue[int](3)
	for i := 1; i <= 5; i++ {
		if err := q.Append(i); err != nil {
			t.Fatal(err)
		}
	}
	var got []int
	for v := range q.Drain() {
		got = append(got, v)
	}
	want := []int{3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("drained %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("drained %v, want %v", got, want)
		}
	}
}

func TestCircularQueueZeroCapacity(t *testing.T) {
	q := NewCircularQueue[int](0)
	if err := q.Append(1); err == nil {
		t.Fatal("append on zero-capacity queue did not error")
	}
}

func TestCircularQueueDrainEmptiesQueue(t *testing.T) {
	q := NewCircularQueue[string](2)
	_ = q.Append("a")
	_ = q.Append("b")
	for range q.Drain() {
	}
	if q.Len() != 0 {
		t.Fatalf("len = %d after drain, want 0", q.Len())
	}
}
