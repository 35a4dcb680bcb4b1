package utils

import "testing"

func TestCircularQueueAppendPop(t *testing.T) {
	q := NewCircularQueue[int](3)
	for i := 1; i <= 3; i++ {
		if err := q.Append(i); err != nil {
			t.Fatalf("unexpected append error: %v", err)
		}
	}
	if q.Len() != 3 || q.Cap() != 3 {
		t.Fatalf("expected full queue of capacity 3, got len=%d cap=%d", q.Len(), q.Cap())
	}

	for want := 1; want <= 3; want++ {
		got, ok := q.Pop()
		if !ok || got != want {
			t.Fatalf("expected pop %d, got %d (ok=%v)", want, got, ok)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Fatal("expected empty queue")
	}
}

func TestCircularQueueOverwritesOldest(t *testing.T) {
	q := NewCircularQueue[int](3)
	for i := 1; i <= 5; i++ {
		_ = q.Append(i)
	}

	if q.Len() != 3 {
		t.Fatalf("expected len 3 after overflow, got %d", q.Len())
	}
	got := make([]int, 0, 3)
	for v := range q.Iter() {
		got = append(got, v)
	}
	want := []int{3, 4, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if latest, ok := q.Latest(); !ok || latest != 5 {
		t.Fatalf("expected latest 5, got %d (ok=%v)", latest, ok)
	}
}

func TestCircularQueueGet(t *testing.T) {
	q := NewCircularQueue[string](2)
	_ = q.Append("a")
	_ = q.Append("b")

	if v, err := q.Get(0); err != nil || v != "a" {
		t.Fatalf("expected oldest 'a', got %q (err=%v)", v, err)
	}
	if v, err := q.Get(1); err != nil || v != "b" {
		t.Fatalf("expected 'b', got %q (err=%v)", v, err)
	}
	if _, err := q.Get(2); err == nil {
		t.Fatal("expected out of range error")
	}
}

func TestCircularQueueZeroCapacity(t *testing.T) {
	q := NewCircularQueue[int](0)
	if err := q.Append(1); err == nil {
		t.Fatal("expected append on zero-capacity queue to fail")
	}
}

func TestCircularQueueClear(t *testing.T) {
	q := NewCircularQueue[int](3)
	_ = q.Append(1)
	_ = q.Append(2)
	q.Clear()

	if q.Len() != 0 {
		t.Fatalf("expected empty queue after clear, got %d", q.Len())
	}
	_ = q.Append(7)
	if v, ok := q.Latest(); !ok || v != 7 {
		t.Fatalf("expected queue usable after clear, got %d (ok=%v)", v, ok)
	}
}
