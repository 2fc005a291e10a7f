package workload

import "testing"

func TestKeyStream_Deterministic(t *testing.T) {
	a := newKeyStream(42, 3)
	b := newKeyStream(42, 3)
	for i := 0; i < 100; i++ {
		if x, y := a.next(), b.next(); x != y {
			t.Fatalf("step %d: streams diverged: %d != %d", i, x, y)
		}
	}
}

func TestKeyStream_WorkersDiffer(t *testing.T) {
	a := newKeyStream(42, 0)
	b := newKeyStream(42, 1)
	same := 0
	for i := 0; i < 100; i++ {
		if a.next() == b.next() {
			same++
		}
	}
	if same > 2 {
		t.Errorf("workers 0 and 1 produced %d equal values out of 100", same)
	}
}

func TestKeyStream_Intn(t *testing.T) {
	ks := newKeyStream(1, 0)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := ks.intn(10)
		if v < 0 || v >= 10 {
			t.Fatalf("intn(10) = %d, out of range", v)
		}
		seen[v] = true
	}
	if len(seen) != 10 {
		t.Errorf("intn(10) covered %d values in 1000 draws, want 10", len(seen))
	}
}
