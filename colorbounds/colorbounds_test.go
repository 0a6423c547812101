package colorbounds

import "testing"

func TestDefault(t *testing.T) {
	b := Default()
	want := [4]int32{8, 9, 10, 11}
	for i, w := range want {
		if got := b.Get(int32(i + 1)); got != w {
			t.Errorf("Get(%d) = %d, want %d", i+1, got, w)
		}
	}
}

func TestGetOutOfRangeFallsBackToZero(t *testing.T) {
	b := Default()
	for _, idx := range []int32{0, -1, 5, 100} {
		if got := b.Get(idx); got != 0 {
			t.Errorf("Get(%d) = %d, want 0", idx, got)
		}
	}
}

func TestNewRejectsNonAscending(t *testing.T) {
	cases := [][4]int32{
		{10, 9, 11, 12},
		{4, 3, 2, 1},
	}
	for _, c := range cases {
		if _, err := New(c[0], c[1], c[2], c[3]); err == nil {
			t.Errorf("New(%v) returned nil error, want non-nil", c)
		}
	}
}

func TestNewAcceptsNonDecreasing(t *testing.T) {
	b, err := New(1, 2, 2, 4)
	if err != nil {
		t.Fatalf("New(1,2,2,4) returned error: %v", err)
	}
	if got := b.Get(3); got != 2 {
		t.Errorf("Get(3) = %d, want 2", got)
	}
}
