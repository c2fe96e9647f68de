package normalize

import "testing"

func TestCPUIndex(t *testing.T) {
	cases := []struct {
		req, max, want int
	}{
		{0, 4, 0},
		{3, 4, 3},
		{4, 4, 0},
		{-1, 4, 0},
		{2, 0, 0},
	}
	for _, tc := range cases {
		if got := CPUIndex(tc.req, tc.max); got != tc.want {
			t.Errorf("CPUIndex(%d, %d) = %d, want %d", tc.req, tc.max, got, tc.want)
		}
	}
}

func TestCPUPair(t *testing.T) {
	cases := []struct {
		p, c, max    int
		wantP, wantC int
	}{
		{0, 1, 4, 0, 1},
		{2, 2, 4, 2, 3},
		{3, 9, 4, 3, 0},
		{0, 0, 1, 0, 0},
	}
	for _, tc := range cases {
		p, c := CPUPair(tc.p, tc.c, tc.max)
		if p != tc.wantP || c != tc.wantC {
			t.Errorf("CPUPair(%d, %d, %d) = %d, %d; want %d, %d",
				tc.p, tc.c, tc.max, p, c, tc.wantP, tc.wantC)
		}
	}
}
