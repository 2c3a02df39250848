package paging

import (
	"math"
	"net/http/httptest"
	"testing"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate_PastEndIsEmpty(t *testing.T) {
	p := Paginate(seq(3), 2, 5)
	assertEq(t, len(p.Items), 0)
	assertEq(t, p.Total, 3)
	assertEq(t, p.Number, 2)
}

func TestPaginate_HugePageNumbersAreEmpty(t *testing.T) {
	for _, tc := range []struct{ number, size int }{
		{math.MaxInt, 2},
		{1<<62 + 1, 4},
		{2, math.MaxInt},
	} {
		p := Paginate(seq(3), tc.number, tc.size)
		if len(p.Items) != 0 {
			t.Fatalf("page %d size %d: got items %v", tc.number, tc.size, p.Items)
		}
		assertEq(t, p.Total, 3)
		assertEq(t, p.Number, tc.number)
	}

	p := Paginate(seq(3), 1, math.MaxInt)
	assertEq(t, len(p.Items), 3)
	assertEq(t, p.Pages(), 1)
}

func TestPaginate_ClipsLastPage(t *testing.T) {
	p := Paginate(seq(12), 3, 5)
	assertEq(t, len(p.Items), 2)
	assertEq(t, p.Items[0], 11)
	assertEq(t, p.Items[1], 12)
	assertEq(t, p.Pages(), 3)
}

func TestPaginate_CoverageReconstructsInput(t *testing.T) {
	for _, n := range []int{0, 1, 4, 5, 6, 23} {
		for _, size := range []int{1, 2, 5, 7} {
			items := seq(n)
			first := Paginate(items, 1, size)
			var got []int
			for page := 1; page <= first.Pages(); page++ {
				got = append(got, Paginate(items, page, size).Items...)
			}
			if len(got) != n {
				t.Fatalf("n=%d size=%d: got %d items", n, size, len(got))
			}
			for i := range got {
				if got[i] != items[i] {
					t.Fatalf("n=%d size=%d: item %d = %d", n, size, i, got[i])
				}
			}
		}
	}
}

func TestPaginate_Idempotent(t *testing.T) {
	items := seq(9)
	a := Paginate(items, 2, 4)
	b := Paginate(items, 2, 4)
	assertEq(t, len(a.Items), len(b.Items))
	for i := range a.Items {
		assertEq(t, a.Items[i], b.Items[i])
	}
}

func TestPaginate_BadArgumentsFallBack(t *testing.T) {
	p := Paginate(seq(8), 0, 0)
	assertEq(t, p.Number, 1)
	assertEq(t, p.Size, DefaultPageSize)
	assertEq(t, len(p.Items), DefaultPageSize)
}

func TestFromQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/x?page=3&size=10", nil)
	n, s := FromQuery(r, 5)
	assertEq(t, n, 3)
	assertEq(t, s, 10)

	r = httptest.NewRequest("GET", "/x?page=abc&size=-2", nil)
	n, s = FromQuery(r, 5)
	assertEq(t, n, 1)
	assertEq(t, s, 5)

	r = httptest.NewRequest("GET", "/x?page=9223372036854775807&size=100000", nil)
	n, s = FromQuery(r, 5)
	assertEq(t, n, math.MaxInt)
	assertEq(t, s, MaxPageSize)
}

func assertEq[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("got %v want %v", got, want)
	}
}
