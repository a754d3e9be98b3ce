package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total, pageSize, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{99, 10, 10},
		{100, 10, 10},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, TotalPages(c.total, c.pageSize), "total=%d pageSize=%d", c.total, c.pageSize)
	}
}

func TestTotalPages_CeilingProperty(t *testing.T) {
	for total := 0; total <= 50; total++ {
		for pageSize := 1; pageSize <= 7; pageSize++ {
			want := (total + pageSize - 1) / pageSize
			assert.Equal(t, want, TotalPages(total, pageSize), "total=%d pageSize=%d", total, pageSize)
		}
	}
}

func TestNewWindow(t *testing.T) {
	w, err := NewWindow(2, 10)
	require.NoError(t, err)
	assert.Equal(t, Window{Offset: 20, Limit: 10}, w)

	_, err = NewWindow(0, 0)
	assert.ErrorIs(t, err, ErrInvalidPageSize)
	_, err = NewWindow(0, -3)
	assert.ErrorIs(t, err, ErrInvalidPageSize)
	_, err = NewWindow(-1, 10)
	assert.ErrorIs(t, err, ErrInvalidPageIndex)
}

func TestSlice(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	page0 := Slice(items, Window{Offset: 0, Limit: 10})
	require.Len(t, page0, 10)
	assert.Equal(t, 0, page0[0])

	page2 := Slice(items, Window{Offset: 20, Limit: 10})
	require.Len(t, page2, 5)
	assert.Equal(t, 24, page2[4])
}

func TestSlice_PastTheEnd(t *testing.T) {
	items := []int{1, 2, 3}
	for page := 1; page <= 4; page++ {
		w, err := NewWindow(page, 3)
		require.NoError(t, err)
		assert.Empty(t, Slice(items, w), "page=%d", page)
	}
}

func TestDefaultSort(t *testing.T) {
	assert.Equal(t, Sort{Field: "id"}, DefaultSort())
}
