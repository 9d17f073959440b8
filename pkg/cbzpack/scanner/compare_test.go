package scanner

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"2.jpg", "10.jpg", true},
		{"10.jpg", "2.jpg", false},
		{"a.png", "b.png", true},
		{"a.png", "10.png", true},
		{"10.png", "a.png", false},
		{"page1.png", "page2.png", true},
		{"page2.png", "page10.png", true},
		{"page10.png", "page2.png", false},
		{"1.jpg", "1.jpg", false},
		{"1.jpg", "1.png", true},
		{"", "a", true},
		{"a", "", false},
		{"ch1/1.png", "ch1/2.png", true},
		{"ch2/9.png", "ch10/1.png", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Less(tt.a, tt.b), "Less(%q, %q)", tt.a, tt.b)
	}
}

func TestLess_LeadingZeros(t *testing.T) {
	assert.True(t, Less("02.jpg", "10.jpg"))
	assert.True(t, Less("002.jpg", "10.jpg"))
	assert.False(t, Less("10.jpg", "002.jpg"))
}

func TestLess_SortOrder(t *testing.T) {
	names := []string{"b.png", "10.png", "a.png", "2.png", "page10.png", "page2.png"}

	sort.SliceStable(names, func(i, j int) bool { return Less(names[i], names[j]) })

	assert.Equal(t, []string{"a.png", "b.png", "page2.png", "page10.png", "2.png", "10.png"}, names)
}

func TestLess_LongNumericRuns(t *testing.T) {
	// Longer than int64; numeric comparison must not overflow.
	assert.True(t, Less("99999999999999999998.png", "99999999999999999999.png"))
}
