package mathhelp

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPow2(t *testing.T) {
	tests := []struct {
		n    uint
		want bool
	}{
		{n: 0, want: false},
		{n: 1, want: true},
		{n: 2, want: true},
		{n: 3, want: false},
		{n: 8, want: true},
		{n: 12, want: false},
		{n: 1 << 32, want: true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%b", tt.n), func(t *testing.T) {
			assert.Equal(t, tt.want, IsPow2(tt.n))
		})
	}
}

func TestLog2(t *testing.T) {
	assert.Equal(t, uint(0), Log2(1))
	assert.Equal(t, uint(3), Log2(8))
	assert.Equal(t, uint(3), Log2(9))
	assert.Equal(t, uint(32), Log2(1<<32))
	for n := uint(0); n < 20; n++ {
		assert.Equal(t, n, Log2(Pow2(n)))
	}
}

func TestAbsDiff(t *testing.T) {
	assert.Equal(t, 4, AbsDiff(1, 5))
	assert.Equal(t, 4, AbsDiff(5, 1))
	assert.Equal(t, 0, AbsDiff(3, 3))
}
