package plane

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeTime(t *testing.T) {
	tests := []struct {
		name    string
		c       complex128
		limit   uint
		want    uint
		escaped bool
	}{
		{"origin is a member", 0, 1000, 0, false},
		{"period two", -1, 1000, 0, false},
		{"tip of the needle", -2, 1000, 0, false},
		{"i cycles", complex(0, 1), 1000, 0, false},
		{"one escapes at three", 1, 10, 3, true},
		{"one needs four iterations", 1, 3, 0, false},
		{"far point escapes after first step", complex(-2, 1), 10, 1, true},
		{"1+i", complex(1, 1), 10, 2, true},
		{"-1+i", complex(-1, 1), 10, 3, true},
		{"zero limit never escapes", 100, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := EscapeTime(tt.c, tt.limit)
			assert.Equal(t, tt.escaped, ok)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestSample(t *testing.T) {
	r := Rect{UpperLeft: complex(-2, 1), LowerRight: complex(2, -1)}
	got := Sample(image.Pt(4, 2), r, 10)

	require.Len(t, got, 2)
	assert.Equal(t, []Escape{{1, true}, {3, true}, {0, false}, {2, true}}, got[0])
	assert.Equal(t, []Escape{{0, false}, {0, false}, {0, false}, {3, true}}, got[1])
}

func TestSample_Empty(t *testing.T) {
	assert.Empty(t, Sample(image.Pt(0, 0), Rect{}, 10))
	assert.Empty(t, Sample(image.Pt(-3, -3), Rect{}, 10))
}
