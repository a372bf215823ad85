package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name       string
		in         ListParams
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults applied", in: ListParams{}, wantLimit: 20, wantOffset: 0},
		{name: "explicit values kept", in: ListParams{Limit: 50, Offset: 40}, wantLimit: 50, wantOffset: 40},
		{name: "limit clamped to maximum", in: ListParams{Limit: 500}, wantLimit: 100, wantOffset: 0},
		{name: "negative values reset", in: ListParams{Limit: -1, Offset: -5}, wantLimit: 20, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Normalize()
			assert.Equal(t, tt.wantLimit, tt.in.Limit)
			assert.Equal(t, tt.wantOffset, tt.in.Offset)
		})
	}
}
