package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alcotheque/cellar/internal/model"
)

func TestDerive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		q    model.Quantities
		want model.Status
	}{
		{
			name: "all zero defaults to in_stock",
			q:    model.Quantities{},
			want: model.StageInStock,
		},
		{
			name: "stock wins over everything",
			q:    model.Quantities{InStock: 1, Opened: 5, Consumed: 5, Gifted: 5},
			want: model.StageInStock,
		},
		{
			name: "largest counter wins without stock",
			q:    model.Quantities{Opened: 1, Consumed: 4, Gifted: 2},
			want: model.StageConsumed,
		},
		{
			name: "tie: opened beats consumed",
			q:    model.Quantities{Opened: 3, Consumed: 3},
			want: model.StageOpened,
		},
		{
			name: "tie: consumed beats gifted",
			q:    model.Quantities{Consumed: 2, Gifted: 2},
			want: model.StageConsumed,
		},
		{
			name: "tie: opened beats gifted",
			q:    model.Quantities{Opened: 1, Gifted: 1},
			want: model.StageOpened,
		},
		{
			name: "gifted alone",
			q:    model.Quantities{Gifted: 7},
			want: model.StageGifted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Derive(tt.q)
			assert.Equal(t, tt.want, got)

			// Idempotent over the same input.
			assert.Equal(t, got, Derive(tt.q))
		})
	}
}

func TestDeriveTotality(t *testing.T) {
	t.Parallel()

	// Every combination of small counters yields exactly one valid stage.
	for inStock := int64(0); inStock <= 3; inStock++ {
		for opened := int64(0); opened <= 3; opened++ {
			for consumed := int64(0); consumed <= 3; consumed++ {
				for gifted := int64(0); gifted <= 3; gifted++ {
					q := model.Quantities{
						InStock:  inStock,
						Opened:   opened,
						Consumed: consumed,
						Gifted:   gifted,
					}
					got := Derive(q)
					assert.True(t, got.Valid(), "quantities %+v derived %q", q, got)
					if inStock > 0 {
						assert.Equal(t, model.StageInStock, got)
					}
				}
			}
		}
	}
}
