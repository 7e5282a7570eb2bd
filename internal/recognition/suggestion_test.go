package recognition

import (
	"errors"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alcotheque/cellar/internal/model"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		raw       Suggestion
		want      Suggestion
		wantField string
	}{
		{
			name: "trims and lowercases",
			raw: Suggestion{
				Name: "  Talisker 10  ",
				Type: model.SpiritType(" Whisky "),
			},
			want: Suggestion{Name: "Talisker 10", Type: model.SpiritWhisky},
		},
		{
			name: "rounds estimated value",
			raw: Suggestion{
				Name:           "Clos des Mouches",
				Type:           model.SpiritRedWine,
				Year:           lo.ToPtr(int32(2019)),
				EstimatedValue: lo.ToPtr(decimal.RequireFromString("74.60")),
			},
			want: Suggestion{
				Name:           "Clos des Mouches",
				Type:           model.SpiritRedWine,
				Year:           lo.ToPtr(int32(2019)),
				EstimatedValue: lo.ToPtr(decimal.RequireFromString("75")),
			},
		},
		{
			name:      "missing name",
			raw:       Suggestion{Type: model.SpiritGin},
			wantField: "name",
		},
		{
			name:      "unknown type",
			raw:       Suggestion{Name: "Mystery", Type: model.SpiritType("moonshine")},
			wantField: "type",
		},
		{
			name: "future year",
			raw: Suggestion{
				Name: "Futur",
				Type: model.SpiritChampagne,
				Year: lo.ToPtr(int32(2025)),
			},
			wantField: "year",
		},
		{
			name: "year before floor",
			raw: Suggestion{
				Name: "Relic",
				Type: model.SpiritCognac,
				Year: lo.ToPtr(int32(1850)),
			},
			wantField: "year",
		},
		{
			name: "non positive value",
			raw: Suggestion{
				Name:           "Freebie",
				Type:           model.SpiritVodka,
				EstimatedValue: lo.ToPtr(decimal.Zero),
			},
			wantField: "estimated_value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Normalize(tt.raw, now)
			if tt.wantField != "" {
				require.Error(t, err)
				assert.Error(t, Validate(tt.raw, now))
				assert.ErrorIs(t, err, model.ErrInvalidArgument)

				var fe *FieldError
				require.True(t, errors.As(err, &fe))
				assert.Equal(t, tt.wantField, fe.Field)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want.Name, got.Name)
			assert.Equal(t, tt.want.Type, got.Type)
			assert.Equal(t, tt.want.Year, got.Year)
			if tt.want.EstimatedValue != nil {
				require.NotNil(t, got.EstimatedValue)
				assert.True(t, got.EstimatedValue.Equal(*tt.want.EstimatedValue))
			}
		})
	}
}
