package types

import "testing"

func TestFlavorSeasonalLabel(t *testing.T) {
	tests := []struct {
		name   string
		flavor Flavor
		want   string
	}{
		{name: "seasonal flavor", flavor: Flavor{Name: "Mango Mirage", Seasonal: true}, want: "Yes"},
		{name: "year-round flavor", flavor: Flavor{Name: "Vanilla Bliss"}, want: "No"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.flavor.SeasonalLabel(); got != tt.want {
				t.Fatalf("SeasonalLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}
