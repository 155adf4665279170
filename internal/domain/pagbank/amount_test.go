package pagbank

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCentavos(t *testing.T) {
	cases := []struct {
		name  string
		valor string
		want  int64
	}{
		{"integer value", "100", 10000},
		{"two decimals", "100.00", 10000},
		{"single centavo", "0.01", 1},
		{"zero", "0", 0},
		{"half rounds up", "19.995", 2000},
		{"half rounds up at centavo boundary", "10.005", 1001},
		{"below half rounds down", "10.004", 1000},
		{"typical price", "149.90", 14990},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			valor, err := decimal.NewFromString(tc.valor)
			if err != nil {
				t.Fatalf("bad test input: %v", err)
			}
			got, err := Centavos(valor)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Centavos(%s) = %d, want %d", tc.valor, got, tc.want)
			}
		})
	}

	t.Run("negative rejected", func(t *testing.T) {
		_, err := Centavos(decimal.NewFromFloat(-0.01))
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})
}
