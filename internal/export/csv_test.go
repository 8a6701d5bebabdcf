package export

import (
	"strings"
	"testing"
)

func TestCSV(t *testing.T) {
	got, err := CSV(
		[]string{"Semana", "Ingresos"},
		[][]string{
			{"2024-W03", "200.00"},
			{"2024-W02", "150.50"},
		},
	)
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}

	want := "Semana,Ingresos\n2024-W03,200.00\n2024-W02,150.50\n"
	if got != want {
		t.Fatalf("CSV = %q, want %q", got, want)
	}
}

func TestCSVQuotesCommas(t *testing.T) {
	got, err := CSV([]string{"Producto"}, [][]string{{"Café, molido"}})
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}
	if !strings.Contains(got, `"Café, molido"`) {
		t.Fatalf("expected quoted field, got %q", got)
	}
}
