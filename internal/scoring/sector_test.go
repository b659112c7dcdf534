package scoring

import "testing"

func TestInferSector(t *testing.T) {
	cases := []struct {
		title string
		want  string
		found bool
	}{
		{"New software release from vendor", "technology", true},
		{"Pharma giant wins drug approval", "healthcare", true},
		{"Regional bank posts record quarter", "finance", true},
		{"Oil prices surge on supply cut", "energy", true},
		{"Retail sales beat forecasts", "retail", true},
		{"Automaker recalls trucks", "automotive", true},
		{"Weather delays rocket launch", "", false},
	}
	for _, c := range cases {
		got, ok := inferSector(c.title, "")
		if ok != c.found || got != c.want {
			t.Fatalf("%q: expected (%q,%v), got (%q,%v)", c.title, c.want, c.found, got, ok)
		}
	}
}

func TestInferSectorFirstMatchWins(t *testing.T) {
	// Contains both a healthcare and a finance keyword; the table orders
	// technology, healthcare, finance, so healthcare must win.
	got, ok := inferSector("Biotech firm secures bank financing", "")
	if !ok || got != "healthcare" {
		t.Fatalf("expected healthcare, got %q (ok=%v)", got, ok)
	}
}

func TestInferSectorUsesDescription(t *testing.T) {
	got, ok := inferSector("Quarterly update", "The company expanded its semiconductor fab")
	if !ok || got != "technology" {
		t.Fatalf("expected technology, got %q (ok=%v)", got, ok)
	}
}
