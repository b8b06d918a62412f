package class

import "testing"

func TestMultiplicityString(t *testing.T) {
	cases := []struct {
		name         string
		multiplicity Multiplicity
		want         string
	}{
		{"One", MultiplicityOne, "1"},
		{"ZeroOrOne", MultiplicityZeroOrOne, "0..1"},
		{"OneOrMore", MultiplicityOneOrMore, "1..*"},
		{"Many", MultiplicityMany, "*"},
		{"N", MultiplicityN, "n"},
		{"ZeroToN", MultiplicityZeroToN, "0..n"},
		{"OneToN", MultiplicityOneToN, "1..n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.multiplicity.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
	if len(cases) != len(multiplicityNames) {
		t.Errorf("covered %d multiplicities, want %d", len(cases), len(multiplicityNames))
	}
}

func TestParseMultiplicity(t *testing.T) {
	for m, name := range multiplicityNames {
		got, ok := ParseMultiplicity(name)
		if !ok {
			t.Errorf("ParseMultiplicity(%q) not recognized", name)
			continue
		}
		if got != Multiplicity(m) {
			t.Errorf("ParseMultiplicity(%q) = %v, want %v", name, got, Multiplicity(m))
		}
	}

	t.Run("Unknown", func(t *testing.T) {
		if _, ok := ParseMultiplicity("0..*"); ok {
			t.Error("ParseMultiplicity(\"0..*\") recognized, want rejection")
		}
	})
}
