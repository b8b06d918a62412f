package class

// Multiplicity is the cardinality annotation next to an edge endpoint,
// e.g. "1" or "0..*". The zero value is [MultiplicityOne].
type Multiplicity uint8

const (
	MultiplicityOne Multiplicity = iota
	MultiplicityZeroOrOne
	MultiplicityOneOrMore
	MultiplicityMany
	MultiplicityN
	MultiplicityZeroToN
	MultiplicityOneToN
)

var multiplicityNames = [...]string{
	MultiplicityOne:       "1",
	MultiplicityZeroOrOne: "0..1",
	MultiplicityOneOrMore: "1..*",
	MultiplicityMany:      "*",
	MultiplicityN:         "n",
	MultiplicityZeroToN:   "0..n",
	MultiplicityOneToN:    "1..n",
}

// String returns the rendered cardinality, e.g. "1..*".
func (m Multiplicity) String() string {
	if int(m) < len(multiplicityNames) {
		return multiplicityNames[m]
	}
	return multiplicityNames[MultiplicityOne]
}

// ParseMultiplicity resolves a rendered cardinality back to its
// multiplicity. The second return value reports whether the text was
// recognized.
func ParseMultiplicity(name string) (Multiplicity, bool) {
	for m, n := range multiplicityNames {
		if name == n {
			return Multiplicity(m), true
		}
	}
	return MultiplicityOne, false
}
