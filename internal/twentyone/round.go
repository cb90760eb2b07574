package twentyone

// VerdictKind says how a round ended.
type VerdictKind int

const (
	// VerdictNoWinner: every seat went bust.
	VerdictNoWinner VerdictKind = iota
	// VerdictTie: two or more seats share the highest value.
	VerdictTie
	VerdictWinner
)

func (k VerdictKind) String() string {
	switch k {
	case VerdictTie:
		return "tie"
	case VerdictWinner:
		return "winner"
	default:
		return "no_winner"
	}
}

// Verdict is the result of a round. Only VerdictWinner credits a point.
type Verdict struct {
	Kind VerdictKind
	// Winner is set for VerdictWinner.
	Winner string
	// Value is the highest value among seats that did not go bust.
	Value int
	// Leaders lists every seat holding Value, in seat order.
	Leaders []string
}

// ResolveRound picks the strictly highest hand among seats that are not bust.
func ResolveRound(seats []*Seat) Verdict {
	var v Verdict
	for _, s := range seats {
		if s.Hand.IsBust() {
			continue
		}
		switch value := s.Hand.Value(); {
		case len(v.Leaders) == 0 || value > v.Value:
			v.Value = value
			v.Leaders = []string{s.ID}
		case value == v.Value:
			v.Leaders = append(v.Leaders, s.ID)
		}
	}

	switch len(v.Leaders) {
	case 0:
		v.Kind = VerdictNoWinner
	case 1:
		v.Kind = VerdictWinner
		v.Winner = v.Leaders[0]
	default:
		v.Kind = VerdictTie
	}
	return v
}
