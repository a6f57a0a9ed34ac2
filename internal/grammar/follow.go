package grammar

// FollowTable is a memoized FOLLOW-set computation for one grammar: for
// every non-terminal A, the set of terminals that can appear immediately
// after A in some derivation from the start symbol.
type FollowTable struct {
	sets map[string]map[string]bool
}

// NewFollowTable computes FOLLOW(A) for every non-terminal A of g once,
// by fixed-point iteration over g's productions.
//
// Like computeFirstSets, this runs every non-terminal's set to a fixed
// point over the whole grammar at once rather than recursing per-symbol,
// so mutually-recursive productions converge correctly.
func NewFollowTable(g Grammar) FollowTable {
	ft := computeFirstSets(g)

	sets := map[string]map[string]bool{}
	for _, nt := range g.ruleOrder {
		sets[nt] = map[string]bool{}
	}
	sets[g.StartSymbol()][EndOfInput] = true

	changed := true
	for changed {
		changed = false

		for _, nt := range g.ruleOrder {
			for _, p := range g.rules[nt].Productions {
				for i, sym := range p {
					if !g.IsNonTerminal(sym) {
						continue
					}

					beta := p[i+1:]
					for t := range ft.firstOfSeq(beta) {
						if !sets[sym][t] {
							sets[sym][t] = true
							changed = true
						}
					}

					if allNullable(ft, beta) {
						for t := range sets[nt] {
							if !sets[sym][t] {
								sets[sym][t] = true
								changed = true
							}
						}
					}
				}
			}
		}
	}

	return FollowTable{sets: sets}
}

func allNullable(ft *firstTable, symbols []string) bool {
	for _, sym := range symbols {
		if !ft.nullable(sym) {
			return false
		}
	}
	return true
}

// Of returns FOLLOW(nonTerminal).
func (t FollowTable) Of(nonTerminal string) map[string]bool {
	out := map[string]bool{}
	for sym := range t.sets[nonTerminal] {
		out[sym] = true
	}
	return out
}
