package grammar

// firstTable holds FIRST(X) for every symbol X of g (terminals trivially,
// non-terminals by fixed-point iteration over productions, see
// computeFirstSets) plus the set of non-terminals that produce epsilon.
//
// Every non-terminal's FIRST set is run to a fixed point over the whole
// grammar at once, rather than recursing per-symbol with a same-symbol
// guard — a per-symbol recursion guard only catches direct self-reference
// and can loop forever on mutual left recursion (A -> B..., B -> A...); the
// worklist form terminates and is correct regardless of how the recursion
// is shaped.
type firstTable struct {
	sets    map[string]map[string]bool
	epsilon map[string]bool
}

// FirstTable is a memoized FIRST-set computation for one grammar. Build one
// with NewFirstTable and reuse it across an entire closure/canonical
// collection construction instead of recomputing FIRST sets per item.
type FirstTable struct {
	ft *firstTable
}

// NewFirstTable computes FIRST(X) for every symbol X of g once.
func NewFirstTable(g Grammar) FirstTable {
	return FirstTable{ft: computeFirstSets(g)}
}

// OfSequenceWithLookahead is the memoized form of
// FirstOfSequenceWithLookahead.
func (t FirstTable) OfSequenceWithLookahead(beta []string, a string) map[string]bool {
	return t.ft.firstOfSeqWithLookahead(beta, a)
}

func computeFirstSets(g Grammar) *firstTable {
	ft := &firstTable{
		sets:    map[string]map[string]bool{},
		epsilon: map[string]bool{},
	}

	for _, t := range g.termOrder {
		ft.sets[t] = map[string]bool{t: true}
	}
	ft.sets[EndOfInput] = map[string]bool{EndOfInput: true}

	for _, nt := range g.ruleOrder {
		ft.sets[nt] = map[string]bool{}
	}

	changed := true
	for changed {
		changed = false
		for _, nt := range g.ruleOrder {
			for _, p := range g.rules[nt].Productions {
				if len(p) == 0 {
					if !ft.epsilon[nt] {
						ft.epsilon[nt] = true
						changed = true
					}
					continue
				}

				allNullableSoFar := true
				for _, sym := range p {
					for t := range ft.sets[sym] {
						if !ft.sets[nt][t] {
							ft.sets[nt][t] = true
							changed = true
						}
					}
					if !ft.nullable(sym) {
						allNullableSoFar = false
						break
					}
				}
				if allNullableSoFar && !ft.epsilon[nt] {
					ft.epsilon[nt] = true
					changed = true
				}
			}
		}
	}

	return ft
}

func (ft *firstTable) nullable(sym string) bool {
	return ft.epsilon[sym]
}

func (ft *firstTable) of(sym string) map[string]bool {
	return ft.sets[sym]
}

// FirstOfSequence computes FIRST(symbols), the set of terminals that can
// begin a string derived from symbols. If the entire sequence is nullable,
// the result additionally depends on lookahead: callers needing FIRST(βa)
// for item-closure purposes should use FirstOfSequenceWithLookahead.
func FirstOfSequence(g Grammar, symbols []string) map[string]bool {
	ft := computeFirstSets(g)
	return ft.firstOfSeq(symbols)
}

func (ft *firstTable) firstOfSeq(symbols []string) map[string]bool {
	result := map[string]bool{}
	for _, sym := range symbols {
		for t := range ft.of(sym) {
			result[t] = true
		}
		if !ft.nullable(sym) {
			break
		}
	}
	return result
}

// FirstOfSequenceWithLookahead computes FIRST(β a): the FIRST set of β
// followed by the terminal a if β is fully nullable (including if β is
// empty). This is exactly the computation the LR(1) closure step needs for
// propagating lookaheads into newly generated items.
func FirstOfSequenceWithLookahead(g Grammar, beta []string, a string) map[string]bool {
	ft := computeFirstSets(g)
	return ft.firstOfSeqWithLookahead(beta, a)
}

func (ft *firstTable) firstOfSeqWithLookahead(beta []string, a string) map[string]bool {
	result := map[string]bool{}
	allNullable := true
	for _, sym := range beta {
		for t := range ft.of(sym) {
			result[t] = true
		}
		if !ft.nullable(sym) {
			allNullable = false
			break
		}
	}
	if allNullable {
		result[a] = true
	}
	return result
}
