package grammar

import (
	"fmt"
	"strings"
)

// LR0Item is a single LR(0) item: a production with a dot somewhere in its
// body, splitting it into the symbols already matched (Left) and the
// symbols still expected (Right).
type LR0Item struct {
	NonTerminal string
	Left        []string
	Right       []string
}

func (lr0 LR0Item) Equal(o any) bool {
	other, ok := o.(LR0Item)
	if !ok {
		otherPtr, ok := o.(*LR0Item)
		if !ok || otherPtr == nil {
			return false
		}
		other = *otherPtr
	}

	if lr0.NonTerminal != other.NonTerminal {
		return false
	} else if len(lr0.Left) != len(other.Left) {
		return false
	} else if len(lr0.Right) != len(other.Right) {
		return false
	}

	for i := range lr0.Left {
		if lr0.Left[i] != other.Left[i] {
			return false
		}
	}
	for i := range lr0.Right {
		if lr0.Right[i] != other.Right[i] {
			return false
		}
	}

	return true
}

func (item LR0Item) String() string {
	nonTermPhrase := ""
	if item.NonTerminal != "" {
		nonTermPhrase = fmt.Sprintf("%s -> ", item.NonTerminal)
	}

	left := strings.Join(item.Left, " ")
	right := strings.Join(item.Right, " ")

	if len(left) > 0 {
		left = left + " "
	}
	if len(right) > 0 {
		right = " " + right
	}

	return fmt.Sprintf("%s%s.%s", nonTermPhrase, left, right)
}

// LR1Item is an LR0Item with an attached terminal lookahead symbol.
type LR1Item struct {
	LR0Item
	Lookahead string
}

func (lr1 LR1Item) Equal(o any) bool {
	other, ok := o.(LR1Item)
	if !ok {
		otherPtr, ok := o.(*LR1Item)
		if !ok || otherPtr == nil {
			return false
		}
		other = *otherPtr
	}

	if !lr1.LR0Item.Equal(other.LR0Item) {
		return false
	}
	return lr1.Lookahead == other.Lookahead
}

func (lr1 LR1Item) Copy() LR1Item {
	cp := LR1Item{}
	cp.NonTerminal = lr1.NonTerminal
	cp.Left = make([]string, len(lr1.Left))
	copy(cp.Left, lr1.Left)
	cp.Right = make([]string, len(lr1.Right))
	copy(cp.Right, lr1.Right)
	cp.Lookahead = lr1.Lookahead
	return cp
}

// Advance returns the item obtained by moving the dot one position to the
// right, past its next expected symbol. It panics if Right is empty.
func (lr1 LR1Item) Advance() LR1Item {
	if len(lr1.Right) == 0 {
		panic("cannot advance an item with the dot already at the end")
	}
	next := lr1.Copy()
	next.Left = append(append([]string{}, lr1.Left...), lr1.Right[0])
	next.Right = append([]string{}, lr1.Right[1:]...)
	return next
}

func (item LR1Item) String() string {
	return fmt.Sprintf("%s, %s", item.LR0Item.String(), item.Lookahead)
}
