package sat

import (
	"sort"
	"strings"
)

// noWatcher is the sentinel rank returned when a literal is not
// currently one of a clause's two watchers.
const noWatcher = -1

// Clause is an ordered sequence of literals plus two watcher indices
// pointing into it. The literal content is fixed at construction;
// only the watcher indices mutate afterwards.
type Clause struct {
	literals []Literal
	w0, w1   int
}

// newClause builds a clause over literals, fixing its watchers to
// positions 0 and 1 (or both to 0 for clauses with fewer than two
// literals). literals is copied so the clause owns its storage.
func newClause(literals []Literal) *Clause {
	c := &Clause{literals: append([]Literal(nil), literals...)}
	if len(c.literals) >= 2 {
		c.w0, c.w1 = 0, 1
	}
	return c
}

// clone returns an independent copy of c: separate literal storage and
// independently mutable watcher indices.
func (c *Clause) clone() *Clause {
	return &Clause{
		literals: append([]Literal(nil), c.literals...),
		w0:       c.w0,
		w1:       c.w1,
	}
}

// Size returns the number of literals in the clause.
func (c *Clause) Size() int {
	return len(c.literals)
}

// Empty reports whether the clause has no literals.
func (c *Clause) Empty() bool {
	return len(c.literals) == 0
}

// At returns the literal at position i in declaration order.
func (c *Clause) At(i int) Literal {
	return c.literals[i]
}

// Literals returns the clause's literals in declaration order. The
// returned slice must not be mutated by the caller.
func (c *Clause) Literals() []Literal {
	return c.literals
}

// WatcherRank returns 0 if the first watcher currently points to l, 1
// for the second watcher, or noWatcher if l is not currently watched.
func (c *Clause) WatcherRank(l Literal) int {
	if len(c.literals) == 0 {
		return noWatcher
	}
	switch l {
	case c.literals[c.w0]:
		return 0
	case c.literals[c.w1]:
		return 1
	default:
		return noWatcher
	}
}

// WatcherLiteral returns the literal currently at watcher rank.
// Requires a non-empty clause.
func (c *Clause) WatcherLiteral(rank int) Literal {
	if len(c.literals) == 0 {
		panic("sat: WatcherLiteral called on an empty clause")
	}
	if rank == 0 {
		return c.literals[c.w0]
	}
	return c.literals[c.w1]
}

// SetWatcher points watcher rank at the first occurrence of l in the
// clause's literals, returning false without mutation if l is absent.
func (c *Clause) SetWatcher(l Literal, rank int) bool {
	for i, lit := range c.literals {
		if lit == l {
			if rank == 0 {
				c.w0 = i
			} else {
				c.w1 = i
			}
			return true
		}
	}
	return false
}

// SameLiterals reports whether c and other have the same literal
// multiset, used only by Rebase to deduplicate reduced clauses.
func (c *Clause) SameLiterals(other *Clause) bool {
	if len(c.literals) != len(other.literals) {
		return false
	}
	a := append([]Literal(nil), c.literals...)
	b := append([]Literal(nil), other.literals...)
	sort.Slice(a, func(i, j int) bool { return a[i] < a[j] })
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
