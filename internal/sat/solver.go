package sat

// Solver holds the clause database, watch index, and partial
// assignment for a CNF formula over a fixed number of variables. It is
// single-threaded and not reentrant: concurrent search branches are
// expressed as independent clones, never as shared mutable state.
type Solver struct {
	n int

	// model[v] is the current assignment of variable v.
	model []TruthValue

	// units is U: the ordered log of literals asserted at the top
	// level or propagated, used both as the solution and as the seed
	// queue of every propagation pass.
	units []Literal

	// clauses holds every clause with two or more literals added so
	// far. Unit and empty clauses never reach this arena; they are
	// resolved directly against the model in AddClause.
	clauses []*Clause

	// watchers[l] lists the clauses currently watching literal l.
	watchers [][]*Clause

	// conflictVars holds the variables of the clause that produced
	// the most recent CONFLICT, consumed by the branching heuristic.
	conflictVars []Variable
}

// NewSolver constructs a solver over n variables, all unassigned.
func NewSolver(n int) *Solver {
	return &Solver{
		n:        n,
		model:    make([]TruthValue, n),
		watchers: make([][]*Clause, 2*n),
	}
}

// NumVariables returns the number of variables the solver was built
// with.
func (s *Solver) NumVariables() int {
	return s.n
}

func (s *Solver) val(v Variable) TruthValue {
	if v < 0 || int(v) >= s.n {
		panic("sat: variable out of range")
	}
	return s.model[v]
}

func (s *Solver) satisfied(l Literal) bool {
	v := s.val(l.Var())
	if v == Undefined {
		return false
	}
	if l.Sign() > 0 {
		return v == True
	}
	return v == False
}

func (s *Solver) falsified(l Literal) bool {
	return s.satisfied(l.Negate())
}

// assign asserts l. It fails if l is already falsified, succeeds
// without mutation if l is already satisfied, and otherwise records
// the assignment and appends l to U.
func (s *Solver) assign(l Literal) bool {
	if s.falsified(l) {
		return false
	}
	if s.satisfied(l) {
		return true
	}
	v := l.Var()
	if l.Sign() > 0 {
		s.model[v] = True
	} else {
		s.model[v] = False
	}
	s.units = append(s.units, l)
	return true
}

// GetUnitLiterals returns a copy of the current top-level assignment
// log U.
func (s *Solver) GetUnitLiterals() []Literal {
	out := make([]Literal, len(s.units))
	copy(out, s.units)
	return out
}

func (s *Solver) watch(c *Clause, l Literal) {
	s.watchers[l] = append(s.watchers[l], c)
}

// AddClause ingests clause. It reports false only when the addition
// has definitively proven the formula unsatisfiable (an empty clause,
// or a clause whose literals are all already falsified); it reports
// true otherwise, including when the clause is subsumed by the
// current assignment. AddClause never runs full propagation: the
// search driver runs Propagate at branch points.
func (s *Solver) AddClause(literals []Literal) bool {
	if len(literals) == 0 {
		return false
	}

	simplified := make([]Literal, 0, len(literals))
	for _, l := range literals {
		if s.satisfied(l) {
			return true // subsumed by the current partial assignment
		}
		if !s.falsified(l) {
			simplified = append(simplified, l)
		}
	}

	if len(simplified) == 0 {
		return false
	}

	if len(simplified) == 1 {
		u := simplified[0]
		if s.falsified(u) {
			return false
		}
		return s.assign(u)
	}

	c := newClause(simplified)
	s.clauses = append(s.clauses, c)

	w0 := c.WatcherLiteral(0)
	w1 := c.WatcherLiteral(1)
	s.watch(c, w0)
	if w1 != w0 {
		s.watch(c, w1)
	}

	return true
}

// conflictVariables records every variable of c as the conflict record
// consumed by the branching heuristic's OnConflict hook.
func conflictVariables(c *Clause) []Variable {
	vars := make([]Variable, c.Size())
	for i, l := range c.Literals() {
		vars[i] = l.Var()
	}
	return vars
}

// Propagate drains a queue Q seeded with the current U, asserting each
// literal and walking the watch lists of its negation to find forced
// literals or detect a conflict. It returns false (CONFLICT) the
// moment a clause has both watchers falsified or an assertion fails,
// recording that clause's variables for the branching heuristic.
func (s *Solver) Propagate() bool {
	q := NewQueue[Literal](len(s.units) + 8)
	for _, l := range s.units {
		q.Push(l)
	}

	for !q.IsEmpty() {
		l := q.Pop()
		if !s.assign(l) {
			return false
		}

		neg := l.Negate()
		bucket := s.watchers[neg]

		i := 0
		for i < len(bucket) {
			c := bucket[i]

			rank := c.WatcherRank(neg)
			if rank == noWatcher {
				// Stale entry: this clause no longer watches neg.
				i++
				continue
			}

			otherRank := 1 - rank
			other := c.WatcherLiteral(otherRank)
			if s.satisfied(other) {
				i++
				continue
			}

			replaced := false
			for _, cand := range c.Literals() {
				if cand == other || cand == neg {
					continue
				}
				if !s.falsified(cand) {
					c.SetWatcher(cand, rank)
					bucket[i] = bucket[len(bucket)-1]
					bucket = bucket[:len(bucket)-1]
					s.watchers[neg] = bucket
					s.watch(c, cand)
					replaced = true
					break
				}
			}
			if replaced {
				continue // a new clause now occupies position i
			}

			if s.falsified(other) {
				s.conflictVars = conflictVariables(c)
				return false
			}

			if !s.assign(other) {
				s.conflictVars = conflictVariables(c)
				return false
			}
			q.Push(other)
			i++
		}
	}

	return true
}

// Rebase returns a fresh vector of clauses equivalent to the current
// formula under the model: falsified literals are dropped from every
// clause, satisfied clauses are discarded entirely, duplicate reduced
// clauses are collapsed, and one unit clause is appended per literal
// in U.
func (s *Solver) Rebase() []*Clause {
	var out []*Clause

	for _, c := range s.clauses {
		sat := false
		var lits []Literal
		for _, l := range c.Literals() {
			if s.satisfied(l) {
				sat = true
				break
			}
			if !s.falsified(l) {
				lits = append(lits, l)
			}
		}
		if sat {
			continue
		}

		reduced := newClause(lits)
		dup := false
		for _, existing := range out {
			if existing.SameLiterals(reduced) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, reduced)
		}
	}

	for _, l := range s.units {
		out = append(out, newClause([]Literal{l}))
	}

	return out
}

// Clone returns an independent solver with the same number of
// variables, a copy of the model and unit log, an independent copy of
// every clause (literals and watcher indices), and a watch index
// rebuilt from the cloned clauses. Mutating either solver leaves the
// other untouched.
func (s *Solver) Clone() *Solver {
	clone := &Solver{
		n:        s.n,
		model:    append([]TruthValue(nil), s.model...),
		units:    append([]Literal(nil), s.units...),
		clauses:  make([]*Clause, len(s.clauses)),
		watchers: make([][]*Clause, 2*s.n),
	}

	for i, c := range s.clauses {
		clone.clauses[i] = c.clone()
	}

	for _, c := range clone.clauses {
		w0 := c.WatcherLiteral(0)
		w1 := c.WatcherLiteral(1)
		clone.watchers[w0] = append(clone.watchers[w0], c)
		if w1 != w0 {
			clone.watchers[w1] = append(clone.watchers[w1], c)
		}
	}

	return clone
}
