package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddClauseUnitSolvesImmediately(t *testing.T) {
	s := NewSolver(1)
	x0 := Variable(0)

	ok := s.AddClause([]Literal{PositiveLiteral(x0)})
	require.True(t, ok)
	require.True(t, s.Solve())

	assert.Contains(t, s.GetUnitLiterals(), PositiveLiteral(x0))
}

func TestAddClauseContradictoryUnitsFails(t *testing.T) {
	s := NewSolver(1)
	x0 := Variable(0)

	require.True(t, s.AddClause([]Literal{PositiveLiteral(x0)}))
	ok := s.AddClause([]Literal{NegativeLiteral(x0)})

	assert.False(t, ok)
}

func TestAddClauseEmptyClauseFails(t *testing.T) {
	s := NewSolver(3)
	assert.False(t, s.AddClause(nil))
}

func TestPropagationForcesResolvent(t *testing.T) {
	s := NewSolver(2)
	x0, x1 := Variable(0), Variable(1)

	require.True(t, s.AddClause([]Literal{PositiveLiteral(x0), PositiveLiteral(x1)}))
	require.True(t, s.AddClause([]Literal{NegativeLiteral(x0), PositiveLiteral(x1)}))
	require.True(t, s.AddClause([]Literal{PositiveLiteral(x0)}))

	require.True(t, s.Propagate())
	assert.Equal(t, True, s.val(x1))
}

func TestSolveIsSoundOnSmallFormula(t *testing.T) {
	// (x0 v x1) & (!x0 v x2) & (!x1 v !x2)
	clauses := [][]Literal{
		{PositiveLiteral(0), PositiveLiteral(1)},
		{NegativeLiteral(0), PositiveLiteral(2)},
		{NegativeLiteral(1), NegativeLiteral(2)},
	}

	s := NewSolver(3)
	for _, c := range clauses {
		require.True(t, s.AddClause(c))
	}

	require.True(t, s.Solve())

	model := make(map[Variable]TruthValue)
	for _, l := range s.GetUnitLiterals() {
		if l.Sign() > 0 {
			model[l.Var()] = True
		} else {
			model[l.Var()] = False
		}
	}

	for _, c := range clauses {
		satisfied := false
		for _, l := range c {
			if (l.Sign() > 0) == (model[l.Var()] == True) {
				satisfied = true
				break
			}
		}
		assert.True(t, satisfied, "clause %v not satisfied by model %v", c, model)
	}
}

func TestSolveDetectsUnsatPigeonhole(t *testing.T) {
	// Pigeonhole PHP 3->2: 3 pigeons, 2 holes, each pigeon in some hole,
	// no hole holds two pigeons.
	s := NewSolver(6) // variable 2*p+h for pigeon p in hole h
	v := func(p, h int) Variable { return Variable(2*p + h) }

	for p := 0; p < 3; p++ {
		require.True(t, s.AddClause([]Literal{
			PositiveLiteral(v(p, 0)), PositiveLiteral(v(p, 1)),
		}))
	}
	for h := 0; h < 2; h++ {
		for p1 := 0; p1 < 3; p1++ {
			for p2 := p1 + 1; p2 < 3; p2++ {
				require.True(t, s.AddClause([]Literal{
					NegativeLiteral(v(p1, h)), NegativeLiteral(v(p2, h)),
				}))
			}
		}
	}

	assert.False(t, s.Solve())
}

func TestCloneIndependence(t *testing.T) {
	s := NewSolver(3)
	require.True(t, s.AddClause([]Literal{PositiveLiteral(0), PositiveLiteral(1)}))

	clone := s.Clone()
	require.True(t, clone.AddClause([]Literal{PositiveLiteral(2)}))
	require.True(t, clone.Propagate())

	assert.Equal(t, Undefined, s.val(2))
	assert.Empty(t, s.GetUnitLiterals())
}

func TestRebaseIdempotentOnFixedPoint(t *testing.T) {
	s := NewSolver(3)
	clauses := [][]Literal{
		{PositiveLiteral(0), PositiveLiteral(1)},
		{NegativeLiteral(1), PositiveLiteral(2)},
	}
	for _, c := range clauses {
		require.True(t, s.AddClause(c))
	}

	rebased := s.Rebase()
	require.Len(t, rebased, len(clauses))
	for i, c := range clauses {
		assert.True(t, rebased[i].SameLiterals(newClause(c)))
	}
}

func TestRebaseDropsSatisfiedClauses(t *testing.T) {
	s := NewSolver(2)
	require.True(t, s.AddClause([]Literal{PositiveLiteral(0), PositiveLiteral(1)}))
	require.True(t, s.AddClause([]Literal{PositiveLiteral(0)}))
	require.True(t, s.Propagate())

	rebased := s.Rebase()
	// The binary clause is satisfied by x0 and dropped; only the unit
	// clause for x0 remains.
	require.Len(t, rebased, 1)
	assert.True(t, rebased[0].SameLiterals(newClause([]Literal{PositiveLiteral(0)})))
}

func TestSolveFirstVariable(t *testing.T) {
	s := NewSolver(2)
	require.True(t, s.AddClause([]Literal{PositiveLiteral(0), PositiveLiteral(1)}))
	require.True(t, s.AddClause([]Literal{NegativeLiteral(0), PositiveLiteral(1)}))

	require.True(t, s.SolveFirstVariable())
	assert.Equal(t, True, s.val(1))
}
