// Package dimacs is the DIMACS CNF front-end: it reads a problem file
// into a plain instance and instantiates it against a solver, and it
// renders a solver's outcome back out in DIMACS form. None of this is
// part of the solving core; it interacts with it only through the
// clause-ingestion and solution-extraction API.
package dimacs

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	rdimacs "github.com/rhartert/dimacs"

	"github.com/Dhahak-Amin/SatSolver/internal/sat"
)

// Instance is a parsed DIMACS CNF problem: a variable count and a list
// of clauses using DIMACS's 1-based signed integer literals.
type Instance struct {
	Variables int
	Clauses   [][]int
	Comments  []string
}

// builder adapts Instance construction to the rhartert/dimacs Builder
// interface.
type builder struct {
	inst *Instance
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("dimacs: unsupported problem type %q", problem)
	}
	b.inst.Variables = nVars
	b.inst.Clauses = make([][]int, 0, nClauses)
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	clause := make([]int, len(tmpClause))
	copy(clause, tmpClause)
	b.inst.Clauses = append(b.inst.Clauses, clause)
	return nil
}

func (b *builder) Comment(c string) error {
	b.inst.Comments = append(b.inst.Comments, c)
	return nil
}

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		gz, err := gzip.NewReader(rc)
		if err != nil {
			file.Close()
			return nil, err
		}
		rc = gz
	}
	return rc, nil
}

// ParseDIMACS reads a DIMACS CNF instance from filename, decompressing
// it first if gzipped is set.
func ParseDIMACS(filename string, gzipped bool) (*Instance, error) {
	r, err := reader(filename, gzipped)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %w", filename, err)
	}
	defer r.Close()

	inst := &Instance{}
	if err := rdimacs.ReadBuilder(r, &builder{inst: inst}); err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", filename, err)
	}
	return inst, nil
}

// Instantiate adds every clause of inst to s, translating DIMACS's
// 1-based signed literals to the core's literal encoding. s must
// already be sized for inst.Variables (see sat.NewSolver). It returns
// false as soon as a clause addition proves the formula unsatisfiable.
func Instantiate(s *sat.Solver, inst *Instance) bool {
	for _, raw := range inst.Clauses {
		lits := make([]sat.Literal, len(raw))
		for i, v := range raw {
			if v < 0 {
				lits[i] = sat.NegativeLiteral(sat.Variable(-v - 1))
			} else {
				lits[i] = sat.PositiveLiteral(sat.Variable(v - 1))
			}
		}
		if !s.AddClause(lits) {
			return false
		}
	}
	return true
}
