package dimacs

import (
	"fmt"
	"io"

	"github.com/Dhahak-Amin/SatSolver/internal/sat"
)

// WriteSolution renders a SAT outcome's unit-literal assignment in
// DIMACS form: one "v"-prefixed line per literal followed by a
// terminating 0, matching the convention competitions expect.
func WriteSolution(w io.Writer, units []sat.Literal) error {
	for _, l := range units {
		v := int(l.Var()) + 1
		if l.Sign() < 0 {
			v = -v
		}
		if _, err := fmt.Fprintf(w, "v %d\n", v); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "v 0")
	return err
}

// WriteUnsat renders the UNSAT outcome: the literal string "UNSAT"
// followed by a newline, per the front-end's output contract.
func WriteUnsat(w io.Writer) error {
	_, err := fmt.Fprintln(w, "UNSAT")
	return err
}
