package parsers

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/rhartert/dimacs"
	"github.com/satlab/tern/sat"
)

// SATSolver is the part of the solver's interface needed to load a CNF
// formula.
type SATSolver interface {
	AddVariable(polarity bool) int
	AddClause([]sat.Literal) bool
}

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// LoadDIMACS parses the DIMACS CNF file and loads its formula in the given
// SAT solver. The file is decompressed on the fly if gzipped is true.
func LoadDIMACS(filename string, gzipped bool, solver SATSolver) error {
	reader, err := reader(filename, gzipped)
	if err != nil {
		return fmt.Errorf("error reading file %q: %w", filename, err)
	}
	defer reader.Close()

	return LoadDIMACSReader(reader, solver)
}

// LoadDIMACSReader parses a DIMACS CNF formula from r and loads it in the
// given SAT solver.
func LoadDIMACSReader(r io.Reader, solver SATSolver) error {
	b := &builder{solver: solver}
	return dimacs.ReadBuilder(r, b)
}

// builder wraps the solver to implement dimacs.Builder.
type builder struct {
	solver SATSolver
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("not a CNF problem")
	}
	for i := 0; i < nVars; i++ {
		b.solver.AddVariable(false)
	}
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	clause := make([]sat.Literal, len(tmpClause))
	for i, l := range tmpClause {
		if l < 0 {
			clause[i] = sat.NegativeLiteral(-l - 1)
		} else {
			clause[i] = sat.PositiveLiteral(l - 1)
		}
	}
	b.solver.AddClause(clause)
	return nil
}

func (b *builder) Comment(_ string) error {
	return nil // ignore comments
}

// ReadModels returns the list of models (if any) contained in the given
// file. Each line holds one model as DIMACS literals.
func ReadModels(filename string) ([][]bool, error) {
	reader, err := reader(filename, false)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %w", filename, err)
	}
	defer reader.Close()

	b := &modelBuilder{}
	if err := dimacs.ReadBuilder(reader, b); err != nil {
		return nil, err
	}

	return b.models, nil
}

// modelBuilder accumulates models to implement dimacs.Builder.
type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(problem string, nVars int, nClauses int) error {
	return fmt.Errorf("model files should not have problem lines")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil // ignore comments
}

func (b *modelBuilder) Clause(tmpClause []int) error {
	model := make([]bool, len(tmpClause))
	for i, l := range tmpClause {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}
