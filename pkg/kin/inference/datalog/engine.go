// Package datalog evaluates the kinship rule set as a Mangle Datalog
// program. It exists to keep the rule cascade in its native declarative
// form; the simple engine remains the default backend.
package datalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/mangle/analysis"
	"github.com/google/mangle/ast"
	_ "github.com/google/mangle/builtin"
	mengine "github.com/google/mangle/engine"
	"github.com/google/mangle/factstore"
	"github.com/google/mangle/parse"

	"github.com/famlogic/kin/pkg/kin/facts"
	"github.com/famlogic/kin/pkg/kin/relations"
)

// program is the full rule cascade. Base predicates (male, female,
// parent) are extensional; everything else is derived. Each derived rule
// carries its own inequality guards, including the redundant ones in the
// sexed specializations, so malformed base facts (a person who is their
// own parent) can never surface as a self-relationship.
const program = `
Decl male(X).
Decl female(X).
Decl parent(X, Y).

father(A, B) :- parent(A, B), male(A), A != B.
mother(A, B) :- parent(A, B), female(A), A != B.

child(A, B) :- parent(B, A).
son(A, B) :- child(A, B), male(A), A != B.
daughter(A, B) :- child(A, B), female(A), A != B.

sibling(A, B) :- parent(P, A), parent(P, B), A != B.
brother(A, B) :- sibling(A, B), male(A), A != B.
sister(A, B) :- sibling(A, B), female(A), A != B.

grandparent(A, B) :- parent(A, M), parent(M, B), A != B, A != M.
grandfather(A, B) :- grandparent(A, B), male(A), A != B.
grandmother(A, B) :- grandparent(A, B), female(A), A != B.

grandchild(A, B) :- grandparent(B, A).
grandson(A, B) :- grandchild(A, B), male(A), A != B.
granddaughter(A, B) :- grandchild(A, B), female(A), A != B.

pibling(A, B) :- sibling(A, P), parent(P, B), A != B, A != P.
uncle(A, B) :- pibling(A, B), male(A), A != B.
aunt(A, B) :- pibling(A, B), female(A), A != B.

nibling(A, B) :- pibling(B, A).
nephew(A, B) :- nibling(A, B), male(A), A != B.
niece(A, B) :- nibling(A, B), female(A), A != B.
`

// Engine is a Mangle-backed inference.Engine. The program is parsed and
// analyzed once at construction; every query syncs the base facts from
// the view into a fresh store and evaluates to fixpoint, so results
// always reflect the current facts with nothing materialized between
// calls.
type Engine struct {
	programInfo *analysis.ProgramInfo
}

// New parses and analyzes the kinship program.
func New() (*Engine, error) {
	unit, err := parse.Unit(strings.NewReader(program))
	if err != nil {
		return nil, fmt.Errorf("parse kinship program: %w", err)
	}
	programInfo, err := analysis.AnalyzeOneUnit(unit, nil)
	if err != nil {
		return nil, fmt.Errorf("analyze kinship program: %w", err)
	}
	return &Engine{programInfo: programInfo}, nil
}

// derive loads the base facts from v and evaluates the program to
// fixpoint. The program is static and pre-analyzed, so evaluation over
// finite base facts does not fail; a nil store is returned on the
// impossible path and treated as "derives nothing" by callers.
func (e *Engine) derive(v facts.View) factstore.FactStore {
	store := factstore.NewSimpleInMemoryStore()
	for _, p := range v.Persons() {
		if v.IsMale(p) {
			store.Add(ast.NewAtom("male", ast.String(string(p))))
		}
		if v.IsFemale(p) {
			store.Add(ast.NewAtom("female", ast.String(string(p))))
		}
	}
	for _, edge := range v.ParentEdges() {
		store.Add(ast.NewAtom("parent",
			ast.String(string(edge.Parent)), ast.String(string(edge.Child))))
	}
	if _, err := mengine.EvalProgramWithStats(e.programInfo, store); err != nil {
		return nil
	}
	return store
}

// pairs returns every (a, b) for which the named predicate holds in the
// evaluated store, sorted.
func pairs(store factstore.FactStore, kind relations.Kind) [][2]facts.Person {
	if store == nil {
		return nil
	}
	sym := ast.PredicateSym{Symbol: string(kind), Arity: 2}
	var out [][2]facts.Person
	_ = store.GetFacts(ast.NewQuery(sym), func(atom ast.Atom) error {
		a, okA := stringArg(atom, 0)
		b, okB := stringArg(atom, 1)
		if okA && okB {
			out = append(out, [2]facts.Person{a, b})
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}

func stringArg(atom ast.Atom, i int) (facts.Person, bool) {
	if i >= len(atom.Args) {
		return "", false
	}
	c, ok := atom.Args[i].(ast.Constant)
	if !ok || c.Type != ast.StringType {
		return "", false
	}
	return facts.Person(c.Symbol), true
}

func holdsIn(store factstore.FactStore, kind relations.Kind, a, b facts.Person) bool {
	for _, pair := range pairs(store, kind) {
		if pair[0] == a && pair[1] == b {
			return true
		}
	}
	return false
}

// Holds implements inference.Engine.
func (e *Engine) Holds(v facts.View, kind relations.Kind, a, b facts.Person) bool {
	if _, ok := relations.Lookup(kind); !ok {
		return false
	}
	return holdsIn(e.derive(v), kind, a, b)
}

// KindsBetween implements inference.Engine.
func (e *Engine) KindsBetween(v facts.View, a, b facts.Person) []relations.Kind {
	store := e.derive(v)
	var kinds []relations.Kind
	for _, kind := range relations.DerivedKinds() {
		if holdsIn(store, kind, a, b) {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

// Related implements inference.Engine. The a != b guard is final and
// independent of the rule set.
func (e *Engine) Related(v facts.View, a, b facts.Person) bool {
	if a == b {
		return false
	}
	store := e.derive(v)
	for _, kind := range relations.DerivedKinds() {
		if holdsIn(store, kind, a, b) {
			return true
		}
	}
	return false
}

// AllFacts implements inference.Engine: kinds in registry order, pairs
// sorted within each kind.
func (e *Engine) AllFacts(v facts.View) []relations.DerivedFact {
	store := e.derive(v)
	var out []relations.DerivedFact
	for _, kind := range relations.DerivedKinds() {
		for _, pair := range pairs(store, kind) {
			out = append(out, relations.DerivedFact{Kind: kind, A: pair[0], B: pair[1]})
		}
	}
	return out
}
