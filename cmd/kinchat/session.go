package main

import (
	"context"
	"sort"
	"strings"

	"github.com/famlogic/kin/pkg/kin"
	"github.com/famlogic/kin/pkg/kin/relations"
)

// Canned replies, kept short and chatbot-flavored.
const (
	replyLearned          = "OK! I learned something."
	replyImpossible       = "That's impossible!"
	replyInvalidStatement = "Invalid statement. Please follow the sentence patterns."
	replyInvalidQuestion  = "Invalid question. Please follow the sentence patterns."
	replyNeedParents      = "I can only track that through parent links. Tell me who the parents are first."
)

// session handles one conversation: statements teach facts, questions
// query them. Lines containing a question mark are questions.
type session struct {
	k *kin.Kin
}

// Handle processes one input line and returns the reply.
func (s *session) Handle(ctx context.Context, line string) string {
	if strings.Contains(line, "?") {
		return s.answer(line)
	}
	return s.learn(ctx, line)
}

// norm maps a name to its stored form: trimmed, lowercased, trailing
// period stripped.
func norm(name string) kin.Person {
	name = strings.TrimSpace(name)
	name = strings.TrimSuffix(name, ".")
	return kin.Person(strings.ToLower(strings.TrimSpace(name)))
}

// display capitalizes a stored name for output.
func display(p kin.Person) string {
	if p == "" {
		return ""
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}

func displayList(persons []kin.Person) string {
	names := make([]string, len(persons))
	for i, p := range persons {
		names[i] = display(p)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// personsHolding returns every person x for which kind(x, of) holds.
func (s *session) personsHolding(kind relations.Kind, of kin.Person) []kin.Person {
	var out []kin.Person
	for _, p := range s.k.Store().Persons() {
		if s.k.Holds(kind, p, of) {
			out = append(out, p)
		}
	}
	return out
}

// sexConflict reports whether asserting the given sex for p would
// contradict an earlier statement.
func (s *session) sexConflict(p kin.Person, male bool) bool {
	if male {
		return s.k.Store().IsFemale(p)
	}
	return s.k.Store().IsMale(p)
}

// wouldCycle reports whether the proposed parent is already related to
// the child in the parent→child direction, which would make the new
// edge circular (or redundant).
func (s *session) wouldCycle(parent, child kin.Person) bool {
	return s.k.Related(parent, child)
}

// invalidParentChild reports whether making parent a parent of child
// contradicts the existing graph: the child is already an ancestor of
// the proposed parent, and the edge does not already exist.
func (s *session) invalidParentChild(child, parent kin.Person) bool {
	childIsAncestor := s.k.Holds(relations.KindParent, child, parent) ||
		s.k.Holds(relations.KindGrandparent, child, parent)
	exists := s.k.Holds(relations.KindParent, parent, child)
	return childIsAncestor && !exists
}

// invalidSibling reports whether a sibling tie between a and b would
// contradict an ancestor-descendant relationship between them.
func (s *session) invalidSibling(a, b kin.Person) bool {
	return s.k.Holds(relations.KindParent, a, b) ||
		s.k.Holds(relations.KindParent, b, a) ||
		s.k.Holds(relations.KindGrandparent, a, b) ||
		s.k.Holds(relations.KindGrandparent, b, a)
}
