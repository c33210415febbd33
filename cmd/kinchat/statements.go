package main

import (
	"context"
	"strings"

	"github.com/famlogic/kin/pkg/kin"
	"github.com/famlogic/kin/pkg/kin/relations"
)

// learn dispatches a statement to its handler by sentence pattern.
func (s *session) learn(ctx context.Context, statement string) string {
	switch {
	case strings.Contains(statement, " and ") && strings.Contains(statement, " are siblings"):
		return s.learnSiblings(ctx, statement)
	case strings.Contains(statement, " and ") && strings.Contains(statement, " are the parents of "):
		return s.learnParents(ctx, statement)
	case strings.Contains(statement, " are children of "):
		return s.learnChildren(ctx, statement)
	case strings.Contains(statement, " is the father of "):
		return s.learnParentEdge(ctx, statement, " is the father of ", sexMale)
	case strings.Contains(statement, " is the mother of "):
		return s.learnParentEdge(ctx, statement, " is the mother of ", sexFemale)
	case strings.Contains(statement, " is a brother of "):
		return s.learnSexedSibling(ctx, statement, " is a brother of ", sexMale)
	case strings.Contains(statement, " is a sister of "):
		return s.learnSexedSibling(ctx, statement, " is a sister of ", sexFemale)
	case strings.Contains(statement, " is a grandmother of "):
		return s.learnGrandparent(ctx, statement, " is a grandmother of ", sexFemale)
	case strings.Contains(statement, " is a grandfather of "):
		return s.learnGrandparent(ctx, statement, " is a grandfather of ", sexMale)
	case strings.Contains(statement, " is a child of "):
		return s.learnChildEdge(ctx, statement, " is a child of ", sexNone)
	case strings.Contains(statement, " is a daughter of "):
		return s.learnChildEdge(ctx, statement, " is a daughter of ", sexFemale)
	case strings.Contains(statement, " is a son of "):
		return s.learnChildEdge(ctx, statement, " is a son of ", sexMale)
	case strings.Contains(statement, " is an aunt of "):
		return s.learnPibling(ctx, statement, " is an aunt of ", sexFemale)
	case strings.Contains(statement, " is an uncle of "):
		return s.learnPibling(ctx, statement, " is an uncle of ", sexMale)
	default:
		return replyInvalidStatement
	}
}

type sex int

const (
	sexNone sex = iota
	sexMale
	sexFemale
)

func splitPair(statement, phrase string) (kin.Person, kin.Person, bool) {
	parts := strings.SplitN(statement, phrase, 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return norm(parts[0]), norm(parts[1]), true
}

func (s *session) assertSex(ctx context.Context, p kin.Person, sx sex) {
	switch sx {
	case sexMale:
		s.k.AssertMale(ctx, p)
	case sexFemale:
		s.k.AssertFemale(ctx, p)
	}
}

// learnParentEdge handles "X is the father/mother of Y".
func (s *session) learnParentEdge(ctx context.Context, statement, phrase string, sx sex) string {
	parent, child, ok := splitPair(statement, phrase)
	if !ok || parent == "" || child == "" {
		return replyInvalidStatement
	}
	if parent == child || s.sexConflict(parent, sx == sexMale) || s.wouldCycle(parent, child) {
		return replyImpossible
	}
	s.assertSex(ctx, parent, sx)
	s.k.AssertParent(ctx, parent, child)
	return replyLearned
}

// learnChildEdge handles "X is a child/daughter/son of Y".
func (s *session) learnChildEdge(ctx context.Context, statement, phrase string, sx sex) string {
	child, parent, ok := splitPair(statement, phrase)
	if !ok || parent == "" || child == "" {
		return replyInvalidStatement
	}
	if child == parent || s.invalidParentChild(child, parent) {
		return replyImpossible
	}
	if sx != sexNone && s.sexConflict(child, sx == sexMale) {
		return replyImpossible
	}
	s.assertSex(ctx, child, sx)
	s.k.AssertParent(ctx, parent, child)
	return replyLearned
}

// learnParents handles "A and B are the parents of C".
func (s *session) learnParents(ctx context.Context, statement string) string {
	rest := strings.Replace(statement, " are the parents of ", " and ", 1)
	parts := strings.Split(rest, " and ")
	if len(parts) != 3 {
		return replyInvalidStatement
	}
	p1, p2, child := norm(parts[0]), norm(parts[1]), norm(parts[2])
	if p1 == "" || p2 == "" || child == "" {
		return replyInvalidStatement
	}
	if child == p1 || child == p2 || s.wouldCycle(p1, child) || s.wouldCycle(p2, child) {
		return replyImpossible
	}
	s.k.AssertParent(ctx, p1, child)
	s.k.AssertParent(ctx, p2, child)
	return replyLearned
}

// learnChildren handles "A, B and C are children of D".
func (s *session) learnChildren(ctx context.Context, statement string) string {
	rest := strings.Replace(statement, " are children of ", " and ", 1)
	rest = strings.ReplaceAll(rest, ", ", " and ")
	parts := strings.Split(rest, " and ")
	if len(parts) < 2 {
		return replyInvalidStatement
	}
	parent := norm(parts[len(parts)-1])
	children := make([]kin.Person, 0, len(parts)-1)
	for _, raw := range parts[:len(parts)-1] {
		children = append(children, norm(raw))
	}
	if parent == "" {
		return replyInvalidStatement
	}
	for _, child := range children {
		if child == "" {
			return replyInvalidStatement
		}
		if child == parent || s.wouldCycle(parent, child) {
			return replyImpossible
		}
	}
	for _, child := range children {
		s.k.AssertParent(ctx, parent, child)
	}
	return replyLearned
}

// learnSiblings handles "X and Y are siblings". A sibling tie is only
// representable through a shared parent edge, so the statement is
// accepted when the tie is already derivable and otherwise asks for the
// parents.
func (s *session) learnSiblings(ctx context.Context, statement string) string {
	rest := strings.Replace(statement, " are siblings", "", 1)
	a, b, ok := splitPair(rest, " and ")
	if !ok || a == "" || b == "" {
		return replyInvalidStatement
	}
	if a == b || s.invalidSibling(a, b) {
		return replyImpossible
	}
	if !s.k.Holds(relations.KindSibling, a, b) {
		return replyNeedParents
	}
	return replyLearned
}

// learnSexedSibling handles "X is a brother/sister of Y".
func (s *session) learnSexedSibling(ctx context.Context, statement, phrase string, sx sex) string {
	a, b, ok := splitPair(statement, phrase)
	if !ok || a == "" || b == "" {
		return replyInvalidStatement
	}
	if a == b || s.sexConflict(a, sx == sexMale) || s.invalidSibling(a, b) {
		return replyImpossible
	}
	if !s.k.Holds(relations.KindSibling, a, b) {
		return replyNeedParents
	}
	s.assertSex(ctx, a, sx)
	return replyLearned
}

// learnGrandparent handles "X is a grandmother/grandfather of Y". The
// tie itself must already be derivable from parent edges; the statement
// contributes the sex fact.
func (s *session) learnGrandparent(ctx context.Context, statement, phrase string, sx sex) string {
	g, c, ok := splitPair(statement, phrase)
	if !ok || g == "" || c == "" {
		return replyInvalidStatement
	}
	if g == c || s.sexConflict(g, sx == sexMale) {
		return replyImpossible
	}
	if !s.k.Holds(relations.KindGrandparent, g, c) {
		return replyNeedParents
	}
	s.assertSex(ctx, g, sx)
	return replyLearned
}

// learnPibling handles "X is an aunt/uncle of Y".
func (s *session) learnPibling(ctx context.Context, statement, phrase string, sx sex) string {
	u, n, ok := splitPair(statement, phrase)
	if !ok || u == "" || n == "" {
		return replyInvalidStatement
	}
	if u == n || s.sexConflict(u, sx == sexMale) {
		return replyImpossible
	}
	if !s.k.Holds(relations.KindPibling, u, n) {
		return replyNeedParents
	}
	s.assertSex(ctx, u, sx)
	return replyLearned
}
