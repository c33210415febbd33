package main

import (
	"fmt"
	"strings"

	"github.com/famlogic/kin/pkg/kin/relations"
)

// answer dispatches a question to its handler by sentence pattern.
func (s *session) answer(question string) string {
	q := strings.TrimSpace(question)
	q = strings.TrimSuffix(q, "?")

	switch {
	case strings.HasPrefix(q, "Are ") && strings.Contains(q, " siblings"):
		return s.answerSiblings(q)
	case strings.HasPrefix(q, "Is ") && strings.Contains(q, " a sister of "):
		return s.answerHolds(q, "Is ", " a sister of ", relations.KindSister)
	case strings.HasPrefix(q, "Is ") && strings.Contains(q, " a brother of "):
		return s.answerHolds(q, "Is ", " a brother of ", relations.KindBrother)
	case strings.HasPrefix(q, "Is ") && strings.Contains(q, " the mother of "):
		return s.answerHolds(q, "Is ", " the mother of ", relations.KindMother)
	case strings.HasPrefix(q, "Is ") && strings.Contains(q, " the father of "):
		return s.answerHolds(q, "Is ", " the father of ", relations.KindFather)
	case strings.HasPrefix(q, "Are ") && strings.Contains(q, " the parents of "):
		return s.answerParentsOf(q)
	case strings.HasPrefix(q, "Is ") && strings.Contains(q, " a grandmother of "):
		return s.answerHolds(q, "Is ", " a grandmother of ", relations.KindGrandmother)
	case strings.HasPrefix(q, "Is ") && strings.Contains(q, " a grandfather of "):
		return s.answerHolds(q, "Is ", " a grandfather of ", relations.KindGrandfather)
	case strings.HasPrefix(q, "Is ") && strings.Contains(q, " a daughter of "):
		return s.answerHolds(q, "Is ", " a daughter of ", relations.KindDaughter)
	case strings.HasPrefix(q, "Is ") && strings.Contains(q, " a son of "):
		return s.answerHolds(q, "Is ", " a son of ", relations.KindSon)
	case strings.HasPrefix(q, "Is ") && strings.Contains(q, " a child of "):
		return s.answerHolds(q, "Is ", " a child of ", relations.KindChild)
	case strings.HasPrefix(q, "Are ") && strings.Contains(q, " children of "):
		return s.answerChildrenOf(q)
	case strings.HasPrefix(q, "Is ") && strings.Contains(q, " an aunt of "):
		return s.answerHolds(q, "Is ", " an aunt of ", relations.KindAunt)
	case strings.HasPrefix(q, "Is ") && strings.Contains(q, " an uncle of "):
		return s.answerHolds(q, "Is ", " an uncle of ", relations.KindUncle)
	case strings.HasPrefix(q, "Are ") && strings.Contains(q, " relatives"):
		return s.answerRelatives(q)
	case strings.HasPrefix(q, "Who are the siblings of "):
		return s.answerWhoAll(q, "Who are the siblings of ", "siblings", relations.KindSibling)
	case strings.HasPrefix(q, "Who are the sisters of "):
		return s.answerWhoAll(q, "Who are the sisters of ", "sisters", relations.KindSister)
	case strings.HasPrefix(q, "Who are the brothers of "):
		return s.answerWhoAll(q, "Who are the brothers of ", "brothers", relations.KindBrother)
	case strings.HasPrefix(q, "Who are the daughters of "):
		return s.answerWhoAll(q, "Who are the daughters of ", "daughters", relations.KindDaughter)
	case strings.HasPrefix(q, "Who are the sons of "):
		return s.answerWhoAll(q, "Who are the sons of ", "sons", relations.KindSon)
	case strings.HasPrefix(q, "Who is the mother of "):
		return s.answerWhoOne(q, "Who is the mother of ", "mother", relations.KindMother)
	case strings.HasPrefix(q, "Who is the father of "):
		return s.answerWhoOne(q, "Who is the father of ", "father", relations.KindFather)
	case strings.HasPrefix(q, "Who are the parents of "):
		return s.answerWhoParents(q)
	case strings.HasPrefix(q, "Who are the children of "):
		return s.answerWhoChildren(q)
	case strings.HasPrefix(q, "How are ") && strings.Contains(q, " related"):
		return s.answerHowRelated(q)
	default:
		return replyInvalidQuestion
	}
}

func yesNo(holds bool) string {
	if holds {
		return "Yes!"
	}
	return "No!"
}

// answerHolds handles the "Is X <relation> of Y?" family.
func (s *session) answerHolds(q, prefix, phrase string, kind relations.Kind) string {
	rest := strings.TrimPrefix(q, prefix)
	a, b, ok := splitPair(rest, phrase)
	if !ok || a == "" || b == "" {
		return replyInvalidQuestion
	}
	return yesNo(s.k.Holds(kind, a, b))
}

// answerSiblings handles "Are X and Y siblings?".
func (s *session) answerSiblings(q string) string {
	rest := strings.TrimPrefix(q, "Are ")
	rest = strings.Replace(rest, " siblings", "", 1)
	a, b, ok := splitPair(rest, " and ")
	if !ok || a == "" || b == "" {
		return replyInvalidQuestion
	}
	return yesNo(s.k.Holds(relations.KindSibling, a, b))
}

// answerParentsOf handles "Are X and Y the parents of Z?".
func (s *session) answerParentsOf(q string) string {
	rest := strings.TrimPrefix(q, "Are ")
	rest = strings.Replace(rest, " the parents of ", " and ", 1)
	parts := strings.Split(rest, " and ")
	if len(parts) != 3 {
		return replyInvalidQuestion
	}
	p1, p2, child := norm(parts[0]), norm(parts[1]), norm(parts[2])
	if p1 == "" || p2 == "" || child == "" {
		return replyInvalidQuestion
	}
	holds := s.k.Holds(relations.KindParent, p1, child) &&
		s.k.Holds(relations.KindParent, p2, child)
	return yesNo(holds)
}

// answerChildrenOf handles "Are A, B and C children of D?".
func (s *session) answerChildrenOf(q string) string {
	rest := strings.TrimPrefix(q, "Are ")
	rest = strings.Replace(rest, " children of ", " and ", 1)
	rest = strings.ReplaceAll(rest, ", ", " and ")
	parts := strings.Split(rest, " and ")
	if len(parts) < 2 {
		return replyInvalidQuestion
	}
	parent := norm(parts[len(parts)-1])
	if parent == "" {
		return replyInvalidQuestion
	}
	for _, raw := range parts[:len(parts)-1] {
		child := norm(raw)
		if child == "" {
			return replyInvalidQuestion
		}
		if !s.k.Holds(relations.KindChild, child, parent) {
			return "No!"
		}
	}
	return "Yes!"
}

// answerRelatives handles "Are X and Y relatives?". Relatedness is
// direction-sensitive per relation, so both orders are checked.
func (s *session) answerRelatives(q string) string {
	rest := strings.TrimPrefix(q, "Are ")
	rest = strings.Replace(rest, " relatives", "", 1)
	a, b, ok := splitPair(rest, " and ")
	if !ok || a == "" || b == "" {
		return replyInvalidQuestion
	}
	return yesNo(s.k.Related(a, b) || s.k.Related(b, a))
}

// answerWhoAll handles "Who are the <relation plural> of X?".
func (s *session) answerWhoAll(q, prefix, noun string, kind relations.Kind) string {
	of := norm(strings.TrimPrefix(q, prefix))
	if of == "" {
		return replyInvalidQuestion
	}
	matches := s.personsHolding(kind, of)
	if len(matches) == 0 {
		return fmt.Sprintf("I don't know the %s of %s.", noun, display(of))
	}
	return fmt.Sprintf("The %s of %s are: %s.", noun, display(of), displayList(matches))
}

// answerWhoOne handles "Who is the mother/father of X?". With
// contradictory facts more than one person can match; the first in
// sorted order is reported.
func (s *session) answerWhoOne(q, prefix, noun string, kind relations.Kind) string {
	of := norm(strings.TrimPrefix(q, prefix))
	if of == "" {
		return replyInvalidQuestion
	}
	matches := s.personsHolding(kind, of)
	if len(matches) == 0 {
		return fmt.Sprintf("I don't know who the %s of %s is.", noun, display(of))
	}
	return fmt.Sprintf("The %s of %s is %s.", noun, display(of), display(matches[0]))
}

// answerWhoParents handles "Who are the parents of X?".
func (s *session) answerWhoParents(q string) string {
	of := norm(strings.TrimPrefix(q, "Who are the parents of "))
	if of == "" {
		return replyInvalidQuestion
	}
	parents := s.k.Store().ParentsOf(of)
	if len(parents) == 0 {
		return fmt.Sprintf("I don't know the parents of %s.", display(of))
	}
	return fmt.Sprintf("The parents of %s are: %s.", display(of), displayList(parents))
}

// answerWhoChildren handles "Who are the children of X?".
func (s *session) answerWhoChildren(q string) string {
	of := norm(strings.TrimPrefix(q, "Who are the children of "))
	if of == "" {
		return replyInvalidQuestion
	}
	children := s.k.Store().ChildrenOf(of)
	if len(children) == 0 {
		return fmt.Sprintf("I don't know the children of %s.", display(of))
	}
	return fmt.Sprintf("The children of %s are: %s.", display(of), displayList(children))
}

// answerHowRelated handles "How are X and Y related?". Each direction is
// reported separately since most relations are asymmetric.
func (s *session) answerHowRelated(q string) string {
	rest := strings.TrimPrefix(q, "How are ")
	rest = strings.Replace(rest, " related", "", 1)
	a, b, ok := splitPair(rest, " and ")
	if !ok || a == "" || b == "" {
		return replyInvalidQuestion
	}
	forward := s.k.RelationsBetween(a, b)
	backward := s.k.RelationsBetween(b, a)
	if len(forward) == 0 && len(backward) == 0 {
		return fmt.Sprintf("I don't know how %s and %s are related.", display(a), display(b))
	}
	var lines []string
	for _, kind := range forward {
		lines = append(lines, fmt.Sprintf("%s is a %s of %s.", display(a), kind, display(b)))
	}
	for _, kind := range backward {
		lines = append(lines, fmt.Sprintf("%s is a %s of %s.", display(b), kind, display(a)))
	}
	return strings.Join(lines, "\n")
}
