package main

import (
	"context"
	"strings"
	"testing"
)

// seedFamily loads a three-generation family used across question tests:
// Gran → (Mike, Tina), Mike+Anna → (Bob, Carol).
func seedFamily(t *testing.T) *session {
	t.Helper()
	s := newTestSession(t)
	s.mustLearn(t,
		"Gran is the mother of Mike.",
		"Gran is the mother of Tina.",
		"Tina is a sister of Mike.",
		"Mike is the father of Bob.",
		"Anna is the mother of Bob.",
		"Mike is the father of Carol.",
		"Anna is the mother of Carol.",
		"Bob is a son of Mike.",
		"Carol is a daughter of Mike.",
	)
	return s
}

func TestAnswer_YesNoQuestions(t *testing.T) {
	s := seedFamily(t)
	ctx := context.Background()

	yes := []string{
		"Is Mike the father of Bob?",
		"Is Anna the mother of Carol?",
		"Are Bob and Carol siblings?",
		"Is Bob a brother of Carol?",
		"Is Carol a sister of Bob?",
		"Is Gran a grandmother of Bob?",
		"Is Bob a son of Anna?",
		"Is Carol a daughter of Anna?",
		"Is Bob a child of Mike?",
		"Are Mike and Anna the parents of Bob?",
		"Are Bob and Carol children of Mike?",
		"Is Tina an aunt of Bob?",
		"Are Gran and Bob relatives?",
	}
	for _, q := range yes {
		if got := s.Handle(ctx, q); got != "Yes!" {
			t.Errorf("Handle(%q) = %q, want Yes!", q, got)
		}
	}

	no := []string{
		"Is Anna the father of Bob?",
		"Is Bob a sister of Carol?",
		"Is Gran a grandfather of Bob?",
		"Are Mike and Tina the parents of Bob?",
		"Is Tina an uncle of Bob?",
		"Are Bob and Stranger relatives?",
		"Is Bob a child of Bob?",
	}
	for _, q := range no {
		if got := s.Handle(ctx, q); got != "No!" {
			t.Errorf("Handle(%q) = %q, want No!", q, got)
		}
	}
}

func TestAnswer_WhoQuestions(t *testing.T) {
	s := seedFamily(t)
	ctx := context.Background()

	cases := []struct {
		question string
		want     string
	}{
		{"Who are the siblings of Bob?", "The siblings of Bob are: Carol."},
		{"Who are the sisters of Bob?", "The sisters of Bob are: Carol."},
		{"Who are the brothers of Carol?", "The brothers of Carol are: Bob."},
		{"Who is the mother of Bob?", "The mother of Bob is Anna."},
		{"Who is the father of Carol?", "The father of Carol is Mike."},
		{"Who are the parents of Bob?", "The parents of Bob are: Anna, Mike."},
		{"Who are the children of Mike?", "The children of Mike are: Bob, Carol."},
		{"Who are the daughters of Mike?", "The daughters of Mike are: Carol."},
		{"Who are the sons of Anna?", "The sons of Anna are: Bob."},
	}
	for _, tc := range cases {
		if got := s.Handle(ctx, tc.question); got != tc.want {
			t.Errorf("Handle(%q) = %q, want %q", tc.question, got, tc.want)
		}
	}
}

func TestAnswer_WhoQuestionsUnknown(t *testing.T) {
	s := seedFamily(t)
	ctx := context.Background()

	cases := []struct {
		question string
		want     string
	}{
		{"Who is the mother of Gran?", "I don't know who the mother of Gran is."},
		{"Who are the siblings of Gran?", "I don't know the siblings of Gran."},
		{"Who are the parents of Stranger?", "I don't know the parents of Stranger."},
		{"Who are the children of Bob?", "I don't know the children of Bob."},
	}
	for _, tc := range cases {
		if got := s.Handle(ctx, tc.question); got != tc.want {
			t.Errorf("Handle(%q) = %q, want %q", tc.question, got, tc.want)
		}
	}
}

func TestAnswer_HowRelated(t *testing.T) {
	s := seedFamily(t)
	ctx := context.Background()

	got := s.Handle(ctx, "How are Gran and Bob related?")
	for _, want := range []string{
		"Gran is a grandparent of Bob.",
		"Gran is a grandmother of Bob.",
		"Bob is a grandchild of Gran.",
		"Bob is a grandson of Gran.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("answer missing %q:\n%s", want, got)
		}
	}

	got = s.Handle(ctx, "How are Bob and Stranger related?")
	if got != "I don't know how Bob and Stranger are related." {
		t.Errorf("unrelated pair answer = %q", got)
	}
}

func TestAnswer_InvalidQuestion(t *testing.T) {
	s := seedFamily(t)
	ctx := context.Background()

	for _, q := range []string{
		"What is the meaning of life?",
		"Is of?",
		"?",
	} {
		if got := s.Handle(ctx, q); got != replyInvalidQuestion {
			t.Errorf("Handle(%q) = %q, want %q", q, got, replyInvalidQuestion)
		}
	}
}
