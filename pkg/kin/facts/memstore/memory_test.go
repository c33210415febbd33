package memstore

import (
	"context"
	"testing"

	"github.com/famlogic/kin/pkg/kin/facts"
)

func TestAddMale_Idempotent(t *testing.T) {
	ctx := context.Background()
	s := New()

	if err := s.AddMale(ctx, "bob"); err != nil {
		t.Fatalf("AddMale: %v", err)
	}
	if err := s.AddMale(ctx, "bob"); err != nil {
		t.Fatalf("AddMale (duplicate): %v", err)
	}

	if !s.IsMale("bob") {
		t.Error("expected bob to be male")
	}
	if got := s.Persons(); len(got) != 1 {
		t.Errorf("expected 1 person, got %v", got)
	}
}

func TestContradictorySexFacts_Accepted(t *testing.T) {
	ctx := context.Background()
	s := New()

	s.AddMale(ctx, "pat")
	s.AddFemale(ctx, "pat")

	if !s.IsMale("pat") || !s.IsFemale("pat") {
		t.Error("contradictory sex facts must both be visible")
	}
}

func TestAddParent_EdgeQueries(t *testing.T) {
	ctx := context.Background()
	s := New()

	s.AddParent(ctx, "alice", "bob")
	s.AddParent(ctx, "tom", "bob")
	s.AddParent(ctx, "alice", "carol")

	parents := s.ParentsOf("bob")
	if len(parents) != 2 || parents[0] != "alice" || parents[1] != "tom" {
		t.Errorf("ParentsOf(bob) = %v, want [alice tom]", parents)
	}

	children := s.ChildrenOf("alice")
	if len(children) != 2 || children[0] != "bob" || children[1] != "carol" {
		t.Errorf("ChildrenOf(alice) = %v, want [bob carol]", children)
	}

	if got := s.ParentsOf("nobody"); len(got) != 0 {
		t.Errorf("ParentsOf(nobody) = %v, want empty", got)
	}
}

func TestSelfParent_Accepted(t *testing.T) {
	ctx := context.Background()
	s := New()

	s.AddParent(ctx, "x", "x")

	parents := s.ParentsOf("x")
	if len(parents) != 1 || parents[0] != "x" {
		t.Errorf("ParentsOf(x) = %v, want [x]", parents)
	}
}

func TestRemoveParent_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New()

	s.AddParent(ctx, "alice", "bob")
	s.RemoveParent(ctx, "alice", "bob")

	if got := s.ParentsOf("bob"); len(got) != 0 {
		t.Errorf("ParentsOf(bob) after removal = %v, want empty", got)
	}
	if got := s.ChildrenOf("alice"); len(got) != 0 {
		t.Errorf("ChildrenOf(alice) after removal = %v, want empty", got)
	}
	if got := s.Persons(); len(got) != 0 {
		t.Errorf("Persons() after removal = %v, want empty", got)
	}

	// Removing an absent fact is a no-op.
	if err := s.RemoveParent(ctx, "alice", "bob"); err != nil {
		t.Fatalf("RemoveParent (absent): %v", err)
	}
}

func TestRemoveSex_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New()

	s.AddMale(ctx, "bob")
	s.AddFemale(ctx, "alice")
	s.RemoveMale(ctx, "bob")
	s.RemoveFemale(ctx, "alice")

	if s.IsMale("bob") {
		t.Error("bob should no longer be male")
	}
	if s.IsFemale("alice") {
		t.Error("alice should no longer be female")
	}
}

func TestParentEdges_SortedAndComplete(t *testing.T) {
	ctx := context.Background()
	s := New()

	s.AddParent(ctx, "b", "c")
	s.AddParent(ctx, "a", "c")
	s.AddParent(ctx, "a", "b")

	want := []facts.Edge{
		{Parent: "a", Child: "b"},
		{Parent: "a", Child: "c"},
		{Parent: "b", Child: "c"},
	}
	got := s.ParentEdges()
	if len(got) != len(want) {
		t.Fatalf("ParentEdges() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("edge %d = %v, want %v", i, got[i], want[i])
		}
	}
}
