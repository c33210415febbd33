// kinchat is a conversational front end over the kin engine. It accepts
// plain-English statements about a family ("Alice is the mother of Bob"),
// asserts the base facts they imply, and answers questions derived from
// them ("Is Bob a grandson of Carol?").
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/famlogic/kin/pkg/kin"
	"github.com/famlogic/kin/pkg/kin/config"
	"github.com/famlogic/kin/pkg/kin/facts"
	"github.com/famlogic/kin/pkg/kin/facts/sqlitestore"
	"github.com/famlogic/kin/pkg/kin/inference"
	"github.com/famlogic/kin/pkg/kin/inference/datalog"
	"github.com/famlogic/kin/pkg/kin/inference/simple"
	"github.com/famlogic/kin/pkg/kin/internalerr"
)

func main() {
	var (
		familyPath  = flag.String("family", "", "Family YAML file to preload (optional)")
		sessionPath = flag.String("session", "", "SQLite session database to load and persist into (optional)")
		engineName  = flag.String("engine", "simple", "Inference engine: simple or datalog")
		query       = flag.String("query", "", "One-shot question (non-interactive mode)")
	)
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	k, err := buildEngine(ctx, logger, *familyPath, *sessionPath, *engineName)
	if err != nil {
		logger.Fatal("failed to build engine", zap.Error(err))
	}
	defer k.Close()

	chat := &session{k: k}

	// One-shot question mode
	if *query != "" {
		fmt.Println(chat.Handle(ctx, *query))
		return
	}

	fmt.Println("------------------------------------------------------")
	fmt.Println("  kinchat — family relationship chat")
	fmt.Println("------------------------------------------------------")
	fmt.Println()
	fmt.Println("Tell me statements or ask questions about family")
	fmt.Println("relationships. Sibling, grandparent, and aunt/uncle ties")
	fmt.Println("are tracked through parent links, so tell me the parents")
	fmt.Println("first. Enter 'quit' or 'exit' to leave.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if lower := strings.ToLower(line); lower == "quit" || lower == "exit" {
			break
		}
		fmt.Println(chat.Handle(ctx, line))
	}

	fmt.Println("\nGoodbye!")
}

func buildEngine(ctx context.Context, logger *zap.Logger, familyPath, sessionPath, engineName string) (*kin.Kin, error) {
	var engine inference.Engine
	switch engineName {
	case "simple":
		engine = simple.New()
	case "datalog":
		dl, err := datalog.New()
		if err != nil {
			return nil, fmt.Errorf("datalog engine: %w", err)
		}
		engine = dl
	default:
		return nil, fmt.Errorf("%w: unknown engine %q (want simple or datalog)", internalerr.ErrInvalidInput, engineName)
	}

	var store facts.Store
	if sessionPath != "" {
		sq, err := sqlitestore.Open(ctx, sessionPath)
		if err != nil {
			return nil, fmt.Errorf("open session: %w", err)
		}
		logger.Info("session loaded",
			zap.String("path", sessionPath),
			zap.String("session_id", sq.SessionID()),
			zap.Int("persons", len(sq.Persons())))
		store = sq
	}

	k := kin.New(kin.Options{Store: store, Engine: engine})

	if familyPath != "" {
		fam, err := config.LoadFamily(familyPath)
		if err != nil {
			return nil, fmt.Errorf("load family: %w", err)
		}
		if err := fam.ApplyTo(ctx, k.Store()); err != nil {
			return nil, fmt.Errorf("apply family: %w", err)
		}
		logger.Info("family loaded",
			zap.String("path", familyPath),
			zap.Int("males", len(fam.Males)),
			zap.Int("females", len(fam.Females)),
			zap.Int("parent_edges", len(fam.Parents)))
	}

	return k, nil
}
