package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/KIM-17/matching-card-game/internal/config"
)

func TestDealIsReproducible(t *testing.T) {
	cfg := config.Default()

	a, err := deal(cfg, "hard", 42)
	if err != nil {
		t.Fatalf("deal() failed: %v", err)
	}
	b, err := deal(cfg, "5x4", 42)
	if err != nil {
		t.Fatalf("deal() failed: %v", err)
	}

	if a.Difficulty != "5x4" || a.Columns != 5 || len(a.Cards) != 20 {
		t.Errorf("deal() = %s with %d columns and %d cards", a.Difficulty, a.Columns, len(a.Cards))
	}
	if !reflect.DeepEqual(a.Cards, b.Cards) {
		t.Error("same seed should deal the same board")
	}
}

func TestDealDefaultDifficulty(t *testing.T) {
	board, err := deal(config.Default(), "", 1)
	if err != nil {
		t.Fatalf("deal() failed: %v", err)
	}
	if board.Difficulty != "4x4" {
		t.Errorf("difficulty = %s, expected the configured default 4x4", board.Difficulty)
	}
}

func TestDealUnknownDifficulty(t *testing.T) {
	_, err := deal(config.Default(), "6x6", 1)
	if !errors.Is(err, config.ErrUnknownDifficulty) {
		t.Errorf("deal() error = %v, expected ErrUnknownDifficulty", err)
	}
}

func TestWriteBoardGrid(t *testing.T) {
	board, _ := deal(config.Default(), "3x4", 7)

	var buf bytes.Buffer
	if err := writeBoardGrid(&buf, board); err != nil {
		t.Fatalf("writeBoardGrid() failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// Header, blank line, then 4 rows of 3
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "seed 7") {
		t.Errorf("header = %q, expected the seed", lines[0])
	}
	for _, row := range lines[2:] {
		if got := len(strings.Fields(row)); got != 3 {
			t.Errorf("row %q has %d cards, expected 3", row, got)
		}
	}
}

func TestWriteBoardJSON(t *testing.T) {
	board, _ := deal(config.Default(), "4x4", 3)

	var buf bytes.Buffer
	if err := writeBoardJSON(&buf, board); err != nil {
		t.Fatalf("writeBoardJSON() failed: %v", err)
	}

	var decoded struct {
		Difficulty string `json:"difficulty"`
		Columns    int    `json:"columns"`
		Cards      []struct {
			Position int    `json:"position"`
			Value    string `json:"value"`
		} `json:"cards"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded.Difficulty != "4x4" || decoded.Columns != 4 || len(decoded.Cards) != 16 {
		t.Errorf("decoded = %+v", decoded)
	}
	for i, c := range decoded.Cards {
		if c.Position != i {
			t.Errorf("card %d has position %d", i, c.Position)
		}
	}
}
