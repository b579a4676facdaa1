package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/KIM-17/matching-card-game/internal/storage"
)

func TestNewSSHServerBadHostKeyDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultSSHServerConfig()
	cfg.HostKeyPath = filepath.Join(blocker, "keys", "host_key")
	cfg.Logger = log.New(io.Discard)

	srv, err := NewSSHServer(cfg)
	if err == nil {
		srv.Shutdown()
		t.Fatal("NewSSHServer() should fail when the host key directory cannot be created")
	}
	if srv != nil {
		t.Errorf("NewSSHServer() returned a server alongside error %v", err)
	}
}

func TestSSHServerShutdownClosesRoundLog(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")
	cfg.Logger = log.New(io.Discard)

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
	if _, err := srv.store.SaveRound(storage.RoundRecord{Difficulty: "4x4", Moves: 8}); err != nil {
		t.Fatalf("round log should be open before shutdown: %v", err)
	}

	if err := srv.Shutdown(); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}
	if _, err := srv.store.SaveRound(storage.RoundRecord{Difficulty: "4x4", Moves: 8}); err == nil {
		t.Error("round log should be closed after shutdown")
	}
}

func TestSSHSessionOptionsAreIsolated(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.HideDelay = 750 * time.Millisecond
	cfg.Difficulty = "5x4"
	s := &SSHServer{config: cfg}

	alice := s.sessionOptions("alice", 100, 30)
	bob := s.sessionOptions("bob", 80, 24)

	if alice.SessionID == "" || alice.SessionID == bob.SessionID {
		t.Errorf("session IDs %q and %q should be distinct", alice.SessionID, bob.SessionID)
	}
	if alice.Player != "alice" || bob.Player != "bob" {
		t.Errorf("players = %q, %q", alice.Player, bob.Player)
	}
	if alice.Config.ScreenW != 100 || alice.Config.ScreenH != 30 {
		t.Errorf("screen = %dx%d, expected the PTY size", alice.Config.ScreenW, alice.Config.ScreenH)
	}
	if alice.SkipPicker {
		t.Error("SSH sessions should open on the picker")
	}
	if alice.HideDelay != 750*time.Millisecond || alice.Difficulty != "5x4" {
		t.Errorf("board settings not passed through: %+v", alice)
	}

	// Each session owns its own machine and tracker
	a := NewSessionModel(alice)
	b := NewSessionModel(bob)
	defer a.Machine().Close()
	defer b.Machine().Close()
	if a.Machine() == b.Machine() || a.Tracker() == b.Tracker() {
		t.Error("sessions must not share a machine or tracker")
	}
}
