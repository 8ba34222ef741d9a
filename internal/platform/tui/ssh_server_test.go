package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/wish/testsession"
	"github.com/charmbracelet/x/ansi"
	gossh "golang.org/x/crypto/ssh"

	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/storage"
)

func newTestServer(t *testing.T, frames int) (*SSHServer, string) {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "history.db")

	simCfg := core.DefaultConfig()
	simCfg.FPS = 500

	srv, err := NewSSHServer(SSHServerConfig{
		Address:     "127.0.0.1:0",
		HostKeyPath: filepath.Join(dir, "host_key"),
		DBPath:      dbPath,
		MaxFrames:   frames,
		Sim:         simCfg,
		Preset:      "earth",
	}, quietLogger())
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	t.Cleanup(srv.closeStore)
	return srv, dbPath
}

func TestSSHSessionStreamsFrames(t *testing.T) {
	srv, dbPath := newTestServer(t, 4)

	sess := testsession.New(t, srv.server, nil)
	if err := sess.RequestPty("xterm", 40, 160, gossh.TerminalModes{}); err != nil {
		t.Fatalf("RequestPty() failed: %v", err)
	}
	var out bytes.Buffer
	sess.Stdout = &out
	if err := sess.Shell(); err != nil {
		t.Fatalf("Shell() failed: %v", err)
	}
	if err := sess.Wait(); err != nil {
		t.Fatalf("Wait() failed: %v", err)
	}

	back := ansi.CursorBackward(128) + ansi.CursorUp(16)
	if n := strings.Count(out.String(), back); n != 4 {
		t.Errorf("got %d frames, expected 4", n)
	}

	srv.closeStore()
	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	runs, err := store.RecentRuns(storage.SourceSSH, 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(runs))
	}
	if runs[0].Frames != 4 || runs[0].User != "testuser" || runs[0].Preset != "earth" {
		t.Errorf("recorded run = %+v", runs[0])
	}
}

func TestSSHSessionRequiresPty(t *testing.T) {
	srv, _ := newTestServer(t, 2)

	sess := testsession.New(t, srv.server, nil)
	var stderr bytes.Buffer
	sess.Stderr = &stderr
	if err := sess.Run(""); err == nil {
		t.Error("session without PTY should exit with an error")
	}
	if !strings.Contains(stderr.String(), "terminal is required") {
		t.Errorf("stderr = %q, expected a PTY hint", stderr.String())
	}
}

func TestNewSSHServerRejectsInvalidSim(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Sim.Height = 5
	if _, err := NewSSHServer(cfg, quietLogger()); err == nil {
		t.Error("NewSSHServer() should reject an invalid simulation config")
	}
}
