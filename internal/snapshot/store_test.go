package snapshot

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestStoreReloadSwapsSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	if err := os.WriteFile(path, []byte(`{"net_worth": {"net_worth": 100}}`), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := NewStore(path, quietLogger())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	defer store.Stop()

	if got := store.Current().CurrentNetWorth().NetWorth; got != 100 {
		t.Fatalf("net worth = %v, want 100", got)
	}
	if store.Version() != 1 {
		t.Fatalf("version = %d, want 1", store.Version())
	}

	if err := os.WriteFile(path, []byte(`{"net_worth": {"net_worth": 200}}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := store.Reload(); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}

	if got := store.Current().CurrentNetWorth().NetWorth; got != 200 {
		t.Errorf("net worth after reload = %v, want 200", got)
	}
	if store.Version() != 2 {
		t.Errorf("version = %d, want 2", store.Version())
	}
}

func TestStoreReloadKeepsSnapshotOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	if err := os.WriteFile(path, []byte(`{"net_worth": {"net_worth": 100}}`), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := NewStore(path, quietLogger())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	defer store.Stop()

	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := store.Reload(); err == nil {
		t.Fatal("expected reload error for broken file")
	}

	if got := store.Current().CurrentNetWorth().NetWorth; got != 100 {
		t.Errorf("net worth = %v, previous snapshot should survive a failed reload", got)
	}
	if store.Version() != 1 {
		t.Errorf("version = %d, want unchanged 1", store.Version())
	}
}
