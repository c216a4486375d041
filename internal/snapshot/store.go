package snapshot

import (
	"fmt"
	"sync/atomic"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Store holds the current snapshot and supports atomic hot reloads.
// Readers always see a fully loaded snapshot; a reload swaps the whole
// snapshot pointer, it never mutates one in place.
type Store struct {
	path    string
	log     *logrus.Logger
	current atomic.Pointer[Snapshot]
	version atomic.Uint64
	cron    *cron.Cron
}

// NewStore loads the snapshot file and returns a store holding it
func NewStore(path string, log *logrus.Logger) (*Store, error) {
	s, err := Load(path)
	if err != nil {
		return nil, err
	}
	st := &Store{path: path, log: log}
	st.current.Store(s)
	st.version.Store(1)
	return st, nil
}

// Current returns the currently loaded snapshot
func (st *Store) Current() *Snapshot {
	return st.current.Load()
}

// Version returns a counter incremented on every successful reload
func (st *Store) Version() uint64 {
	return st.version.Load()
}

// Reload re-reads the snapshot file and swaps it in atomically.
// The previous snapshot stays in place when the reload fails.
func (st *Store) Reload() error {
	s, err := Load(st.path)
	if err != nil {
		return fmt.Errorf("snapshot reload failed: %w", err)
	}
	st.current.Store(s)
	st.version.Add(1)
	st.log.Infof("Snapshot reloaded from %s (version %d)", st.path, st.Version())
	return nil
}

// StartReload schedules periodic reloads using a cron expression
func (st *Store) StartReload(schedule string) error {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		if err := st.Reload(); err != nil {
			st.log.Errorf("Scheduled snapshot reload: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid reload schedule %q: %w", schedule, err)
	}
	c.Start()
	st.cron = c
	st.log.Infof("Snapshot hot reload scheduled: %s", schedule)
	return nil
}

// Stop stops the reload scheduler if one is running
func (st *Store) Stop() {
	if st.cron != nil {
		st.cron.Stop()
	}
}
