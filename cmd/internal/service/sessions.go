package service

import (
	"context"
	"sync"
	"time"

	"github.com/amritkc/vocareapp/cmd/internal/utils/apierror"
	"github.com/labstack/gommon/log"
)

// Sessions keeps the open calendar views by id.
type Sessions struct {
	svc *DefaultCalendarService

	mu    sync.RWMutex
	items map[string]*Session
}

func NewSessions(svc *DefaultCalendarService) *Sessions {
	return &Sessions{svc: svc, items: make(map[string]*Session)}
}

// Open starts a view and performs its initial load. mock overrides the
// configured default data source.
func (r *Sessions) Open(ctx context.Context, mock *bool) (*Session, *SessionState) {
	session := newSession(r.svc, mock)
	state := session.Reload(ctx)

	r.mu.Lock()
	r.items[session.ID] = session
	r.mu.Unlock()

	log.Infof("session %s opened with %s data", session.ID, state.DataSource)
	return session, state
}

func (r *Sessions) Get(id string) (*Session, apierror.ErrorResponse) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.items[id]
	if !ok {
		return nil, apierror.SessionNotFound
	}
	return session, nil
}

func (r *Sessions) Close(id string) apierror.ErrorResponse {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return apierror.SessionNotFound
	}
	delete(r.items, id)
	log.Infof("session %s closed", id)
	return nil
}

func (r *Sessions) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Prune closes the sessions idle for longer than maxIdle and returns how
// many it closed.
func (r *Sessions) Prune(maxIdle time.Duration) int {
	cutoff := r.svc.opts.Now().Add(-maxIdle)

	r.mu.Lock()
	defer r.mu.Unlock()
	closed := 0
	for id, session := range r.items {
		if session.idleSince(cutoff) {
			delete(r.items, id)
			closed++
		}
	}
	return closed
}

// PruneEvery runs Prune on a ticker until ctx is done.
func (r *Sessions) PruneEvery(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Prune(maxIdle); n > 0 {
				log.Infof("pruned %d idle sessions", n)
			}
		}
	}
}
