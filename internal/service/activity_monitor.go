package service

import (
	"context"
	"sync"
	"time"

	"blaze-custody/pkg/logger"

	"github.com/rs/zerolog"
)

const DefaultIdleTimeout = 30 * time.Minute

// Lockable is the part of the wallet session the monitor needs. LockIdle
// must re-check Idle under its own lock and report whether it locked.
type Lockable interface {
	IsLocked() bool
	LockIdle(ctx context.Context) bool
}

// ActivityMonitor tracks the last sensitive user action and forces a lock
// once the wallet has been idle past the threshold. It does not schedule
// itself; the host calls CheckAutoLock on a tick.
type ActivityMonitor struct {
	mu           sync.Mutex
	lastActivity time.Time
	idle         time.Duration
	target       Lockable
	now          func() time.Time
	log          zerolog.Logger
}

// NewActivityMonitor creates a monitor with the given idle threshold.
func NewActivityMonitor(idle time.Duration, log zerolog.Logger) *ActivityMonitor {
	if idle <= 0 {
		idle = DefaultIdleTimeout
	}
	return &ActivityMonitor{
		idle: idle,
		now:  time.Now,
		log:  logger.Component(log, "activity-monitor"),
	}
}

// Attach sets the session the monitor locks.
func (m *ActivityMonitor) Attach(target Lockable) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.target = target
}

// RecordActivity stamps lastActivity with the current time.
func (m *ActivityMonitor) RecordActivity() {
	m.mu.Lock()
	m.lastActivity = m.now()
	m.mu.Unlock()
}

// LastActivity returns the last recorded activity time.
func (m *ActivityMonitor) LastActivity() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastActivity
}

// Idle reports whether no activity was recorded within the threshold.
func (m *ActivityMonitor) Idle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now().Sub(m.lastActivity) > m.idle
}

// CheckAutoLock locks the attached session if it is unlocked and idle for
// longer than the threshold. Returns true when it locked.
func (m *ActivityMonitor) CheckAutoLock(ctx context.Context) bool {
	m.mu.Lock()
	target := m.target
	idleFor := m.now().Sub(m.lastActivity)
	m.mu.Unlock()

	if target == nil || target.IsLocked() || idleFor <= m.idle {
		return false
	}

	if !target.LockIdle(ctx) {
		m.log.Debug().Msg("auto-lock skipped, activity arrived first")
		return false
	}
	m.log.Info().Dur("idle_for", idleFor).Msg("idle wallet auto-locked")
	return true
}

// Run calls CheckAutoLock every interval until ctx is done.
func (m *ActivityMonitor) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			m.CheckAutoLock(ctx)
		}
	}
}
