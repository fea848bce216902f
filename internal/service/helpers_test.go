package service

import (
	"sync"
	"time"
)

// Hardhat's default development phrase and its first account.
const (
	testMnemonic  = "test test test test test test test test test test test junk"
	testAddress   = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	otherMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
