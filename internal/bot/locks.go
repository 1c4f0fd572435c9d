package bot

import "sync"

type chatLock struct {
	mu   sync.Mutex
	refs int
}

// chatLocks serializes work per chat. An entry lives only while some
// update for that chat holds or waits for it.
type chatLocks struct {
	mu    sync.Mutex
	locks map[int64]*chatLock
}

func (c *chatLocks) lock(chatID int64) func() {
	c.mu.Lock()
	l, ok := c.locks[chatID]
	if !ok {
		l = &chatLock{}
		c.locks[chatID] = l
	}
	l.refs++
	c.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		c.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(c.locks, chatID)
		}
		c.mu.Unlock()
	}
}

func (c *chatLocks) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.locks)
}
