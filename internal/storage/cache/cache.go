package cache

import (
	"sync"

	"github.com/DanRulev/sentrack.git/internal/models"
)

// Cache keeps per-chat state that does not outlive the process: the logged-in
// account and the text edit the next message should complete.
type Cache struct {
	mu       sync.Mutex
	sessions map[int64]models.Account
	edits    map[int64]models.PendingEdit
}

func NewCache() *Cache {
	return &Cache{
		sessions: make(map[int64]models.Account),
		edits:    make(map[int64]models.PendingEdit),
	}
}

func (c *Cache) SetSession(userID int64, account models.Account) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[userID] = account
}

func (c *Cache) GetSession(userID int64) (models.Account, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	account, exists := c.sessions[userID]
	return account, exists
}

func (c *Cache) DeleteSession(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, userID)
}

func (c *Cache) SetEdit(userID int64, edit models.PendingEdit) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.edits[userID] = edit
}

func (c *Cache) GetEdit(userID int64) (models.PendingEdit, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	edit, exists := c.edits[userID]
	return edit, exists
}

func (c *Cache) DeleteEdit(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.edits, userID)
}
