package storefront

import (
	"sync"

	"github.com/google/uuid"

	"github.com/ermalb/suxhuk-orders/internal/domain/models"
)

// Session is the state of one customer interaction: the saved profile, the
// selected product, the requested quantity and the inventory snapshot quotes
// are computed from.
type Session struct {
	ID         string
	Customer   *models.Customer
	Product    models.Product
	QuantityKg int
	Inventory  []models.InventoryItem
}

// Item returns the inventory entry matching the session's selected product.
func (s Session) Item() (models.InventoryItem, bool) {
	for _, item := range s.Inventory {
		if item.Product == s.Product {
			return item, true
		}
	}
	return models.InventoryItem{}, false
}

// SessionManager tracks customer sessions in memory.
type SessionManager struct {
	sessions map[string]Session
	mu       sync.RWMutex
}

// NewSessionManager creates a new session manager.
func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]Session),
	}
}

// Create registers a fresh session and returns it.
func (sm *SessionManager) Create() Session {
	sess := Session{ID: uuid.NewString(), Product: models.ProductSuxhuk}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.sessions[sess.ID] = sess
	return sess
}

// Get retrieves the current state for a session.
func (sm *SessionManager) Get(sessionID string) (Session, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sess, exists := sm.sessions[sessionID]
	return sess, exists
}

// Update stores the new state for a session.
func (sm *SessionManager) Update(sess Session) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.sessions[sess.ID] = sess
}

// Clear removes a session.
func (sm *SessionManager) Clear(sessionID string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	delete(sm.sessions, sessionID)
}
