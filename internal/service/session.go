package service

import (
	"sync"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Session is the unlocked state of one signed-in account. It is handed to the
// front end by [VaultService.SignIn] and passed back to every
// account-scoped operation. The record key never leaves the service package.
type Session struct {
	id string

	mu      sync.RWMutex
	account models.Account
	key     []byte
}

func newSession(id string, account models.Account, key []byte) *Session {
	return &Session{id: id, account: account, key: key}
}

// ID returns the session identifier used in log lines.
func (s *Session) ID() string {
	return s.id
}

// Account returns the public projection of the signed-in account.
func (s *Session) Account() models.AccountView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.account.View()
}

func (s *Session) material() (models.Account, []byte) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.account, s.key
}

func (s *Session) rename(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account.Username = username
}

// scrub zeroes the record key and drops the account material.
func (s *Session) scrub() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.key)
	s.key = nil
	s.account = models.Account{}
}
