package workflow

import (
	"sync"
	"time"

	"tripwise/internal/domain"
)

// WizardStore keeps in-flight signup wizards keyed by request id until they expire.
type WizardStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	wizards map[string]*SignupWizard
}

func NewWizardStore(ttl time.Duration) *WizardStore {
	return &WizardStore{ttl: ttl, now: time.Now, wizards: map[string]*SignupWizard{}}
}

// Start creates and stores a new wizard.
func (s *WizardStore) Start() *SignupWizard {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictLocked()
	w := NewSignupWizard(s.now())
	s.wizards[w.RequestID] = w
	return w
}

// Get returns a live wizard; expired wizards are gone.
func (s *WizardStore) Get(requestID string) (*SignupWizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wizards[requestID]
	if !ok {
		return nil, domain.NotFoundError{Resource: "signup request"}
	}
	if s.now().Sub(w.CreatedAt) > s.ttl {
		delete(s.wizards, requestID)
		return nil, domain.NotFoundError{Resource: "signup request"}
	}
	return w, nil
}

// With runs fn on a live wizard while holding that wizard's lock.
func (s *WizardStore) With(requestID string, fn func(w *SignupWizard) error) error {
	w, err := s.Get(requestID)
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return fn(w)
}

// Finish forgets a wizard.
func (s *WizardStore) Finish(requestID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wizards, requestID)
}

func (s *WizardStore) evictLocked() {
	now := s.now()
	for id, w := range s.wizards {
		if now.Sub(w.CreatedAt) > s.ttl {
			delete(s.wizards, id)
		}
	}
}
