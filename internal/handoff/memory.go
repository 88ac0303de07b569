package handoff

import (
	"context"
	"fmt"
	"sync"

	"asdscreen/internal/model"
)

type memoryStore struct {
	mu    sync.RWMutex
	forms map[string]model.StepForm
}

// NewMemoryStore creates an in-process handoff store. Used by the single-user
// CLI runner and by tests; durability is the process lifetime.
func NewMemoryStore() Store {
	return &memoryStore{forms: make(map[string]model.StepForm)}
}

func (s *memoryStore) key(sessionID, step string) string {
	return fmt.Sprintf("%s:%s", sessionID, step)
}

func (s *memoryStore) Put(_ context.Context, sessionID, step string, form model.StepForm) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make(model.StepForm, len(form))
	for k, v := range form {
		copied[k] = v
	}
	s.forms[s.key(sessionID, step)] = copied
	return nil
}

func (s *memoryStore) Get(_ context.Context, sessionID, step string) (model.StepForm, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	form, ok := s.forms[s.key(sessionID, step)]
	if !ok {
		return nil, false, nil
	}
	copied := make(model.StepForm, len(form))
	for k, v := range form {
		copied[k] = v
	}
	return copied, true, nil
}
