package store

import (
	"time"

	"homeharbor/internal/domain"
)

func (s *MemStore) ListMessages() []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Message, 0, len(s.messageOrder))
	for _, id := range s.messageOrder {
		out = append(out, s.messages[id])
	}
	return out
}

func (s *MemStore) GetMessage(id int) (domain.Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.messages[id]
	return m, ok
}

// CreateMessage stores a contact submission. Read always starts false
// regardless of input.
func (s *MemStore) CreateMessage(in domain.NewMessage) domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.messageSeq
	s.messageSeq++
	m := domain.Message{
		ID:        id,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
	}
	s.messages[id] = m
	s.messageOrder = append(s.messageOrder, id)
	return m
}

func (s *MemStore) UpdateMessage(id int, patch domain.MessagePatch) (domain.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.messages[id]
	if !ok {
		return domain.Message{}, false
	}
	if patch.Name != nil {
		m.Name = *patch.Name
	}
	if patch.Email != nil {
		m.Email = *patch.Email
	}
	if patch.Phone != nil {
		m.Phone = *patch.Phone
	}
	if patch.Subject != nil {
		m.Subject = *patch.Subject
	}
	if patch.Message != nil {
		m.Message = *patch.Message
	}
	if patch.Read != nil {
		m.Read = *patch.Read
	}
	s.messages[id] = m
	return m, true
}

// MarkMessageRead flips the read flag. Idempotent: marking twice leaves the
// same final state.
func (s *MemStore) MarkMessageRead(id int) (domain.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.messages[id]
	if !ok {
		return domain.Message{}, false
	}
	m.Read = true
	s.messages[id] = m
	return m, true
}

func (s *MemStore) DeleteMessage(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.messages[id]; !ok {
		return false
	}
	delete(s.messages, id)
	s.messageOrder = removeID(s.messageOrder, id)
	return true
}
