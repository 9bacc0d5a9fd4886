package services

import (
	"homeharbor/internal/domain"
	"homeharbor/internal/store"
)

// InboxService fronts the contact-message collection: public submissions in,
// admin triage (read/unread, delete) out.
type InboxService struct {
	Store *store.MemStore
}

func NewInboxService(s *store.MemStore) *InboxService { return &InboxService{Store: s} }

func (s *InboxService) ListMessages() []domain.Message { return s.Store.ListMessages() }

func (s *InboxService) GetMessage(id int) (domain.Message, bool) { return s.Store.GetMessage(id) }

func (s *InboxService) Submit(in domain.NewMessage) domain.Message {
	return s.Store.CreateMessage(in)
}

func (s *InboxService) MarkRead(id int) (domain.Message, bool) {
	return s.Store.MarkMessageRead(id)
}

func (s *InboxService) DeleteMessage(id int) bool { return s.Store.DeleteMessage(id) }
