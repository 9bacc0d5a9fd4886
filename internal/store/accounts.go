package store

import "homeharbor/internal/domain"

func (s *MemStore) ListAccounts() []domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Account, 0, len(s.accountOrder))
	for _, id := range s.accountOrder {
		out = append(out, s.accounts[id])
	}
	return out
}

func (s *MemStore) GetAccount(id int) (domain.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[id]
	return a, ok
}

// AccountByUsername scans for an exact username match. Usernames are not
// unique at this layer; the first-created match wins.
func (s *MemStore) AccountByUsername(username string) (domain.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.accountOrder {
		if a := s.accounts[id]; a.Username == username {
			return a, true
		}
	}
	return domain.Account{}, false
}

// CreateAccount never fails and performs no uniqueness check; the admin
// console is the only writer.
func (s *MemStore) CreateAccount(in domain.NewAccount) domain.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.accountSeq
	s.accountSeq++
	a := domain.Account{
		ID:       id,
		Username: in.Username,
		Password: in.Password,
		IsAdmin:  in.IsAdmin,
	}
	s.accounts[id] = a
	s.accountOrder = append(s.accountOrder, id)
	return a
}

func (s *MemStore) UpdateAccount(id int, patch domain.AccountPatch) (domain.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return domain.Account{}, false
	}
	if patch.Username != nil {
		a.Username = *patch.Username
	}
	if patch.Password != nil {
		a.Password = *patch.Password
	}
	if patch.IsAdmin != nil {
		a.IsAdmin = patch.IsAdmin
	}
	s.accounts[id] = a
	return a, true
}

func (s *MemStore) DeleteAccount(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[id]; !ok {
		return false
	}
	delete(s.accounts, id)
	s.accountOrder = removeID(s.accountOrder, id)
	return true
}
