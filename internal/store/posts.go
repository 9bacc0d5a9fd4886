package store

import (
	"time"

	"homeharbor/internal/domain"
)

func (s *MemStore) ListPosts() []domain.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Post, 0, len(s.postOrder))
	for _, id := range s.postOrder {
		out = append(out, s.posts[id])
	}
	return out
}

func (s *MemStore) GetPost(id int) (domain.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.posts[id]
	return p, ok
}

func (s *MemStore) CreatePost(in domain.NewPost) domain.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.postSeq
	s.postSeq++
	p := domain.Post{
		ID:        id,
		Title:     in.Title,
		Content:   in.Content,
		Author:    in.Author,
		ImageURL:  in.ImageURL,
		Excerpt:   in.Excerpt,
		CreatedAt: time.Now().UTC(),
	}
	s.posts[id] = p
	s.postOrder = append(s.postOrder, id)
	return p
}

func (s *MemStore) UpdatePost(id int, patch domain.PostPatch) (domain.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return domain.Post{}, false
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.Author != nil {
		p.Author = *patch.Author
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.Excerpt != nil {
		p.Excerpt = *patch.Excerpt
	}
	s.posts[id] = p
	return p, true
}

func (s *MemStore) DeletePost(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[id]; !ok {
		return false
	}
	delete(s.posts, id)
	s.postOrder = removeID(s.postOrder, id)
	return true
}
