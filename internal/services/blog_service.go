package services

import (
	"homeharbor/internal/domain"
	"homeharbor/internal/store"
)

type BlogService struct {
	Store *store.MemStore
}

func NewBlogService(s *store.MemStore) *BlogService { return &BlogService{Store: s} }

func (s *BlogService) ListPosts() []domain.Post { return s.Store.ListPosts() }

func (s *BlogService) GetPost(id int) (domain.Post, bool) { return s.Store.GetPost(id) }

func (s *BlogService) CreatePost(in domain.NewPost) domain.Post { return s.Store.CreatePost(in) }

func (s *BlogService) UpdatePost(id int, patch domain.PostPatch) (domain.Post, bool) {
	return s.Store.UpdatePost(id, patch)
}

func (s *BlogService) DeletePost(id int) bool { return s.Store.DeletePost(id) }
