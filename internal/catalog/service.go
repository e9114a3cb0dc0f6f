package catalog

import (
	"context"
)

type Repository interface {
	ListFilms(ctx context.Context, limit int) ([]Film, error)
	GetFilm(ctx context.Context, filmID int64) (*Film, error)
	SearchFilms(ctx context.Context, title string) ([]Film, error)
	ListFilmsByCategory(ctx context.Context, category string) ([]Film, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

const defaultListLimit = 20

func (s *Service) List(ctx context.Context, limit int) ([]Film, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	return s.repo.ListFilms(ctx, limit)
}

func (s *Service) Get(ctx context.Context, filmID int64) (*Film, error) {
	return s.repo.GetFilm(ctx, filmID)
}

func (s *Service) Search(ctx context.Context, title string) ([]Film, error) {
	return s.repo.SearchFilms(ctx, title)
}

func (s *Service) ByCategory(ctx context.Context, category string) ([]Film, error) {
	return s.repo.ListFilmsByCategory(ctx, category)
}
