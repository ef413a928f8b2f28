package services

import (
	"context"

	"tripwise/internal/apiclient"
	"tripwise/internal/domain"
	"tripwise/internal/domain/models"
	"tripwise/internal/utils"
)

// ContentService backs the public marketing pages: hot news and blogs.
type ContentService struct {
	API *apiclient.Client
}

// HomeNews returns the newest hot news first, at most limit items (0 = all).
func (s ContentService) HomeNews(ctx context.Context, a apiclient.Auth, limit int) ([]models.HotNews, error) {
	items, err := s.API.HotNews().List(ctx, a)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s ContentService) Blogs(ctx context.Context, a apiclient.Auth, q ListQuery) (domain.Page[BlogView], error) {
	items, err := s.API.Blogs().List(ctx, a)
	if err != nil {
		return domain.Page[BlogView]{}, err
	}
	views := make([]BlogView, 0, len(items))
	for _, b := range items {
		v := NewBlogView(b)
		if utils.ContainsFold(v.Name, q.Q) {
			views = append(views, v)
		}
	}
	return utils.Paginate(views, q.Page, q.PageSize), nil
}

func (s ContentService) Blog(ctx context.Context, a apiclient.Auth, id int64) (BlogView, error) {
	b, err := s.API.Blogs().Get(ctx, a, id)
	if err != nil {
		return BlogView{}, err
	}
	return NewBlogView(b), nil
}
