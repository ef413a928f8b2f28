package services

import (
	"context"
	"fmt"
	"strings"

	"tripwise/internal/apiclient"
	"tripwise/internal/domain"
	"tripwise/internal/domain/models"
	"tripwise/internal/repositories"
	"tripwise/internal/utils"
	"tripwise/internal/workflow"

	"github.com/gosimple/slug"
)

// AdminService backs the admin dashboards. Every list follows the same shape:
// fetch all, fold-search, paginate, attach row actions.
type AdminService struct {
	API   *apiclient.Client
	Plans *repositories.PlanRepository
}

var crudActions = []domain.Action{domain.ActionView, domain.ActionEdit, domain.ActionDelete}

func rows[T any](items []T, actions []domain.Action) []domain.Row[T] {
	out := make([]domain.Row[T], 0, len(items))
	for _, it := range items {
		out = append(out, domain.Row[T]{Item: it, Actions: actions})
	}
	return out
}

func listPage[T any](items []T, q ListQuery, text func(T) []string, actions []domain.Action) domain.Page[domain.Row[T]] {
	found := utils.Filter(items, func(it T) bool {
		for _, s := range text(it) {
			if utils.ContainsFold(s, q.Q) {
				return true
			}
		}
		return false
	})
	return utils.Paginate(rows(found, actions), q.Page, q.PageSize)
}

// DeleteResult reports whether a confirmed deletion ran.
type DeleteResult struct {
	Deleted bool                `json:"deleted"`
	Dialog  workflow.Visibility `json:"dialog"`
}

func confirmDelete(ctx context.Context, confirmed bool, action func(ctx context.Context) error) (DeleteResult, error) {
	d := workflow.NewConfirmDialog(action)
	ran, err := d.Resolve(ctx, confirmed)
	return DeleteResult{Deleted: ran && err == nil, Dialog: d.Dialog.State()}, err
}

// BlogView is a blog with its client-side derived fields.
type BlogView struct {
	models.Blog
	Slug       string   `json:"slug"`
	Paragraphs []string `json:"paragraphs"`
}

func NewBlogView(b models.Blog) BlogView {
	return BlogView{Blog: b, Slug: slug.Make(b.Name), Paragraphs: utils.SplitParagraphs(b.Content)}
}

func validateBlog(in models.BlogInput) (models.BlogInput, error) {
	in.Name = utils.NormalizeSpace(in.Name)
	in.Content = strings.TrimSpace(in.Content)
	var errs domain.FieldErrors
	if in.Name == "" {
		errs.Add("name", "is required")
	}
	if in.Content == "" {
		errs.Add("content", "is required")
	}
	return in, errs.OrNil()
}

func (s AdminService) Blogs(ctx context.Context, a apiclient.Auth, q ListQuery) (domain.Page[domain.Row[BlogView]], error) {
	items, err := s.API.Blogs().List(ctx, a)
	if err != nil {
		return domain.Page[domain.Row[BlogView]]{}, err
	}
	views := make([]BlogView, 0, len(items))
	for _, b := range items {
		views = append(views, NewBlogView(b))
	}
	return listPage(views, q, func(b BlogView) []string { return []string{b.Name, b.Author} }, crudActions), nil
}

func (s AdminService) Blog(ctx context.Context, a apiclient.Auth, id int64) (BlogView, error) {
	b, err := s.API.Blogs().Get(ctx, a, id)
	if err != nil {
		return BlogView{}, err
	}
	return NewBlogView(b), nil
}

func (s AdminService) SaveBlog(ctx context.Context, a apiclient.Auth, id int64, in models.BlogInput) (BlogView, error) {
	clean, err := validateBlog(in)
	if err != nil {
		return BlogView{}, err
	}
	var b models.Blog
	if id > 0 {
		b, err = s.API.Blogs().Update(ctx, a, id, clean)
	} else {
		b, err = s.API.Blogs().Create(ctx, a, clean)
	}
	if err != nil {
		utils.LogError(a.RequestID, "admin", "save_blog", err)
		return BlogView{}, err
	}
	utils.LogEvent(a.RequestID, "admin", "save_blog", fmt.Sprintf("blog_id=%d", b.ID))
	return NewBlogView(b), nil
}

func (s AdminService) DeleteBlog(ctx context.Context, a apiclient.Auth, id int64, confirmed bool) (DeleteResult, error) {
	return confirmDelete(ctx, confirmed, func(ctx context.Context) error {
		utils.LogEvent(a.RequestID, "admin", "delete_blog", fmt.Sprintf("blog_id=%d", id))
		return s.API.Blogs().Delete(ctx, a, id)
	})
}

func validateHotNews(in models.HotNewsInput) (models.HotNewsInput, error) {
	in.Title = utils.NormalizeSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	in.Link = strings.TrimSpace(in.Link)
	var errs domain.FieldErrors
	if in.Title == "" {
		errs.Add("title", "is required")
	}
	if in.Content == "" {
		errs.Add("content", "is required")
	}
	if in.Link != "" && !strings.HasPrefix(in.Link, "http://") && !strings.HasPrefix(in.Link, "https://") && !strings.HasPrefix(in.Link, "/") {
		errs.Add("link", "must be an http(s) URL or a site path")
	}
	return in, errs.OrNil()
}

func (s AdminService) HotNews(ctx context.Context, a apiclient.Auth, q ListQuery) (domain.Page[domain.Row[models.HotNews]], error) {
	items, err := s.API.HotNews().List(ctx, a)
	if err != nil {
		return domain.Page[domain.Row[models.HotNews]]{}, err
	}
	return listPage(items, q, func(n models.HotNews) []string { return []string{n.Title, n.Content} }, crudActions), nil
}

func (s AdminService) SaveHotNews(ctx context.Context, a apiclient.Auth, id int64, in models.HotNewsInput) (models.HotNews, error) {
	clean, err := validateHotNews(in)
	if err != nil {
		return models.HotNews{}, err
	}
	if id > 0 {
		return s.API.HotNews().Update(ctx, a, id, clean)
	}
	return s.API.HotNews().Create(ctx, a, clean)
}

func (s AdminService) DeleteHotNews(ctx context.Context, a apiclient.Auth, id int64, confirmed bool) (DeleteResult, error) {
	return confirmDelete(ctx, confirmed, func(ctx context.Context) error {
		return s.API.HotNews().Delete(ctx, a, id)
	})
}

// ValidatePlan checks the admin plan form.
func ValidatePlan(in models.PlanInput) (models.PlanInput, error) {
	in.Name = utils.NormalizeSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	var errs domain.FieldErrors
	if in.Name == "" {
		errs.Add("name", "is required")
	}
	if !utils.IsThousandMultiple(in.Price) {
		errs.Add("price", "must be a non-negative multiple of 1000")
	}
	if in.MaxDailyRequests <= 0 {
		errs.Add("maxDailyRequests", "must be a positive number")
	}
	if in.Description == "" {
		errs.Add("description", "is required")
	}
	return in, errs.OrNil()
}

func (s AdminService) ListPlans(q ListQuery) domain.Page[domain.Row[PlanCard]] {
	cards := PlanCards(s.Plans.List())
	return listPage(cards, q, func(c PlanCard) []string { return []string{c.Name} }, crudActions)
}

func (s AdminService) Plan(id int64) (PlanCard, error) {
	p, err := s.Plans.Get(id)
	if err != nil {
		return PlanCard{}, err
	}
	return NewPlanCard(p), nil
}

func (s AdminService) SavePlan(id int64, in models.PlanInput) (PlanCard, error) {
	clean, err := ValidatePlan(in)
	if err != nil {
		return PlanCard{}, err
	}
	if id > 0 {
		p, err := s.Plans.Update(id, clean)
		if err != nil {
			return PlanCard{}, err
		}
		return NewPlanCard(p), nil
	}
	return NewPlanCard(s.Plans.Create(clean)), nil
}

func (s AdminService) DeletePlan(ctx context.Context, id int64, confirmed bool) (DeleteResult, error) {
	return confirmDelete(ctx, confirmed, func(context.Context) error {
		return s.Plans.Delete(id)
	})
}

// ModerationTours lists tours by status for review; pending by default.
func (s AdminService) ModerationTours(ctx context.Context, a apiclient.Auth, q ListQuery) (domain.Page[domain.Row[models.Tour]], error) {
	status := strings.ToLower(strings.TrimSpace(q.Status))
	if status == "" {
		status = models.TourPending
	}
	switch status {
	case models.TourPending, models.TourApproved, models.TourRejected, "all":
	default:
		return domain.Page[domain.Row[models.Tour]]{}, domain.ValidationError{Field: "status", Msg: "unknown tour status"}
	}
	if status == "all" {
		status = ""
	}
	items, err := s.API.Tours().ListForModeration(ctx, a, status)
	if err != nil {
		return domain.Page[domain.Row[models.Tour]]{}, err
	}
	return listPage(items, q, func(t models.Tour) []string { return []string{t.Name, t.Location} },
		[]domain.Action{domain.ActionView}), nil
}

func (s AdminService) ApproveTour(ctx context.Context, a apiclient.Auth, id int64) (models.Tour, error) {
	t, err := s.API.Tours().Approve(ctx, a, id)
	if err != nil {
		return models.Tour{}, err
	}
	utils.LogEvent(a.RequestID, "admin", "approve_tour", fmt.Sprintf("tour_id=%d", id))
	return t, nil
}

func (s AdminService) RejectTour(ctx context.Context, a apiclient.Auth, id int64, reason string) (models.Tour, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return models.Tour{}, domain.ValidationError{Field: "reason", Msg: "is required"}
	}
	t, err := s.API.Tours().Reject(ctx, a, id, reason)
	if err != nil {
		return models.Tour{}, err
	}
	utils.LogEvent(a.RequestID, "admin", "reject_tour", fmt.Sprintf("tour_id=%d", id))
	return t, nil
}

func (s AdminService) Users(ctx context.Context, a apiclient.Auth, q ListQuery) (domain.Page[domain.Row[models.User]], error) {
	items, err := s.API.Users().List(ctx, a)
	if err != nil {
		return domain.Page[domain.Row[models.User]]{}, err
	}
	role := strings.TrimSpace(q.Status)
	if role != "" {
		items = utils.Filter(items, func(u models.User) bool { return strings.EqualFold(u.Role, role) })
	}
	return listPage(items, q, func(u models.User) []string { return []string{u.Username, u.Email, u.FullName} },
		[]domain.Action{domain.ActionView, domain.ActionEdit}), nil
}

func (s AdminService) SetUserActive(ctx context.Context, a apiclient.Auth, id int64, active bool) (models.User, error) {
	u, err := s.API.Users().SetActive(ctx, a, id, active)
	if err != nil {
		return models.User{}, err
	}
	utils.LogEvent(a.RequestID, "admin", "set_user_active", fmt.Sprintf("user_id=%d active=%t", id, active))
	return u, nil
}

func (s AdminService) Statistics(ctx context.Context, a apiclient.Auth, year int) (models.Statistics, error) {
	return s.API.Reports().Statistics(ctx, a, year)
}
