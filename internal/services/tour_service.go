package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"tripwise/internal/apiclient"
	"tripwise/internal/domain"
	"tripwise/internal/domain/models"
	"tripwise/internal/utils"
)

// TourService backs the tour catalogue, tour detail, reviews and the wish-list.
type TourService struct {
	API *apiclient.Client
}

const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortName      = "name"
)

type TourQuery struct {
	Q        string `form:"q"`
	Location string `form:"location"`
	Sort     string `form:"sort"`
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
}

// TourCard is one entry of the catalogue grid.
type TourCard struct {
	models.Tour
	PriceLabel string `json:"priceLabel"`
}

func tourCard(t models.Tour) TourCard {
	return TourCard{Tour: t, PriceLabel: utils.FormatVND(t.StartingPrice())}
}

// SearchTours filters by name or location, then sorts. An empty sort keeps backend
// order; an unknown sort key is a validation error on "sort".
func SearchTours(items []models.Tour, q TourQuery) ([]models.Tour, error) {
	out := utils.Filter(items, func(t models.Tour) bool {
		if !utils.ContainsFold(t.Location, q.Location) {
			return false
		}
		return utils.ContainsFold(t.Name, q.Q) || utils.ContainsFold(t.Location, q.Q)
	})
	switch q.Sort {
	case "":
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].StartingPrice() < out[j].StartingPrice() })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].StartingPrice() > out[j].StartingPrice() })
	case SortName:
		sort.SliceStable(out, func(i, j int) bool { return utils.Fold(out[i].Name) < utils.Fold(out[j].Name) })
	default:
		return nil, domain.ValidationError{Field: "sort", Msg: "unknown sort " + q.Sort}
	}
	return out, nil
}

func (s TourService) List(ctx context.Context, a apiclient.Auth, q TourQuery) (domain.Page[TourCard], error) {
	items, err := s.API.Tours().List(ctx, a)
	if err != nil {
		return domain.Page[TourCard]{}, err
	}
	found, err := SearchTours(items, q)
	if err != nil {
		return domain.Page[TourCard]{}, err
	}
	cards := make([]TourCard, 0, len(found))
	for _, t := range found {
		cards = append(cards, tourCard(t))
	}
	return utils.Paginate(cards, q.Page, q.PageSize), nil
}

func (s TourService) Get(ctx context.Context, a apiclient.Auth, id int64) (TourCard, error) {
	if id <= 0 {
		return TourCard{}, domain.ValidationError{Field: "id", Msg: "invalid tour id"}
	}
	t, err := s.API.Tours().Get(ctx, a, id)
	if err != nil {
		return TourCard{}, err
	}
	return tourCard(t), nil
}

// ReviewList is a tour's reviews with their average rating.
type ReviewList struct {
	Items   []models.Review `json:"items"`
	Average float64         `json:"average"`
	Count   int             `json:"count"`
}

func (s TourService) Reviews(ctx context.Context, a apiclient.Auth, tourID int64) (ReviewList, error) {
	items, err := s.API.Reviews().ListByTour(ctx, a, tourID)
	if err != nil {
		return ReviewList{}, err
	}
	out := ReviewList{Items: items, Count: len(items)}
	if len(items) > 0 {
		sum := 0
		for _, r := range items {
			sum += r.Rating
		}
		out.Average = float64(sum) / float64(len(items))
	}
	return out, nil
}

func (s TourService) AddReview(ctx context.Context, a apiclient.Auth, tourID int64, in models.ReviewInput) (models.Review, error) {
	var errs domain.FieldErrors
	if in.Rating < 1 || in.Rating > 5 {
		errs.Add("rating", "must be between 1 and 5")
	}
	in.Comment = strings.TrimSpace(in.Comment)
	if in.Comment == "" {
		errs.Add("comment", "is required")
	}
	if err := errs.OrNil(); err != nil {
		return models.Review{}, err
	}
	r, err := s.API.Reviews().Create(ctx, a, tourID, in)
	if err != nil {
		return models.Review{}, err
	}
	utils.LogEvent(a.RequestID, "review", "create", fmt.Sprintf("tour_id=%d rating=%d", tourID, in.Rating))
	return r, nil
}

func (s TourService) Wishlist(ctx context.Context, a apiclient.Auth) ([]TourCard, error) {
	items, err := s.API.Wishlist().List(ctx, a)
	if err != nil {
		return nil, err
	}
	out := make([]TourCard, 0, len(items))
	for _, t := range items {
		out = append(out, tourCard(t))
	}
	return out, nil
}

func (s TourService) AddToWishlist(ctx context.Context, a apiclient.Auth, tourID int64) error {
	if tourID <= 0 {
		return domain.ValidationError{Field: "tourId", Msg: "invalid tour id"}
	}
	return s.API.Wishlist().Add(ctx, a, tourID)
}

func (s TourService) RemoveFromWishlist(ctx context.Context, a apiclient.Auth, tourID int64) error {
	if tourID <= 0 {
		return domain.ValidationError{Field: "tourId", Msg: "invalid tour id"}
	}
	return s.API.Wishlist().Remove(ctx, a, tourID)
}
