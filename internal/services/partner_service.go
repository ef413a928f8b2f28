package services

import (
	"context"
	"fmt"
	"strings"

	"tripwise/internal/apiclient"
	"tripwise/internal/domain"
	"tripwise/internal/domain/models"
	"tripwise/internal/utils"
)

// PartnerService backs the partner's tour and booking management.
type PartnerService struct {
	API *apiclient.Client
}

// NormalizeTour trims the form, renumbers days and activities in order and
// validates it. Prices are in VND and must be non-negative multiples of 1000.
func NormalizeTour(in models.TourInput) (models.TourInput, error) {
	in.Name = utils.NormalizeSpace(in.Name)
	in.Location = utils.NormalizeSpace(in.Location)
	in.Description = strings.TrimSpace(in.Description)

	var errs domain.FieldErrors
	if in.Name == "" {
		errs.Add("name", "is required")
	}
	if in.Location == "" {
		errs.Add("location", "is required")
	}
	if len(in.PriceTiers) == 0 {
		errs.Add("priceTiers", "at least one price tier is required")
	}
	for i, tier := range in.PriceTiers {
		field := fmt.Sprintf("priceTiers[%d]", i)
		if strings.TrimSpace(tier.Label) == "" {
			errs.Add(field+".label", "is required")
		}
		if !utils.IsThousandMultiple(tier.Price) {
			errs.Add(field+".price", "must be a non-negative multiple of 1000")
		}
		if tier.MinAge < 0 || (tier.MaxAge > 0 && tier.MaxAge < tier.MinAge) {
			errs.Add(field+".age", "invalid age range")
		}
	}
	if len(in.Itinerary) == 0 {
		errs.Add("itinerary", "at least one day is required")
	}

	days := make([]models.Day, 0, len(in.Itinerary))
	for i, d := range in.Itinerary {
		d.DayNumber = i + 1
		d.Title = strings.TrimSpace(d.Title)
		if len(d.Activities) == 0 {
			errs.Add(fmt.Sprintf("itinerary[%d].activities", i), "at least one activity is required")
		}
		acts := make([]models.Activity, 0, len(d.Activities))
		for j, act := range d.Activities {
			act.Order = j + 1
			act.Title = strings.TrimSpace(act.Title)
			field := fmt.Sprintf("itinerary[%d].activities[%d]", i, j)
			if act.Title == "" {
				errs.Add(field+".title", "is required")
			}
			if !utils.IsThousandMultiple(act.Cost) {
				errs.Add(field+".cost", "must be a non-negative multiple of 1000")
			}
			acts = append(acts, act)
		}
		d.Activities = acts
		days = append(days, d)
	}
	in.Itinerary = days
	return in, errs.OrNil()
}

func (s PartnerService) ListTours(ctx context.Context, a apiclient.Auth, q ListQuery) (domain.Page[models.Tour], error) {
	items, err := s.API.Tours().ListMine(ctx, a)
	if err != nil {
		return domain.Page[models.Tour]{}, err
	}
	status := strings.TrimSpace(q.Status)
	items = utils.Filter(items, func(t models.Tour) bool {
		if status != "" && !strings.EqualFold(t.Status, status) {
			return false
		}
		return utils.ContainsFold(t.Name, q.Q) || utils.ContainsFold(t.Location, q.Q)
	})
	return utils.Paginate(items, q.Page, q.PageSize), nil
}

func (s PartnerService) CreateTour(ctx context.Context, a apiclient.Auth, in models.TourInput) (models.Tour, error) {
	clean, err := NormalizeTour(in)
	if err != nil {
		return models.Tour{}, err
	}
	t, err := s.API.Tours().Create(ctx, a, clean)
	if err != nil {
		utils.LogError(a.RequestID, "partner", "create_tour", err)
		return models.Tour{}, err
	}
	utils.LogEvent(a.RequestID, "partner", "create_tour", fmt.Sprintf("tour_id=%d", t.ID))
	return t, nil
}

func (s PartnerService) UpdateTour(ctx context.Context, a apiclient.Auth, id int64, in models.TourInput) (models.Tour, error) {
	if id <= 0 {
		return models.Tour{}, domain.ValidationError{Field: "id", Msg: "invalid tour id"}
	}
	clean, err := NormalizeTour(in)
	if err != nil {
		return models.Tour{}, err
	}
	t, err := s.API.Tours().Update(ctx, a, id, clean)
	if err != nil {
		utils.LogError(a.RequestID, "partner", "update_tour", err)
		return models.Tour{}, err
	}
	utils.LogEvent(a.RequestID, "partner", "update_tour", fmt.Sprintf("tour_id=%d", id))
	return t, nil
}

func (s PartnerService) ListBookings(ctx context.Context, a apiclient.Auth, q ListQuery) (domain.Page[models.Booking], error) {
	items, err := s.API.Bookings().ListForPartner(ctx, a)
	if err != nil {
		return domain.Page[models.Booking]{}, err
	}
	return utils.Paginate(FilterBookings(items, q), q.Page, q.PageSize), nil
}

func (s PartnerService) GetBooking(ctx context.Context, a apiclient.Auth, id int64) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "id", Msg: "invalid booking id"}
	}
	return s.API.Bookings().GetForPartner(ctx, a, id)
}
