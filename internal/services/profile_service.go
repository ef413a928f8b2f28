package services

import (
	"context"
	"regexp"
	"strings"

	"tripwise/internal/apiclient"
	"tripwise/internal/domain"
	"tripwise/internal/domain/models"
	"tripwise/internal/utils"
)

// ProfileService backs the profile page and the user's plan.
type ProfileService struct {
	API      *apiclient.Client
	Payments PaymentService
}

var phonePattern = regexp.MustCompile(`^\+?[0-9]{9,12}$`)

func (s ProfileService) Get(ctx context.Context, a apiclient.Auth) (models.User, error) {
	return s.API.Profile().Get(ctx, a)
}

func (s ProfileService) Update(ctx context.Context, a apiclient.Auth, in models.ProfileUpdate) (models.User, error) {
	in.FullName = utils.NormalizeSpace(in.FullName)
	in.Phone = strings.ReplaceAll(strings.TrimSpace(in.Phone), " ", "")
	in.Address = models.Address{
		Street:   utils.NormalizeSpace(in.Address.Street),
		Ward:     utils.NormalizeSpace(in.Address.Ward),
		District: utils.NormalizeSpace(in.Address.District),
		Province: utils.NormalizeSpace(in.Address.Province),
	}

	var errs domain.FieldErrors
	if in.FullName == "" {
		errs.Add("fullName", "is required")
	}
	if in.Phone != "" && !phonePattern.MatchString(in.Phone) {
		errs.Add("phone", "must be a valid phone number")
	}
	if err := errs.OrNil(); err != nil {
		return models.User{}, err
	}
	u, err := s.API.Profile().Update(ctx, a, in)
	if err != nil {
		return models.User{}, err
	}
	utils.LogEvent(a.RequestID, "profile", "update", "ok")
	return u, nil
}

func (s ProfileService) ChangePassword(ctx context.Context, a apiclient.Auth, in models.PasswordChange) error {
	var errs domain.FieldErrors
	if in.CurrentPassword == "" {
		errs.Add("currentPassword", "is required")
	}
	if len(in.NewPassword) < 8 {
		errs.Add("newPassword", "must be at least 8 characters")
	} else if in.NewPassword == in.CurrentPassword {
		errs.Add("newPassword", "must differ from the current password")
	}
	if in.ConfirmPassword != in.NewPassword {
		errs.Add("confirmPassword", "passwords do not match")
	}
	if err := errs.OrNil(); err != nil {
		return err
	}
	if err := s.API.Profile().ChangePassword(ctx, a, in.CurrentPassword, in.NewPassword); err != nil {
		return err
	}
	utils.LogEvent(a.RequestID, "profile", "change_password", "ok")
	return nil
}

// PlanCard is a plan as the pricing page renders it.
type PlanCard struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	Price            int64    `json:"price"`
	PriceLabel       string   `json:"priceLabel"`
	Features         []string `json:"features"`
	MaxDailyRequests int      `json:"maxDailyRequests"`
}

// NewPlanCard formats the price and splits the description into feature bullets.
func NewPlanCard(p models.Plan) PlanCard {
	return PlanCard{
		ID:               p.ID,
		Name:             p.Name,
		Price:            p.Price,
		PriceLabel:       utils.FormatVND(p.Price),
		Features:         utils.SplitSentences(p.Description),
		MaxDailyRequests: p.MaxDailyRequests,
	}
}

func PlanCards(plans []models.Plan) []PlanCard {
	out := make([]PlanCard, 0, len(plans))
	for _, p := range plans {
		out = append(out, NewPlanCard(p))
	}
	return out
}

// PublicPlans lists the plans shown on the marketing pricing page.
func (s ProfileService) PublicPlans(ctx context.Context, a apiclient.Auth) ([]PlanCard, error) {
	plans, err := s.API.Plans().List(ctx, a)
	if err != nil {
		return nil, err
	}
	return PlanCards(plans), nil
}

// MyPlan returns the caller's subscription; having none is not an error.
func (s ProfileService) MyPlan(ctx context.Context, a apiclient.Auth) (*models.Subscription, error) {
	sub, err := s.API.Plans().Mine(ctx, a)
	if err != nil {
		if apiErr, ok := apiclient.AsAPIError(err); ok && apiErr.Code == apiclient.CodeSubscriptionNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

// Subscribe starts the payment of a plan.
func (s ProfileService) Subscribe(ctx context.Context, a apiclient.Auth, sessionID string, planID int64, returnPath string) (PaymentStart, error) {
	return s.Payments.StartPlan(ctx, a, sessionID, planID, returnPath)
}
