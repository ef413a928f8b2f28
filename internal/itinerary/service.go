package itinerary

import (
	"context"
	"fmt"

	"tripwise/internal/apiclient"
	"tripwise/internal/domain"
	"tripwise/internal/domain/models"
	"tripwise/internal/utils"
)

// Saver persists a generated itinerary as a Tour.
type Saver interface {
	Save(ctx context.Context, a apiclient.Auth, in models.GeneratedItinerary) (models.Tour, error)
}

// Result is what a submission returns to the page, on success or failure.
type Result struct {
	Itinerary         *models.GeneratedItinerary `json:"itinerary,omitempty"`
	FirstInvalidField string                     `json:"firstInvalidField,omitempty"`
	FollowUp          FollowUp                   `json:"followUp,omitempty"`
	TotalCost         int64                      `json:"totalCost,omitempty"`
}

type Service struct {
	Generator Generator
	Saver     Saver
}

func NewService(gen Generator, saver Saver) Service {
	return Service{Generator: gen, Saver: saver}
}

// Submit validates, composes and generates. Invalid input never reaches the generator.
func (s Service) Submit(ctx context.Context, a apiclient.Auth, in Input) (Result, error) {
	req, err := Compose(in)
	if err != nil {
		res := Result{}
		if fields, ok := domain.AsFieldErrors(err); ok {
			res.FirstInvalidField = fields.First()
		}
		return res, err
	}

	utils.LogEvent(a.RequestID, "itinerary", "generate",
		fmt.Sprintf("destination=%q days=%d budget=%d", req.Destination, req.Days, req.Budget))
	out, err := s.Generator.Generate(ctx, a, req)
	if err != nil {
		utils.LogError(a.RequestID, "itinerary", "generate", err)
		return Result{FollowUp: FollowUpFor(err)}, err
	}
	return Result{Itinerary: &out, TotalCost: out.TotalCost()}, nil
}

// Save stores a generated plan as a Tour owned by the caller.
func (s Service) Save(ctx context.Context, a apiclient.Auth, in models.GeneratedItinerary) (models.Tour, error) {
	if len(in.Plan) == 0 {
		return models.Tour{}, domain.ValidationError{Field: "plan", Msg: "itinerary has no days"}
	}
	if s.Saver == nil {
		return models.Tour{}, domain.InternalError{Msg: "itinerary saving is not configured"}
	}
	return s.Saver.Save(ctx, a, in)
}
