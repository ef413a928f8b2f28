// Package itinerary implements the AI trip-planning form: a declarative field
// list that drives both the schema endpoint and validation, plus generators.
package itinerary

import (
	"strconv"
	"strings"

	"tripwise/internal/domain"
	"tripwise/internal/domain/models"
	"tripwise/internal/utils"
)

// Kind is how the browser renders a field.
type Kind string

const (
	KindText          Kind = "text"
	KindDate          Kind = "date"
	KindNumber        Kind = "number"
	KindCheckboxGroup Kind = "checkbox-group"
	KindRadioGroup    Kind = "radio-group"
)

// Option is one choice of a checkbox or radio group.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Input is the raw submitted form.
type Input struct {
	Destination string   `json:"destination"`
	Departure   string   `json:"departure"`
	TravelDate  string   `json:"travelDate"`
	Days        int      `json:"days"`
	People      int      `json:"people"`
	Preferences []string `json:"preferences"`
	Budget      string   `json:"budget"`
}

// Field describes one form input. Validate returns "" when the value is fine.
type Field struct {
	Name     string            `json:"name"`
	Label    string            `json:"label"`
	Kind     Kind              `json:"kind"`
	Options  []Option          `json:"options,omitempty"`
	Validate func(Input) string `json:"-"`
}

var PreferenceOptions = []Option{
	{Value: "nature", Label: "Thiên nhiên"},
	{Value: "culture", Label: "Văn hóa - lịch sử"},
	{Value: "food", Label: "Ẩm thực"},
	{Value: "beach", Label: "Biển"},
	{Value: "adventure", Label: "Phiêu lưu"},
	{Value: "relax", Label: "Nghỉ dưỡng"},
	{Value: "shopping", Label: "Mua sắm"},
	{Value: "nightlife", Label: "Về đêm"},
}

var BudgetOptions = []Option{
	{Value: "500000-1000000", Label: "500.000 - 1.000.000 ₫"},
	{Value: "1000000-2000000", Label: "1.000.000 - 2.000.000 ₫"},
	{Value: "2000000-3000000", Label: "2.000.000 - 3.000.000 ₫"},
	{Value: "3000000-5000000", Label: "3.000.000 - 5.000.000 ₫"},
	{Value: "5000000+", Label: "Trên 5.000.000 ₫"},
}

// Fields is the form in display order. Validation reports failures in this order.
var Fields = []Field{
	{Name: "destination", Label: "Điểm đến", Kind: KindText, Validate: func(in Input) string {
		return required(in.Destination)
	}},
	{Name: "departure", Label: "Nơi khởi hành", Kind: KindText, Validate: func(in Input) string {
		return required(in.Departure)
	}},
	{Name: "travelDate", Label: "Ngày đi", Kind: KindDate, Validate: func(in Input) string {
		if strings.TrimSpace(in.TravelDate) == "" {
			return "is required"
		}
		ok, err := utils.NotBeforeToday(in.TravelDate)
		if err != nil {
			return "must be a date in YYYY-MM-DD format"
		}
		if !ok {
			return "must not be in the past"
		}
		return ""
	}},
	{Name: "days", Label: "Số ngày", Kind: KindNumber, Validate: func(in Input) string {
		return positive(in.Days)
	}},
	{Name: "people", Label: "Số người", Kind: KindNumber, Validate: func(in Input) string {
		return positive(in.People)
	}},
	{Name: "preferences", Label: "Sở thích", Kind: KindCheckboxGroup, Options: PreferenceOptions, Validate: func(in Input) string {
		if len(in.Preferences) == 0 {
			return "select at least one preference"
		}
		for _, p := range in.Preferences {
			if !hasOption(PreferenceOptions, p) {
				return "unknown preference " + strconv.Quote(p)
			}
		}
		return ""
	}},
	{Name: "budget", Label: "Ngân sách", Kind: KindRadioGroup, Options: BudgetOptions, Validate: func(in Input) string {
		if !hasOption(BudgetOptions, in.Budget) {
			return "select a budget range"
		}
		return ""
	}},
}

func required(s string) string {
	if strings.TrimSpace(s) == "" {
		return "is required"
	}
	return ""
}

func positive(n int) string {
	if n <= 0 {
		return "must be a positive number"
	}
	return ""
}

func hasOption(opts []Option, v string) bool {
	for _, o := range opts {
		if o.Value == v {
			return true
		}
	}
	return false
}

// Validate checks every field and returns FieldErrors in declaration order, so
// First() names the field the browser scrolls to.
func Validate(in Input) error {
	var errs domain.FieldErrors
	for _, f := range Fields {
		if msg := f.Validate(in); msg != "" {
			errs.Add(f.Name, msg)
		}
	}
	return errs.OrNil()
}

// BudgetFloor maps a budget label to its lower bound in VND:
// "2000000-3000000" -> 2000000, "5000000+" -> 5000000.
func BudgetFloor(label string) (int64, error) {
	label = strings.TrimSpace(label)
	if !hasOption(BudgetOptions, label) {
		return 0, domain.ValidationError{Field: "budget", Msg: "select a budget range"}
	}
	lower := strings.TrimSuffix(label, "+")
	if i := strings.IndexByte(lower, '-'); i >= 0 {
		lower = lower[:i]
	}
	return utils.ParseVND(lower)
}

// Compose validates the input and builds the generator request.
func Compose(in Input) (models.ItineraryRequest, error) {
	if err := Validate(in); err != nil {
		return models.ItineraryRequest{}, err
	}
	floor, err := BudgetFloor(in.Budget)
	if err != nil {
		return models.ItineraryRequest{}, err
	}
	return models.ItineraryRequest{
		Destination: strings.TrimSpace(in.Destination),
		Departure:   strings.TrimSpace(in.Departure),
		TravelDate:  strings.TrimSpace(in.TravelDate),
		Days:        in.Days,
		People:      in.People,
		Preferences: append([]string(nil), in.Preferences...),
		Budget:      floor,
	}, nil
}
