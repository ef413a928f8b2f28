package ai

import (
	"strings"
	"testing"

	"tripwise/internal/domain/models"
)

func TestDecode_NumbersDaysAndActivities(t *testing.T) {
	req := models.ItineraryRequest{Destination: "Đà Lạt", TravelDate: "2026-12-01", Days: 2, Budget: 2000000}
	raw := "```json\n" + `{"plan":[
		{"day":5,"title":"Arrive","activities":[{"time":"08:00","title":"Coffee","cost":45000},{"title":"Market","cost":0}]},
		{"day":9,"title":"Lakes","activities":[{"title":"Boat","cost":120000}]}
	]}` + "\n```"

	got, err := Decode(req, raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Plan) != 2 || got.Plan[0].DayNumber != 1 || got.Plan[1].DayNumber != 2 {
		t.Fatalf("days not renumbered: %+v", got.Plan)
	}
	if got.Plan[0].Activities[1].Order != 2 {
		t.Fatalf("activities not numbered: %+v", got.Plan[0].Activities)
	}
	if got.TotalCost() != 165000 {
		t.Fatalf("total = %d", got.TotalCost())
	}
	if got.Destination != "Đà Lạt" || got.Budget != 2000000 {
		t.Fatalf("request fields not carried: %+v", got)
	}
}

func TestDecode_RejectsEmptyPlan(t *testing.T) {
	if _, err := Decode(models.ItineraryRequest{}, `{"plan":[]}`); err == nil {
		t.Fatal("expected error for empty plan")
	}
	if _, err := Decode(models.ItineraryRequest{}, `not json`); err == nil {
		t.Fatal("expected error for bad json")
	}
}

func TestPrompt_MentionsRequest(t *testing.T) {
	p := Prompt(models.ItineraryRequest{Destination: "Huế", Departure: "Hà Nội", Days: 3, People: 2, Preferences: []string{"food", "culture"}, Budget: 1000000})
	for _, want := range []string{"Huế", "Hà Nội", "3-day", "food, culture", "1000000"} {
		if !strings.Contains(p, want) {
			t.Fatalf("prompt %q missing %q", p, want)
		}
	}
}
