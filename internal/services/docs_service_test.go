package services

import (
	"bytes"
	"testing"

	"tripwise/internal/domain/models"
)

func TestDocsServiceGenerate(t *testing.T) {
	svc := DocsService{Now: func() string { return "2026-06-01 10:00:00" }}

	pdf, filename, err := svc.BookingTicket(models.Booking{
		ID:            10,
		TourName:      "Tour Đà Lạt 3N2Đ",
		CustomerName:  "Nguyễn Văn A",
		Adults:        2,
		Children:      1,
		Amount:        4500000,
		Status:        models.BookingPaid,
		DepartureDate: "2026-07-01",
	})
	if err != nil {
		t.Fatalf("BookingTicket returned error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("BookingTicket did not return a PDF")
	}
	if filename != "ETICKET_10_Tour_Da_Lat_3N2D.pdf" {
		t.Fatalf("filename = %q", filename)
	}

	it := models.GeneratedItinerary{
		Destination: "Huế",
		TravelDate:  "2026-07-01",
		Days:        1,
		Budget:      1000000,
		Plan: []models.Day{{DayNumber: 1, Title: "Đại Nội", Activities: []models.Activity{
			{Order: 1, Time: "08:00", Title: "Kinh thành", Cost: 200000, Description: "Vé vào cửa"},
		}}},
	}
	doc, name, err := svc.ItineraryPDF(it)
	if err != nil {
		t.Fatalf("ItineraryPDF returned error: %v", err)
	}
	if len(doc) == 0 || name != "ITINERARY_Hue_2026-07-01.pdf" {
		t.Fatalf("ItineraryPDF returned %d bytes, name %q", len(doc), name)
	}
}

func TestPriceText(t *testing.T) {
	if got := priceText(45000); got != "45.000 VND" {
		t.Fatalf("priceText = %q", got)
	}
}
