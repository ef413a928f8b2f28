package services

import (
	"bytes"
	"fmt"
	"strings"

	"tripwise/internal/domain/models"
	"tripwise/internal/utils"

	"github.com/gosimple/unidecode"
	"github.com/phpdave11/gofpdf"
)

// DocsService renders booking e-tickets and itinerary exports as PDF.
type DocsService struct {
	// Now stamps the issue time; nil means utils.Now.
	Now func() string
}

func (s DocsService) issuedAt() string {
	if s.Now != nil {
		return s.Now()
	}
	return utils.FormatDateTime(utils.Now())
}

// BookingTicket builds the e-ticket of a paid booking.
func (s DocsService) BookingTicket(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRIPWISE E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Tour           : %s", safe(b.TourName, "-")),
		fmt.Sprintf("Customer       : %s", safe(b.CustomerName, "-")),
		fmt.Sprintf("Departure date : %s", safe(dateOnly(b.DepartureDate), "-")),
		fmt.Sprintf("Guests         : %d adult(s), %d child(ren)", b.Adults, b.Children),
		fmt.Sprintf("Amount         : %s", priceText(b.Amount)),
		fmt.Sprintf("Status         : %s", safe(b.Status, "-")),
		fmt.Sprintf("Booking code   : #%d", b.ID),
		fmt.Sprintf("Order code     : %s", safe(b.OrderCode, "-")),
		fmt.Sprintf("Issued at      : %s", s.issuedAt()),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, pdfText(l))
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this e-ticket to the tour guide on the departure day.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("ETICKET_%d_%s.pdf", b.ID, safeFilenamePart(pdfText(b.TourName)))
	return buf.Bytes(), filename, nil
}

// ItineraryPDF exports a generated itinerary day by day with its total cost.
func (s DocsService) ItineraryPDF(it models.GeneratedItinerary) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Itinerary", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, pdfText("Itinerary: "+safe(it.Destination, "-")))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, pdfText(fmt.Sprintf("Date: %s   Days: %d   Budget from: %s",
		safe(it.TravelDate, "-"), it.Days, priceText(it.Budget))))
	pdf.Ln(6)
	if len(it.Preferences) > 0 {
		pdf.Cell(0, 6, pdfText("Preferences: "+strings.Join(it.Preferences, ", ")))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	for _, day := range it.Plan {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, pdfText(fmt.Sprintf("Day %d: %s", day.DayNumber, safe(day.Title, ""))))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, a := range day.Activities {
			line := fmt.Sprintf("%d. %s %s (%s)", a.Order, safe(timeHM(a.Time), "--:--"), a.Title, priceText(a.Cost))
			pdf.MultiCell(0, 6, pdfText(line), "", "", false)
			if strings.TrimSpace(a.Description) != "" {
				pdf.SetFont("Helvetica", "I", 10)
				pdf.MultiCell(0, 5, pdfText("   "+a.Description), "", "", false)
				pdf.SetFont("Helvetica", "", 11)
			}
		}
		pdf.Ln(3)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+priceText(it.TotalCost()))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("ITINERARY_%s_%s.pdf", safeFilenamePart(pdfText(it.Destination)), safeFilenamePart(it.TravelDate))
	return buf.Bytes(), filename, nil
}

// pdfText transliterates to ASCII; the core PDF fonts have no Vietnamese glyphs.
func pdfText(s string) string {
	return unidecode.Unidecode(s)
}

func priceText(v int64) string {
	return strings.TrimSuffix(utils.FormatVND(v), " ₫") + " VND"
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func dateOnly(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 10 {
		return v[:10]
	}
	return v
}

func timeHM(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 5 {
		return v[:5]
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
