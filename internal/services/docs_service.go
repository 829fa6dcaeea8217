package services

import (
	"bytes"
	"fmt"
	"time"

	"cartrans-backend/internal/domain/models"
	"cartrans-backend/internal/repositories"
	"cartrans-backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders a printable invoice PDF for a created order.
type DocsService struct {
	OrderRepo repositories.OrderRepository
	RequestID string

	// Loader overrides the repository lookup in tests.
	Loader func(int64) (models.Order, error)
}

func (s DocsService) GenerateInvoice(orderID int64) ([]byte, string, error) {
	order, err := s.loadOrder(orderID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_invoice", fmt.Sprintf("order_id=%d", orderID))
	return buildInvoicePDF(order)
}

func (s DocsService) loadOrder(orderID int64) (models.Order, error) {
	if s.Loader != nil {
		return s.Loader(orderID)
	}
	return s.OrderRepo.GetByID(orderID)
}

func buildInvoicePDF(o models.Order) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	// Core fonts carry no Cyrillic glyphs; the cp1251 translator keeps city
	// and customer names readable.
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1251")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	invNo := fmt.Sprintf("INV-%d", o.ID)
	rate := utils.FormatMoney(o.AppliedTariff) + "/km"
	if o.IsFixedRoute {
		rate = "fixed route"
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		"Invoice No   : " + invNo,
		"Issued       : " + time.Now().Format("2006-01-02 15:04"),
		"Customer     : " + tr(safe(o.UserFullName, "-")),
		"Phone        : " + safe(o.UserPhone, "-"),
		"Car          : " + tr(safe(o.CarBrand, "-")),
		"Route        : " + tr(safe(o.CityFromName, "-")) + " -> " + tr(safe(o.CityToName, "-")),
		"Start date   : " + safe(o.StartDate, "-"),
		"Arrival      : " + safe(o.EstimatedArrivalDate, "-"),
		fmt.Sprintf("Distance     : %d km", o.DistanceKm),
		"Rate         : " + rate,
		"Transport    : " + tr(utils.FormatRub(o.TransportPrice)),
		"Insurance    : " + tr(utils.FormatRub(o.InsurancePrice)),
		"Total        : " + tr(utils.FormatRub(o.TotalPrice)),
		"Payment      : " + string(o.PaymentStatus),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "The total includes a 10% insurance fee. Keep this invoice until the car is delivered.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("%s.pdf", invNo)
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
