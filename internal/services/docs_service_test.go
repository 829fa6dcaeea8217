package services

import (
	"bytes"
	"testing"

	"cartrans-backend/internal/domain"
	"cartrans-backend/internal/domain/models"
)

func invoiceTestOrder() models.Order {
	return models.Order{
		ID:                   42,
		UserID:               5,
		CarBrand:             "BMW X5",
		StartDate:            "2026-09-01",
		DistanceKm:           1600,
		AppliedTariff:        110,
		TransportPrice:       176000,
		InsurancePrice:       17600,
		TotalPrice:           193600,
		DurationHours:        39,
		DurationDays:         2,
		EstimatedArrivalDate: "2026-09-03",
		PaymentStatus:        models.PaymentUnpaid,
		UserFullName:         "Иван Петров",
		UserPhone:            "+79990001122",
		CityFromName:         "Москва",
		CityToName:           "Сургут",
	}
}

func TestGenerateInvoice(t *testing.T) {
	svc := DocsService{
		Loader: func(id int64) (models.Order, error) {
			if id != 42 {
				t.Fatalf("unexpected order id %d", id)
			}
			return invoiceTestOrder(), nil
		},
	}

	pdf, filename, err := svc.GenerateInvoice(42)
	if err != nil {
		t.Fatalf("GenerateInvoice error: %v", err)
	}
	if filename != "INV-42.pdf" {
		t.Errorf("filename = %q, want INV-42.pdf", filename)
	}
	if len(pdf) == 0 {
		t.Fatal("empty PDF output")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Errorf("output does not look like a PDF: %q", pdf[:8])
	}
}

func TestGenerateInvoiceUnknownOrder(t *testing.T) {
	svc := DocsService{
		Loader: func(id int64) (models.Order, error) {
			return models.Order{}, domain.NotFoundError{Resource: "order"}
		},
	}

	_, _, err := svc.GenerateInvoice(404)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
