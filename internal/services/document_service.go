package services

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"rental-backend/internal/models"

	"github.com/jung-kurt/gofpdf/v2"
)

// DocumentService renders the printable paperwork: rental invoices and
// agreements, per-car technical sheets and the fleet report.
type DocumentService struct {
	CarStore      CarStore
	CustomerStore CustomerStore
	RentalStore   RentalStore
	HistoryStore  TechnicalHistoryStore

	CompanyName string
}

func NewDocumentService(carStore CarStore, customerStore CustomerStore, rentalStore RentalStore, historyStore TechnicalHistoryStore, companyName string) *DocumentService {
	return &DocumentService{
		CarStore:      carStore,
		CustomerStore: customerStore,
		RentalStore:   rentalStore,
		HistoryStore:  historyStore,
		CompanyName:   companyName,
	}
}

func (s *DocumentService) header(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, fmt.Sprintf("%s - %s", s.CompanyName, title), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", time.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)
}

func sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, title, "1", 1, "L", true, 0, "")
}

func intOrDash(v *int, suffix string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d%s", *v, suffix)
}

// RentalInvoice renders the invoice for a single rental.
func (s *DocumentService) RentalInvoice(ctx context.Context, rentalID int) ([]byte, error) {
	rental, err := s.RentalStore.Get(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	car, err := s.CarStore.Get(ctx, rental.CarID)
	if err != nil {
		return nil, err
	}
	customer, err := s.CustomerStore.Get(ctx, rental.CustomerID)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()
	s.header(pdf, fmt.Sprintf("Invoice #%d", rental.ID))

	sectionTitle(pdf, "Customer")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Name: %s", customer.Name), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Email: %s", customer.Email), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Phone: %s", customer.Phone), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("License: %s", customer.DriverLicense), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	sectionTitle(pdf, "Vehicle")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Car: %s %s (%d)", car.Brand, car.Model, car.Year), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Plate: %s", car.LicensePlate), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	sectionTitle(pdf, "Rental")
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(40, 7, "Start", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "End", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Days", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Daily Rate", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Status", "1", 1, "C", true, 0, "")

	days := rental.StartDate.DaysUntil(rental.EndDate) + 1
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(40, 6, rental.StartDate.String(), "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, rental.EndDate.String(), "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, fmt.Sprintf("%d", days), "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", car.DailyRate), "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, rental.Status, "1", 1, "C", false, 0, "")
	pdf.Ln(5)

	if rental.PaymentStatus == models.PaymentStatusPaid {
		pdf.SetFillColor(200, 255, 200)
	} else {
		pdf.SetFillColor(255, 200, 200)
	}
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(190, 10, fmt.Sprintf("Total: %.2f (%s)", rental.TotalCost, rental.PaymentStatus), "1", 1, "C", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RentalAgreement renders the signable handover document, including
// condition snapshots when recorded.
func (s *DocumentService) RentalAgreement(ctx context.Context, rentalID int) ([]byte, error) {
	rental, err := s.RentalStore.Get(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	car, err := s.CarStore.Get(ctx, rental.CarID)
	if err != nil {
		return nil, err
	}
	customer, err := s.CustomerStore.Get(ctx, rental.CustomerID)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()
	s.header(pdf, fmt.Sprintf("Rental Agreement #%d", rental.ID))

	sectionTitle(pdf, "Parties")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(190, 7, fmt.Sprintf("Lessor: %s", s.CompanyName), "LRB", 1, "L", false, 0, "")
	pdf.CellFormat(190, 7, fmt.Sprintf("Lessee: %s, driver license %s", customer.Name, customer.DriverLicense), "LRB", 1, "L", false, 0, "")
	pdf.Ln(5)

	sectionTitle(pdf, "Vehicle and Term")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Vehicle: %s %s (%s)", car.Brand, car.Model, car.LicensePlate), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Category: %s", car.Category), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("From: %s", rental.StartDate), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("To: %s (inclusive)", rental.EndDate), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(190, 7, fmt.Sprintf("Agreed total: %.2f", rental.TotalCost), "LRB", 1, "L", false, 0, "")
	pdf.Ln(5)

	sectionTitle(pdf, "Condition at Handover / Return")
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(47, 7, "Odometer out", "1", 0, "C", true, 0, "")
	pdf.CellFormat(47, 7, "Odometer in", "1", 0, "C", true, 0, "")
	pdf.CellFormat(48, 7, "Fuel out", "1", 0, "C", true, 0, "")
	pdf.CellFormat(48, 7, "Fuel in", "1", 1, "C", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(47, 6, intOrDash(rental.StartOdometer, " km"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(47, 6, intOrDash(rental.EndOdometer, " km"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(48, 6, intOrDash(rental.StartFuelLevel, "%"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(48, 6, intOrDash(rental.EndFuelLevel, "%"), "1", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 10, "Lessor signature: ____________________", "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 10, "Lessee signature: ____________________", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CarTechnicalSheet renders a car's technical state and its audit trail.
func (s *DocumentService) CarTechnicalSheet(ctx context.Context, carID int) ([]byte, error) {
	car, err := s.CarStore.Get(ctx, carID)
	if err != nil {
		return nil, err
	}
	history, err := s.HistoryStore.ListByCar(ctx, carID)
	if err != nil {
		return nil, err
	}
	return s.renderTechnicalSheet(car, history)
}

func (s *DocumentService) renderTechnicalSheet(car *models.Car, history []*models.TechnicalHistoryEntry) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()
	s.header(pdf, fmt.Sprintf("Technical Sheet - %s", car.LicensePlate))

	sectionTitle(pdf, "Vehicle")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Car: %s %s (%d)", car.Brand, car.Model, car.Year), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Status: %s", car.Status), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Odometer: %d km", car.Odometer), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Fuel: %d%% %s", car.FuelLevel, car.FuelType), "RB", 1, "L", false, 0, "")
	lastService := "-"
	if car.LastServiceDate != nil {
		lastService = car.LastServiceDate.String()
	}
	insurance := "-"
	if car.InsuranceExpiry != nil {
		insurance = car.InsuranceExpiry.String()
	}
	pdf.CellFormat(95, 7, fmt.Sprintf("Last service: %s", lastService), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Insurance until: %s", insurance), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	if len(history) > 0 {
		sectionTitle(pdf, "Maintenance History")
		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(200, 200, 200)
		pdf.CellFormat(35, 7, "Date", "1", 0, "C", true, 0, "")
		pdf.CellFormat(30, 7, "Odometer", "1", 0, "C", true, 0, "")
		pdf.CellFormat(20, 7, "Fuel", "1", 0, "C", true, 0, "")
		pdf.CellFormat(35, 7, "By", "1", 0, "C", true, 0, "")
		pdf.CellFormat(70, 7, "Note", "1", 1, "C", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		for _, e := range history {
			note := e.Note
			if len(note) > 38 {
				note = note[:35] + "..."
			}
			pdf.CellFormat(35, 6, e.CreatedAt.Format("02-Jan-2006"), "1", 0, "C", false, 0, "")
			pdf.CellFormat(30, 6, fmt.Sprintf("%d", e.Odometer), "1", 0, "C", false, 0, "")
			pdf.CellFormat(20, 6, fmt.Sprintf("%d%%", e.FuelLevel), "1", 0, "C", false, 0, "")
			pdf.CellFormat(35, 6, e.UserName, "1", 0, "C", false, 0, "")
			pdf.CellFormat(70, 6, note, "1", 1, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FleetReport renders the whole fleet in landscape, one row per car.
func (s *DocumentService) FleetReport(ctx context.Context) ([]byte, error) {
	cars, err := s.CarStore.List(ctx, "", "")
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("L", "mm", "A4", "") // Landscape for more columns
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(277, 10, fmt.Sprintf("%s - Fleet Report", s.CompanyName), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(277, 6, fmt.Sprintf("Generated: %s", time.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(55, 7, "Car", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Plate", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Category", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Rate/day", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Status", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Odometer", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Fuel", "1", 0, "C", true, 0, "")
	pdf.CellFormat(32, 7, "Transmission", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Insurance", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, car := range cars {
		insurance := "-"
		if car.InsuranceExpiry != nil {
			insurance = car.InsuranceExpiry.String()
		}
		pdf.CellFormat(55, 6, fmt.Sprintf("%s %s (%d)", car.Brand, car.Model, car.Year), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, car.LicensePlate, "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 6, car.Category, "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%.2f", car.DailyRate), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, car.Status, "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d km", car.Odometer), "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d%%", car.FuelLevel), "1", 0, "C", false, 0, "")
		pdf.CellFormat(32, 6, car.Transmission, "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, insurance, "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BulkTechnicalSheets renders one technical sheet per car in parallel
// and returns them packed in a single ZIP.
func (s *DocumentService) BulkTechnicalSheets(ctx context.Context) ([]byte, error) {
	cars, err := s.CarStore.List(ctx, "", "")
	if err != nil {
		return nil, err
	}

	type sheetResult struct {
		plate string
		data  []byte
		err   error
	}

	jobs := make(chan *models.Car, len(cars))
	results := make(chan sheetResult, len(cars))

	var wg sync.WaitGroup
	numWorkers := 5
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for car := range jobs {
				history, err := s.HistoryStore.ListByCar(ctx, car.ID)
				if err != nil {
					results <- sheetResult{plate: car.LicensePlate, err: err}
					continue
				}
				data, err := s.renderTechnicalSheet(car, history)
				results <- sheetResult{plate: car.LicensePlate, data: data, err: err}
			}
		}()
	}

	for _, car := range cars {
		jobs <- car
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for r := range results {
		if r.err != nil || r.data == nil {
			continue
		}
		fw, err := zw.Create(fmt.Sprintf("technical_%s.pdf", r.plate))
		if err != nil {
			continue
		}
		fw.Write(r.data)
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
