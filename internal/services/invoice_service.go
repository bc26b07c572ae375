package services

import (
	"bytes"
	"context"
	"fmt"

	"smartbiz-backend/internal/models"
	"smartbiz-backend/internal/repositories"
	"smartbiz-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// InvoiceService renders sale receipts as PDF.
type InvoiceService struct {
	TxnRepo *repositories.TransactionRepository
}

func NewInvoiceService(txnRepo *repositories.TransactionRepository) *InvoiceService {
	return &InvoiceService{TxnRepo: txnRepo}
}

// GenerateSaleInvoice renders the invoice PDF for a committed sale.
func (s *InvoiceService) GenerateSaleInvoice(ctx context.Context, transactionID string) ([]byte, error) {
	txn, err := s.TxnRepo.Get(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn == nil || txn.Type != models.TransactionSale {
		return nil, fmt.Errorf("sale %s not found", transactionID)
	}
	return renderInvoicePDF(txn), nil
}

func renderInvoicePDF(txn *models.Transaction) []byte {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "SmartBiz - Sales Invoice", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Invoice: %s", txn.ID), "", 1, "C", false, 0, "")
	pdf.CellFormat(190, 6, fmt.Sprintf("Date: %s", timeutil.ToBST(txn.CreatedAt).Format(timeutil.DisplayLayout)), "", 1, "C", false, 0, "")
	pdf.CellFormat(190, 6, fmt.Sprintf("Printed: %s", timeutil.Now().Format(timeutil.DisplayLayout)), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Customer Info
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Customer", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Name: %s", txn.PartyName), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Phone: %s", txn.PartyPhone), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Address: %s", txn.PartyAddress), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Sale Type: %s", txn.SaleType), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Items
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Items", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(75, 7, "Product", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "SKU", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Price", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Total", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, item := range txn.Items {
		name := item.Name
		if len(name) > 35 {
			name = name[:32] + "..."
		}
		pdf.CellFormat(75, 6, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, item.SKU, "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", item.Qty), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("Tk %.2f", item.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("Tk %.2f", item.Price*float64(item.Qty)), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(5)

	// Totals
	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(190, 8, "Summary", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	writeTotalRow(pdf, "Subtotal", txn.Subtotal)
	if txn.AdditionalExpense > 0 {
		writeTotalRow(pdf, "Additional Expense", txn.AdditionalExpense)
	}
	if txn.VAT > 0 {
		writeTotalRow(pdf, "VAT", txn.VAT)
	}
	if txn.Discount > 0 {
		writeTotalRow(pdf, "Discount", -txn.Discount)
	}
	writeTotalRow(pdf, "Payable", txn.Amount)
	writeTotalRow(pdf, fmt.Sprintf("Paid (%s)", txn.PaymentMethod), txn.PaidAmount)
	if txn.ChangeAmount > 0 {
		writeTotalRow(pdf, "Change", txn.ChangeAmount)
	}

	if txn.DueAmount > 0 {
		pdf.SetFillColor(255, 200, 200)
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(190, 10, fmt.Sprintf("Due: Tk %.2f", txn.DueAmount), "1", 1, "C", true, 0, "")
	} else {
		pdf.SetFillColor(200, 255, 200)
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(190, 10, "FULLY PAID", "1", 1, "C", true, 0, "")
	}

	if txn.ServiceStaff != "" {
		pdf.Ln(5)
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(190, 6, fmt.Sprintf("Served by: %s", txn.ServiceStaff), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	pdf.Output(&buf)
	return buf.Bytes()
}

func writeTotalRow(pdf *gofpdf.Fpdf, label string, amount float64) {
	pdf.CellFormat(130, 7, label, "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 7, fmt.Sprintf("Tk %.2f", amount), "1", 1, "R", false, 0, "")
}
