// Package receipt renders printable PDF receipts for placed orders.
package receipt

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mdshopp/storefront/internal/models"
)

var paymentLabels = map[models.PaymentMethod]string{
	models.PaymentWave:           "Wave",
	models.PaymentOrange:         "Orange Money",
	models.PaymentCashOnDelivery: "Cash on delivery",
}

var pricePrinter = message.NewPrinter(language.English)

// FormatPrice renders an FCFA amount with space separated thousands.
func FormatPrice(v int64) string {
	return strings.ReplaceAll(pricePrinter.Sprintf("%d", v), ",", " ") + " FCFA"
}

// QRPayload is what the receipt QR code encodes.
func QRPayload(siteName string, o models.Order) string {
	return fmt.Sprintf("%s|order|%d|%d", siteName, o.ID, o.Total)
}

func Render(o models.Order, siteName string) ([]byte, error) {
	qrPNG, err := qrcode.Encode(QRPayload(siteName, o), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("qr code: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(siteName+" receipt"), false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, tr(siteName))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Order #%d", o.ID))
	pdf.Ln(6)
	pdf.Cell(0, 7, tr("Date: "+o.Date))
	pdf.Ln(6)
	pdf.Cell(0, 7, "Status: "+o.Status.Label())
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 7, "Customer")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, tr(o.Customer.Name))
	pdf.Ln(6)
	if o.Customer.Email != "" {
		pdf.Cell(0, 6, tr(o.Customer.Email))
		pdf.Ln(6)
	}
	pdf.MultiCell(110, 6, tr(o.Customer.Address), "", "L", false)
	pdf.Ln(2)

	method := paymentLabels[o.PaymentMethod]
	if method == "" {
		method = string(o.PaymentMethod)
	}
	pdf.Cell(0, 6, tr("Payment: "+method))
	pdf.Ln(6)
	if o.PaymentMethod.MobileMoney() {
		pdf.Cell(0, 6, tr("Phone: "+o.PhoneNumber))
		pdf.Ln(6)
	}

	pdf.RegisterImageOptionsReader("qr", gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 30, 40, 40, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetY(85)
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(95, 8, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 8, "Unit price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, it := range o.Items {
		pdf.CellFormat(95, 7, tr(it.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, strconv.Itoa(it.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 7, FormatPrice(it.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, FormatPrice(it.Price*int64(it.Quantity)), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(150, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, FormatPrice(o.Total), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
