package manager

import (
	"bytes"
	"fmt"

	"hotel/internal/domain"

	"github.com/xuri/excelize/v2"
)

const folioSheet = "Folio"

// FolioFileName is the download name for a booking's spreadsheet.
func FolioFileName(bookingID int64) string {
	return fmt.Sprintf("folio_%d.xlsx", bookingID)
}

// RenderFolio writes the folio as an .xlsx workbook.
func RenderFolio(f *Folio) ([]byte, error) {
	x := excelize.NewFile()
	defer x.Close()

	index, err := x.NewSheet(folioSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	x.SetActiveSheet(index)
	_ = x.DeleteSheet("Sheet1")

	b := f.Booking
	guest, room, category := "", "", ""
	if b.Guest != nil {
		guest = b.Guest.FullName
	}
	if b.Room != nil {
		room = fmt.Sprintf("#%d, floor %d", b.Room.ID, b.Room.Floor)
		if b.Room.Category != nil {
			category = b.Room.Category.Name
		}
	}

	_ = x.SetCellValue(folioSheet, "A1", fmt.Sprintf("Booking #%d", b.ID))
	_ = x.MergeCell(folioSheet, "A1", "E1")
	header := []struct{ label, value any }{
		{"Guest", guest},
		{"Room", room},
		{"Category", category},
		{"Check-in", b.CheckInDate.Format(domain.DateLayout)},
		{"Check-out", b.CheckOutDate.Format(domain.DateLayout)},
		{"Nights", b.Nights()},
		{"Accommodation", b.TotalCost},
	}
	row := 2
	for _, h := range header {
		_ = x.SetCellValue(folioSheet, cell(1, row), h.label)
		_ = x.SetCellValue(folioSheet, cell(2, row), h.value)
		row++
	}

	row++
	tableTop := row
	for col, title := range []string{"Date", "Service", "Quantity", "Unit price", "Total"} {
		_ = x.SetCellValue(folioSheet, cell(col+1, row), title)
	}
	row++
	for _, l := range f.Lines {
		_ = x.SetCellValue(folioSheet, cell(1, row), l.Date)
		_ = x.SetCellValue(folioSheet, cell(2, row), l.Service)
		_ = x.SetCellValue(folioSheet, cell(3, row), l.Quantity)
		_ = x.SetCellValue(folioSheet, cell(4, row), l.UnitPrice)
		_ = x.SetCellValue(folioSheet, cell(5, row), l.Total)
		row++
	}

	row++
	totals := []struct {
		label string
		value float64
	}{
		{"Services", f.ServicesTotal},
		{"Grand total", f.GrandTotal},
		{"Paid", b.PaidAmount},
		{"Balance", f.Balance},
	}
	totalsTop := row
	for _, t := range totals {
		_ = x.SetCellValue(folioSheet, cell(4, row), t.label)
		_ = x.SetCellValue(folioSheet, cell(5, row), t.value)
		row++
	}

	if err := styleFolio(x, tableTop, totalsTop, row-1); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := x.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func styleFolio(x *excelize.File, tableTop, totalsTop, lastRow int) error {
	title, err := x.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("title style: %w", err)
	}
	head, err := x.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	money, err := x.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return fmt.Errorf("money style: %w", err)
	}

	_ = x.SetCellStyle(folioSheet, "A1", "A1", title)
	_ = x.SetCellStyle(folioSheet, cell(1, tableTop), cell(5, tableTop), head)
	_ = x.SetCellStyle(folioSheet, cell(4, tableTop+1), cell(5, lastRow), money)
	_ = x.SetCellStyle(folioSheet, cell(4, totalsTop), cell(4, lastRow), head)
	_ = x.SetColWidth(folioSheet, "A", "A", 16)
	_ = x.SetColWidth(folioSheet, "B", "B", 28)
	_ = x.SetColWidth(folioSheet, "C", "E", 14)
	return nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
