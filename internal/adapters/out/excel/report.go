// Package excel renders the completed-orders report as an xlsx workbook.
// The workbook is the hand-off format the back office sends to accounting,
// so the column layout mirrors the completed-orders screen.
package excel

import (
	"bytes"
	"fmt"
	"time"

	"logistics/internal/core/application/usecases/queries"

	"github.com/xuri/excelize/v2"
)

const (
	sheetName  = "Completed orders"
	dateLayout = "02.01.2006"

	// fuelNotApplicable marks orders whose fuel estimate was skipped, so a
	// blank cell is never mistaken for a zero cost.
	fuelNotApplicable = "not applicable"
)

var headers = []string{
	"Order number",
	"Client",
	"Driver",
	"Truck",
	"Trailer",
	"Goods",
	"Loading address",
	"Unloading address",
	"Loading date",
	"Start date",
	"End date",
	"Km domestic",
	"Km international",
	"Total km",
	"Fuel cost",
	"Price",
}

// CompletedOrdersReport builds xlsx workbooks from completed order rows.
type CompletedOrdersReport struct{}

// NewCompletedOrdersReport creates a report builder.
func NewCompletedOrdersReport() CompletedOrdersReport {
	return CompletedOrdersReport{}
}

// Render produces the workbook bytes for the given completed orders.
// Orders appear in the given order, one row each, under a header row.
func (CompletedOrdersReport) Render(orders []queries.CompletedOrderResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	if err = f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	for i, header := range headers {
		cell, cellErr := excelize.CoordinatesToCellName(i+1, 1)
		if cellErr != nil {
			return nil, cellErr
		}
		if err = f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, err
		}
	}

	for rowIndex, row := range orders {
		if err = writeRow(f, rowIndex+2, row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err = f.Write(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, rowIndex int, row queries.CompletedOrderResponse) error {
	var fuelCell any = fuelNotApplicable
	if row.FuelCost != nil {
		fuelCell = *row.FuelCost
	}

	values := []any{
		row.Number,
		row.ClientName,
		row.DriverName,
		row.TruckPlate,
		row.TrailerPlate,
		row.GoodsDescription,
		row.LoadingAddress,
		row.UnloadingAddress,
		row.LoadingDate.Format(dateLayout),
		formatDate(row.StartDate),
		formatDate(row.EndDate),
		row.KmDomestic,
		row.KmInternational,
		row.TotalKm,
		fuelCell,
		row.Price,
	}

	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowIndex)
		if err != nil {
			return err
		}
		if err = f.SetCellValue(sheetName, cell, value); err != nil {
			return err
		}
	}

	return nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

// Filename returns the suggested attachment name for a report generated now.
func (CompletedOrdersReport) Filename(now time.Time) string {
	return fmt.Sprintf("completed-orders-%s.xlsx", now.Format("2006-01-02"))
}
