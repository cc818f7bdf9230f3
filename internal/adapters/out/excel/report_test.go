package excel

import (
	"bytes"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func Test_Render_WritesHeaderAndRows(t *testing.T) {
	loadingDate := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	startDate := time.Date(2026, 3, 15, 8, 30, 0, 0, time.UTC)
	endDate := time.Date(2026, 3, 18, 17, 0, 0, 0, time.UTC)
	fuelCost := 57.0

	orders := []queries.CompletedOrderResponse{
		{
			ID:               kernel.NewUUID(),
			Number:           "OD-01/2026",
			ClientName:       "Acme Logistics",
			DriverName:       "John Smith",
			TruckPlate:       "AB-123-CD",
			TrailerPlate:     "TR-456-EF",
			GoodsDescription: "Steel coils",
			LoadingAddress:   "Rotterdam",
			UnloadingAddress: "Munich",
			LoadingDate:      loadingDate,
			StartDate:        &startDate,
			EndDate:          &endDate,
			Price:            2500,
			KmDomestic:       100,
			KmInternational:  50,
			TotalKm:          150,
			FuelCost:         &fuelCost,
		},
		{
			ID:               kernel.NewUUID(),
			Number:           "OD-02/2026",
			ClientName:       "Beta Freight",
			DriverName:       "Jane Doe",
			TruckPlate:       "XY-789-ZZ",
			TrailerPlate:     "TR-001-AA",
			GoodsDescription: "Packaged food",
			LoadingAddress:   "Hamburg",
			UnloadingAddress: "Vienna",
			LoadingDate:      loadingDate,
			Price:            1800,
			KmDomestic:       320,
			KmInternational:  0,
			TotalKm:          320,
		},
	}

	report := NewCompletedOrdersReport()
	data, err := report.Render(orders)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetName}, f.GetSheetList())

	cell := func(ref string) string {
		value, cellErr := f.GetCellValue(sheetName, ref)
		require.NoError(t, cellErr)
		return value
	}

	assert.Equal(t, "Order number", cell("A1"))
	assert.Equal(t, "Fuel cost", cell("O1"))
	assert.Equal(t, "Price", cell("P1"))

	assert.Equal(t, "OD-01/2026", cell("A2"))
	assert.Equal(t, "Acme Logistics", cell("B2"))
	assert.Equal(t, "John Smith", cell("C2"))
	assert.Equal(t, "14.03.2026", cell("I2"))
	assert.Equal(t, "15.03.2026", cell("J2"))
	assert.Equal(t, "18.03.2026", cell("K2"))
	assert.Equal(t, "150", cell("N2"))
	assert.Equal(t, "57", cell("O2"))

	assert.Equal(t, "OD-02/2026", cell("A3"))
	assert.Equal(t, "", cell("J3"))
	assert.Equal(t, "", cell("K3"))
	assert.Equal(t, fuelNotApplicable, cell("O3"))
}

func Test_Render_EmptyReportKeepsHeader(t *testing.T) {
	report := NewCompletedOrdersReport()
	data, err := report.Render(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Order number", rows[0][0])
}

func Test_Filename_UsesDate(t *testing.T) {
	report := NewCompletedOrdersReport()

	name := report.Filename(time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC))

	assert.Equal(t, "completed-orders-2026-03-20.xlsx", name)
}
