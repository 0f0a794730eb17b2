package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autocarcare/garage-api/pkg/gst"
)

func buildReport() ([]gst.ReportRow, gst.ReportRow) {
	b := gst.NewSlabReportBuilder()
	b.Add(gst.InvoiceHeader{
		InvoiceNumber: "INV-000001",
		InvoiceDate:   "2025-04-01",
		CustomerName:  `Sharma "Auto" Works`,
	}, gst.LineItem{Quantity: 1, UnitPrice: 100, CGSTPercent: 2.5, SGSTPercent: 2.5}, 0)
	b.Add(gst.InvoiceHeader{
		InvoiceNumber: "INV-000002",
		InvoiceDate:   "2025-04-03",
		CustomerName:  "Ravi Kumar",
	}, gst.LineItem{Quantity: 2, UnitPrice: 500, CGSTPercent: 9, SGSTPercent: 9}, 0)
	return b.Rows(), b.GrandTotal()
}

func TestWriteCSV(t *testing.T) {
	rows, total := buildReport()
	var buf bytes.Buffer

	err := WriteCSV(&buf, "GST Slab Report", "01-04-2025 to 30-04-2025", rows, total)
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# GST Slab Report\r\n"))
	assert.Contains(t, out, "# Period: 01-04-2025 to 30-04-2025")

	// Strip comment lines, then the rest must parse as CSV.
	var data []string
	for _, line := range strings.Split(out, "\r\n") {
		if strings.HasPrefix(line, "#") || line == "" {
			continue
		}
		data = append(data, line)
	}
	records, err := csv.NewReader(strings.NewReader(strings.Join(data, "\n"))).ReadAll()
	require.NoError(t, err)

	// Header + two invoices + grand total.
	require.Len(t, records, 4)
	assert.Equal(t, "Invoice No", records[0][0])
	assert.Len(t, records[0], 5+len(gst.Slabs)*5+5)
	assert.Equal(t, "INV-000001", records[1][0])
	assert.Equal(t, `Sharma "Auto" Works`, records[1][3], "quotes must survive the round trip")
	assert.Equal(t, "TOTAL", records[3][0])
	assert.Equal(t, "1100.00", records[3][len(records[3])-4], "grand total taxable column")
}

func TestWriteXLSX(t *testing.T) {
	rows, total := buildReport()
	var buf bytes.Buffer

	err := WriteXLSX(&buf, "GST Slab Report", "April 2025", rows, total)
	require.NoError(t, err)

	// XLSX is a zip container.
	assert.Equal(t, []byte{'P', 'K'}, buf.Bytes()[:2])
}
