// Package export serialises GST slab reports for download as CSV or
// XLSX files.
package export

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/autocarcare/garage-api/pkg/gst"
)

const (
	csvFlushEvery = 200
	csvBufferSize = 32 * 1024
)

type csvStreamer struct {
	buf          *bufio.Writer
	csv          *csv.Writer
	flushEvery   int
	pendingLines int
}

func newCSVStreamer(w io.Writer) *csvStreamer {
	buf := bufio.NewWriterSize(w, csvBufferSize)
	writer := csv.NewWriter(buf)
	writer.UseCRLF = true
	return &csvStreamer{buf: buf, csv: writer, flushEvery: csvFlushEvery}
}

func (s *csvStreamer) writeComment(line string) error {
	if s == nil || s.buf == nil {
		return fmt.Errorf("csv streamer not initialised")
	}
	if !strings.HasSuffix(line, "\r\n") {
		line = strings.TrimSuffix(line, "\n")
		line += "\r\n"
	}
	if _, err := s.buf.WriteString(line); err != nil {
		return err
	}
	return nil
}

func (s *csvStreamer) writeRow(row []string) error {
	if s == nil || s.csv == nil {
		return fmt.Errorf("csv streamer not initialised")
	}
	if err := s.csv.Write(row); err != nil {
		return err
	}
	s.pendingLines++
	if s.flushEvery > 0 && s.pendingLines >= s.flushEvery {
		return s.Flush()
	}
	return nil
}

func (s *csvStreamer) Flush() error {
	s.csv.Flush()
	if err := s.csv.Error(); err != nil {
		return err
	}
	s.pendingLines = 0
	return s.buf.Flush()
}

// reportHeader builds the flat column list: identity columns, five
// amount columns per statutory slab, then the row totals.
func reportHeader() []string {
	header := []string{"Invoice No", "Date", "Job Card", "Customer", "GSTIN"}
	for _, slab := range gst.Slabs {
		prefix := fmt.Sprintf("%g%% ", slab)
		header = append(header,
			prefix+"Amount",
			prefix+"Taxable",
			prefix+"CGST",
			prefix+"SGST",
			prefix+"IGST",
		)
	}
	return append(header, "Total Sale", "Total Taxable", "Total CGST", "Total SGST", "Total IGST")
}

func reportRowValues(row gst.ReportRow) []string {
	values := []string{
		row.InvoiceNumber,
		row.InvoiceDate,
		row.JobCardNumber,
		row.CustomerName,
		row.CustomerGSTIN,
	}
	for _, bucket := range row.Buckets {
		values = append(values,
			amount(bucket.Amount),
			amount(bucket.TaxableAmount),
			amount(bucket.CGST),
			amount(bucket.SGST),
			amount(bucket.IGST),
		)
	}
	return append(values,
		amount(row.TotalSale),
		amount(row.TotalTaxable),
		amount(row.TotalCGST),
		amount(row.TotalSGST),
		amount(row.TotalIGST),
	)
}

func amount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// WriteCSV streams the slab report to w. The title and period land in
// comment lines above the header so spreadsheet imports keep them.
func WriteCSV(w io.Writer, title, period string, rows []gst.ReportRow, grandTotal gst.ReportRow) error {
	s := newCSVStreamer(w)

	if err := s.writeComment("# " + title); err != nil {
		return err
	}
	if period != "" {
		if err := s.writeComment("# Period: " + period); err != nil {
			return err
		}
	}
	if err := s.writeRow(reportHeader()); err != nil {
		return err
	}
	for _, row := range rows {
		if err := s.writeRow(reportRowValues(row)); err != nil {
			return err
		}
	}
	if err := s.writeRow(reportRowValues(grandTotal)); err != nil {
		return err
	}
	return s.Flush()
}
