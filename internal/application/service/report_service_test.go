package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autocarcare/garage-api/internal/domain/entity"
)

func seedReportInvoices(t *testing.T, repo *fakeInvoiceRepo, lines *fakeInvoiceLineRepo, userID uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	inv1 := &entity.Invoice{
		UserID:        userID,
		InvoiceNumber: "INV-000001",
		InvoiceDate:   time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
		CustomerName:  "Ramesh Kumar",
	}
	require.NoError(t, repo.Create(ctx, inv1))
	require.NoError(t, lines.CreateParts(ctx, []entity.InvoicePart{
		{InvoiceID: inv1.ID, PartName: "Oil filter", Quantity: 2, UnitPrice: 500, CGSTPercent: 9, SGSTPercent: 9},
	}))
	require.NoError(t, lines.CreateLabours(ctx, []entity.InvoiceLabour{
		{InvoiceID: inv1.ID, Description: "Oil change", Quantity: 1, UnitPrice: 300, CGSTPercent: 2.5, SGSTPercent: 2.5},
	}))

	inv2 := &entity.Invoice{
		UserID:        userID,
		InvoiceNumber: "INV-000002",
		InvoiceDate:   time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC),
		CustomerName:  "Suresh Patil",
	}
	require.NoError(t, repo.Create(ctx, inv2))
	require.NoError(t, lines.CreateLabours(ctx, []entity.InvoiceLabour{
		{InvoiceID: inv2.ID, Description: "Denting", Quantity: 1, UnitPrice: 2000, CGSTPercent: 9, SGSTPercent: 9},
	}))

	// Outside the reporting period.
	inv3 := &entity.Invoice{
		UserID:        userID,
		InvoiceNumber: "INV-000003",
		InvoiceDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CustomerName:  "Out of range",
	}
	require.NoError(t, repo.Create(ctx, inv3))
	require.NoError(t, lines.CreateLabours(ctx, []entity.InvoiceLabour{
		{InvoiceID: inv3.ID, Description: "Wash", Quantity: 1, UnitPrice: 200},
	}))
}

func TestBuildSlabReport(t *testing.T) {
	lines := newFakeInvoiceLineRepo()
	repo := newFakeInvoiceRepo(lines)
	svc := NewReportService(repo)
	userID := uuid.New()
	seedReportInvoices(t, repo, lines, userID)

	report, err := svc.BuildSlabReport(context.Background(), &SlabReportInput{
		UserID: userID,
		From:   time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		To:     time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, report.Rows, 2)
	assert.Equal(t, "01-04-2025 to 30-04-2025", report.Period)

	first := report.Rows[0]
	assert.Equal(t, "INV-000001", first.InvoiceNumber)
	assert.Equal(t, "10-04-2025", first.InvoiceDate)
	assert.Equal(t, 1300.0, first.TotalTaxable)
	// 18% on 1000 of parts, 5% on 300 of labour
	assert.InDelta(t, 90+7.5, first.TotalCGST, 1e-9)
	assert.InDelta(t, 90+7.5, first.TotalSGST, 1e-9)
	assert.InDelta(t, 1000.0, first.Buckets[3].TaxableAmount, 1e-9)
	assert.InDelta(t, 300.0, first.Buckets[1].TaxableAmount, 1e-9)

	second := report.Rows[1]
	assert.Equal(t, "INV-000002", second.InvoiceNumber)
	assert.InDelta(t, 180.0, second.TotalCGST, 1e-9)
	assert.InDelta(t, 180.0, second.TotalSGST, 1e-9)
	assert.InDelta(t, 2000.0, second.Buckets[3].TaxableAmount, 1e-9)

	grand := report.GrandTotal
	assert.Equal(t, "TOTAL", grand.InvoiceNumber)
	assert.InDelta(t, 3300.0, grand.TotalTaxable, 1e-9)
	assert.InDelta(t, 3000.0, grand.Buckets[3].TaxableAmount, 1e-9)
}

func TestBuildSlabReportScopedToUser(t *testing.T) {
	lines := newFakeInvoiceLineRepo()
	repo := newFakeInvoiceRepo(lines)
	svc := NewReportService(repo)
	owner := uuid.New()
	seedReportInvoices(t, repo, lines, owner)

	report, err := svc.BuildSlabReport(context.Background(), &SlabReportInput{
		UserID: uuid.New(),
		From:   time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		To:     time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Empty(t, report.Rows)

	all, err := svc.BuildSlabReport(context.Background(), &SlabReportInput{
		UserID:       uuid.New(),
		IsSuperAdmin: true,
		From:         time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		To:           time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Len(t, all.Rows, 2)
}

func TestBuildSlabReportOpenPeriods(t *testing.T) {
	lines := newFakeInvoiceLineRepo()
	repo := newFakeInvoiceRepo(lines)
	svc := NewReportService(repo)
	userID := uuid.New()
	seedReportInvoices(t, repo, lines, userID)

	report, err := svc.BuildSlabReport(context.Background(), &SlabReportInput{UserID: userID})
	require.NoError(t, err)
	assert.Len(t, report.Rows, 3)
	assert.Equal(t, "", report.Period)

	report, err = svc.BuildSlabReport(context.Background(), &SlabReportInput{
		UserID: userID,
		From:   time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Len(t, report.Rows, 1)
	assert.Equal(t, "from 01-05-2025", report.Period)
}

func TestWriteSlabReportCSV(t *testing.T) {
	lines := newFakeInvoiceLineRepo()
	repo := newFakeInvoiceRepo(lines)
	svc := NewReportService(repo)
	userID := uuid.New()
	seedReportInvoices(t, repo, lines, userID)

	var buf bytes.Buffer
	err := svc.WriteSlabReportCSV(context.Background(), &SlabReportInput{
		UserID: userID,
		From:   time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		To:     time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
	}, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "INV-000001")
	assert.Contains(t, out, "INV-000002")
	assert.Contains(t, out, "TOTAL")
	assert.NotContains(t, out, "INV-000003")
	assert.Greater(t, strings.Count(out, "\n"), 3)
}
