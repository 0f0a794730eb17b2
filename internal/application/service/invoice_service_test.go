package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autocarcare/garage-api/internal/domain/entity"
	"github.com/autocarcare/garage-api/internal/domain/enum"
	"github.com/autocarcare/garage-api/pkg/apperror"
)

func newInvoiceServiceForTest() (*InvoiceService, *fakeInvoiceRepo, *fakeInvoiceLineRepo, *fakeCustomerRepo, *fakeSparePartRepo) {
	lineRepo := newFakeInvoiceLineRepo()
	invoiceRepo := newFakeInvoiceRepo(lineRepo)
	customerRepo := newFakeCustomerRepo()
	sparePartRepo := newFakeSparePartRepo()
	svc := NewInvoiceService(invoiceRepo, lineRepo, customerRepo, sparePartRepo)
	return svc, invoiceRepo, lineRepo, customerRepo, sparePartRepo
}

func TestCreateInvoiceComputesTotalsAndStatus(t *testing.T) {
	svc, _, _, _, _ := newInvoiceServiceForTest()
	userID := uuid.New()

	invoice, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		UserID:        userID,
		InvoiceDate:   time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		CustomerName:  "Ramesh Kumar",
		AdvanceAmount: 300,
		Parts: []LineItemInput{
			{Name: "Oil filter", Quantity: 2, UnitPrice: 500, CGSTPercent: 9, SGSTPercent: 9},
		},
		Labours: []LineItemInput{
			{Name: "Oil change", Quantity: 1, UnitPrice: 300},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-000001", invoice.InvoiceNumber)
	assert.Equal(t, 1000.0, invoice.PartsSubtotal)
	assert.Equal(t, 300.0, invoice.LaboursSubtotal)
	assert.Equal(t, 1300.0, invoice.SubTotal)
	// Tax is shown per line but never folded into the grand total.
	assert.Equal(t, 1300.0, invoice.TotalAmount)
	assert.Equal(t, enum.PaymentStatusPartial, invoice.PaymentStatus)
	assert.Equal(t, 1000.0, invoice.AmountDue())

	require.Len(t, invoice.Parts, 1)
	require.Len(t, invoice.Labours, 1)
	assert.Equal(t, "Oil filter", invoice.Parts[0].PartName)
}

func TestCreateInvoiceSequentialNumbering(t *testing.T) {
	svc, _, _, _, _ := newInvoiceServiceForTest()

	for i, want := range []string{"INV-000001", "INV-000002", "INV-000003"} {
		invoice, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
			UserID:       uuid.New(),
			InvoiceDate:  time.Now(),
			CustomerName: "Walk-in",
			Labours:      []LineItemInput{{Name: "Wash", Quantity: 1, UnitPrice: 200}},
		})
		require.NoError(t, err, "invoice %d", i+1)
		assert.Equal(t, want, invoice.InvoiceNumber)
	}
}

func TestCreateInvoiceGlobalDiscountOverridesLineDiscount(t *testing.T) {
	svc, _, _, _, _ := newInvoiceServiceForTest()

	invoice, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		UserID:                uuid.New(),
		InvoiceDate:           time.Now(),
		CustomerName:          "Walk-in",
		GlobalDiscountPercent: 10,
		Parts: []LineItemInput{
			{Name: "Brake pad", Quantity: 1, UnitPrice: 1000, DiscountPercent: 50},
		},
	})
	require.NoError(t, err)

	// The 50% line discount is replaced by the 10% global discount.
	assert.Equal(t, 900.0, invoice.SubTotal)
}

func TestCreateInvoiceRequiresLines(t *testing.T) {
	svc, _, _, _, _ := newInvoiceServiceForTest()

	_, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		UserID:       uuid.New(),
		InvoiceDate:  time.Now(),
		CustomerName: "Walk-in",
	})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Code)
}

func TestCreateInvoiceWalkInNeedsName(t *testing.T) {
	svc, _, _, _, _ := newInvoiceServiceForTest()

	_, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		UserID:      uuid.New(),
		InvoiceDate: time.Now(),
		Labours:     []LineItemInput{{Name: "Wash", Quantity: 1, UnitPrice: 200}},
	})
	require.Error(t, err)
}

func TestCreateInvoiceSnapshotsCustomerDetails(t *testing.T) {
	svc, _, _, customerRepo, _ := newInvoiceServiceForTest()
	userID := uuid.New()

	address := "MG Road, Pune"
	mobile := "9876543210"
	gstin := "27AAPFU0939F1ZV"
	customer := &entity.Customer{
		UserID:   userID,
		Name:     "Suresh Patil",
		Address:  &address,
		MobileNo: &mobile,
		GSTIN:    &gstin,
	}
	require.NoError(t, customerRepo.Create(context.Background(), customer))

	invoice, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		UserID:      userID,
		CustomerID:  &customer.ID,
		InvoiceDate: time.Now(),
		Labours:     []LineItemInput{{Name: "Service", Quantity: 1, UnitPrice: 500}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Suresh Patil", invoice.CustomerName)
	require.NotNil(t, invoice.CustomerAddress)
	assert.Equal(t, address, *invoice.CustomerAddress)
	require.NotNil(t, invoice.CustomerMobile)
	assert.Equal(t, mobile, *invoice.CustomerMobile)
	require.NotNil(t, invoice.CustomerGSTIN)
	assert.Equal(t, gstin, *invoice.CustomerGSTIN)
}

func TestCreateInvoiceUnknownCustomer(t *testing.T) {
	svc, _, _, _, _ := newInvoiceServiceForTest()
	missing := uuid.New()

	_, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		UserID:      uuid.New(),
		CustomerID:  &missing,
		InvoiceDate: time.Now(),
		Labours:     []LineItemInput{{Name: "Service", Quantity: 1, UnitPrice: 500}},
	})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
}

func TestCreateInvoiceConsumesStock(t *testing.T) {
	svc, _, _, _, sparePartRepo := newInvoiceServiceForTest()
	partID := uuid.New()
	sparePartRepo.stock[partID] = 10

	_, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		UserID:       uuid.New(),
		InvoiceDate:  time.Now(),
		CustomerName: "Walk-in",
		Parts: []LineItemInput{
			{SparePartID: &partID, Name: "Air filter", Quantity: 3, UnitPrice: 250},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 7.0, sparePartRepo.stock[partID])
}

func TestUpdateInvoiceSwapsStockAndKeepsNumber(t *testing.T) {
	svc, _, _, _, sparePartRepo := newInvoiceServiceForTest()
	userID := uuid.New()
	oldPart := uuid.New()
	newPart := uuid.New()
	sparePartRepo.stock[oldPart] = 10
	sparePartRepo.stock[newPart] = 10

	invoice, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		UserID:       userID,
		InvoiceDate:  time.Now(),
		CustomerName: "Walk-in",
		Parts: []LineItemInput{
			{SparePartID: &oldPart, Name: "Clutch plate", Quantity: 2, UnitPrice: 1500},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 8.0, sparePartRepo.stock[oldPart])

	updated, err := svc.UpdateInvoice(context.Background(), &UpdateInvoiceInput{
		ID:           invoice.ID,
		UserID:       userID,
		InvoiceDate:  invoice.InvoiceDate,
		CustomerName: "Walk-in",
		Parts: []LineItemInput{
			{SparePartID: &newPart, Name: "Pressure plate", Quantity: 1, UnitPrice: 2000},
		},
	})
	require.NoError(t, err)

	// Old stock returned, new stock consumed, number unchanged.
	assert.Equal(t, 10.0, sparePartRepo.stock[oldPart])
	assert.Equal(t, 9.0, sparePartRepo.stock[newPart])
	assert.Equal(t, invoice.InvoiceNumber, updated.InvoiceNumber)
	assert.Equal(t, 2000.0, updated.TotalAmount)
	require.Len(t, updated.Parts, 1)
	assert.Equal(t, "Pressure plate", updated.Parts[0].PartName)
}

func TestUpdateInvoiceForbiddenForOtherUser(t *testing.T) {
	svc, _, _, _, _ := newInvoiceServiceForTest()
	owner := uuid.New()

	invoice, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		UserID:       owner,
		InvoiceDate:  time.Now(),
		CustomerName: "Walk-in",
		Labours:      []LineItemInput{{Name: "Wash", Quantity: 1, UnitPrice: 200}},
	})
	require.NoError(t, err)

	_, err = svc.UpdateInvoice(context.Background(), &UpdateInvoiceInput{
		ID:           invoice.ID,
		UserID:       uuid.New(),
		InvoiceDate:  invoice.InvoiceDate,
		CustomerName: "Walk-in",
		Labours:      []LineItemInput{{Name: "Wash", Quantity: 1, UnitPrice: 200}},
	})
	assert.Equal(t, apperror.ErrForbidden, err)
}

func TestRecordPaymentAdvancesStatus(t *testing.T) {
	svc, _, _, _, _ := newInvoiceServiceForTest()
	userID := uuid.New()

	invoice, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		UserID:       userID,
		InvoiceDate:  time.Now(),
		CustomerName: "Walk-in",
		Labours:      []LineItemInput{{Name: "Full service", Quantity: 1, UnitPrice: 1000}},
	})
	require.NoError(t, err)
	require.Equal(t, enum.PaymentStatusUnpaid, invoice.PaymentStatus)

	partial, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		ID: invoice.ID, UserID: userID, Amount: 400,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.PaymentStatusPartial, partial.PaymentStatus)
	assert.Equal(t, 400.0, partial.AdvanceAmount)

	paid, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		ID: invoice.ID, UserID: userID, Amount: 600,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.PaymentStatusPaid, paid.PaymentStatus)
	assert.Equal(t, 0.0, paid.AmountDue())
}

func TestRecordPaymentRejectsNonPositiveAmount(t *testing.T) {
	svc, _, _, _, _ := newInvoiceServiceForTest()
	userID := uuid.New()

	invoice, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		UserID:       userID,
		InvoiceDate:  time.Now(),
		CustomerName: "Walk-in",
		Labours:      []LineItemInput{{Name: "Wash", Quantity: 1, UnitPrice: 200}},
	})
	require.NoError(t, err)

	_, err = svc.RecordPayment(context.Background(), &RecordPaymentInput{
		ID: invoice.ID, UserID: userID, Amount: 0,
	})
	require.Error(t, err)
}

func TestDeleteInvoiceRestoresStock(t *testing.T) {
	svc, invoiceRepo, _, _, sparePartRepo := newInvoiceServiceForTest()
	userID := uuid.New()
	partID := uuid.New()
	sparePartRepo.stock[partID] = 5

	invoice, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		UserID:       userID,
		InvoiceDate:  time.Now(),
		CustomerName: "Walk-in",
		Parts: []LineItemInput{
			{SparePartID: &partID, Name: "Battery", Quantity: 1, UnitPrice: 4500},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 4.0, sparePartRepo.stock[partID])

	require.NoError(t, svc.DeleteInvoice(context.Background(), userID, invoice.ID, false))

	assert.Equal(t, 5.0, sparePartRepo.stock[partID])
	gone, err := invoiceRepo.GetByID(context.Background(), invoice.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestGetInvoiceNotFound(t *testing.T) {
	svc, _, _, _, _ := newInvoiceServiceForTest()

	_, err := svc.GetInvoice(context.Background(), uuid.New())
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
}
