package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/autocarcare/garage-api/internal/domain/entity"
	"github.com/autocarcare/garage-api/internal/domain/enum"
	"github.com/autocarcare/garage-api/internal/domain/repository"
	"github.com/autocarcare/garage-api/pkg/pagination"
)

// In-memory repository fakes shared by the service tests.

type fakeInvoiceRepo struct {
	invoices map[uuid.UUID]*entity.Invoice
	lines    *fakeInvoiceLineRepo
	nextSeq  int
}

func newFakeInvoiceRepo(lines *fakeInvoiceLineRepo) *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		invoices: make(map[uuid.UUID]*entity.Invoice),
		lines:    lines,
		nextSeq:  1,
	}
}

func (r *fakeInvoiceRepo) Create(_ context.Context, invoice *entity.Invoice) error {
	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}
	cp := *invoice
	r.invoices[invoice.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *invoice
	return &cp, nil
}

func (r *fakeInvoiceRepo) GetByNumber(_ context.Context, number string) (*entity.Invoice, error) {
	for _, invoice := range r.invoices {
		if invoice.InvoiceNumber == number {
			cp := *invoice
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) GetWithLines(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := r.GetByID(ctx, id)
	if err != nil || invoice == nil {
		return invoice, err
	}
	if r.lines != nil {
		invoice.Parts = r.lines.parts[id]
		invoice.Labours = r.lines.labours[id]
	}
	return invoice, nil
}

func (r *fakeInvoiceRepo) Update(_ context.Context, invoice *entity.Invoice) error {
	cp := *invoice
	r.invoices[invoice.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.invoices, id)
	return nil
}

func (r *fakeInvoiceRepo) List(_ context.Context, userID uuid.UUID, params *repository.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	var out []entity.Invoice
	for _, invoice := range r.invoices {
		if !params.SkipUserFilter && invoice.UserID != userID {
			continue
		}
		out = append(out, *invoice)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InvoiceNumber < out[j].InvoiceNumber })
	return out, int64(len(out)), nil
}

func (r *fakeInvoiceRepo) UpdatePaymentStatus(_ context.Context, id uuid.UUID, status enum.PaymentStatus) error {
	if invoice, ok := r.invoices[id]; ok {
		invoice.PaymentStatus = status
	}
	return nil
}

func (r *fakeInvoiceRepo) GetNextSequenceNumber(_ context.Context) (int, error) {
	n := r.nextSeq
	r.nextSeq++
	return n, nil
}

func (r *fakeInvoiceRepo) ListBetween(_ context.Context, userID uuid.UUID, from, to time.Time, skipUserFilter bool) ([]entity.Invoice, error) {
	var out []entity.Invoice
	for _, invoice := range r.invoices {
		if !skipUserFilter && invoice.UserID != userID {
			continue
		}
		if !from.IsZero() && invoice.InvoiceDate.Before(from) {
			continue
		}
		if !to.IsZero() && invoice.InvoiceDate.After(to) {
			continue
		}
		cp := *invoice
		if r.lines != nil {
			cp.Parts = r.lines.parts[invoice.ID]
			cp.Labours = r.lines.labours[invoice.ID]
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InvoiceNumber < out[j].InvoiceNumber })
	return out, nil
}

type fakeInvoiceLineRepo struct {
	parts   map[uuid.UUID][]entity.InvoicePart
	labours map[uuid.UUID][]entity.InvoiceLabour
}

func newFakeInvoiceLineRepo() *fakeInvoiceLineRepo {
	return &fakeInvoiceLineRepo{
		parts:   make(map[uuid.UUID][]entity.InvoicePart),
		labours: make(map[uuid.UUID][]entity.InvoiceLabour),
	}
}

func (r *fakeInvoiceLineRepo) CreateParts(_ context.Context, parts []entity.InvoicePart) error {
	for _, p := range parts {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		r.parts[p.InvoiceID] = append(r.parts[p.InvoiceID], p)
	}
	return nil
}

func (r *fakeInvoiceLineRepo) CreateLabours(_ context.Context, labours []entity.InvoiceLabour) error {
	for _, l := range labours {
		if l.ID == uuid.Nil {
			l.ID = uuid.New()
		}
		r.labours[l.InvoiceID] = append(r.labours[l.InvoiceID], l)
	}
	return nil
}

func (r *fakeInvoiceLineRepo) GetPartsByInvoiceID(_ context.Context, invoiceID uuid.UUID) ([]entity.InvoicePart, error) {
	return r.parts[invoiceID], nil
}

func (r *fakeInvoiceLineRepo) GetLaboursByInvoiceID(_ context.Context, invoiceID uuid.UUID) ([]entity.InvoiceLabour, error) {
	return r.labours[invoiceID], nil
}

func (r *fakeInvoiceLineRepo) DeleteByInvoiceID(_ context.Context, invoiceID uuid.UUID) error {
	delete(r.parts, invoiceID)
	delete(r.labours, invoiceID)
	return nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (r *fakeCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	return r.customers[id], nil
}

func (r *fakeCustomerRepo) GetByMobile(_ context.Context, mobile string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.MobileNo != nil && *c.MobileNo == mobile {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) List(_ context.Context, userID uuid.UUID, _ *pagination.PaginationParams, _ string, skipUserFilter bool) ([]entity.Customer, int64, error) {
	var out []entity.Customer
	for _, c := range r.customers {
		if !skipUserFilter && c.UserID != userID {
			continue
		}
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

type fakeSparePartRepo struct {
	stock map[uuid.UUID]float64
}

func newFakeSparePartRepo() *fakeSparePartRepo {
	return &fakeSparePartRepo{stock: make(map[uuid.UUID]float64)}
}

func (r *fakeSparePartRepo) Create(_ context.Context, part *entity.SparePart) error { return nil }
func (r *fakeSparePartRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.SparePart, error) {
	return nil, nil
}
func (r *fakeSparePartRepo) GetByPartNumber(_ context.Context, partNumber string) (*entity.SparePart, error) {
	return nil, nil
}
func (r *fakeSparePartRepo) Update(_ context.Context, part *entity.SparePart) error { return nil }
func (r *fakeSparePartRepo) Delete(_ context.Context, id uuid.UUID) error           { return nil }
func (r *fakeSparePartRepo) List(_ context.Context, _ uuid.UUID, _ *pagination.PaginationParams, _ string, _ bool) ([]entity.SparePart, int64, error) {
	return nil, 0, nil
}

func (r *fakeSparePartRepo) AdjustQuantity(_ context.Context, id uuid.UUID, delta float64) error {
	r.stock[id] += delta
	return nil
}

type fakeTermsRepo struct {
	terms           map[uuid.UUID]*entity.TermsAndConditions
	listActiveCalls int
}

func newFakeTermsRepo() *fakeTermsRepo {
	return &fakeTermsRepo{terms: make(map[uuid.UUID]*entity.TermsAndConditions)}
}

func (r *fakeTermsRepo) Create(_ context.Context, term *entity.TermsAndConditions) error {
	if term.ID == uuid.Nil {
		term.ID = uuid.New()
	}
	cp := *term
	r.terms[term.ID] = &cp
	return nil
}

func (r *fakeTermsRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.TermsAndConditions, error) {
	term, ok := r.terms[id]
	if !ok {
		return nil, nil
	}
	cp := *term
	return &cp, nil
}

func (r *fakeTermsRepo) Update(_ context.Context, term *entity.TermsAndConditions) error {
	cp := *term
	r.terms[term.ID] = &cp
	return nil
}

func (r *fakeTermsRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.terms, id)
	return nil
}

func (r *fakeTermsRepo) List(_ context.Context, userID uuid.UUID, skipUserFilter bool) ([]entity.TermsAndConditions, error) {
	var out []entity.TermsAndConditions
	for _, term := range r.terms {
		if !skipUserFilter && term.UserID != userID {
			continue
		}
		out = append(out, *term)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (r *fakeTermsRepo) ListActive(_ context.Context, userID uuid.UUID) ([]entity.TermsAndConditions, error) {
	r.listActiveCalls++
	var out []entity.TermsAndConditions
	for _, term := range r.terms {
		if term.UserID != userID || !term.IsActive {
			continue
		}
		out = append(out, *term)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}
