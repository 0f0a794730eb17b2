package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autocarcare/garage-api/internal/domain/entity"
	"github.com/autocarcare/garage-api/internal/domain/repository"
	"github.com/autocarcare/garage-api/pkg/apperror"
)

type fakeQuotationRepo struct {
	quotations map[uuid.UUID]*entity.Quotation
	lines      *fakeQuotationLineRepo
	nextSeq    int
}

func newFakeQuotationRepo(lines *fakeQuotationLineRepo) *fakeQuotationRepo {
	return &fakeQuotationRepo{
		quotations: make(map[uuid.UUID]*entity.Quotation),
		lines:      lines,
		nextSeq:    1,
	}
}

func (r *fakeQuotationRepo) Create(_ context.Context, quotation *entity.Quotation) error {
	if quotation.ID == uuid.Nil {
		quotation.ID = uuid.New()
	}
	cp := *quotation
	r.quotations[quotation.ID] = &cp
	return nil
}

func (r *fakeQuotationRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Quotation, error) {
	quotation, ok := r.quotations[id]
	if !ok {
		return nil, nil
	}
	cp := *quotation
	return &cp, nil
}

func (r *fakeQuotationRepo) GetByNumber(_ context.Context, number string) (*entity.Quotation, error) {
	for _, quotation := range r.quotations {
		if quotation.QuotationNumber == number {
			cp := *quotation
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeQuotationRepo) GetWithLines(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	quotation, err := r.GetByID(ctx, id)
	if err != nil || quotation == nil {
		return quotation, err
	}
	if r.lines != nil {
		quotation.Parts = r.lines.parts[id]
		quotation.Labours = r.lines.labours[id]
	}
	return quotation, nil
}

func (r *fakeQuotationRepo) Update(_ context.Context, quotation *entity.Quotation) error {
	cp := *quotation
	r.quotations[quotation.ID] = &cp
	return nil
}

func (r *fakeQuotationRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.quotations, id)
	return nil
}

func (r *fakeQuotationRepo) List(_ context.Context, userID uuid.UUID, params *repository.QuotationFilterParams) ([]entity.Quotation, int64, error) {
	var out []entity.Quotation
	for _, quotation := range r.quotations {
		if !params.SkipUserFilter && quotation.UserID != userID {
			continue
		}
		out = append(out, *quotation)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].QuotationNumber < out[j].QuotationNumber })
	return out, int64(len(out)), nil
}

func (r *fakeQuotationRepo) GetNextSequenceNumber(_ context.Context) (int, error) {
	n := r.nextSeq
	r.nextSeq++
	return n, nil
}

type fakeQuotationLineRepo struct {
	parts   map[uuid.UUID][]entity.QuotationPart
	labours map[uuid.UUID][]entity.QuotationLabour
}

func newFakeQuotationLineRepo() *fakeQuotationLineRepo {
	return &fakeQuotationLineRepo{
		parts:   make(map[uuid.UUID][]entity.QuotationPart),
		labours: make(map[uuid.UUID][]entity.QuotationLabour),
	}
}

func (r *fakeQuotationLineRepo) CreateParts(_ context.Context, parts []entity.QuotationPart) error {
	for _, p := range parts {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		r.parts[p.QuotationID] = append(r.parts[p.QuotationID], p)
	}
	return nil
}

func (r *fakeQuotationLineRepo) CreateLabours(_ context.Context, labours []entity.QuotationLabour) error {
	for _, l := range labours {
		if l.ID == uuid.Nil {
			l.ID = uuid.New()
		}
		r.labours[l.QuotationID] = append(r.labours[l.QuotationID], l)
	}
	return nil
}

func (r *fakeQuotationLineRepo) DeleteByQuotationID(_ context.Context, quotationID uuid.UUID) error {
	delete(r.parts, quotationID)
	delete(r.labours, quotationID)
	return nil
}

func newQuotationServiceForTest() (*QuotationService, *fakeQuotationRepo, *fakeCustomerRepo) {
	lines := newFakeQuotationLineRepo()
	repo := newFakeQuotationRepo(lines)
	customers := newFakeCustomerRepo()
	return NewQuotationService(repo, lines, customers), repo, customers
}

func TestCreateQuotationComputesTotals(t *testing.T) {
	svc, _, _ := newQuotationServiceForTest()

	quotation, err := svc.CreateQuotation(context.Background(), &CreateQuotationInput{
		UserID:        uuid.New(),
		QuotationDate: time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC),
		CustomerName:  "Prakash Joshi",
		Parts: []LineItemInput{
			{Name: "Windshield", Quantity: 1, UnitPrice: 6000, CGSTPercent: 14, SGSTPercent: 14},
		},
		Labours: []LineItemInput{
			{Name: "Fitting", Quantity: 1, UnitPrice: 800, CGSTPercent: 9, SGSTPercent: 9},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "QTN-000001", quotation.QuotationNumber)
	assert.Equal(t, 6000.0, quotation.PartsSubtotal)
	assert.Equal(t, 800.0, quotation.LaboursSubtotal)
	assert.Equal(t, 6800.0, quotation.TotalAmount)
	require.Len(t, quotation.Parts, 1)
	require.Len(t, quotation.Labours, 1)
}

func TestCreateQuotationCopiesCustomerSnapshot(t *testing.T) {
	svc, _, customers := newQuotationServiceForTest()
	userID := uuid.New()

	mobile := "9822001122"
	customer := &entity.Customer{UserID: userID, Name: "Anita Deshmukh", MobileNo: &mobile}
	require.NoError(t, customers.Create(context.Background(), customer))

	quotation, err := svc.CreateQuotation(context.Background(), &CreateQuotationInput{
		UserID:        userID,
		CustomerID:    &customer.ID,
		QuotationDate: time.Now(),
		Labours:       []LineItemInput{{Name: "Painting", Quantity: 1, UnitPrice: 5000}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Anita Deshmukh", quotation.CustomerName)
	require.NotNil(t, quotation.CustomerMobile)
	assert.Equal(t, mobile, *quotation.CustomerMobile)
}

func TestCreateQuotationRequiresLines(t *testing.T) {
	svc, _, _ := newQuotationServiceForTest()

	_, err := svc.CreateQuotation(context.Background(), &CreateQuotationInput{
		UserID:        uuid.New(),
		QuotationDate: time.Now(),
		CustomerName:  "Walk-in",
	})
	require.Error(t, err)
}

func TestUpdateQuotationReplacesLines(t *testing.T) {
	svc, _, _ := newQuotationServiceForTest()
	userID := uuid.New()

	quotation, err := svc.CreateQuotation(context.Background(), &CreateQuotationInput{
		UserID:        userID,
		QuotationDate: time.Now(),
		CustomerName:  "Walk-in",
		Labours:       []LineItemInput{{Name: "Polish", Quantity: 1, UnitPrice: 700}},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateQuotation(context.Background(), &UpdateQuotationInput{
		ID:            quotation.ID,
		UserID:        userID,
		QuotationDate: quotation.QuotationDate,
		CustomerName:  "Walk-in",
		Labours: []LineItemInput{
			{Name: "Polish", Quantity: 1, UnitPrice: 700},
			{Name: "Interior cleaning", Quantity: 1, UnitPrice: 1200},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, quotation.QuotationNumber, updated.QuotationNumber)
	assert.Equal(t, 1900.0, updated.TotalAmount)
	assert.Len(t, updated.Labours, 2)
}

func TestDeleteQuotationForbiddenForOtherUser(t *testing.T) {
	svc, _, _ := newQuotationServiceForTest()

	quotation, err := svc.CreateQuotation(context.Background(), &CreateQuotationInput{
		UserID:        uuid.New(),
		QuotationDate: time.Now(),
		CustomerName:  "Walk-in",
		Labours:       []LineItemInput{{Name: "Wash", Quantity: 1, UnitPrice: 200}},
	})
	require.NoError(t, err)

	err = svc.DeleteQuotation(context.Background(), uuid.New(), quotation.ID, false)
	assert.Equal(t, apperror.ErrForbidden, err)
}
