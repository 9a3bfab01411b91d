package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/samandr77/restaurant-erp/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../../mocks/billing_service.go -package=mocks

type Repository interface {
	Bills(ctx context.Context, filter entity.BillFilter) ([]entity.Bill, error)
	CreateBill(ctx context.Context, bill entity.Bill) (entity.Bill, error)
	Bill(ctx context.Context, id string) (entity.Bill, error)
	UpdateBill(ctx context.Context, id string, patch entity.BillPatch) (entity.Bill, error)
	DeleteBill(ctx context.Context, id string) error
}

type Producer interface {
	SendBillEvent(ctx context.Context, eventType entity.BillEventType, bill entity.Bill)
}

type Service struct {
	repo     Repository
	producer Producer
	validate *validator.Validate
	now      func() time.Time
}

// New creates the billing service. producer may be nil when events are disabled.
func New(repo Repository, producer Producer) *Service {
	return &Service{
		repo:     repo,
		producer: producer,
		validate: validator.New(),
		now:      time.Now,
	}
}

// WithClock replaces the time source used for created_at.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Bills(ctx context.Context, filter entity.BillFilter) ([]entity.Bill, error) {
	bills, err := s.repo.Bills(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}

	return bills, nil
}

func (s *Service) CreateBill(ctx context.Context, req entity.NewBill) (entity.Bill, error) {
	err := s.validateNewBill(req)
	if err != nil {
		return entity.Bill{}, err
	}

	// Stores keep millisecond precision at best.
	createdAt := s.now().UTC().Truncate(time.Millisecond)

	items := req.Items
	if items == nil {
		items = []entity.Item{}
	}

	bill, err := s.repo.CreateBill(ctx, entity.Bill{
		CustomerID: *req.CustomerID,
		Total:      *req.Total,
		CreatedAt:  &createdAt,
		Items:      items,
	})
	if err != nil {
		return entity.Bill{}, fmt.Errorf("create bill: %w", err)
	}

	s.publish(ctx, entity.BillEventCreated, bill)

	return bill, nil
}

func (s *Service) Bill(ctx context.Context, id string) (entity.Bill, error) {
	bill, err := s.repo.Bill(ctx, id)
	if err != nil {
		return entity.Bill{}, fmt.Errorf("get bill %s: %w", id, err)
	}

	return bill, nil
}

func (s *Service) UpdateBill(ctx context.Context, id string, patch entity.BillPatch) (entity.Bill, error) {
	if patch.IsEmpty() {
		return s.Bill(ctx, id)
	}

	if patch.Items != nil {
		err := s.validate.Var(*patch.Items, "dive,required")
		if err != nil {
			return entity.Bill{}, entity.NewValidationError("items", reasonItem)
		}
	}

	bill, err := s.repo.UpdateBill(ctx, id, patch)
	if err != nil {
		return entity.Bill{}, fmt.Errorf("update bill %s: %w", id, err)
	}

	s.publish(ctx, entity.BillEventUpdated, bill)

	return bill, nil
}

func (s *Service) DeleteBill(ctx context.Context, id string) error {
	err := s.repo.DeleteBill(ctx, id)
	if err != nil {
		return fmt.Errorf("delete bill %s: %w", id, err)
	}

	s.publish(ctx, entity.BillEventDeleted, entity.Bill{ID: id})

	return nil
}

func (s *Service) validateNewBill(req entity.NewBill) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors) //nolint:errorlint
	if !ok {
		return fmt.Errorf("validate bill: %w", err)
	}

	fields := make(map[string]string, len(verrs))

	for _, fe := range verrs {
		// Item errors are reported as Items[i].
		name, _, isItem := strings.Cut(fe.Field(), "[")

		reason := fe.Tag()
		if isItem {
			reason = reasonItem
		}

		fields[jsonFieldNames[name]] = reason
	}

	return &entity.ValidationError{Fields: fields}
}

var jsonFieldNames = map[string]string{
	"CustomerID": "customer_id",
	"Total":      "total",
	"Items":      "items",
}

const reasonItem = "expected a non-null object"

func (s *Service) publish(ctx context.Context, eventType entity.BillEventType, bill entity.Bill) {
	if s.producer == nil {
		return
	}

	s.producer.SendBillEvent(ctx, eventType, bill)
}
