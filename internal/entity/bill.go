package entity

import (
	"time"
)

// Item is a single bill line. Its shape is owned by the client.
type Item map[string]any

type Bill struct {
	ID         string
	CustomerID string
	Total      float64
	CreatedAt  *time.Time
	Items      []Item
}

// NewBill is a create request before validation; nil means the field was not sent.
type NewBill struct {
	CustomerID *string  `validate:"required"`
	Total      *float64 `validate:"required"`
	Items      []Item   `validate:"dive,required"`
}

// BillPatch holds the mutable bill fields. Anything else in an update payload is dropped.
type BillPatch struct {
	CustomerID *string
	Total      *float64
	Items      *[]Item
}

func (p BillPatch) IsEmpty() bool {
	return p.CustomerID == nil && p.Total == nil && p.Items == nil
}

type BillFilter struct {
	CustomerID string
	From       *time.Time
	To         *time.Time // exclusive
}

type BillEventType string

const (
	BillEventCreated BillEventType = "bill.created"
	BillEventUpdated BillEventType = "bill.updated"
	BillEventDeleted BillEventType = "bill.deleted"
)
