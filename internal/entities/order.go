package entities

import "errors"

// Order is the top-level aggregate, identified by OrderUID. The same JSON
// encoding is used on the wire and in the data column of the orders table.
type Order struct {
	OrderUID          string   `json:"order_uid" validate:"required"`
	TrackNumber       string   `json:"track_number"`
	Entry             string   `json:"entry"`
	Delivery          Delivery `json:"delivery" validate:"required"`
	Payment           Payment  `json:"payment" validate:"required"`
	Items             []Item   `json:"items" validate:"required"`
	Locale            string   `json:"locale"`
	InternalSignature string   `json:"internal_signature"`
	CustomerID        string   `json:"customer_id"`
	DeliveryService   string   `json:"delivery_service"`
	SharedKey         string   `json:"shared_key"`
	SmID              uint32   `json:"sm_id"`
	DateCreated       string   `json:"date_created"`
	OofShard          string   `json:"oof_shard"`
}

// PartialOrder is the request body of a partial update. Every field is
// optional; there is deliberately no order_uid field, the identifier comes
// from the URL path only.
type PartialOrder struct {
	TrackNumber       *string   `json:"track_number"`
	Entry             *string   `json:"entry"`
	Delivery          *Delivery `json:"delivery"`
	Payment           *Payment  `json:"payment"`
	Items             *[]Item   `json:"items"`
	Locale            *string   `json:"locale"`
	InternalSignature *string   `json:"internal_signature"`
	CustomerID        *string   `json:"customer_id"`
	DeliveryService   *string   `json:"delivery_service"`
	SharedKey         *string   `json:"shared_key"`
	SmID              *uint32   `json:"sm_id"`
	DateCreated       *string   `json:"date_created"`
	OofShard          *string   `json:"oof_shard"`
}

// Merge overlays the fields present in p onto base and returns the result.
// Nested documents and the items list are replaced wholesale, absent fields
// keep their current value. base.OrderUID is never touched.
func (p PartialOrder) Merge(base Order) Order {
	if p.TrackNumber != nil {
		base.TrackNumber = *p.TrackNumber
	}
	if p.Entry != nil {
		base.Entry = *p.Entry
	}
	if p.Delivery != nil {
		base.Delivery = *p.Delivery
	}
	if p.Payment != nil {
		base.Payment = *p.Payment
	}
	if p.Items != nil {
		base.Items = *p.Items
	}
	if p.Locale != nil {
		base.Locale = *p.Locale
	}
	if p.InternalSignature != nil {
		base.InternalSignature = *p.InternalSignature
	}
	if p.CustomerID != nil {
		base.CustomerID = *p.CustomerID
	}
	if p.DeliveryService != nil {
		base.DeliveryService = *p.DeliveryService
	}
	if p.SharedKey != nil {
		base.SharedKey = *p.SharedKey
	}
	if p.SmID != nil {
		base.SmID = *p.SmID
	}
	if p.DateCreated != nil {
		base.DateCreated = *p.DateCreated
	}
	if p.OofShard != nil {
		base.OofShard = *p.OofShard
	}
	return base
}

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrOrderExists    = errors.New("order already exists")
	ErrOrderCorrupted = errors.New("stored order is corrupted")
)
