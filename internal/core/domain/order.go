package domain

import (
	"fmt"
	"strings"
	"time"
)

// DefaultStatus is the status assigned to orders created without one.
const DefaultStatus = "New"

type Order struct {
	ID       int64
	Client   *Client
	Products []Product // line items, duplicates allowed
	Date     time.Time
	Status   string
}

// NewOrder builds an order with explicit defaults: a zero date becomes
// time.Now() and an empty status becomes DefaultStatus.
func NewOrder(id int64, client *Client, products []Product, date time.Time, status string) *Order {
	if date.IsZero() {
		date = time.Now()
	}
	if status == "" {
		status = DefaultStatus
	}
	return &Order{
		ID:       id,
		Client:   client,
		Products: products,
		Date:     date,
		Status:   status,
	}
}

// TotalPrice is the sum of the current prices of all linked products.
// It is derived on read, never stored, so it tracks later price updates
// and shrinks when a linked product is deleted.
func (o *Order) TotalPrice() float64 {
	var total float64
	for _, p := range o.Products {
		total += p.Price
	}
	return total
}

// ProductIDs returns the distinct product identifiers of the order's line items.
func (o *Order) ProductIDs() []int64 {
	seen := make(map[int64]bool, len(o.Products))
	var ids []int64
	for _, p := range o.Products {
		if !seen[p.ID] {
			seen[p.ID] = true
			ids = append(ids, p.ID)
		}
	}
	return ids
}

func (o *Order) String() string {
	names := make([]string, len(o.Products))
	for i, p := range o.Products {
		names[i] = p.Name
	}
	clientName := ""
	if o.Client != nil {
		clientName = o.Client.Name
	}
	return fmt.Sprintf("Order %d from %s\nClient: %s\nProducts: %s\nStatus: %s\nTotal: %.2f",
		o.ID, o.Date.Format("02-01-2006 15:04:05"), clientName, strings.Join(names, ", "), o.Status, o.TotalPrice())
}
