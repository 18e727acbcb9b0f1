package domain

import "fmt"

type Product struct {
	ID    int64   `db:"product_id"`
	Name  string  `db:"name"`
	Price float64 `db:"price"`
}

func NewProduct(id int64, name string, price float64) *Product {
	return &Product{
		ID:    id,
		Name:  name,
		Price: price,
	}
}

func (p *Product) String() string {
	return fmt.Sprintf("%s (ID: %d, Price: %.2f)", p.Name, p.ID, p.Price)
}
