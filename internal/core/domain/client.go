package domain

import "fmt"

type Client struct {
	ID    int64  `db:"client_id"`
	Name  string `db:"name"`
	Email string `db:"email"`
	Phone string `db:"phone"`
}

func NewClient(id int64, name, email, phone string) *Client {
	return &Client{
		ID:    id,
		Name:  name,
		Email: email,
		Phone: phone,
	}
}

// IsValid reports whether the client's contact details are well-formed.
// Validity is advisory: the store accepts invalid rows, the interactive
// layers gate on it before insertion.
func (c *Client) IsValid() bool {
	return ValidEmail(c.Email) && ValidPhone(c.Phone)
}

func (c *Client) String() string {
	return fmt.Sprintf("Client %d: %s (Email: %s, Phone: %s)", c.ID, c.Name, c.Email, c.Phone)
}
