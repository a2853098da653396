package clientservice

import (
	"database/sql"
	"time"
)

// Client is a portal credential record the agency hands out to customers.
// Unlike admin accounts these passwords are stored reversibly so the admin UI
// can display them for copy-to-clipboard; the two schemes are intentionally
// separate.
type Client struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type ClientModel struct {
	db *sql.DB
}

type ClientService struct {
	m      *ClientModel
	cipher *Cipher
}
