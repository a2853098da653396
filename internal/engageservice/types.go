package engageservice

import (
	"database/sql"
	"time"

	"github.com/draftwerk/studiohub/internal/common"
)

// Contact is a message left via the public contact form.
type Contact struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Enquiry is a service enquiry from the services page, with more context than
// a plain contact message.
type Enquiry struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Service   string    `json:"service"`
	Budget    string    `json:"budget"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type Subscriber struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type Testimonial struct {
	ID          int       `json:"id"`
	FullName    string    `json:"full_name"`
	Position    string    `json:"position"`
	CompanyName string    `json:"company_name"`
	Review      string    `json:"review"`
	Stars       int       `json:"stars"`
	PhotoURL    string    `json:"photo_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type EngageModel struct {
	db *sql.DB
}

type EngageService struct {
	m  *EngageModel
	mb common.MessageProducer
}
