package engageservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/draftwerk/studiohub/internal/common"
)

var (
	ErrRecordNotFound = common.ErrRecordNotFound
	ErrDuplicateEmail = errors.New("email already subscribed")
)

func newEngageModel(db *sql.DB) *EngageModel {
	return &EngageModel{db: db}
}

func (m *EngageModel) insertContact(ctx context.Context, c *Contact) error {
	query := `
		INSERT INTO contacts (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	return m.db.QueryRowContext(ctx, query, c.Name, c.Email, c.Subject, c.Message).Scan(&c.ID, &c.CreatedAt)
}

func (m *EngageModel) getContacts(ctx context.Context) ([]Contact, error) {
	query := `
		SELECT id, name, email, subject, message, created_at
		FROM contacts
		ORDER BY created_at DESC`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []Contact
	for rows.Next() {
		var c Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}

	return contacts, rows.Err()
}

func (m *EngageModel) insertEnquiry(ctx context.Context, e *Enquiry) error {
	query := `
		INSERT INTO enquiries (name, email, phone, service, budget, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	return m.db.QueryRowContext(ctx, query, e.Name, e.Email, e.Phone, e.Service, e.Budget, e.Message).Scan(&e.ID, &e.CreatedAt)
}

func (m *EngageModel) getEnquiries(ctx context.Context) ([]Enquiry, error) {
	query := `
		SELECT id, name, email, phone, service, budget, message, created_at
		FROM enquiries
		ORDER BY created_at DESC`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enquiries []Enquiry
	for rows.Next() {
		var e Enquiry
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.Service, &e.Budget, &e.Message, &e.CreatedAt); err != nil {
			return nil, err
		}
		enquiries = append(enquiries, e)
	}

	return enquiries, rows.Err()
}

func (m *EngageModel) insertSubscriber(ctx context.Context, s *Subscriber) error {
	query := `
		INSERT INTO subscribers (email)
		VALUES ($1)
		RETURNING id, created_at`

	err := m.db.QueryRowContext(ctx, query, s.Email).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" && pqErr.Constraint == "subscribers_email_key" {
			return ErrDuplicateEmail
		}
		return err
	}

	return nil
}

func (m *EngageModel) getSubscribers(ctx context.Context) ([]Subscriber, error) {
	query := `
		SELECT id, email, created_at
		FROM subscribers
		ORDER BY created_at DESC`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subscribers []Subscriber
	for rows.Next() {
		var s Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.CreatedAt); err != nil {
			return nil, err
		}
		subscribers = append(subscribers, s)
	}

	return subscribers, rows.Err()
}

func (m *EngageModel) insertTestimonial(ctx context.Context, t *Testimonial) error {
	query := `
		INSERT INTO testimonials (full_name, position, company_name, review, stars, photo_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	return m.db.QueryRowContext(ctx, query, t.FullName, t.Position, t.CompanyName, t.Review, t.Stars, t.PhotoURL).Scan(&t.ID, &t.CreatedAt)
}

func (m *EngageModel) getTestimonials(ctx context.Context) ([]Testimonial, error) {
	query := `
		SELECT id, full_name, position, company_name, review, stars, photo_url, created_at
		FROM testimonials
		ORDER BY created_at DESC`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var testimonials []Testimonial
	for rows.Next() {
		var t Testimonial
		if err := rows.Scan(&t.ID, &t.FullName, &t.Position, &t.CompanyName, &t.Review, &t.Stars, &t.PhotoURL, &t.CreatedAt); err != nil {
			return nil, err
		}
		testimonials = append(testimonials, t)
	}

	return testimonials, rows.Err()
}

func (m *EngageModel) deleteFrom(ctx context.Context, table string, id int) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", table)

	res, err := m.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows != 1 {
		switch {
		case rows == 0:
			return ErrRecordNotFound
		default:
			return fmt.Errorf("expected 1 row to be affected, got %d", rows)
		}
	}

	return nil
}
