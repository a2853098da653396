package engageservice

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/draftwerk/studiohub/internal/common"
)

// stubProducer records published binding keys instead of talking to a broker.
type stubProducer struct {
	keys []common.BindingKey
}

func (p *stubProducer) Publish(ctx context.Context, msg []byte, key common.BindingKey, exchange common.Exchange) error {
	p.keys = append(p.keys, key)
	return nil
}

func setupTestEnvironment(t *testing.T) (*EngageService, *stubProducer, *sql.DB, func() error) {
	db := common.TestDB("file://../../migrations", t)
	producer := &stubProducer{}

	cleanup := func() error {
		for _, table := range []string{"contacts", "enquiries", "subscribers", "testimonials"} {
			if _, err := db.Exec("DELETE FROM " + table); err != nil {
				return err
			}
		}
		return nil
	}

	return NewEngageService(db, producer), producer, db, cleanup
}

func TestCreateContact(t *testing.T) {
	s, producer, _, cleanup := setupTestEnvironment(t)

	contact, err := s.CreateContact(context.Background(), &CreateContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Project enquiry",
		Message: "We would like a new website.",
	})
	assert.NoError(t, err)
	assert.NotZero(t, contact.ID)
	assert.Equal(t, []common.BindingKey{common.ContactCreatedKey}, producer.keys)

	contacts, err := s.GetContacts(context.Background())
	assert.NoError(t, err)
	assert.Len(t, contacts, 1)

	assert.NoError(t, cleanup())
}

func TestCreateContactValidation(t *testing.T) {
	s, producer, _, cleanup := setupTestEnvironment(t)

	_, err := s.CreateContact(context.Background(), &CreateContactRequest{
		Name:  "Jane Doe",
		Email: "not-an-email",
	})
	assert.Equal(t, common.ValidationError{Errors: map[string]string{
		"email":   "must be a valid email address",
		"message": "must be provided",
	}}, err)
	assert.Empty(t, producer.keys)

	assert.NoError(t, cleanup())
}

func TestCreateEnquiry(t *testing.T) {
	s, producer, _, cleanup := setupTestEnvironment(t)

	enquiry, err := s.CreateEnquiry(context.Background(), &CreateEnquiryRequest{
		Name:    "Sam Client",
		Email:   "sam@example.com",
		Phone:   "+4912345678",
		Service: "web-development",
		Budget:  "10k-20k",
		Message: "Need a storefront.",
	})
	assert.NoError(t, err)
	assert.NotZero(t, enquiry.ID)
	assert.Equal(t, []common.BindingKey{common.EnquiryCreatedKey}, producer.keys)

	assert.NoError(t, cleanup())
}

func TestSubscribe(t *testing.T) {
	s, producer, db, cleanup := setupTestEnvironment(t)

	subscriber, err := s.Subscribe(context.Background(), "reader@example.com")
	assert.NoError(t, err)
	assert.NotZero(t, subscriber.ID)
	assert.Equal(t, []common.BindingKey{common.NewsletterSubscribeKey}, producer.keys)

	// duplicate email conflicts and does not insert a second row
	_, err = s.Subscribe(context.Background(), "reader@example.com")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	var count int
	assert.NoError(t, db.QueryRow("SELECT count(*) FROM subscribers").Scan(&count))
	assert.Equal(t, 1, count)

	assert.NoError(t, cleanup())
}

func TestTestimonialLifecycle(t *testing.T) {
	s, _, _, cleanup := setupTestEnvironment(t)

	testimonial, err := s.CreateTestimonial(context.Background(), &CreateTestimonialRequest{
		FullName:    "Ada Customer",
		Position:    "CTO",
		CompanyName: "Acme GmbH",
		Review:      "Great work, delivered on time.",
		Stars:       5,
	})
	assert.NoError(t, err)

	list, err := s.GetTestimonials(context.Background())
	assert.NoError(t, err)
	assert.Len(t, list, 1)

	assert.NoError(t, s.DeleteTestimonial(context.Background(), testimonial.ID))

	// deleted testimonial is absent from the next list fetch
	list, err = s.GetTestimonials(context.Background())
	assert.NoError(t, err)
	for _, item := range list {
		assert.NotEqual(t, testimonial.ID, item.ID)
	}
	assert.Empty(t, list)

	assert.NoError(t, cleanup())
}

func TestCreateTestimonialStars(t *testing.T) {
	s, _, _, cleanup := setupTestEnvironment(t)

	for _, stars := range []int{0, 6, -1} {
		_, err := s.CreateTestimonial(context.Background(), &CreateTestimonialRequest{
			FullName: "Ada Customer",
			Review:   "Nice.",
			Stars:    stars,
		})
		assert.Equal(t, common.ValidationError{Errors: map[string]string{
			"stars": "must be between 1 and 5",
		}}, err)
	}

	assert.NoError(t, cleanup())
}
