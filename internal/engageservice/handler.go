package engageservice

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/draftwerk/studiohub/internal/common"
)

func NewEngageService(db *sql.DB, mb common.MessageProducer) *EngageService {
	return &EngageService{m: newEngageModel(db), mb: mb}
}

type CreateContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// CreateContact captures a contact-form submission and publishes a
// contact.created event for the notification mailer. The record itself is
// write-once; failures to publish do not roll the row back.
func (s *EngageService) CreateContact(ctx context.Context, req *CreateContactRequest) (*Contact, error) {
	v := common.NewValidator()
	validateName(v, req.Name)
	validateEmail(v, req.Email)
	validateMessage(v, req.Message)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	contact := &Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := s.m.insertContact(ctx, contact); err != nil {
		return nil, err
	}

	if err := s.publish(ctx, contact, common.ContactCreatedKey); err != nil {
		return nil, err
	}

	return contact, nil
}

func (s *EngageService) GetContacts(ctx context.Context) ([]Contact, error) {
	return s.m.getContacts(ctx)
}

func (s *EngageService) DeleteContact(ctx context.Context, id int) error {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.m.deleteFrom(ctx, "contacts", id)
}

type CreateEnquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Budget  string `json:"budget"`
	Message string `json:"message"`
}

// CreateEnquiry captures a service enquiry and publishes an enquiry.created
// event.
func (s *EngageService) CreateEnquiry(ctx context.Context, req *CreateEnquiryRequest) (*Enquiry, error) {
	v := common.NewValidator()
	validateName(v, req.Name)
	validateEmail(v, req.Email)
	validateMessage(v, req.Message)
	v.Check(req.Service != "", "service", "must be provided")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	enquiry := &Enquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Service: req.Service,
		Budget:  req.Budget,
		Message: req.Message,
	}

	if err := s.m.insertEnquiry(ctx, enquiry); err != nil {
		return nil, err
	}

	if err := s.publish(ctx, enquiry, common.EnquiryCreatedKey); err != nil {
		return nil, err
	}

	return enquiry, nil
}

func (s *EngageService) GetEnquiries(ctx context.Context) ([]Enquiry, error) {
	return s.m.getEnquiries(ctx)
}

func (s *EngageService) DeleteEnquiry(ctx context.Context, id int) error {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.m.deleteFrom(ctx, "enquiries", id)
}

// Subscribe adds an email to the newsletter list. A duplicate email returns
// ErrDuplicateEmail. A newsletter.subscribed event triggers the welcome mail.
func (s *EngageService) Subscribe(ctx context.Context, email string) (*Subscriber, error) {
	v := common.NewValidator()
	validateEmail(v, email)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	subscriber := &Subscriber{Email: email}

	if err := s.m.insertSubscriber(ctx, subscriber); err != nil {
		return nil, err
	}

	if err := s.publish(ctx, subscriber, common.NewsletterSubscribeKey); err != nil {
		return nil, err
	}

	return subscriber, nil
}

func (s *EngageService) GetSubscribers(ctx context.Context) ([]Subscriber, error) {
	return s.m.getSubscribers(ctx)
}

func (s *EngageService) DeleteSubscriber(ctx context.Context, id int) error {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.m.deleteFrom(ctx, "subscribers", id)
}

type CreateTestimonialRequest struct {
	FullName    string `json:"full_name"`
	Position    string `json:"position"`
	CompanyName string `json:"company_name"`
	Review      string `json:"review"`
	Stars       int    `json:"stars"`
	PhotoURL    string `json:"photo_url"`
}

func (s *EngageService) CreateTestimonial(ctx context.Context, req *CreateTestimonialRequest) (*Testimonial, error) {
	v := common.NewValidator()
	v.Check(req.FullName != "", "full_name", "must be provided")
	v.Check(req.Review != "", "review", "must be provided")
	validateStars(v, req.Stars)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	testimonial := &Testimonial{
		FullName:    req.FullName,
		Position:    req.Position,
		CompanyName: req.CompanyName,
		Review:      req.Review,
		Stars:       req.Stars,
		PhotoURL:    req.PhotoURL,
	}

	if err := s.m.insertTestimonial(ctx, testimonial); err != nil {
		return nil, err
	}

	return testimonial, nil
}

func (s *EngageService) GetTestimonials(ctx context.Context) ([]Testimonial, error) {
	return s.m.getTestimonials(ctx)
}

func (s *EngageService) DeleteTestimonial(ctx context.Context, id int) error {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.m.deleteFrom(ctx, "testimonials", id)
}

func (s *EngageService) publish(ctx context.Context, payload any, key common.BindingKey) error {
	msg, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return s.mb.Publish(ctx, msg, key, common.EngagementExchange)
}
