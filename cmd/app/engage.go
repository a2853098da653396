package main

import (
	"errors"
	"net/http"

	"github.com/draftwerk/studiohub/internal/common"
	"github.com/draftwerk/studiohub/internal/engageservice"
)

type createContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (app *application) createContactHandler(w http.ResponseWriter, r *http.Request) {
	var input createContactRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	contact, err := app.engageService.CreateContact(r.Context(), &engageservice.CreateContactRequest{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	})
	if err != nil {
		switch {
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"contact": contact}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) getContactsHandler(w http.ResponseWriter, r *http.Request) {
	contacts, err := app.engageService.GetContacts(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"contacts": contacts}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) deleteContactHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.engageService.DeleteContact(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, engageservice.ErrRecordNotFound):
			app.notFoundErrorResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "contact deleted"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

type createEnquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Budget  string `json:"budget"`
	Message string `json:"message"`
}

func (app *application) createEnquiryHandler(w http.ResponseWriter, r *http.Request) {
	var input createEnquiryRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	enquiry, err := app.engageService.CreateEnquiry(r.Context(), &engageservice.CreateEnquiryRequest{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Service: input.Service,
		Budget:  input.Budget,
		Message: input.Message,
	})
	if err != nil {
		switch {
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"enquiry": enquiry}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) getEnquiriesHandler(w http.ResponseWriter, r *http.Request) {
	enquiries, err := app.engageService.GetEnquiries(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"enquiries": enquiries}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) deleteEnquiryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.engageService.DeleteEnquiry(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, engageservice.ErrRecordNotFound):
			app.notFoundErrorResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "enquiry deleted"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

type subscribeRequest struct {
	Email string `json:"email"`
}

func (app *application) subscribeHandler(w http.ResponseWriter, r *http.Request) {
	var input subscribeRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	subscriber, err := app.engageService.Subscribe(r.Context(), input.Email)
	if err != nil {
		switch {
		case errors.Is(err, engageservice.ErrDuplicateEmail):
			app.conflictErrorResponse(w, r, "this email address is already subscribed")
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"subscriber": subscriber}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) getSubscribersHandler(w http.ResponseWriter, r *http.Request) {
	subscribers, err := app.engageService.GetSubscribers(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"subscribers": subscribers}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) deleteSubscriberHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.engageService.DeleteSubscriber(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, engageservice.ErrRecordNotFound):
			app.notFoundErrorResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "subscriber deleted"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

type createTestimonialRequest struct {
	FullName    string `json:"full_name"`
	Position    string `json:"position"`
	CompanyName string `json:"company_name"`
	Review      string `json:"review"`
	Stars       int    `json:"stars"`
	PhotoURL    string `json:"photo_url"`
}

func (app *application) createTestimonialHandler(w http.ResponseWriter, r *http.Request) {
	var input createTestimonialRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	testimonial, err := app.engageService.CreateTestimonial(r.Context(), &engageservice.CreateTestimonialRequest{
		FullName:    input.FullName,
		Position:    input.Position,
		CompanyName: input.CompanyName,
		Review:      input.Review,
		Stars:       input.Stars,
		PhotoURL:    input.PhotoURL,
	})
	if err != nil {
		switch {
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"testimonial": testimonial}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) getTestimonialsHandler(w http.ResponseWriter, r *http.Request) {
	testimonials, err := app.engageService.GetTestimonials(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"testimonials": testimonials}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) deleteTestimonialHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.engageService.DeleteTestimonial(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, engageservice.ErrRecordNotFound):
			app.notFoundErrorResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "testimonial deleted"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
