package main

import (
	"errors"
	"net/http"

	"github.com/draftwerk/studiohub/internal/clientservice"
	"github.com/draftwerk/studiohub/internal/common"
)

type createClientRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (app *application) createClientHandler(w http.ResponseWriter, r *http.Request) {
	var input createClientRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	client, err := app.clientService.CreateClient(r.Context(), &clientservice.CreateClientRequest{
		Username: input.Username,
		Password: input.Password,
		Role:     input.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, clientservice.ErrDuplicateUsername):
			app.conflictErrorResponse(w, r, "a client with this username already exists")
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"client": client}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

// getClientsHandler backs the admin credential list: passwords come back
// decrypted so the agency can hand them to clients.
func (app *application) getClientsHandler(w http.ResponseWriter, r *http.Request) {
	clients, err := app.clientService.GetClients(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"clients": clients}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

type loginClientRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (app *application) loginClientHandler(w http.ResponseWriter, r *http.Request) {
	var input loginClientRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	client, err := app.clientService.Authenticate(r.Context(), input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, clientservice.ErrAuthenticationFailure):
			app.invalidCredentialsErrorResponse(w, r)
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"client": client}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) deleteClientHandler(w http.ResponseWriter, r *http.Request) {
	id := app.readStringParam(r, "id")

	err := app.clientService.DeleteClient(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, clientservice.ErrRecordNotFound):
			app.notFoundErrorResponse(w, r)
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "client deleted"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
