package main

import (
	"errors"
	"net/http"

	"github.com/draftwerk/studiohub/internal/common"
	"github.com/draftwerk/studiohub/internal/projectservice"
)

type createProjectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	ImageURL    string   `json:"image_url"`
}

func (app *application) createProjectHandler(w http.ResponseWriter, r *http.Request) {
	var input createProjectRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	project, err := app.projectService.CreateProject(r.Context(), &projectservice.CreateProjectRequest{
		Title:       input.Title,
		Description: input.Description,
		Tags:        input.Tags,
		ImageURL:    input.ImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, projectservice.ErrDuplicateTitle):
			app.conflictErrorResponse(w, r, "a project with this title already exists")
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"project": project}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) getProjectsHandler(w http.ResponseWriter, r *http.Request) {
	projects, err := app.projectService.GetProjects(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"projects": projects}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) deleteProjectHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.projectService.DeleteProject(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, projectservice.ErrRecordNotFound):
			app.notFoundErrorResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "project deleted"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
