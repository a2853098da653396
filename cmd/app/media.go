package main

import (
	"errors"
	"net/http"

	"github.com/draftwerk/studiohub/internal/common"
	"github.com/draftwerk/studiohub/internal/mediaservice"
)

const maxUploadMemory = 12 << 20

// uploadMediaHandler forwards a multipart upload to the external media host
// and returns the host's metadata. The file form field carries the binary; an
// optional kind field of "document" switches to the document profile.
func (app *application) uploadMediaHandler(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(maxUploadMemory)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		app.badRequestErrorResponse(w, r, errors.New("request must contain a file form field"))
		return
	}
	defer file.Close()

	kind := mediaservice.KindImage
	if r.FormValue("kind") == "document" {
		kind = mediaservice.KindDocument
	}

	result, err := app.mediaService.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), header.Size, file, kind)
	if err != nil {
		var uploadErr *mediaservice.UploadError

		switch {
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		case errors.As(err, &uploadErr):
			app.badGatewayErrorResponse(w, r, uploadErr.Message)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"upload": result}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
