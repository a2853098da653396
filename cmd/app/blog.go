package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/draftwerk/studiohub/internal/blogservice"
	"github.com/draftwerk/studiohub/internal/common"
)

type createPostRequest struct {
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	Content  string   `json:"content"`
	Keywords []string `json:"keywords"`
	AuthorID int      `json:"author_id"`
	CoverURL string   `json:"cover_url"`
}

func (app *application) createPostHandler(w http.ResponseWriter, r *http.Request) {
	var input createPostRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	post, err := app.blogService.CreatePost(r.Context(), &blogservice.CreatePostRequest{
		Title:    input.Title,
		Slug:     input.Slug,
		Content:  input.Content,
		Keywords: input.Keywords,
		AuthorID: input.AuthorID,
		CoverURL: input.CoverURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrDuplicateSlug):
			app.conflictErrorResponse(w, r, "a post with this slug already exists")
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"post": post}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

// resolvePost looks up a post by the :key path segment, treating an all-digit
// key as an id and anything else as a slug.
func (app *application) resolvePost(r *http.Request) (*blogservice.Post, error) {
	key := app.readStringParam(r, "key")

	if id, err := strconv.Atoi(key); err == nil {
		return app.blogService.GetPostByID(r.Context(), id)
	}

	return app.blogService.GetPostBySlug(r.Context(), key)
}

func (app *application) getPostHandler(w http.ResponseWriter, r *http.Request) {
	post, err := app.resolvePost(r)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.notFoundErrorResponse(w, r)
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"post": post}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

type updatePostRequest struct {
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	Content  string   `json:"content"`
	Keywords []string `json:"keywords"`
	AuthorID int      `json:"author_id"`
	CoverURL string   `json:"cover_url"`
}

func (app *application) updatePostHandler(w http.ResponseWriter, r *http.Request) {
	var input updatePostRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	dbPost, err := app.resolvePost(r)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.notFoundErrorResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	post := &blogservice.Post{
		ID:       dbPost.ID,
		Title:    input.Title,
		Slug:     input.Slug,
		Content:  input.Content,
		Keywords: input.Keywords,
		AuthorID: input.AuthorID,
		CoverURL: input.CoverURL,
		Version:  dbPost.Version,
	}

	err = app.blogService.UpdatePost(r.Context(), post)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.notFoundErrorResponse(w, r)
		case errors.Is(err, blogservice.ErrDuplicateSlug):
			app.conflictErrorResponse(w, r, "a post with this slug already exists")
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"post": post}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) deletePostHandler(w http.ResponseWriter, r *http.Request) {
	dbPost, err := app.resolvePost(r)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.notFoundErrorResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.blogService.DeletePost(r.Context(), dbPost.ID)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.notFoundErrorResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "post deleted"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) getPostsHandler(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := app.readLimitOffsetParams(r)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	var posts []blogservice.Post

	if q := r.URL.Query().Get("q"); q != "" {
		posts, err = app.blogService.SearchPosts(r.Context(), q, limit, offset)
	} else {
		posts, err = app.blogService.GetPosts(r.Context(), limit, offset)
	}
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

	err = app.writeJSON(w, http.StatusOK, envelope{"posts": posts}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
