package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/draftwerk/studiohub/internal/userservice"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundErrorResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	router.HandlerFunc(http.MethodGet, "/api/healthcheck", app.healthCheckHandler)

	// user service
	router.HandlerFunc(http.MethodPost, "/api/users/register", app.registerUserHandler)
	router.HandlerFunc(http.MethodPut, "/api/users/activate", app.activateUserHandler)
	router.HandlerFunc(http.MethodPost, "/api/users/login", app.loginUserHandler)
	router.HandlerFunc(http.MethodPost, "/api/users/logout", app.requireAuthUser(app.logoutUserHandler))

	// blog service. The :key segment takes a numeric id or a slug.
	router.HandlerFunc(http.MethodGet, "/api/blog", app.getPostsHandler)
	router.HandlerFunc(http.MethodPost, "/api/blog", app.requirePermission(app.createPostHandler, userservice.PermissionWritePosts))
	router.HandlerFunc(http.MethodGet, "/api/blog/:key", app.getPostHandler)
	router.HandlerFunc(http.MethodPut, "/api/blog/:key", app.requirePermission(app.updatePostHandler, userservice.PermissionWritePosts))
	router.HandlerFunc(http.MethodDelete, "/api/blog/:key", app.requirePermission(app.deletePostHandler, userservice.PermissionWritePosts))

	// project service
	router.HandlerFunc(http.MethodGet, "/api/project", app.getProjectsHandler)
	router.HandlerFunc(http.MethodPost, "/api/project", app.requirePermission(app.createProjectHandler, userservice.PermissionAdminAccess))
	router.HandlerFunc(http.MethodDelete, "/api/project/:id", app.requirePermission(app.deleteProjectHandler, userservice.PermissionAdminAccess))

	// engagement capture: the create endpoints are public site forms, the
	// list and delete endpoints back the admin dashboard.
	router.HandlerFunc(http.MethodPost, "/api/contact", app.createContactHandler)
	router.HandlerFunc(http.MethodGet, "/api/contact", app.requirePermission(app.getContactsHandler, userservice.PermissionAdminAccess))
	router.HandlerFunc(http.MethodDelete, "/api/contact/:id", app.requirePermission(app.deleteContactHandler, userservice.PermissionAdminAccess))

	router.HandlerFunc(http.MethodPost, "/api/enquiry", app.createEnquiryHandler)
	router.HandlerFunc(http.MethodGet, "/api/enquiry", app.requirePermission(app.getEnquiriesHandler, userservice.PermissionAdminAccess))
	router.HandlerFunc(http.MethodDelete, "/api/enquiry/:id", app.requirePermission(app.deleteEnquiryHandler, userservice.PermissionAdminAccess))

	router.HandlerFunc(http.MethodPost, "/api/newsletter", app.subscribeHandler)
	router.HandlerFunc(http.MethodGet, "/api/newsletter", app.requirePermission(app.getSubscribersHandler, userservice.PermissionAdminAccess))
	router.HandlerFunc(http.MethodDelete, "/api/newsletter/:id", app.requirePermission(app.deleteSubscriberHandler, userservice.PermissionAdminAccess))

	router.HandlerFunc(http.MethodPost, "/api/testimonial", app.createTestimonialHandler)
	router.HandlerFunc(http.MethodGet, "/api/testimonial", app.getTestimonialsHandler)
	router.HandlerFunc(http.MethodDelete, "/api/testimonial/:id", app.requirePermission(app.deleteTestimonialHandler, userservice.PermissionAdminAccess))

	// client portal credentials
	router.HandlerFunc(http.MethodPost, "/api/clients", app.requirePermission(app.createClientHandler, userservice.PermissionAdminAccess))
	router.HandlerFunc(http.MethodGet, "/api/clients", app.requirePermission(app.getClientsHandler, userservice.PermissionAdminAccess))
	router.HandlerFunc(http.MethodPost, "/api/clients/login", app.loginClientHandler)
	router.HandlerFunc(http.MethodDelete, "/api/clients/:id", app.requirePermission(app.deleteClientHandler, userservice.PermissionAdminAccess))

	// media uploads
	router.HandlerFunc(http.MethodPost, "/api/images", app.requirePermission(app.uploadMediaHandler, userservice.PermissionWritePosts))

	return app.recoverPanic(app.rateLimit(app.logRequest(app.authenticate(router))))
}
