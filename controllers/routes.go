package controllers

import (
	"jobportal/models"

	"github.com/kataras/iris/v12"
)

// NewApplication builds the iris app with every party registered.
// services.JWTServices must be initialised first.
func NewApplication() *iris.Application {
	app := iris.New()
	app.Validator = models.NewValidator()

	GetAuthParty(app)
	GetJobsParty(app)
	GetUsersParty(app)
	GetApplicationsParty(app)

	return app
}
