package controllers

import (
	"jobportal/models"
	"jobportal/services"

	"github.com/kataras/iris/v12"
)

var applicationModel models.JobApplicationModel

func GetApplicationsParty(app *iris.Application) {
	applicationsAPI := app.Party("/applications")
	{
		applicationsAPI.Use(iris.Compression)
		applicationsAPI.Use(services.JWTServices.VerifyMiddleware)

		applicationsAPI.Post("/", apply)
		applicationsAPI.Get("/job/{jobId}", listJobApplications)
		applicationsAPI.Get("/my-applications", listMyApplications)
		applicationsAPI.Patch("/{id}/status", updateApplicationStatus)
	}
}

type applyRequest struct {
	JobID       string `json:"jobId" validate:"required"`
	CoverLetter string `json:"coverLetter" validate:"required"`
	Resume      string `json:"resume"`
}

func apply(ctx iris.Context) {
	var data applyRequest

	claims := services.Claims(ctx)

	if !readBody(ctx, &data) {
		return
	}

	application, err := applicationModel.Apply(data.JobID, claims.UserID, data.CoverLetter, data.Resume)
	if err != nil {
		failModel(ctx, err)
		return
	}

	respond(ctx, iris.StatusCreated, application)
}

func listJobApplications(ctx iris.Context) {
	claims := services.Claims(ctx)

	applications, err := applicationModel.GetForJob(ctx.Params().Get("jobId"), claims.UserID)
	if err != nil {
		failModel(ctx, err)
		return
	}

	respond(ctx, iris.StatusOK, applications)
}

func listMyApplications(ctx iris.Context) {
	claims := services.Claims(ctx)

	applications, err := applicationModel.GetForApplicant(claims.UserID)
	if err != nil {
		failModel(ctx, err)
		return
	}

	respond(ctx, iris.StatusOK, applications)
}

func updateApplicationStatus(ctx iris.Context) {
	var data struct {
		Status string `json:"status" validate:"required,oneof=pending reviewed accepted rejected"`
	}

	claims := services.Claims(ctx)

	if !readBody(ctx, &data) {
		return
	}

	application, err := applicationModel.UpdateStatus(ctx.Params().Get("id"), data.Status, claims.UserID)
	if err != nil {
		failModel(ctx, err)
		return
	}

	respond(ctx, iris.StatusOK, application)
}
