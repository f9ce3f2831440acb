package controllers

import (
	"jobportal/database"
	"jobportal/models"
	"jobportal/services"

	"github.com/kataras/iris/v12"
)

var jobModel models.JobModel

func GetJobsParty(app *iris.Application) {
	jobsAPI := app.Party("/jobs")
	{
		jobsAPI.Use(iris.Compression)

		jobsAPI.Get("/", listJobs)
		jobsAPI.Get("/my-jobs", services.JWTServices.VerifyMiddleware, listMyJobs)
		jobsAPI.Get("/{id}", getJob)
		jobsAPI.Post("/", services.JWTServices.VerifyMiddleware, createJob)
		jobsAPI.Patch("/{id}", services.JWTServices.VerifyMiddleware, updateJob)
		jobsAPI.Delete("/{id}", services.JWTServices.VerifyMiddleware, deleteJob)
	}
}

type jobRequest struct {
	Title            string      `json:"title" validate:"required"`
	Company          string      `json:"company" validate:"required"`
	Location         string      `json:"location" validate:"required"`
	Description      string      `json:"description" validate:"required"`
	JobType          string      `json:"jobType"`
	Salary           string      `json:"salary"`
	Requirements     string      `json:"requirements"`
	Responsibilities string      `json:"responsibilities"`
	Deadline         interface{} `json:"deadline"`
	Status           string      `json:"status" validate:"omitempty,oneof=active closed draft"`
}

func createJob(ctx iris.Context) {
	var data jobRequest

	claims := services.Claims(ctx)

	if !readBody(ctx, &data) {
		return
	}

	deadline, err := models.ParseDeadline(data.Deadline)
	if err != nil {
		failModel(ctx, err)
		return
	}

	job := &database.Job{
		Title:            data.Title,
		Company:          data.Company,
		Location:         data.Location,
		Description:      data.Description,
		JobType:          data.JobType,
		Salary:           data.Salary,
		Requirements:     data.Requirements,
		Responsibilities: data.Responsibilities,
		Deadline:         deadline,
		Status:           data.Status,
	}

	if err := jobModel.Create(claims.UserID, job); err != nil {
		failModel(ctx, err)
		return
	}

	respond(ctx, iris.StatusCreated, job)
}

func listJobs(ctx iris.Context) {
	jobs, err := jobModel.GetAll()
	if err != nil {
		failModel(ctx, err)
		return
	}

	respond(ctx, iris.StatusOK, jobs)
}

func listMyJobs(ctx iris.Context) {
	claims := services.Claims(ctx)

	jobs, err := jobModel.GetByPoster(claims.UserID)
	if err != nil {
		failModel(ctx, err)
		return
	}

	respond(ctx, iris.StatusOK, jobs)
}

func getJob(ctx iris.Context) {
	job, err := jobModel.Get(ctx.Params().Get("id"))
	if err != nil {
		failModel(ctx, err)
		return
	}

	respond(ctx, iris.StatusOK, job)
}

func updateJob(ctx iris.Context) {
	claims := services.Claims(ctx)

	updates, ok := readUpdates(ctx)
	if !ok {
		return
	}

	job, err := jobModel.Update(ctx.Params().Get("id"), claims.UserID, updates)
	if err != nil {
		failModel(ctx, err)
		return
	}

	respond(ctx, iris.StatusOK, job)
}

func deleteJob(ctx iris.Context) {
	claims := services.Claims(ctx)

	if err := jobModel.Delete(ctx.Params().Get("id"), claims.UserID); err != nil {
		failModel(ctx, err)
		return
	}

	respond(ctx, iris.StatusOK, iris.Map{
		"success": true,
	})
}
