package models

import (
	"fmt"
	"strings"

	"jobportal/database"
)

type JobApplicationModel struct {
}

// ApplicationDetail is an application with its job, the job's poster and
// the applicant, as far as the caller asked for them.
type ApplicationDetail struct {
	database.JobApplication
	Job       *JobSummary    `json:"job,omitempty"`
	Applicant *database.User `json:"applicant,omitempty"`
}

type JobSummary struct {
	database.Job
	PostedBy *database.User `json:"postedBy,omitempty"`
}

func (m *JobApplicationModel) Apply(jobID string, applicantID string, coverLetter string, resume string) (*database.JobApplication, error) {
	app := &database.JobApplication{
		JobId:       jobID,
		ApplicantId: applicantID,
		CoverLetter: strings.TrimSpace(coverLetter),
		Resume:      resume,
		Status:      database.ApplicationPending,
	}

	if err := validateStruct(app); err != nil {
		return nil, err
	}

	if _, err := findJob(jobID); err != nil {
		return nil, err
	}

	has, err := database.DB.Engine.Table("job_applications").
		Where("job_id=? AND applicant_id=?", jobID, applicantID).
		Exist()
	if err != nil {
		return nil, err
	}
	if has {
		return nil, fmt.Errorf("%w: already applied to this job", ErrConflict)
	}

	if _, err := database.DB.Engine.Insert(app); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: already applied to this job", ErrConflict)
		}
		return nil, err
	}

	return app, nil
}

// GetForJob lists the applications of a job. Only the poster may see them.
func (m *JobApplicationModel) GetForJob(jobID string, userID string) ([]ApplicationDetail, error) {
	job, err := findOwnedJob(jobID, userID)
	if err != nil {
		return nil, err
	}

	var apps []database.JobApplication
	if err := database.DB.Engine.Where("job_id=?", jobID).Desc("created_at").Find(&apps); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(apps))
	for _, app := range apps {
		ids = append(ids, app.ApplicantId)
	}

	applicants, err := usersByID(ids)
	if err != nil {
		return nil, err
	}

	result := make([]ApplicationDetail, 0, len(apps))
	for _, app := range apps {
		result = append(result, ApplicationDetail{
			JobApplication: app,
			Job:            &JobSummary{Job: *job},
			Applicant:      applicants[app.ApplicantId],
		})
	}

	return result, nil
}

func (m *JobApplicationModel) GetForApplicant(userID string) ([]ApplicationDetail, error) {
	var apps []database.JobApplication
	if err := database.DB.Engine.Where("applicant_id=?", userID).Desc("created_at").Find(&apps); err != nil {
		return nil, err
	}

	jobs, err := jobsByID(applicationJobIDs(apps))
	if err != nil {
		return nil, err
	}

	posterIDs := make([]string, 0, len(jobs))
	for _, job := range jobs {
		posterIDs = append(posterIDs, job.PostedById)
	}

	posters, err := usersByID(posterIDs)
	if err != nil {
		return nil, err
	}

	result := make([]ApplicationDetail, 0, len(apps))
	for _, app := range apps {
		detail := ApplicationDetail{JobApplication: app}
		if job, ok := jobs[app.JobId]; ok {
			detail.Job = &JobSummary{Job: *job, PostedBy: posters[job.PostedById]}
		}
		result = append(result, detail)
	}

	return result, nil
}

// UpdateStatus changes an application's status. Only the poster of the
// job applied to may do this.
func (m *JobApplicationModel) UpdateStatus(id string, status string, userID string) (*database.JobApplication, error) {
	app := &database.JobApplication{}

	has, err := database.DB.Engine.ID(id).Get(app)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, ErrNotFound
	}

	if _, err := findOwnedJob(app.JobId, userID); err != nil {
		return nil, err
	}

	app.Status = status
	if err := validateStruct(app); err != nil {
		return nil, err
	}

	if _, err := database.DB.Engine.ID(id).Cols("status").Update(app); err != nil {
		return nil, err
	}

	return app, nil
}
