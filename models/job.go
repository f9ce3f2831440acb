package models

import (
	"fmt"
	"strings"
	"time"

	"jobportal/database"
)

type JobModel struct {
}

// JobDetail is a job with its poster and its applications.
type JobDetail struct {
	database.Job
	PostedBy     *database.User             `json:"postedBy,omitempty"`
	Applications []ApplicationWithApplicant `json:"applications"`
}

type ApplicationWithApplicant struct {
	database.JobApplication
	Applicant *database.User `json:"applicant,omitempty"`
}

const dateLayout = "2006-01-02"

func (m *JobModel) Create(posterID string, job *database.Job) error {
	job.Title = strings.TrimSpace(job.Title)
	job.Company = strings.TrimSpace(job.Company)
	job.Location = strings.TrimSpace(job.Location)
	job.Description = strings.TrimSpace(job.Description)
	if job.Status == "" {
		job.Status = database.JobActive
	}

	job.Id = ""
	job.PostedById = posterID

	if err := validateStruct(job); err != nil {
		return err
	}

	_, err := database.DB.Engine.Insert(job)

	return err
}

func (m *JobModel) GetAll() ([]JobDetail, error) {
	var jobs []database.Job

	if err := database.DB.Engine.Desc("created_at").Find(&jobs); err != nil {
		return nil, err
	}

	return m.details(jobs, false)
}

func (m *JobModel) GetByPoster(userID string) ([]JobDetail, error) {
	var jobs []database.Job

	if err := database.DB.Engine.Where("posted_by_id=?", userID).Desc("created_at").Find(&jobs); err != nil {
		return nil, err
	}

	return m.details(jobs, false)
}

func (m *JobModel) Get(id string) (*JobDetail, error) {
	job, err := findJob(id)
	if err != nil {
		return nil, err
	}

	details, err := m.details([]database.Job{*job}, true)
	if err != nil {
		return nil, err
	}

	return &details[0], nil
}

// Update applies the fields present in updates. Only the poster may update.
func (m *JobModel) Update(id string, userID string, updates map[string]interface{}) (*database.Job, error) {
	job, err := findOwnedJob(id, userID)
	if err != nil {
		return nil, err
	}

	cols := []string{}

	text := []struct {
		key, col string
		dst      *string
		trim     bool
	}{
		{"title", "title", &job.Title, true},
		{"company", "company", &job.Company, true},
		{"location", "location", &job.Location, true},
		{"description", "description", &job.Description, true},
		{"jobType", "job_type", &job.JobType, false},
		{"salary", "salary", &job.Salary, false},
		{"requirements", "requirements", &job.Requirements, false},
		{"responsibilities", "responsibilities", &job.Responsibilities, false},
		{"status", "status", &job.Status, true},
	}

	for _, f := range text {
		val, exist := updates[f.key].(string)
		if !exist {
			continue
		}
		if f.trim {
			val = strings.TrimSpace(val)
		}
		cols = append(cols, f.col)
		*f.dst = val
	}

	if raw, exist := updates["deadline"]; exist {
		deadline, err := ParseDeadline(raw)
		if err != nil {
			return nil, err
		}
		cols = append(cols, "deadline")
		job.Deadline = deadline
	}

	if len(cols) == 0 {
		return job, nil
	}

	if err := validateStruct(job); err != nil {
		return nil, err
	}

	if _, err := database.DB.Engine.ID(id).Cols(cols...).Update(job); err != nil {
		return nil, err
	}

	return job, nil
}

// Delete removes the job and its applications. Only the poster may delete.
func (m *JobModel) Delete(id string, userID string) error {
	if _, err := findOwnedJob(id, userID); err != nil {
		return err
	}

	session := database.DB.Engine.NewSession()
	defer session.Close()

	if err := session.Begin(); err != nil {
		return err
	}

	if _, err := session.Where("job_id=?", id).Delete(&database.JobApplication{}); err != nil {
		session.Rollback()
		return err
	}

	if _, err := session.ID(id).Delete(&database.Job{}); err != nil {
		session.Rollback()
		return err
	}

	return session.Commit()
}

// ParseDeadline accepts nil, an empty string, or a YYYY-MM-DD date.
func ParseDeadline(raw interface{}) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}

	s, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("%w: deadline must be a date string", ErrInvalid)
	}
	if s == "" {
		return nil, nil
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		// full timestamps are accepted too
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, fmt.Errorf("%w: deadline %q", ErrInvalid, s)
		}
	}

	return &t, nil
}

func findJob(id string) (*database.Job, error) {
	job := &database.Job{}

	has, err := database.DB.Engine.ID(id).Get(job)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, ErrNotFound
	}

	return job, nil
}

func findOwnedJob(id string, userID string) (*database.Job, error) {
	job, err := findJob(id)
	if err != nil {
		return nil, err
	}

	if job.PostedById != userID {
		return nil, ErrForbidden
	}

	return job, nil
}

func jobsByID(ids []string) (map[string]*database.Job, error) {
	result := map[string]*database.Job{}
	if len(ids) == 0 {
		return result, nil
	}

	var jobs []database.Job
	if err := database.DB.Engine.In("id", ids).Find(&jobs); err != nil {
		return nil, err
	}

	for i := range jobs {
		result[jobs[i].Id] = &jobs[i]
	}

	return result, nil
}

// details loads posters and applications for jobs, keeping their order.
func (m *JobModel) details(jobs []database.Job, withApplicants bool) ([]JobDetail, error) {
	result := make([]JobDetail, 0, len(jobs))
	if len(jobs) == 0 {
		return result, nil
	}

	jobIDs := make([]string, 0, len(jobs))
	posterIDs := make([]string, 0, len(jobs))
	for _, job := range jobs {
		jobIDs = append(jobIDs, job.Id)
		posterIDs = append(posterIDs, job.PostedById)
	}

	posters, err := usersByID(posterIDs)
	if err != nil {
		return nil, err
	}

	var apps []database.JobApplication
	if err := database.DB.Engine.In("job_id", jobIDs).Desc("created_at").Find(&apps); err != nil {
		return nil, err
	}

	applicants := map[string]*database.User{}
	if withApplicants {
		ids := make([]string, 0, len(apps))
		for _, app := range apps {
			ids = append(ids, app.ApplicantId)
		}
		if applicants, err = usersByID(ids); err != nil {
			return nil, err
		}
	}

	byJob := map[string][]ApplicationWithApplicant{}
	for _, app := range apps {
		byJob[app.JobId] = append(byJob[app.JobId], ApplicationWithApplicant{JobApplication: app, Applicant: applicants[app.ApplicantId]})
	}

	for _, job := range jobs {
		detail := JobDetail{Job: job, PostedBy: posters[job.PostedById], Applications: byJob[job.Id]}
		if detail.Applications == nil {
			detail.Applications = []ApplicationWithApplicant{}
		}
		result = append(result, detail)
	}

	return result, nil
}

func applicationJobIDs(apps []database.JobApplication) []string {
	ids := make([]string, 0, len(apps))
	for _, app := range apps {
		ids = append(ids, app.JobId)
	}
	return ids
}
