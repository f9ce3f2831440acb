package models

import (
	"testing"

	"jobportal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	userModel        UserModel
	jobModel         JobModel
	applicationModel JobApplicationModel
)

func createUser(t *testing.T, email, role string) *database.User {
	t.Helper()

	user := &database.User{Email: email, Password: "hash", FullName: "Test " + email, Role: role}
	require.NoError(t, userModel.Create(user))

	return user
}

func createJob(t *testing.T, posterID, title string) *database.Job {
	t.Helper()

	job := &database.Job{Title: title, Company: "Tech Corp", Location: "Remote", Description: "Build things"}
	require.NoError(t, jobModel.Create(posterID, job))

	return job
}

func TestUserCreate(t *testing.T) {
	database.SetupTestDB(t)

	user := createUser(t, " Jane@Example.com ", "")
	assert.NotEmpty(t, user.Id)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, database.RoleJobSeeker, user.Role)

	err := userModel.Create(&database.User{Email: "jane@example.com", Password: "x", FullName: "Other"})
	assert.ErrorIs(t, err, ErrConflict)

	err = userModel.Create(&database.User{Email: "not-an-email", Password: "x", FullName: "X"})
	assert.ErrorIs(t, err, ErrInvalid)

	err = userModel.Create(&database.User{Email: "Jane <jane2@example.com>", Password: "x", FullName: "X"})
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorContains(t, err, "email: email")

	err = userModel.Create(&database.User{Email: "b@example.com", Password: "x", FullName: "B", Role: "admin"})
	assert.ErrorIs(t, err, ErrInvalid)

	err = userModel.Create(&database.User{Email: "c@example.com", Password: "x", FullName: "  "})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestUserGetByEmail(t *testing.T) {
	database.SetupTestDB(t)
	created := createUser(t, "jane@example.com", database.RoleEmployer)

	user, err := userModel.GetByEmail("JANE@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.Id, user.Id)
	assert.Equal(t, "hash", user.Password)

	_, err = userModel.GetByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserGetProfile(t *testing.T) {
	database.SetupTestDB(t)
	employer := createUser(t, "boss@example.com", database.RoleEmployer)
	seeker := createUser(t, "seeker@example.com", database.RoleJobSeeker)
	job := createJob(t, employer.Id, "Backend Engineer")

	_, err := applicationModel.Apply(job.Id, seeker.Id, "Hire me", "")
	require.NoError(t, err)

	profile, err := userModel.Get(employer.Id)
	require.NoError(t, err)
	require.Len(t, profile.PostedJobs, 1)
	assert.Equal(t, job.Id, profile.PostedJobs[0].Id)
	assert.Empty(t, profile.Applications)

	profile, err = userModel.Get(seeker.Id)
	require.NoError(t, err)
	assert.Empty(t, profile.PostedJobs)
	require.Len(t, profile.Applications, 1)
	require.NotNil(t, profile.Applications[0].Job)
	assert.Equal(t, "Backend Engineer", profile.Applications[0].Job.Title)

	_, err = userModel.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserUpdateProfile(t *testing.T) {
	database.SetupTestDB(t)
	user := createUser(t, "jane@example.com", "")

	updated, err := userModel.UpdateProfile(user.Id, map[string]interface{}{
		"fullName": "Jane Doe",
		"bio":      "Gopher",
		"email":    "evil@example.com",
		"password": "plain",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", updated.FullName)
	assert.Equal(t, "Gopher", updated.Bio)

	stored, err := userModel.GetByEmail("jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", stored.FullName)
	assert.Equal(t, "hash", stored.Password)

	_, err = userModel.UpdateProfile(user.Id, map[string]interface{}{"fullName": ""})
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = userModel.UpdateProfile("missing", map[string]interface{}{"bio": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserGetAll(t *testing.T) {
	database.SetupTestDB(t)
	createUser(t, "a@example.com", "")
	createUser(t, "b@example.com", "")

	users, err := userModel.GetAll()
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestJobCreateValidation(t *testing.T) {
	database.SetupTestDB(t)
	poster := createUser(t, "boss@example.com", database.RoleEmployer)

	job := createJob(t, poster.Id, "Frontend Developer")
	assert.NotEmpty(t, job.Id)
	assert.Equal(t, database.JobActive, job.Status)
	assert.Equal(t, poster.Id, job.PostedById)

	err := jobModel.Create(poster.Id, &database.Job{Company: "c", Location: "l", Description: "d"})
	assert.ErrorIs(t, err, ErrInvalid)

	err = jobModel.Create(poster.Id, &database.Job{Title: "t", Company: "c", Location: "l", Description: "d", Status: "open"})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestJobQueries(t *testing.T) {
	database.SetupTestDB(t)
	alice := createUser(t, "alice@example.com", database.RoleEmployer)
	bob := createUser(t, "bob@example.com", database.RoleEmployer)
	seeker := createUser(t, "seeker@example.com", "")

	aliceJob := createJob(t, alice.Id, "Go Developer")
	createJob(t, bob.Id, "Rust Developer")

	_, err := applicationModel.Apply(aliceJob.Id, seeker.Id, "Cover letter", "https://example.com/cv.pdf")
	require.NoError(t, err)

	all, err := jobModel.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, job := range all {
		require.NotNil(t, job.PostedBy)
		assert.Equal(t, job.PostedById, job.PostedBy.Id)
	}

	mine, err := jobModel.GetByPoster(alice.Id)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Len(t, mine[0].Applications, 1)

	detail, err := jobModel.Get(aliceJob.Id)
	require.NoError(t, err)
	assert.Equal(t, "Go Developer", detail.Title)
	require.Len(t, detail.Applications, 1)
	require.NotNil(t, detail.Applications[0].Applicant)
	assert.Equal(t, seeker.Id, detail.Applications[0].Applicant.Id)

	_, err = jobModel.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJobUpdate(t *testing.T) {
	database.SetupTestDB(t)
	poster := createUser(t, "boss@example.com", database.RoleEmployer)
	other := createUser(t, "other@example.com", database.RoleEmployer)
	job := createJob(t, poster.Id, "Go Developer")

	updated, err := jobModel.Update(job.Id, poster.Id, map[string]interface{}{
		"title":    "Senior Go Developer",
		"salary":   "$150,000",
		"status":   database.JobClosed,
		"deadline": "2024-12-31",
	})
	require.NoError(t, err)
	assert.Equal(t, "Senior Go Developer", updated.Title)
	assert.Equal(t, database.JobClosed, updated.Status)
	require.NotNil(t, updated.Deadline)
	assert.Equal(t, 2024, updated.Deadline.Year())

	stored, err := jobModel.Get(job.Id)
	require.NoError(t, err)
	assert.Equal(t, "Senior Go Developer", stored.Title)
	assert.Equal(t, "$150,000", stored.Salary)
	assert.Equal(t, "Tech Corp", stored.Company)

	_, err = jobModel.Update(job.Id, other.Id, map[string]interface{}{"title": "Hijacked"})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = jobModel.Update(job.Id, poster.Id, map[string]interface{}{"status": "archived"})
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = jobModel.Update(job.Id, poster.Id, map[string]interface{}{"title": " "})
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = jobModel.Update(job.Id, poster.Id, map[string]interface{}{"deadline": "tomorrow"})
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = jobModel.Update("missing", poster.Id, map[string]interface{}{"title": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJobDelete(t *testing.T) {
	database.SetupTestDB(t)
	poster := createUser(t, "boss@example.com", database.RoleEmployer)
	seeker := createUser(t, "seeker@example.com", "")
	job := createJob(t, poster.Id, "Go Developer")

	_, err := applicationModel.Apply(job.Id, seeker.Id, "Hi", "")
	require.NoError(t, err)

	assert.ErrorIs(t, jobModel.Delete(job.Id, seeker.Id), ErrForbidden)
	require.NoError(t, jobModel.Delete(job.Id, poster.Id))

	_, err = jobModel.Get(job.Id)
	assert.ErrorIs(t, err, ErrNotFound)

	apps, err := applicationModel.GetForApplicant(seeker.Id)
	require.NoError(t, err)
	assert.Empty(t, apps)

	assert.ErrorIs(t, jobModel.Delete(job.Id, poster.Id), ErrNotFound)
}

func TestParseDeadline(t *testing.T) {
	d, err := ParseDeadline(nil)
	assert.NoError(t, err)
	assert.Nil(t, d)

	d, err = ParseDeadline("")
	assert.NoError(t, err)
	assert.Nil(t, d)

	d, err = ParseDeadline("2024-12-31T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 31, d.Day())

	_, err = ParseDeadline(42.0)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestApply(t *testing.T) {
	database.SetupTestDB(t)
	poster := createUser(t, "boss@example.com", database.RoleEmployer)
	seeker := createUser(t, "seeker@example.com", "")
	job := createJob(t, poster.Id, "Go Developer")

	app, err := applicationModel.Apply(job.Id, seeker.Id, "Hire me", "cv.pdf")
	require.NoError(t, err)
	assert.NotEmpty(t, app.Id)
	assert.Equal(t, database.ApplicationPending, app.Status)

	_, err = applicationModel.Apply(job.Id, seeker.Id, "Again", "")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = applicationModel.Apply("missing", seeker.Id, "Hi", "")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = applicationModel.Apply(job.Id, poster.Id, "", "")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestApplicationsForJob(t *testing.T) {
	database.SetupTestDB(t)
	poster := createUser(t, "boss@example.com", database.RoleEmployer)
	first := createUser(t, "first@example.com", "")
	second := createUser(t, "second@example.com", "")
	job := createJob(t, poster.Id, "Go Developer")

	for _, u := range []*database.User{first, second} {
		_, err := applicationModel.Apply(job.Id, u.Id, "Hi", "")
		require.NoError(t, err)
	}

	apps, err := applicationModel.GetForJob(job.Id, poster.Id)
	require.NoError(t, err)
	require.Len(t, apps, 2)
	for _, app := range apps {
		require.NotNil(t, app.Applicant)
		assert.Equal(t, app.ApplicantId, app.Applicant.Id)
		assert.Equal(t, job.Id, app.Job.Id)
	}

	_, err = applicationModel.GetForJob(job.Id, first.Id)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = applicationModel.GetForJob("missing", poster.Id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApplicationsForApplicant(t *testing.T) {
	database.SetupTestDB(t)
	poster := createUser(t, "boss@example.com", database.RoleEmployer)
	seeker := createUser(t, "seeker@example.com", "")
	job := createJob(t, poster.Id, "Go Developer")

	_, err := applicationModel.Apply(job.Id, seeker.Id, "Hi", "")
	require.NoError(t, err)

	apps, err := applicationModel.GetForApplicant(seeker.Id)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	require.NotNil(t, apps[0].Job)
	require.NotNil(t, apps[0].Job.PostedBy)
	assert.Equal(t, poster.Id, apps[0].Job.PostedBy.Id)

	apps, err = applicationModel.GetForApplicant(poster.Id)
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestApplicationUpdateStatus(t *testing.T) {
	database.SetupTestDB(t)
	poster := createUser(t, "boss@example.com", database.RoleEmployer)
	seeker := createUser(t, "seeker@example.com", "")
	job := createJob(t, poster.Id, "Go Developer")

	app, err := applicationModel.Apply(job.Id, seeker.Id, "Hi", "")
	require.NoError(t, err)

	updated, err := applicationModel.UpdateStatus(app.Id, database.ApplicationAccepted, poster.Id)
	require.NoError(t, err)
	assert.Equal(t, database.ApplicationAccepted, updated.Status)

	apps, err := applicationModel.GetForApplicant(seeker.Id)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, database.ApplicationAccepted, apps[0].Status)

	_, err = applicationModel.UpdateStatus(app.Id, database.ApplicationRejected, seeker.Id)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = applicationModel.UpdateStatus(app.Id, "hired", poster.Id)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = applicationModel.UpdateStatus("missing", database.ApplicationReviewed, poster.Id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestValidationUsesJSONNames(t *testing.T) {
	err := validateStruct(&database.Job{Status: "open"})
	require.ErrorIs(t, err, ErrInvalid)
	assert.ErrorContains(t, err, "title: required")
	assert.ErrorContains(t, err, "postedById: required")
	assert.ErrorContains(t, err, "status: oneof=active closed draft")
}
