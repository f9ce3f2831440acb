package models

import (
	"fmt"
	"strings"

	"jobportal/database"
)

type UserModel struct {
}

// UserProfile is a user together with the jobs they posted and the
// applications they sent.
type UserProfile struct {
	database.User
	PostedJobs   []database.Job       `json:"postedJobs"`
	Applications []ApplicationWithJob `json:"applications"`
}

type ApplicationWithJob struct {
	database.JobApplication
	Job *database.Job `json:"job,omitempty"`
}

func (m *UserModel) Create(user *database.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.FullName = strings.TrimSpace(user.FullName)
	if user.Role == "" {
		user.Role = database.RoleJobSeeker
	}

	if err := validateStruct(user); err != nil {
		return err
	}

	has, err := database.DB.Engine.Table("users").Where("email=?", user.Email).Exist()
	if err != nil {
		return err
	}
	if has {
		return fmt.Errorf("%w: email already registered", ErrConflict)
	}

	if _, err := database.DB.Engine.Insert(user); err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("%w: email already registered", ErrConflict)
		}
		return err
	}

	return nil
}

func (m *UserModel) GetByEmail(email string) (*database.User, error) {
	user := &database.User{}

	has, err := database.DB.Engine.Where("email=?", strings.ToLower(strings.TrimSpace(email))).Get(user)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, ErrNotFound
	}

	return user, nil
}

func (m *UserModel) find(id string) (*database.User, error) {
	user := &database.User{}

	has, err := database.DB.Engine.ID(id).Get(user)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, ErrNotFound
	}

	return user, nil
}

func (m *UserModel) Get(id string) (*UserProfile, error) {
	user, err := m.find(id)
	if err != nil {
		return nil, err
	}

	profile := &UserProfile{User: *user, PostedJobs: []database.Job{}, Applications: []ApplicationWithJob{}}

	if err := database.DB.Engine.Where("posted_by_id=?", id).Desc("created_at").Find(&profile.PostedJobs); err != nil {
		return nil, err
	}

	var apps []database.JobApplication
	if err := database.DB.Engine.Where("applicant_id=?", id).Desc("created_at").Find(&apps); err != nil {
		return nil, err
	}

	jobs, err := jobsByID(applicationJobIDs(apps))
	if err != nil {
		return nil, err
	}

	for _, app := range apps {
		profile.Applications = append(profile.Applications, ApplicationWithJob{JobApplication: app, Job: jobs[app.JobId]})
	}

	return profile, nil
}

func (m *UserModel) GetAll() ([]database.User, error) {
	users := []database.User{}

	err := database.DB.Engine.Asc("created_at").Find(&users)

	return users, err
}

// UpdateProfile changes the profile fields present in updates. Email and
// password cannot be changed here.
func (m *UserModel) UpdateProfile(id string, updates map[string]interface{}) (*database.User, error) {
	user, err := m.find(id)
	if err != nil {
		return nil, err
	}

	cols := []string{}

	if val, exist := updates["fullName"].(string); exist {
		cols = append(cols, "full_name")
		user.FullName = strings.TrimSpace(val)
	}

	if val, exist := updates["phone"].(string); exist {
		cols = append(cols, "phone")
		user.Phone = val
	}

	if val, exist := updates["location"].(string); exist {
		cols = append(cols, "location")
		user.Location = val
	}

	if val, exist := updates["bio"].(string); exist {
		cols = append(cols, "bio")
		user.Bio = val
	}

	if len(cols) == 0 {
		return user, nil
	}

	if err := validateStruct(user); err != nil {
		return nil, err
	}

	if _, err := database.DB.Engine.ID(id).Cols(cols...).Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

func usersByID(ids []string) (map[string]*database.User, error) {
	result := map[string]*database.User{}
	if len(ids) == 0 {
		return result, nil
	}

	var users []database.User
	if err := database.DB.Engine.In("id", ids).Find(&users); err != nil {
		return nil, err
	}

	for i := range users {
		result[users[i].Id] = &users[i]
	}

	return result, nil
}
