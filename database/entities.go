package database

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleJobSeeker = "jobseeker"
	RoleEmployer  = "employer"

	JobActive = "active"
	JobClosed = "closed"
	JobDraft  = "draft"

	ApplicationPending  = "pending"
	ApplicationReviewed = "reviewed"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

// Entities returns the mapped types in registration order.
func Entities() []interface{} {
	return []interface{}{new(User), new(Job), new(JobApplication)}
}

type User struct {
	Id        string    `xorm:"pk varchar(36)" json:"id"`
	Email     string    `xorm:"varchar(255) notnull unique" json:"email" validate:"required,email"`
	Password  string    `xorm:"varchar(255) notnull" json:"-" validate:"required"`
	FullName  string    `xorm:"varchar(255) notnull" json:"fullName" validate:"required"`
	Role      string    `xorm:"varchar(32) notnull default 'jobseeker'" json:"role" validate:"required,oneof=jobseeker employer"`
	Phone     string    `xorm:"varchar(64)" json:"phone,omitempty"`
	Location  string    `xorm:"varchar(255)" json:"location,omitempty"`
	Bio       string    `xorm:"text" json:"bio,omitempty"`
	CreatedAt time.Time `xorm:"created" json:"createdAt"`
	UpdatedAt time.Time `xorm:"updated" json:"updatedAt"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeInsert() {
	if u.Id == "" {
		u.Id = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = RoleJobSeeker
	}
}

type Job struct {
	Id               string     `xorm:"pk varchar(36)" json:"id"`
	Title            string     `xorm:"varchar(255) notnull" json:"title" validate:"required"`
	Company          string     `xorm:"varchar(255) notnull" json:"company" validate:"required"`
	Location         string     `xorm:"varchar(255) notnull" json:"location" validate:"required"`
	Description      string     `xorm:"text notnull" json:"description" validate:"required"`
	JobType          string     `xorm:"varchar(64)" json:"jobType,omitempty"`
	Salary           string     `xorm:"varchar(255)" json:"salary,omitempty"`
	Requirements     string     `xorm:"text" json:"requirements,omitempty"`
	Responsibilities string     `xorm:"text" json:"responsibilities,omitempty"`
	Deadline         *time.Time `xorm:"date" json:"deadline,omitempty"`
	Status           string     `xorm:"varchar(32) notnull default 'active'" json:"status" validate:"required,oneof=active closed draft"`
	PostedById       string     `xorm:"varchar(36) notnull index" json:"postedById" validate:"required"`
	CreatedAt        time.Time  `xorm:"created" json:"createdAt"`
	UpdatedAt        time.Time  `xorm:"updated" json:"updatedAt"`
}

func (Job) TableName() string { return "jobs" }

func (j *Job) BeforeInsert() {
	if j.Id == "" {
		j.Id = uuid.NewString()
	}
	if j.Status == "" {
		j.Status = JobActive
	}
}

type JobApplication struct {
	Id          string    `xorm:"pk varchar(36)" json:"id"`
	JobId       string    `xorm:"varchar(36) notnull unique(job_applicant) index" json:"jobId" validate:"required"`
	ApplicantId string    `xorm:"varchar(36) notnull unique(job_applicant) index" json:"applicantId" validate:"required"`
	CoverLetter string    `xorm:"text notnull" json:"coverLetter" validate:"required"`
	Resume      string    `xorm:"varchar(1024)" json:"resume,omitempty"`
	Status      string    `xorm:"varchar(32) notnull default 'pending'" json:"status" validate:"required,oneof=pending reviewed accepted rejected"`
	CreatedAt   time.Time `xorm:"created" json:"createdAt"`
	UpdatedAt   time.Time `xorm:"updated" json:"updatedAt"`
}

func (JobApplication) TableName() string { return "job_applications" }

func (a *JobApplication) BeforeInsert() {
	if a.Id == "" {
		a.Id = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = ApplicationPending
	}
}
