package chi

import (
	"time"

	"github.com/google/uuid"

	domcand "github.com/saintgiong/discovery/internal/domain/candidate"
	domprof "github.com/saintgiong/discovery/internal/domain/profile"
	profileuc "github.com/saintgiong/discovery/internal/usecase/profile"
	syncuc "github.com/saintgiong/discovery/internal/usecase/syncer"
)

// errorCode identifies an error class in API responses.
type errorCode string

const (
	codeBadRequest          errorCode = "BAD_REQUEST"
	codeValidationFailed    errorCode = "VALIDATION_FAILED"
	codeCandidateNotFound   errorCode = "CANDIDATE_NOT_FOUND"
	codeProfileNotFound     errorCode = "PROFILE_NOT_FOUND"
	codeIndexUnavailable    errorCode = "INDEX_UNAVAILABLE"
	codeUpstreamUnavailable errorCode = "UPSTREAM_UNAVAILABLE"
	codeInternalError       errorCode = "INTERNAL_ERROR"
)

type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

// profileRequest is the write shape for a search profile.
type profileRequest struct {
	CompanyID       uuid.UUID `json:"companyId"`
	SalaryMin       *float64  `json:"salaryMin"`
	SalaryMax       *float64  `json:"salaryMax"`
	HighestDegree   string    `json:"highestDegree"`
	EmploymentTypes []string  `json:"employmentTypes"`
	Country         string    `json:"country"`
	SkillIDs        []int64   `json:"skillIds"`
}

func (r profileRequest) toInput() profileuc.Input {
	return profileuc.Input{
		CompanyID:       r.CompanyID,
		MinSalary:       r.SalaryMin,
		MaxSalary:       r.SalaryMax,
		HighestDegree:   r.HighestDegree,
		EmploymentTypes: r.EmploymentTypes,
		Country:         r.Country,
		SkillIDs:        r.SkillIDs,
	}
}

type profileResponse struct {
	ID              uuid.UUID `json:"id"`
	CompanyID       uuid.UUID `json:"companyId"`
	SalaryMin       *float64  `json:"salaryMin,omitempty"`
	SalaryMax       *float64  `json:"salaryMax,omitempty"`
	HighestDegree   *string   `json:"highestDegree,omitempty"`
	EmploymentTypes []string  `json:"employmentTypes,omitempty"`
	Country         string    `json:"country,omitempty"`
	SkillIDs        []int64   `json:"skillIds,omitempty"`
}

func profileToResponse(p domprof.Profile) profileResponse {
	resp := profileResponse{
		ID:              p.ID(),
		CompanyID:       p.CompanyID(),
		SalaryMin:       p.SalaryMin(),
		SalaryMax:       p.SalaryMax(),
		EmploymentTypes: p.EmploymentTypes().Names(),
		Country:         p.Country(),
		SkillIDs:        p.SkillIDs(),
	}
	if d := p.HighestDegree(); d != nil {
		name := d.String()
		resp.HighestDegree = &name
	}
	return resp
}

type educationResponse struct {
	InstitutionName string     `json:"institutionName"`
	Degree          string     `json:"degree,omitempty"`
	GPA             *float64   `json:"gpa,omitempty"`
	Description     string     `json:"description,omitempty"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	IsCurrent       bool       `json:"isCurrent,omitempty"`
}

type workExperienceResponse struct {
	CompanyName string     `json:"companyName"`
	Position    string     `json:"position,omitempty"`
	Description string     `json:"description,omitempty"`
	Country     string     `json:"country,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	IsCurrent   bool       `json:"isCurrent,omitempty"`
}

type candidateResponse struct {
	ApplicantID     uuid.UUID                `json:"applicantId"`
	FirstName       string                   `json:"firstName,omitempty"`
	LastName        string                   `json:"lastName,omitempty"`
	Phone           string                   `json:"phone,omitempty"`
	Address         string                   `json:"address,omitempty"`
	City            string                   `json:"city,omitempty"`
	Biography       string                   `json:"biography,omitempty"`
	AboutMe         string                   `json:"aboutMe,omitempty"`
	AvatarURL       string                   `json:"avatarUrl,omitempty"`
	Country         string                   `json:"country,omitempty"`
	Educations      []educationResponse      `json:"educations,omitempty"`
	WorkExperiences []workExperienceResponse `json:"workExperiences,omitempty"`
	SkillIDs        []int64                  `json:"skillIds,omitempty"`
	SkillNames      []string                 `json:"skillNames,omitempty"`
	CreatedAt       time.Time                `json:"createdAt"`
	UpdatedAt       time.Time                `json:"updatedAt"`
}

func candidateToResponse(d *domcand.Document) candidateResponse {
	resp := candidateResponse{
		ApplicantID: d.ApplicantID,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Phone:       d.Phone,
		Address:     d.Address,
		City:        d.City,
		Biography:   d.Biography,
		AboutMe:     d.AboutMe,
		AvatarURL:   d.AvatarURL,
		Country:     d.Country,
		SkillIDs:    d.SkillIDs,
		SkillNames:  d.SkillNames,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	for _, e := range d.Educations {
		resp.Educations = append(resp.Educations, educationResponse{
			InstitutionName: e.InstitutionName,
			Degree:          e.Degree,
			GPA:             e.GPA,
			Description:     e.Description,
			StartDate:       e.StartDate,
			EndDate:         e.EndDate,
			IsCurrent:       e.IsCurrent,
		})
	}
	for _, w := range d.WorkExperiences {
		resp.WorkExperiences = append(resp.WorkExperiences, workExperienceResponse{
			CompanyName: w.CompanyName,
			Position:    w.Position,
			Description: w.Description,
			Country:     w.Country,
			StartDate:   w.StartDate,
			EndDate:     w.EndDate,
			IsCurrent:   w.IsCurrent,
		})
	}
	return resp
}

type searchResponse struct {
	Items []candidateResponse `json:"items"`
	Total int                 `json:"total"`
	Page  int                 `json:"page"`
	Size  int                 `json:"size"`
}

type syncResponse struct {
	Fetched int `json:"fetched"`
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

func syncToResponse(st syncuc.Stats) syncResponse {
	return syncResponse{
		Fetched: st.Fetched,
		Created: st.Created,
		Updated: st.Updated,
		Skipped: st.Skipped,
	}
}
