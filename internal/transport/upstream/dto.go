package upstream

import (
	"time"

	"github.com/google/uuid"

	domcand "github.com/saintgiong/discovery/internal/domain/candidate"
)

// applicantDTO mirrors the upstream applicant resource.
type applicantDTO struct {
	ApplicantID     uuid.UUID           `json:"applicantId"`
	FirstName       string              `json:"firstName"`
	LastName        string              `json:"lastName"`
	Phone           string              `json:"phone"`
	Address         string              `json:"address"`
	City            string              `json:"city"`
	Biography       string              `json:"biography"`
	AboutMe         string              `json:"aboutMe"`
	AvatarURL       string              `json:"avatarUrl"`
	Country         string              `json:"country"`
	Educations      []educationDTO      `json:"educations"`
	WorkExperiences []workExperienceDTO `json:"workExperiences"`
	SkillIDs        []int64             `json:"skillIds"`
	SkillNames      []string            `json:"skillNames"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

type educationDTO struct {
	InstitutionName string     `json:"institutionName"`
	Degree          string     `json:"degree"`
	GPA             *float64   `json:"gpa"`
	Description     string     `json:"description"`
	StartDate       *time.Time `json:"startDate"`
	EndDate         *time.Time `json:"endDate"`
	IsCurrent       bool       `json:"isCurrent"`
}

type workExperienceDTO struct {
	CompanyName string     `json:"companyName"`
	Position    string     `json:"position"`
	Description string     `json:"description"`
	Country     string     `json:"country"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	IsCurrent   bool       `json:"isCurrent"`
}

func (d applicantDTO) toDomain() domcand.Document {
	doc := domcand.Document{
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
		doc.Educations = append(doc.Educations, domcand.Education{
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
		doc.WorkExperiences = append(doc.WorkExperiences, domcand.WorkExperience{
			CompanyName: w.CompanyName,
			Position:    w.Position,
			Description: w.Description,
			Country:     w.Country,
			StartDate:   w.StartDate,
			EndDate:     w.EndDate,
			IsCurrent:   w.IsCurrent,
		})
	}
	return doc
}
