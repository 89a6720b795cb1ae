package stream

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	domcand "github.com/saintgiong/discovery/internal/domain/candidate"
)

// Default stream names for the candidate lifecycle feed.
const (
	StreamCandidateCreated = "discovery:events:candidate-created"
	StreamCandidateUpdated = "discovery:events:candidate-updated"
	StreamCandidateDeleted = "discovery:events:candidate-deleted"
	StreamCandidateMatched = "discovery:events:candidate-matched"
)

// payloadField carries the JSON event body inside a stream entry.
const payloadField = "payload"

// candidateEvent is the wire shape of a created/updated event: a full
// snapshot of the candidate. Absent fields stay zero, never fabricated.
type candidateEvent struct {
	ApplicantID     uuid.UUID            `json:"applicantId"`
	FirstName       string               `json:"firstName"`
	LastName        string               `json:"lastName"`
	Phone           string               `json:"phone"`
	Address         string               `json:"address"`
	City            string               `json:"city"`
	Biography       string               `json:"biography"`
	AboutMe         string               `json:"aboutMe"`
	AvatarURL       string               `json:"avatarUrl"`
	Country         string               `json:"country"`
	Educations      []educationEvent     `json:"educations"`
	WorkExperiences []workExperienceEvnt `json:"workExperiences"`
	SkillIDs        []int64              `json:"skillIds"`
	SkillNames      []string             `json:"skillNames"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

type educationEvent struct {
	InstitutionName string     `json:"institutionName"`
	Degree          string     `json:"degree"`
	GPA             *float64   `json:"gpa"`
	Description     string     `json:"description"`
	StartDate       *time.Time `json:"startDate"`
	EndDate         *time.Time `json:"endDate"`
	IsCurrent       bool       `json:"isCurrent"`
}

type workExperienceEvnt struct {
	CompanyName string     `json:"companyName"`
	Position    string     `json:"position"`
	Description string     `json:"description"`
	Country     string     `json:"country"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	IsCurrent   bool       `json:"isCurrent"`
}

// deletedEvent is the wire shape of a deleted event.
type deletedEvent struct {
	ApplicantID uuid.UUID `json:"applicantId"`
}

func parseCandidateEvent(values map[string]string) (*domcand.Document, error) {
	raw, ok := values[payloadField]
	if !ok {
		return nil, fmt.Errorf("event is missing the %s field", payloadField)
	}

	var ev candidateEvent
	if err := json.Unmarshal([]byte(raw), &ev); err != nil {
		return nil, fmt.Errorf("unmarshal candidate event: %w", err)
	}

	doc := &domcand.Document{
		ApplicantID: ev.ApplicantID,
		FirstName:   ev.FirstName,
		LastName:    ev.LastName,
		Phone:       ev.Phone,
		Address:     ev.Address,
		City:        ev.City,
		Biography:   ev.Biography,
		AboutMe:     ev.AboutMe,
		AvatarURL:   ev.AvatarURL,
		Country:     ev.Country,
		SkillIDs:    ev.SkillIDs,
		SkillNames:  ev.SkillNames,
		CreatedAt:   ev.CreatedAt,
		UpdatedAt:   ev.UpdatedAt,
	}
	for _, e := range ev.Educations {
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
	for _, w := range ev.WorkExperiences {
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
	return doc, nil
}

func parseDeletedEvent(values map[string]string) (uuid.UUID, error) {
	raw, ok := values[payloadField]
	if !ok {
		return uuid.Nil, fmt.Errorf("event is missing the %s field", payloadField)
	}

	var ev deletedEvent
	if err := json.Unmarshal([]byte(raw), &ev); err != nil {
		return uuid.Nil, fmt.Errorf("unmarshal deleted event: %w", err)
	}
	return ev.ApplicantID, nil
}
