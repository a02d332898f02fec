package entity

import "slices"

// Urgency expresses how soon a client needs help.
type Urgency string

const (
	UrgencyImmediate Urgency = "immediate"
	UrgencyHigh      Urgency = "high"
	UrgencyModerate  Urgency = "moderate"
	UrgencyLow       Urgency = "low"
	UrgencyNone      Urgency = "none"
)

// IsValid checks if the Urgency is a known value.
func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyImmediate, UrgencyHigh, UrgencyModerate, UrgencyLow, UrgencyNone:
		return true
	default:
		return false
	}
}

// CaseStatus is the lifecycle state of a case.
type CaseStatus string

const (
	CaseStatusPending CaseStatus = "pending"
	CaseStatusActive  CaseStatus = "active"
	CaseStatusClosed  CaseStatus = "closed"
)

// NoCaseDescription marks a template the client filled in without describing a matter.
const NoCaseDescription = "none"

// CaseTemplate is the pre-case description embedded in a client profile or a request.
// It carries no id, client or lawyer.
type CaseTemplate struct {
	CaseType    string     `json:"caseType"`
	Description string     `json:"description"`
	Urgency     Urgency    `json:"urgency"`
	Status      CaseStatus `json:"status"`
	Notes       []string   `json:"notes"`
	Files       []string   `json:"files"`
}

// HasMatter reports whether the template describes something a lawyer can be matched against.
func (t *CaseTemplate) HasMatter() bool {
	return t != nil && t.Description != "" && t.Description != NoCaseDescription
}

// Clone returns a deep copy of the template.
func (t *CaseTemplate) Clone() *CaseTemplate {
	if t == nil {
		return nil
	}

	out := *t
	out.Notes = slices.Clone(t.Notes)
	out.Files = slices.Clone(t.Files)

	return &out
}

// Case is an engagement linking one client to one lawyer.
type Case struct {
	ID       string `json:"id"`
	ClientID string `json:"clientId"`
	LawyerID string `json:"lawyerId"`
	CaseTemplate
}

// NewCaseFromTemplate derives an active case from a request's case details.
func NewCaseFromTemplate(id, clientID, lawyerID string, tmpl CaseTemplate) *Case {
	c := &Case{
		ID:           id,
		ClientID:     clientID,
		LawyerID:     lawyerID,
		CaseTemplate: *tmpl.Clone(),
	}
	c.Status = CaseStatusActive
	if c.Notes == nil {
		c.Notes = []string{}
	}

	if c.Files == nil {
		c.Files = []string{}
	}

	return c
}

// Clone returns a deep copy of the case.
func (c *Case) Clone() *Case {
	if c == nil {
		return nil
	}

	out := *c
	out.CaseTemplate = *c.CaseTemplate.Clone()

	return &out
}
