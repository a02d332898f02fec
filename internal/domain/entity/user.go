// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// User is the base identity shared by both roles. Exactly one of Client or
// Lawyer is set, matching Role.
type User struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone"`
	DOB           string         `json:"dob"`
	CitizenID     string         `json:"citizenId"`
	PasswordHash  string         `json:"-"`
	ProfilePicURL string         `json:"profilePicUrl"`
	Role          Role           `json:"role"`
	Client        *ClientProfile `json:"client,omitempty"` // Nil unless Role is RoleClient.
	Lawyer        *LawyerProfile `json:"lawyer,omitempty"` // Nil unless Role is RoleLawyer.
}

// ClientProfile holds data specific to the client role.
type ClientProfile struct {
	Username    string        `json:"username"`
	CurrentCase *CaseTemplate `json:"currentCase,omitempty"`
}

// LawyerProfile holds data specific to the lawyer role.
type LawyerProfile struct {
	BarCouncilID    string   `json:"barCouncilId"`
	Gender          string   `json:"gender"`
	Qualification   string   `json:"qualification"`
	University      string   `json:"university"`
	GradYear        int      `json:"gradYear"`
	Achievements    []string `json:"achievements"`
	Awards          []string `json:"awards"`
	Bio             string   `json:"bio"`
	DomainStrengths []string `json:"domainStrengths"`
	CasesWon        int      `json:"casesWon"`
	CasesLost       int      `json:"casesLost"`
	Specializations []string `json:"specializations"`
	ExperienceYears int      `json:"experienceYears"`
	Location        string   `json:"location"`
	AvgPrice        int      `json:"avgPrice"`
}

// PartySnapshot is the denormalized display copy of a user embedded in other records.
type PartySnapshot struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ProfilePicURL string `json:"profilePicUrl"`
}

// IsClient reports whether the user carries the client variant.
func (u *User) IsClient() bool {
	return u.Role == RoleClient && u.Client != nil
}

// IsLawyer reports whether the user carries the lawyer variant.
func (u *User) IsLawyer() bool {
	return u.Role == RoleLawyer && u.Lawyer != nil
}

// Snapshot returns the display fields other records copy from this user.
func (u *User) Snapshot() PartySnapshot {
	return PartySnapshot{ID: u.ID, Name: u.Name, ProfilePicURL: u.ProfilePicURL}
}

// LoginID returns the identifier the user signs in with: username for clients,
// bar council id for lawyers.
func (u *User) LoginID() string {
	switch {
	case u.IsClient():
		return u.Client.Username
	case u.IsLawyer():
		return u.Lawyer.BarCouncilID
	default:
		return ""
	}
}

// Clone returns a deep copy so callers never share mutable state with the store.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}

	out := *u
	if u.Client != nil {
		c := *u.Client
		c.CurrentCase = u.Client.CurrentCase.Clone()
		out.Client = &c
	}

	if u.Lawyer != nil {
		l := *u.Lawyer
		l.Achievements = slices.Clone(u.Lawyer.Achievements)
		l.Awards = slices.Clone(u.Lawyer.Awards)
		l.DomainStrengths = slices.Clone(u.Lawyer.DomainStrengths)
		l.Specializations = slices.Clone(u.Lawyer.Specializations)
		out.Lawyer = &l
	}

	return &out
}

// SuccessRate returns the rounded percentage of won cases, 0 when the lawyer has none.
func (l *LawyerProfile) SuccessRate() int {
	total := l.CasesWon + l.CasesLost
	if total == 0 {
		return 0
	}

	return int(math.Round(float64(l.CasesWon) / float64(total) * 100))
}

// DefaultProfilePicURL builds the generated initials avatar used when a user uploads no picture.
func DefaultProfilePicURL(name string) string {
	return fmt.Sprintf("https://api.dicebear.com/8.x/initials/svg?seed=%s", strings.ReplaceAll(name, " ", ""))
}
