// Package query builds read-only views over slices of tracker records.
// Every function returns a new slice and leaves its input untouched.
package query

import (
	"cmp"
	"slices"
	"strings"

	"github.com/mmynk/mvptracker/internal/models"
)

// Filter returns the use cases for which keep reports true. The result is
// never nil, so an empty match encodes as [] rather than null.
func Filter(useCases []models.UseCase, keep func(models.UseCase) bool) []models.UseCase {
	out := []models.UseCase{}
	for _, uc := range useCases {
		if keep(uc) {
			out = append(out, uc)
		}
	}
	return out
}

func ByPhase(phaseID string) func(models.UseCase) bool {
	return func(uc models.UseCase) bool { return uc.PhaseID == phaseID }
}

func ByRelease(releaseID string) func(models.UseCase) bool {
	return func(uc models.UseCase) bool { return uc.MvpReleaseID == releaseID }
}

func ByPriority(p models.UseCasePriority) func(models.UseCase) bool {
	return func(uc models.UseCase) bool { return uc.Priority == p }
}

func ByStatus(s models.UseCaseStatus) func(models.UseCase) bool {
	return func(uc models.UseCase) bool { return uc.Status == s }
}

// SortByLastUpdated orders most recently touched first. Ties keep input order.
func SortByLastUpdated(useCases []models.UseCase) []models.UseCase {
	out := slices.Clone(useCases)
	slices.SortStableFunc(out, func(a, b models.UseCase) int {
		return cmp.Compare(b.LastUpdated, a.LastUpdated)
	})
	return out
}

// SortPhasesByStatus orders phases planned, inProgress, completed; stable
// within a status.
func SortPhasesByStatus(phases []models.Phase) []models.Phase {
	out := slices.Clone(phases)
	slices.SortStableFunc(out, func(a, b models.Phase) int {
		return cmp.Compare(a.Status, b.Status)
	})
	return out
}

// SortReleasesByStatus orders releases planned, inProgress, released; stable
// within a status.
func SortReleasesByStatus(releases []models.Release) []models.Release {
	out := slices.Clone(releases)
	slices.SortStableFunc(out, func(a, b models.Release) int {
		return cmp.Compare(a.Status, b.Status)
	})
	return out
}

// PhasesByRelease returns the phases whose ReleaseID matches.
func PhasesByRelease(phases []models.Phase, releaseID string) []models.Phase {
	out := []models.Phase{}
	for _, p := range phases {
		if p.ReleaseID == releaseID {
			out = append(out, p)
		}
	}
	return out
}

// Criteria is a combined search. Zero-valued fields do not filter.
type Criteria struct {
	// Text matches title, description, tags or owner, case-insensitively.
	Text string `json:"text,omitempty"`

	PhaseID   string `json:"phaseId,omitempty"`
	ReleaseID string `json:"releaseId,omitempty"`

	Status   *models.UseCaseStatus   `json:"status,omitempty"`
	Priority *models.UseCasePriority `json:"priority,omitempty"`

	// Owner is a case-insensitive substring match on the owner field.
	Owner string `json:"owner,omitempty"`
}

// Search applies every set field of c.
func Search(useCases []models.UseCase, c Criteria) []models.UseCase {
	text := strings.ToLower(c.Text)
	owner := strings.ToLower(c.Owner)

	return Filter(useCases, func(uc models.UseCase) bool {
		if text != "" && !containsFold(text, uc.Title, uc.Description, uc.Tags, uc.Owner) {
			return false
		}
		if c.PhaseID != "" && uc.PhaseID != c.PhaseID {
			return false
		}
		if c.ReleaseID != "" && uc.MvpReleaseID != c.ReleaseID {
			return false
		}
		if c.Status != nil && uc.Status != *c.Status {
			return false
		}
		if c.Priority != nil && uc.Priority != *c.Priority {
			return false
		}
		if owner != "" && !strings.Contains(strings.ToLower(uc.Owner), owner) {
			return false
		}
		return true
	})
}

// containsFold reports whether any field contains needle, which must
// already be lower case.
func containsFold(needle string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
