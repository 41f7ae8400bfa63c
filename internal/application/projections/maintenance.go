package projections

import (
	maintenanceDomain "quarters/internal/domain/maintenance"
)

// MaintenanceFilter narrows the maintenance listing.
type MaintenanceFilter struct {
	Accommodation string
	Status        string
	Risk          string
}

// MaintenanceView is the maintenance page read model.
type MaintenanceView struct {
	Issues       []maintenanceDomain.Issue
	StatusCounts map[string]int // over the scoped set, not the filtered one
}

// BuildMaintenanceView filters issues by permission scope and the given
// filters, and counts issues per status.
func BuildMaintenanceView(issues []maintenanceDomain.Issue, role string, allowed []string, filter MaintenanceFilter) MaintenanceView {
	view := MaintenanceView{StatusCounts: make(map[string]int)}
	for _, issue := range issues {
		if !CanView(role, allowed, issue.Accommodation) {
			continue
		}
		view.StatusCounts[issue.Status]++
		if filter.Accommodation != "" && issue.Accommodation != filter.Accommodation {
			continue
		}
		if filter.Status != "" && issue.Status != filter.Status {
			continue
		}
		if filter.Risk != "" && issue.Risk != filter.Risk {
			continue
		}
		view.Issues = append(view.Issues, issue)
	}
	return view
}

// FindIssue returns the issue with the given id.
func FindIssue(issues []maintenanceDomain.Issue, id string) (maintenanceDomain.Issue, bool) {
	for _, issue := range issues {
		if issue.ID == id {
			return issue, true
		}
	}
	return maintenanceDomain.Issue{}, false
}
