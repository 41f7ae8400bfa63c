// Package projections builds the read models behind list and report pages.
// Everything here is pure: records in, view data out, no stores touched.
package projections

import (
	"sort"
	"strings"

	"quarters/internal/application/listutil"
	staffDomain "quarters/internal/domain/staff"
	userDomain "quarters/internal/domain/user"
)

// DashboardStats carries the occupancy counters shown above the staff table.
type DashboardStats struct {
	Total      int // current occupants
	Vacant     int // empty slots
	OnVacation int
	Resigned   int
	CheckedOut int
	ByLocation map[string]int // occupants per accommodation
	ByStatus   map[string]int
}

// DashboardView is the staff dashboard read model.
type DashboardView struct {
	Records        []staffDomain.Employee // the current page of matching records
	Pages          listutil.PageInfo
	Stats          DashboardStats
	Accommodations []string // distinct, sorted, permission-scoped
}

// DashboardFilter narrows the staff listing.
type DashboardFilter struct {
	Search   string // substring on name and SAP ID, case-insensitive
	Location string // exact accommodation match
	Status   string // exact status match
	Page     int    // 1-indexed; zero means first page
	PerPage  int    // zero means listutil.DefaultPerPage
}

// CanView mirrors the write gate for read scoping: Admin/Manager see every
// accommodation, others only their allow-list. Detached records are visible
// to everyone who can see any location.
func CanView(role string, allowed []string, accommodation string) bool {
	if accommodation == staffDomain.DetachedAccommodation {
		return true
	}
	return userDomain.CanModify(role, allowed, accommodation)
}

// BuildDashboard filters staff records and computes occupancy stats.
// POST: stats are computed over the scoped set before search/status filters,
// so the counters describe what the user is allowed to see, not the current
// filter
func BuildDashboard(records []staffDomain.Employee, role string, allowed []string, filter DashboardFilter) DashboardView {
	scoped := make([]staffDomain.Employee, 0, len(records))
	for _, r := range records {
		if CanView(role, allowed, r.Accommodation) {
			scoped = append(scoped, r)
		}
	}

	view := DashboardView{
		Stats: DashboardStats{
			ByLocation: make(map[string]int),
			ByStatus:   make(map[string]int),
		},
		Accommodations: Accommodations(scoped),
	}

	for _, r := range scoped {
		switch {
		case r.IsVacant():
			view.Stats.Vacant++
		case r.IsCheckedOut():
			view.Stats.CheckedOut++
		default:
			view.Stats.Total++
			view.Stats.ByLocation[r.Accommodation]++
		}
		view.Stats.ByStatus[r.Status]++
		switch r.Status {
		case staffDomain.StatusVacation:
			view.Stats.OnVacation++
		case staffDomain.StatusResigned:
			view.Stats.Resigned++
		}
	}

	var matching []staffDomain.Employee
	for _, r := range scoped {
		if filter.Location != "" && r.Accommodation != filter.Location {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		if !listutil.MatchesSearch(filter.Search, r.Name, r.SAPID) {
			continue
		}
		matching = append(matching, r)
	}
	view.Records, view.Pages = listutil.Paginate(matching, filter.Page, filter.PerPage)
	return view
}

// Accommodations returns the distinct accommodations in a record set,
// sorted, excluding the detached marker.
func Accommodations(records []staffDomain.Employee) []string {
	seen := make(map[string]bool)
	for _, r := range records {
		if r.Accommodation != "" && r.Accommodation != staffDomain.DetachedAccommodation {
			seen[r.Accommodation] = true
		}
	}
	out := make([]string, 0, len(seen))
	for a := range seen {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}

// VacantRooms returns the sorted room names of vacant slots in an
// accommodation.
func VacantRooms(records []staffDomain.Employee, accommodation string) []string {
	var rooms []string
	for _, r := range records {
		if r.Accommodation == accommodation && r.IsVacant() {
			rooms = append(rooms, r.Room)
		}
	}
	sort.Strings(rooms)
	return rooms
}

// FindEmployee returns the first non-checked-out record matching a SAP ID.
func FindEmployee(records []staffDomain.Employee, sapID string) (staffDomain.Employee, bool) {
	for _, r := range records {
		if !r.IsCheckedOut() && r.MatchesSAPID(sapID) {
			return r, true
		}
	}
	return staffDomain.Employee{}, false
}

// DepartmentSummary is one group-by row on the accommodation page.
type DepartmentSummary struct {
	Accommodation string
	Department    string
	Count         int
}

// BuildDepartmentSummary groups current occupants by (accommodation,
// department), permission-scoped, sorted for stable rendering.
func BuildDepartmentSummary(records []staffDomain.Employee, role string, allowed []string) []DepartmentSummary {
	type key struct{ acc, dept string }
	counts := make(map[key]int)
	for _, r := range records {
		if !r.IsOccupant() || !CanView(role, allowed, r.Accommodation) {
			continue
		}
		dept := r.Department
		if dept == "" {
			dept = "Unassigned"
		}
		counts[key{r.Accommodation, dept}]++
	}

	out := make([]DepartmentSummary, 0, len(counts))
	for k, n := range counts {
		out = append(out, DepartmentSummary{Accommodation: k.acc, Department: k.dept, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Accommodation != out[j].Accommodation {
			return out[i].Accommodation < out[j].Accommodation
		}
		return out[i].Department < out[j].Department
	})
	return out
}

// FilterStaffForExport returns the records matching the download filters,
// permission-scoped.
func FilterStaffForExport(records []staffDomain.Employee, role string, allowed []string, accommodation, status string) []staffDomain.Employee {
	var out []staffDomain.Employee
	for _, r := range records {
		if !CanView(role, allowed, r.Accommodation) {
			continue
		}
		if accommodation != "" && !strings.EqualFold(r.Accommodation, accommodation) {
			continue
		}
		if status != "" && r.Status != status {
			continue
		}
		out = append(out, r)
	}
	return out
}
