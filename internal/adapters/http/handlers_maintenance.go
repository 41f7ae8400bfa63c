package web

import (
	"fmt"
	"net/http"

	"quarters/internal/application/listutil"
	"quarters/internal/application/orchestrators"
	"quarters/internal/application/projections"
	maintenanceDomain "quarters/internal/domain/maintenance"
)

// handleMaintenance handles GET /maintenance: the issue listing.
func handleMaintenance(w http.ResponseWriter, r *http.Request) {
	issues, err := stores.IssueStore.All(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	staffRecords, err := stores.StaffStore.All(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	params := listutil.ParseListParams(r.URL.Query(), []string{"accommodation", "status", "risk"})
	filter := projections.MaintenanceFilter{
		Accommodation: params.Filters["accommodation"],
		Status:        params.Filters["status"],
		Risk:          params.Filters["risk"],
	}
	a := actor(r)
	view := projections.BuildMaintenanceView(issues, a.Role, a.AllowedAccommodations, filter)
	pageIssues, pages := listutil.Paginate(view.Issues, params.Page, params.PerPage)

	renderTemplate(w, r, "maintenance.html", map[string]any{
		"Issues":         pageIssues,
		"Pages":          pages,
		"StatusCounts":   view.StatusCounts,
		"Statuses":       maintenanceDomain.ValidStatuses,
		"Accommodations": projections.Accommodations(staffRecords),
		"Filter":         filter,
	})
}

// handleAddIssue handles POST /add_issue.
func handleAddIssue(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.AddIssueInput{
		Actor:         actor(r),
		Accommodation: r.FormValue("accommodation"),
		Block:         r.FormValue("block"),
		Section:       r.FormValue("section"),
		ReportDate:    r.FormValue("report_date"),
		Details:       r.FormValue("details"),
		Status:        r.FormValue("status"),
		Concern:       r.FormValue("concern"),
		ConcernOther:  r.FormValue("concern_other"),
		Risk:          r.FormValue("risk"),
		Remarks:       r.FormValue("remarks"),
	}
	_, err := orchestrators.ExecuteAddIssue(r.Context(), input, orchestrators.AddIssueDeps{
		Issues:        stores.IssueStore,
		GenerateID:    generateID,
		EmailSender:   emailSender,
		NotifyAddress: maintenanceNotifyAddress,
		FromAddress:   emailFromAddress,
	})
	if err != nil {
		handleOperationError(w, r, err, "/maintenance")
		return
	}
	flashAndRedirect(w, r, "Maintenance issue recorded", "/maintenance")
}

// handleUpdateIssue handles POST /update_issue/{id}.
func handleUpdateIssue(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.UpdateIssueInput{
		Actor:        actor(r),
		ID:           r.PathValue("id"),
		Block:        r.FormValue("block"),
		Section:      r.FormValue("section"),
		ReportDate:   r.FormValue("report_date"),
		Details:      r.FormValue("details"),
		Status:       r.FormValue("status"),
		ClosedDate:   r.FormValue("closed_date"),
		Concern:      r.FormValue("concern"),
		ConcernOther: r.FormValue("concern_other"),
		Risk:         r.FormValue("risk"),
		Remarks:      r.FormValue("remarks"),
	}
	if err := orchestrators.ExecuteUpdateIssue(r.Context(), input, orchestrators.UpdateIssueDeps{
		Issues: stores.IssueStore,
	}); err != nil {
		handleOperationError(w, r, err, "/maintenance")
		return
	}
	flashAndRedirect(w, r, "Issue updated", "/maintenance")
}

// handleDeleteIssue handles POST /delete_issue/{id}.
func handleDeleteIssue(w http.ResponseWriter, r *http.Request) {
	input := orchestrators.DeleteIssueInput{
		Actor: actor(r),
		ID:    r.PathValue("id"),
	}
	if err := orchestrators.ExecuteDeleteIssue(r.Context(), input, orchestrators.DeleteIssueDeps{
		Issues: stores.IssueStore,
	}); err != nil {
		handleOperationError(w, r, err, "/maintenance")
		return
	}
	flashAndRedirect(w, r, "Issue deleted", "/maintenance")
}

// handleUploadIssues handles POST /upload_maintenance_issues.
func handleUploadIssues(w http.ResponseWriter, r *http.Request) {
	table, ok := readWorkbook(w, r, "file", "/maintenance")
	if !ok {
		return
	}

	count, err := orchestrators.ExecuteImportIssues(r.Context(), orchestrators.ImportIssuesInput{
		Actor: actor(r),
		Table: table,
	}, orchestrators.ImportIssuesDeps{
		Issues:     stores.IssueStore,
		GenerateID: generateID,
	})
	if err != nil {
		handleOperationError(w, r, err, "/maintenance")
		return
	}
	flashAndRedirect(w, r, fmt.Sprintf("Imported %d issues", count), "/maintenance")
}

// handleDownloadIssues handles POST /download_maintenance_report.
func handleDownloadIssues(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	issues, err := stores.IssueStore.All(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	a := actor(r)
	view := projections.BuildMaintenanceView(issues, a.Role, a.AllowedAccommodations, projections.MaintenanceFilter{
		Accommodation: r.FormValue("accommodation"),
		Status:        r.FormValue("status"),
		Risk:          r.FormValue("risk"),
	})
	if len(view.Issues) == 0 {
		flashAndRedirect(w, r, "No data available for the selected filters", "/maintenance")
		return
	}

	headers, rows := projections.IssuesTable(view.Issues)
	sendWorkbook(w, r, "Maintenance", "maintenance_report.xlsx", headers, rows)
}
