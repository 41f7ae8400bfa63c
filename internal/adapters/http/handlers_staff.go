package web

import (
	"fmt"
	"net/http"

	"quarters/internal/adapters/spreadsheet"
	"quarters/internal/application/listutil"
	"quarters/internal/application/orchestrators"
	"quarters/internal/application/projections"
	countryDomain "quarters/internal/domain/country"
	staffDomain "quarters/internal/domain/staff"
)

// handleDashboard handles GET /dashboard: the staff listing with occupancy
// stats, search, and filters.
func handleDashboard(w http.ResponseWriter, r *http.Request) {
	records, err := stores.StaffStore.All(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	q := r.URL.Query()
	page := listutil.ParsePageParams(q)
	filter := projections.DashboardFilter{
		Search:   q.Get("search"),
		Location: q.Get("location"),
		Status:   q.Get("status"),
		Page:     page.Page,
		PerPage:  page.PerPage,
	}
	a := actor(r)
	view := projections.BuildDashboard(records, a.Role, a.AllowedAccommodations, filter)

	renderTemplate(w, r, "dashboard.html", map[string]any{
		"Records":        view.Records,
		"Pages":          view.Pages,
		"Stats":          view.Stats,
		"Accommodations": view.Accommodations,
		"Statuses":       staffDomain.ValidStatuses,
		"Search":         filter.Search,
		"Location":       filter.Location,
		"Status":         filter.Status,
	})
}

// handleAddStaff handles POST /add_staff: check-in to a vacant slot.
func handleAddStaff(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.AddStaffInput{
		Actor:         actor(r),
		Accommodation: r.FormValue("accommodation"),
		Room:          r.FormValue("room"),
		SAPID:         r.FormValue("sap_id"),
		Name:          r.FormValue("emp_name"),
		Designation:   r.FormValue("designation"),
		Department:    r.FormValue("department"),
		Nationality:   r.FormValue("nationality"),
	}
	if err := orchestrators.ExecuteAddStaff(r.Context(), input, orchestrators.AddStaffDeps{
		Staff: stores.StaffStore,
	}); err != nil {
		handleOperationError(w, r, err, "/dashboard")
		return
	}
	flashAndRedirect(w, r, "Staff checked in successfully", "/dashboard")
}

// handleCheckoutStaff handles POST /checkout_staff/{sap_id}.
func handleCheckoutStaff(w http.ResponseWriter, r *http.Request) {
	input := orchestrators.CheckoutStaffInput{
		Actor: actor(r),
		SAPID: r.PathValue("sap_id"),
	}
	if err := orchestrators.ExecuteCheckoutStaff(r.Context(), input, orchestrators.CheckoutStaffDeps{
		Staff: stores.StaffStore,
	}); err != nil {
		handleOperationError(w, r, err, "/dashboard")
		return
	}
	flashAndRedirect(w, r, "Staff checked out successfully", "/dashboard")
}

// handleShiftStaff handles POST /shift_staff/{sap_id}.
func handleShiftStaff(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.ShiftStaffInput{
		Actor:            actor(r),
		SAPID:            r.PathValue("sap_id"),
		NewAccommodation: r.FormValue("new_accommodation"),
		NewRoom:          r.FormValue("new_room"),
	}
	if err := orchestrators.ExecuteShiftStaff(r.Context(), input, orchestrators.ShiftStaffDeps{
		Staff: stores.StaffStore,
	}); err != nil {
		handleOperationError(w, r, err, "/dashboard")
		return
	}
	flashAndRedirect(w, r, "Staff shifted successfully", "/dashboard")
}

// handleUpdateStaff handles POST /update_staff/{sap_id}.
func handleUpdateStaff(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.UpdateStaffInput{
		Actor:       actor(r),
		SAPID:       r.PathValue("sap_id"),
		Name:        r.FormValue("emp_name"),
		Designation: r.FormValue("designation"),
		Department:  r.FormValue("department"),
		Nationality: r.FormValue("nationality"),
		Status:      r.FormValue("status"),
	}
	if err := orchestrators.ExecuteUpdateStaff(r.Context(), input, orchestrators.UpdateStaffDeps{
		Staff: stores.StaffStore,
	}); err != nil {
		handleOperationError(w, r, err, "/dashboard")
		return
	}
	flashAndRedirect(w, r, "Staff details updated", "/dashboard")
}

// handleStaffDetail handles GET /staff/{sap_id}: the employee detail page.
func handleStaffDetail(w http.ResponseWriter, r *http.Request) {
	records, err := stores.StaffStore.All(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	emp, found := projections.FindEmployee(records, r.PathValue("sap_id"))
	if !found {
		flashAndRedirect(w, r, staffDomain.ErrNotFound.Error(), "/dashboard")
		return
	}
	renderTemplate(w, r, "staff_detail.html", map[string]any{
		"Employee":       emp,
		"Accommodations": projections.Accommodations(records),
		"Statuses":       staffDomain.ValidStatuses,
	})
}

// handleGetEmployeeDetails handles GET /get_employee_details/{sap_id} (JSON).
func handleGetEmployeeDetails(w http.ResponseWriter, r *http.Request) {
	records, err := stores.StaffStore.All(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	emp, found := projections.FindEmployee(records, r.PathValue("sap_id"))
	if !found {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeJSON(w, emp)
}

// handleGetVacantRooms handles GET /get_vacant_rooms/{accommodation} (JSON).
func handleGetVacantRooms(w http.ResponseWriter, r *http.Request) {
	records, err := stores.StaffStore.All(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	rooms := projections.VacantRooms(records, r.PathValue("accommodation"))
	writeJSON(w, map[string]any{"rooms": rooms})
}

// handleGetCountryDetails handles GET /get_country_details/{name} (JSON).
func handleGetCountryDetails(w http.ResponseWriter, r *http.Request) {
	states, phoneCode := countryDomain.Details(countries, r.PathValue("name"))
	writeJSON(w, map[string]any{"states": states, "phone_code": phoneCode})
}

// handleUploadStaff handles POST /upload: whole-document replace import.
func handleUploadStaff(w http.ResponseWriter, r *http.Request) {
	importStaffWorkbook(w, r, orchestrators.ImportReplace)
}

// handleMergeStaff handles POST /add_accommodation_data: merge import.
func handleMergeStaff(w http.ResponseWriter, r *http.Request) {
	importStaffWorkbook(w, r, orchestrators.ImportMerge)
}

func importStaffWorkbook(w http.ResponseWriter, r *http.Request, mode orchestrators.ImportMode) {
	table, ok := readWorkbook(w, r, "file", "/dashboard")
	if !ok {
		return
	}

	result, err := orchestrators.ExecuteImportStaff(r.Context(), orchestrators.ImportStaffInput{
		Actor: actor(r),
		Table: table,
		Mode:  mode,
	}, orchestrators.ImportStaffDeps{Staff: stores.StaffStore})
	if err != nil {
		handleOperationError(w, r, err, "/dashboard")
		return
	}

	msg := fmt.Sprintf("Imported %d records", result.Imported)
	if result.Dropped > 0 {
		msg += fmt.Sprintf(", dropped %d without a valid SAP ID", result.Dropped)
	}
	if result.Skipped > 0 {
		msg += fmt.Sprintf(", skipped %d existing SAP IDs", result.Skipped)
	}
	flashAndRedirect(w, r, msg, "/dashboard")
}

// readWorkbook parses the uploaded spreadsheet from a multipart form. On any
// failure it flashes, redirects, and reports false.
func readWorkbook(w http.ResponseWriter, r *http.Request, field, redirectTo string) (spreadsheet.Table, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadBytes)
	if err := r.ParseMultipartForm(config.MaxUploadBytes); err != nil {
		flashAndRedirect(w, r, "Upload too large or malformed", redirectTo)
		return spreadsheet.Table{}, false
	}
	file, header, err := r.FormFile(field)
	if err != nil {
		flashAndRedirect(w, r, "No file selected", redirectTo)
		return spreadsheet.Table{}, false
	}
	defer file.Close()

	if !spreadsheet.ValidExtension(header.Filename) {
		flashAndRedirect(w, r, "Please upload an .xlsx file", redirectTo)
		return spreadsheet.Table{}, false
	}
	table, err := spreadsheet.Read(file)
	if err != nil {
		flashAndRedirect(w, r, "Could not read the workbook", redirectTo)
		return spreadsheet.Table{}, false
	}
	return table, true
}

// handleManageAccommodation handles POST /manage_accommodation: bulk remove
// or bulk shift of an accommodation's records.
func handleManageAccommodation(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.ManageAccommodationInput{
		Actor:         actor(r),
		Action:        r.FormValue("action"),
		Accommodation: r.FormValue("accommodation"),
		Target:        r.FormValue("target_accommodation"),
	}
	affected, err := orchestrators.ExecuteManageAccommodation(r.Context(), input, orchestrators.ManageAccommodationDeps{
		Staff: stores.StaffStore,
	})
	if err != nil {
		handleOperationError(w, r, err, "/accommodation")
		return
	}
	flashAndRedirect(w, r, fmt.Sprintf("%d records affected", affected), "/accommodation")
}

// handleAccommodation handles GET /accommodation: the department summary.
func handleAccommodation(w http.ResponseWriter, r *http.Request) {
	records, err := stores.StaffStore.All(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	a := actor(r)
	summary := projections.BuildDepartmentSummary(records, a.Role, a.AllowedAccommodations)
	renderTemplate(w, r, "accommodation.html", map[string]any{
		"Summary":        summary,
		"Accommodations": projections.Accommodations(records),
	})
}

// handleDownloadStaff handles POST /download_data: filtered Excel export.
func handleDownloadStaff(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	records, err := stores.StaffStore.All(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	a := actor(r)
	filtered := projections.FilterStaffForExport(records, a.Role, a.AllowedAccommodations,
		r.FormValue("accommodation"), r.FormValue("status"))
	if len(filtered) == 0 {
		flashAndRedirect(w, r, "No data available for the selected filters", "/dashboard")
		return
	}

	headers, rows := projections.StaffTable(filtered)
	sendWorkbook(w, r, "Staff", "staff_report.xlsx", headers, rows)
}

// sendWorkbook writes an .xlsx response.
func sendWorkbook(w http.ResponseWriter, r *http.Request, sheet, filename string, headers []string, rows [][]any) {
	data, err := spreadsheet.Write(sheet, headers, rows)
	if err != nil {
		internalError(w, err)
		return
	}
	w.Header().Set("Content-Type", spreadsheet.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write(data); err != nil {
		// Response already committed; nothing useful left to send.
		return
	}
}
