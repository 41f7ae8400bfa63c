package web

import (
	"fmt"
	"net/http"

	"quarters/internal/application/orchestrators"
	"quarters/internal/application/projections"
)

// handleStore handles GET /store: the item x location summary matrix.
func handleStore(w http.ResponseWriter, r *http.Request) {
	catalogue, err := stores.ItemStore.All(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	inventory, err := stores.InventoryStore.All(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	issued, err := stores.IssuedStore.All(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	staffRecords, err := stores.StaffStore.All(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	search := r.URL.Query().Get("search")
	a := actor(r)
	view := projections.BuildStoreView(catalogue, inventory, issued,
		a.Role, a.AllowedAccommodations, config.CentralStoreException, search)

	renderTemplate(w, r, "store.html", map[string]any{
		"Locations":      view.Locations,
		"Rows":           view.Rows,
		"Items":          catalogue,
		"Accommodations": projections.Accommodations(staffRecords),
		"Search":         search,
	})
}

// handleAddStoreItem handles POST /add_store_item.
func handleAddStoreItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	if err := orchestrators.ExecuteAddMasterItem(r.Context(), orchestrators.AddMasterItemInput{
		Actor: actor(r),
		Name:  r.FormValue("item_name"),
	}, orchestrators.AddMasterItemDeps{Items: stores.ItemStore}); err != nil {
		handleOperationError(w, r, err, "/store")
		return
	}
	flashAndRedirect(w, r, "Item added to the catalogue", "/store")
}

// handleUploadMasterItems handles POST /upload_master_items.
func handleUploadMasterItems(w http.ResponseWriter, r *http.Request) {
	table, ok := readWorkbook(w, r, "file", "/store")
	if !ok {
		return
	}

	added, err := orchestrators.ExecuteImportMasterItems(r.Context(), orchestrators.ImportMasterItemsInput{
		Actor: actor(r),
		Table: table,
	}, orchestrators.ImportMasterItemsDeps{Items: stores.ItemStore})
	if err != nil {
		handleOperationError(w, r, err, "/store")
		return
	}
	flashAndRedirect(w, r, fmt.Sprintf("Added %d catalogue items", added), "/store")
}

// handleReceiveStock handles POST /receive_stock.
func handleReceiveStock(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.ReceiveStockInput{
		Actor:                 actor(r),
		Accommodation:         r.FormValue("accommodation"),
		Item:                  r.FormValue("item_name"),
		Quantity:              formInt(r, "quantity"),
		Remarks:               r.FormValue("remarks"),
		CentralStoreException: config.CentralStoreException,
	}
	if err := orchestrators.ExecuteReceiveStock(r.Context(), input, orchestrators.ReceiveStockDeps{
		Inventory: stores.InventoryStore,
	}); err != nil {
		handleOperationError(w, r, err, "/store")
		return
	}
	flashAndRedirect(w, r, "Stock received", "/store")
}

// handleDistributeStock handles POST /distribute_stock.
func handleDistributeStock(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.DistributeStockInput{
		Actor:                 actor(r),
		Target:                r.FormValue("accommodation"),
		Item:                  r.FormValue("item_name"),
		Quantity:              formInt(r, "quantity"),
		Remarks:               r.FormValue("remarks"),
		CentralStoreException: config.CentralStoreException,
	}
	if err := orchestrators.ExecuteDistributeStock(r.Context(), input, orchestrators.DistributeStockDeps{
		Inventory: stores.InventoryStore,
	}); err != nil {
		handleOperationError(w, r, err, "/store")
		return
	}
	flashAndRedirect(w, r, "Stock distributed", "/store")
}

// handleIssueToEmployee handles POST /issue_to_employee.
func handleIssueToEmployee(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.IssueToEmployeeInput{
		Actor:                 actor(r),
		Accommodation:         r.FormValue("accommodation"),
		Item:                  r.FormValue("item_name"),
		Quantity:              formInt(r, "quantity"),
		SAPID:                 r.FormValue("sap_id"),
		EmpName:               r.FormValue("emp_name"),
		Designation:           r.FormValue("designation"),
		Department:            r.FormValue("department"),
		IssueDate:             r.FormValue("issue_date"),
		Remarks:               r.FormValue("remarks"),
		CentralStoreException: config.CentralStoreException,
	}
	if _, err := orchestrators.ExecuteIssueToEmployee(r.Context(), input, orchestrators.IssueToEmployeeDeps{
		Inventory:  stores.InventoryStore,
		Issued:     stores.IssuedStore,
		GenerateID: generateID,
	}); err != nil {
		handleOperationError(w, r, err, "/store")
		return
	}
	flashAndRedirect(w, r, "Item issued", "/store")
}

// handleIssuedDetails handles GET /issued_details/{accommodation}/{item}.
// Visibility follows the store listing: an accommodation outside the actor's
// scope is not readable by URL either.
func handleIssuedDetails(w http.ResponseWriter, r *http.Request) {
	accommodation := r.PathValue("accommodation")
	a := actor(r)
	if !projections.CanViewStore(a.Role, a.AllowedAccommodations, accommodation, config.CentralStoreException) {
		flashAndRedirect(w, r, "Access Denied", "/store")
		return
	}
	issued, err := stores.IssuedStore.All(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	item := r.PathValue("item")
	records := projections.IssuedAt(issued, accommodation, item)

	renderTemplate(w, r, "issued_details.html", map[string]any{
		"Accommodation": accommodation,
		"Item":          item,
		"Records":       records,
	})
}

// handleDownloadIssuedDetails handles POST /download_issued_details/{accommodation}/{item}.
func handleDownloadIssuedDetails(w http.ResponseWriter, r *http.Request) {
	accommodation := r.PathValue("accommodation")
	a := actor(r)
	if !projections.CanViewStore(a.Role, a.AllowedAccommodations, accommodation, config.CentralStoreException) {
		flashAndRedirect(w, r, "Access Denied", "/store")
		return
	}
	issued, err := stores.IssuedStore.All(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	records := projections.IssuedAt(issued, accommodation, r.PathValue("item"))
	if len(records) == 0 {
		flashAndRedirect(w, r, "No issued records for this item", "/store")
		return
	}

	headers, rows := projections.IssuedTable(records)
	sendWorkbook(w, r, "Issued Items", "issued_details.xlsx", headers, rows)
}

// handleDownloadStoreReport handles POST /download_store_report with the
// Stock / Issued / Balance report types.
func handleDownloadStoreReport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	a := actor(r)

	switch r.FormValue("report_type") {
	case "Issued":
		issued, err := stores.IssuedStore.All(r.Context())
		if err != nil {
			internalError(w, err)
			return
		}
		scoped := issued[:0:0]
		for _, rec := range issued {
			if projections.CanViewStore(a.Role, a.AllowedAccommodations, rec.Accommodation, config.CentralStoreException) {
				scoped = append(scoped, rec)
			}
		}
		if len(scoped) == 0 {
			flashAndRedirect(w, r, "No data available for this report", "/store")
			return
		}
		headers, rows := projections.IssuedTable(scoped)
		sendWorkbook(w, r, "Issued", "store_issued_report.xlsx", headers, rows)

	case "Balance":
		inventory, err := stores.InventoryStore.All(r.Context())
		if err != nil {
			internalError(w, err)
			return
		}
		issued, err := stores.IssuedStore.All(r.Context())
		if err != nil {
			internalError(w, err)
			return
		}
		balance := projections.BuildBalanceReport(inventory, issued,
			a.Role, a.AllowedAccommodations, config.CentralStoreException)
		if len(balance) == 0 {
			flashAndRedirect(w, r, "No data available for this report", "/store")
			return
		}
		headers, rows := projections.BalanceTable(balance)
		sendWorkbook(w, r, "Balance", "store_balance_report.xlsx", headers, rows)

	default: // Stock
		inventory, err := stores.InventoryStore.All(r.Context())
		if err != nil {
			internalError(w, err)
			return
		}
		scoped := inventory[:0:0]
		for _, line := range inventory {
			if projections.CanViewStore(a.Role, a.AllowedAccommodations, line.Accommodation, config.CentralStoreException) {
				scoped = append(scoped, line)
			}
		}
		if len(scoped) == 0 {
			flashAndRedirect(w, r, "No data available for this report", "/store")
			return
		}
		headers, rows := projections.StockTable(scoped)
		sendWorkbook(w, r, "Stock", "store_stock_report.xlsx", headers, rows)
	}
}
