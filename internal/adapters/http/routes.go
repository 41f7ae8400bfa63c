package web

import (
	"net/http"

	"quarters/internal/adapters/http/middleware"
	userDomain "quarters/internal/domain/user"
)

// registerRoutes attaches every handler to the mux. All routes except the
// login pair sit behind RequireAuth; admin-only routes behind RequireRole.
func registerRoutes(mux *http.ServeMux) {
	authed := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(h)
	}
	adminOnly := middleware.RequireRole(userDomain.RoleAdmin)
	admin := func(h http.HandlerFunc) http.Handler {
		return adminOnly(h)
	}

	mux.HandleFunc("/", handleRoot)
	mux.HandleFunc("GET /login", handleLoginPage)
	mux.HandleFunc("POST /login_action", handleLoginAction)
	mux.Handle("GET /logout", authed(handleLogout))

	// Staff / room slots
	mux.Handle("GET /dashboard", authed(handleDashboard))
	mux.Handle("POST /add_staff", authed(handleAddStaff))
	mux.Handle("POST /checkout_staff/{sap_id}", authed(handleCheckoutStaff))
	mux.Handle("POST /shift_staff/{sap_id}", authed(handleShiftStaff))
	mux.Handle("POST /update_staff/{sap_id}", authed(handleUpdateStaff))
	mux.Handle("GET /staff/{sap_id}", authed(handleStaffDetail))
	mux.Handle("GET /get_employee_details/{sap_id}", authed(handleGetEmployeeDetails))
	mux.Handle("GET /get_vacant_rooms/{accommodation}", authed(handleGetVacantRooms))
	mux.Handle("GET /get_country_details/{name}", authed(handleGetCountryDetails))
	mux.Handle("POST /upload", authed(handleUploadStaff))
	mux.Handle("POST /add_accommodation_data", authed(handleMergeStaff))
	mux.Handle("POST /manage_accommodation", authed(handleManageAccommodation))
	mux.Handle("GET /accommodation", authed(handleAccommodation))
	mux.Handle("POST /download_data", authed(handleDownloadStaff))

	// Maintenance
	mux.Handle("GET /maintenance", authed(handleMaintenance))
	mux.Handle("POST /add_issue", authed(handleAddIssue))
	mux.Handle("POST /update_issue/{id}", authed(handleUpdateIssue))
	mux.Handle("POST /delete_issue/{id}", authed(handleDeleteIssue))
	mux.Handle("POST /upload_maintenance_issues", authed(handleUploadIssues))
	mux.Handle("POST /download_maintenance_report", authed(handleDownloadIssues))

	// Assets
	mux.Handle("GET /assets", authed(handleAssets))
	mux.Handle("POST /add_asset", authed(handleAddAsset))
	mux.Handle("POST /shift_asset", authed(handleShiftAsset))
	mux.Handle("POST /scrap_asset", authed(handleScrapAsset))
	mux.Handle("POST /remove_scrap", authed(handleRemoveScrap))
	mux.Handle("GET /get_assets/{accommodation}/{status}", authed(handleGetAssets))
	mux.Handle("POST /download_assets_report", authed(handleDownloadAssets))

	// Store
	mux.Handle("GET /store", authed(handleStore))
	mux.Handle("POST /add_store_item", authed(handleAddStoreItem))
	mux.Handle("POST /upload_master_items", authed(handleUploadMasterItems))
	mux.Handle("POST /receive_stock", authed(handleReceiveStock))
	mux.Handle("POST /distribute_stock", authed(handleDistributeStock))
	mux.Handle("POST /issue_to_employee", authed(handleIssueToEmployee))
	mux.Handle("GET /issued_details/{accommodation}/{item}", authed(handleIssuedDetails))
	mux.Handle("POST /download_issued_details/{accommodation}/{item}", authed(handleDownloadIssuedDetails))
	mux.Handle("POST /download_store_report", authed(handleDownloadStoreReport))

	// AMCs and contracts
	mux.Handle("GET /amcs", authed(handleAMCs))
	mux.Handle("POST /add_amc", authed(handleAddAMC))
	mux.Handle("POST /download_amcs_report", authed(handleDownloadAMCs))
	mux.Handle("GET /contracts", authed(handleContracts))
	mux.Handle("POST /add_contract_type", authed(handleAddContractType))
	mux.Handle("POST /add_contract", authed(handleAddContract))
	mux.Handle("POST /delete_contract/{id}", authed(handleDeleteContract))
	mux.Handle("GET /uploads/amcs/{file}", authed(handleAMCAttachment))
	mux.Handle("GET /uploads/contracts/{file}", authed(handleContractAttachment))

	// Settings / users (admin only)
	mux.Handle("GET /settings", admin(handleSettings))
	mux.Handle("GET /edit_user/{name}", admin(handleEditUser))
	mux.Handle("POST /add_user", admin(handleAddUser))
	mux.Handle("POST /update_user/{name}", admin(handleUpdateUser))
	mux.Handle("POST /delete_user/{name}", admin(handleDeleteUser))
}
