package web

import (
	"net/http"

	"quarters/internal/application/orchestrators"
	"quarters/internal/application/projections"
	assetDomain "quarters/internal/domain/asset"
)

// handleAssets handles GET /assets: the asset ledger listing.
func handleAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := stores.AssetStore.All(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	staffRecords, err := stores.StaffStore.All(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	q := r.URL.Query()
	filter := projections.AssetFilter{
		Accommodation: q.Get("accommodation"),
		Status:        q.Get("status"),
		Search:        q.Get("search"),
	}
	a := actor(r)
	view := projections.BuildAssetView(assets, a.Role, a.AllowedAccommodations, filter)

	renderTemplate(w, r, "assets.html", map[string]any{
		"Assets":         view.Assets,
		"AvailableTotal": view.AvailableTotal,
		"ScrapTotal":     view.ScrapTotal,
		"Accommodations": projections.Accommodations(staffRecords),
		"Statuses":       assetStatuses,
		"Filter":         filter,
	})
}

// handleAddAsset handles POST /add_asset: receive quantity.
func handleAddAsset(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.ReceiveAssetInput{
		Actor:         actor(r),
		Accommodation: r.FormValue("accommodation"),
		Name:          r.FormValue("asset_name"),
		Quantity:      formInt(r, "quantity"),
		ReceivedFrom:  r.FormValue("received_from"),
		Remarks:       r.FormValue("remarks"),
	}
	if err := orchestrators.ExecuteReceiveAsset(r.Context(), input, orchestrators.ReceiveAssetDeps{
		Assets:     stores.AssetStore,
		GenerateID: generateID,
	}); err != nil {
		handleOperationError(w, r, err, "/assets")
		return
	}
	flashAndRedirect(w, r, "Asset received", "/assets")
}

// handleShiftAsset handles POST /shift_asset.
func handleShiftAsset(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.ShiftAssetInput{
		Actor:    actor(r),
		From:     r.FormValue("from_accommodation"),
		To:       r.FormValue("to_accommodation"),
		Name:     r.FormValue("asset_name"),
		Quantity: formInt(r, "quantity"),
		Remarks:  r.FormValue("remarks"),
	}
	if err := orchestrators.ExecuteShiftAsset(r.Context(), input, orchestrators.ShiftAssetDeps{
		Assets:     stores.AssetStore,
		GenerateID: generateID,
	}); err != nil {
		handleOperationError(w, r, err, "/assets")
		return
	}
	flashAndRedirect(w, r, "Asset shifted", "/assets")
}

// handleScrapAsset handles POST /scrap_asset.
func handleScrapAsset(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.ScrapAssetInput{
		Actor:         actor(r),
		Accommodation: r.FormValue("accommodation"),
		Name:          r.FormValue("asset_name"),
		Quantity:      formInt(r, "quantity"),
		SAPID:         r.FormValue("sap_id"),
		EmpName:       r.FormValue("emp_name"),
		Designation:   r.FormValue("designation"),
		Department:    r.FormValue("department"),
		ScrapDate:     r.FormValue("scrap_date"),
		Remarks:       r.FormValue("remarks"),
	}
	if err := orchestrators.ExecuteScrapAsset(r.Context(), input, orchestrators.ScrapAssetDeps{
		Assets:     stores.AssetStore,
		GenerateID: generateID,
	}); err != nil {
		handleOperationError(w, r, err, "/assets")
		return
	}
	flashAndRedirect(w, r, "Asset scrapped", "/assets")
}

// handleRemoveScrap handles POST /remove_scrap.
func handleRemoveScrap(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.RemoveScrapInput{
		Actor:         actor(r),
		Accommodation: r.FormValue("accommodation"),
		Name:          r.FormValue("asset_name"),
		Quantity:      formInt(r, "quantity"),
	}
	if err := orchestrators.ExecuteRemoveScrap(r.Context(), input, orchestrators.RemoveScrapDeps{
		Assets: stores.AssetStore,
	}); err != nil {
		handleOperationError(w, r, err, "/assets")
		return
	}
	flashAndRedirect(w, r, "Scrap removed", "/assets")
}

// handleGetAssets handles GET /get_assets/{accommodation}/{status} (JSON).
func handleGetAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := stores.AssetStore.All(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	out := projections.AssetsAt(assets, r.PathValue("accommodation"), r.PathValue("status"))
	writeJSON(w, map[string]any{"assets": out})
}

// handleDownloadAssets handles POST /download_assets_report.
func handleDownloadAssets(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	assets, err := stores.AssetStore.All(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	a := actor(r)
	view := projections.BuildAssetView(assets, a.Role, a.AllowedAccommodations, projections.AssetFilter{
		Accommodation: r.FormValue("accommodation"),
		Status:        r.FormValue("status"),
	})
	if len(view.Assets) == 0 {
		flashAndRedirect(w, r, "No data available for the selected filters", "/assets")
		return
	}

	headers, rows := projections.AssetsTable(view.Assets)
	sendWorkbook(w, r, "Assets", "assets_report.xlsx", headers, rows)
}

// assetStatuses is used by the assets page filter dropdown.
var assetStatuses = []string{assetDomain.StatusAvailable, assetDomain.StatusScrap}
