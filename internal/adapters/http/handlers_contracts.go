package web

import (
	"net/http"

	"quarters/internal/application/orchestrators"
	"quarters/internal/application/projections"
)

// Attachment subdirectories under the uploads directory.
const (
	amcUploadsDir      = "amcs"
	contractUploadsDir = "contracts"
)

// handleAMCs handles GET /amcs: the AMC listing.
func handleAMCs(w http.ResponseWriter, r *http.Request) {
	records, err := stores.AMCStore.All(r.Context())
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
	filter := projections.AMCFilter{
		Accommodation: q.Get("accommodation"),
		Vendor:        q.Get("vendor"),
		Type:          q.Get("type"),
	}
	a := actor(r)
	filtered := projections.FilterAMCs(records, a.Role, a.AllowedAccommodations, filter)

	renderTemplate(w, r, "amcs.html", map[string]any{
		"AMCs":           filtered,
		"Accommodations": projections.Accommodations(staffRecords),
		"Filter":         filter,
	})
}

// handleAddAMC handles POST /add_amc (multipart, optional attachment).
func handleAddAMC(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadBytes)
	if err := r.ParseMultipartForm(config.MaxUploadBytes); err != nil {
		flashAndRedirect(w, r, "Upload too large or malformed", "/amcs")
		return
	}

	attachment := ""
	if file, header, err := r.FormFile("attachment"); err == nil {
		defer file.Close()
		attachment, err = saveAttachment(file, header, amcUploadsDir)
		if err != nil {
			internalError(w, err)
			return
		}
	}

	input := orchestrators.AddAMCInput{
		Actor:         actor(r),
		Accommodation: r.FormValue("accommodation"),
		Vendor:        r.FormValue("vendor"),
		ServiceDate:   r.FormValue("service_date"),
		ExpiryDate:    r.FormValue("expiry_date"),
		Type:          r.FormValue("type"),
		Remarks:       r.FormValue("remarks"),
		Attachment:    attachment,
	}
	if _, err := orchestrators.ExecuteAddAMC(r.Context(), input, orchestrators.AddAMCDeps{
		AMCs:       stores.AMCStore,
		GenerateID: generateID,
	}); err != nil {
		removeAttachment(amcUploadsDir, attachment)
		handleOperationError(w, r, err, "/amcs")
		return
	}
	flashAndRedirect(w, r, "AMC recorded", "/amcs")
}

// handleDownloadAMCs handles POST /download_amcs_report.
func handleDownloadAMCs(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	records, err := stores.AMCStore.All(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	a := actor(r)
	filtered := projections.FilterAMCs(records, a.Role, a.AllowedAccommodations, projections.AMCFilter{
		Accommodation: r.FormValue("accommodation"),
		Vendor:        r.FormValue("vendor"),
		Type:          r.FormValue("type"),
	})
	if len(filtered) == 0 {
		flashAndRedirect(w, r, "No data available for the selected filters", "/amcs")
		return
	}

	headers, rows := projections.AMCsTable(filtered)
	sendWorkbook(w, r, "AMCs", "amcs_report.xlsx", headers, rows)
}

// handleContracts handles GET /contracts: the contract listing.
func handleContracts(w http.ResponseWriter, r *http.Request) {
	records, err := stores.ContractStore.All(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	types, err := stores.ContractTypeStore.All(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	staffRecords, err := stores.StaffStore.All(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	contractType := r.URL.Query().Get("type")
	a := actor(r)
	filtered := projections.FilterContracts(records, a.Role, a.AllowedAccommodations, contractType)

	renderTemplate(w, r, "contracts.html", map[string]any{
		"Contracts":      filtered,
		"Types":          types,
		"Accommodations": projections.Accommodations(staffRecords),
		"Type":           contractType,
	})
}

// handleAddContractType handles POST /add_contract_type.
func handleAddContractType(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	if err := orchestrators.ExecuteAddContractType(r.Context(), orchestrators.AddContractTypeInput{
		Actor: actor(r),
		Name:  r.FormValue("type_name"),
	}, orchestrators.AddContractTypeDeps{Types: stores.ContractTypeStore}); err != nil {
		handleOperationError(w, r, err, "/contracts")
		return
	}
	flashAndRedirect(w, r, "Contract type added", "/contracts")
}

// handleAddContract handles POST /add_contract (multipart, optional attachment).
func handleAddContract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadBytes)
	if err := r.ParseMultipartForm(config.MaxUploadBytes); err != nil {
		flashAndRedirect(w, r, "Upload too large or malformed", "/contracts")
		return
	}

	attachment := ""
	if file, header, err := r.FormFile("attachment"); err == nil {
		defer file.Close()
		attachment, err = saveAttachment(file, header, contractUploadsDir)
		if err != nil {
			internalError(w, err)
			return
		}
	}

	input := orchestrators.AddContractInput{
		Actor:         actor(r),
		Accommodation: r.FormValue("accommodation"),
		Type:          r.FormValue("contract_type"),
		Caption:       r.FormValue("caption"),
		Attachment:    attachment,
	}
	if _, err := orchestrators.ExecuteAddContract(r.Context(), input, orchestrators.AddContractDeps{
		Contracts:  stores.ContractStore,
		GenerateID: generateID,
	}); err != nil {
		removeAttachment(contractUploadsDir, attachment)
		handleOperationError(w, r, err, "/contracts")
		return
	}
	flashAndRedirect(w, r, "Contract recorded", "/contracts")
}

// handleDeleteContract handles POST /delete_contract/{id}.
func handleDeleteContract(w http.ResponseWriter, r *http.Request) {
	removed, err := orchestrators.ExecuteDeleteContract(r.Context(), orchestrators.DeleteContractInput{
		Actor: actor(r),
		ID:    r.PathValue("id"),
	}, orchestrators.DeleteContractDeps{Contracts: stores.ContractStore})
	if err != nil {
		handleOperationError(w, r, err, "/contracts")
		return
	}
	removeAttachment(contractUploadsDir, removed.Attachment)
	flashAndRedirect(w, r, "Contract deleted", "/contracts")
}

// handleAMCAttachment handles GET /uploads/amcs/{file}.
func handleAMCAttachment(w http.ResponseWriter, r *http.Request) {
	serveAttachment(w, r, amcUploadsDir, r.PathValue("file"))
}

// handleContractAttachment handles GET /uploads/contracts/{file}.
func handleContractAttachment(w http.ResponseWriter, r *http.Request) {
	serveAttachment(w, r, contractUploadsDir, r.PathValue("file"))
}
