package projections

import (
	amcDomain "quarters/internal/domain/amc"
	assetDomain "quarters/internal/domain/asset"
	maintenanceDomain "quarters/internal/domain/maintenance"
	staffDomain "quarters/internal/domain/staff"
	storeroomDomain "quarters/internal/domain/storeroom"
)

// Export tables flatten record slices into the header row plus cell rows the
// spreadsheet writer takes. Column order matches the import column order
// where an import exists, so a downloaded report re-imports cleanly.

// StaffTable flattens staff records for export.
func StaffTable(records []staffDomain.Employee) ([]string, [][]any) {
	headers := []string{"Accommodation", "Room", "SAP ID", "Emp Name", "Designation", "Status", "Department", "Nationality"}
	rows := make([][]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, []any{r.Accommodation, r.Room, r.SAPID, r.Name, r.Designation, r.Status, r.Department, r.Nationality})
	}
	return headers, rows
}

// IssuesTable flattens maintenance issues for export.
func IssuesTable(issues []maintenanceDomain.Issue) ([]string, [][]any) {
	headers := []string{"Accommodation", "Block", "Section", "Report Date", "Details", "Status", "Closed Date", "Concern", "Concern Other", "Risk", "Remarks"}
	rows := make([][]any, 0, len(issues))
	for _, i := range issues {
		rows = append(rows, []any{i.Accommodation, i.Block, i.Section, i.ReportDate, i.Details, i.Status, i.ClosedDate, i.Concern, i.ConcernOther, i.Risk, i.Remarks})
	}
	return headers, rows
}

// AssetsTable flattens asset lines for export.
func AssetsTable(assets []assetDomain.Asset) ([]string, [][]any) {
	headers := []string{"Accommodation", "Asset Name", "Quantity", "Status", "Received From", "Scrap Date", "Remarks"}
	rows := make([][]any, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, []any{a.Accommodation, a.Name, a.Quantity, a.Status, a.ReceivedFrom, a.ScrapDate, a.Remarks})
	}
	return headers, rows
}

// StockTable flattens inventory balance lines for export.
func StockTable(items []storeroomDomain.InventoryItem) ([]string, [][]any) {
	headers := []string{"Accommodation", "Item Name", "Quantity", "Remarks"}
	rows := make([][]any, 0, len(items))
	for _, it := range items {
		rows = append(rows, []any{it.Accommodation, it.Item, it.Quantity, it.Remarks})
	}
	return headers, rows
}

// IssuedTable flattens issued-item history for export.
func IssuedTable(items []storeroomDomain.IssuedItem) ([]string, [][]any) {
	headers := []string{"Accommodation", "Item Name", "Quantity", "SAP ID", "Emp Name", "Designation", "Department", "Issue Date", "Remarks"}
	rows := make([][]any, 0, len(items))
	for _, it := range items {
		rows = append(rows, []any{it.Accommodation, it.Item, it.Quantity, it.SAPID, it.EmpName, it.Designation, it.Department, it.IssueDate, it.Remarks})
	}
	return headers, rows
}

// BalanceTable flattens per-item balance rows for export.
func BalanceTable(rows []BalanceRow) ([]string, [][]any) {
	headers := []string{"Item Name", "Stock", "Issued", "Balance"}
	out := make([][]any, 0, len(rows))
	for _, r := range rows {
		out = append(out, []any{r.Item, r.Stock, r.Issued, r.Balance})
	}
	return headers, out
}

// AMCsTable flattens AMC records for export.
func AMCsTable(records []amcDomain.AMC) ([]string, [][]any) {
	headers := []string{"Accommodation", "Vendor", "Service Date", "Expiry Date", "Type", "Remarks"}
	rows := make([][]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, []any{r.Accommodation, r.Vendor, r.ServiceDate, r.ExpiryDate, r.Type, r.Remarks})
	}
	return headers, rows
}
