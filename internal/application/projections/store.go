package projections

import (
	"sort"

	"quarters/internal/application/listutil"
	storeroomDomain "quarters/internal/domain/storeroom"
	userDomain "quarters/internal/domain/user"
)

// StoreCell is one item-at-location cell of the store summary matrix.
type StoreCell struct {
	Stock  int
	Issued int
}

// StoreRow is one item row of the summary matrix.
type StoreRow struct {
	Item  string
	Cells map[string]StoreCell // keyed by location
}

// StoreView is the store page read model: an item x location matrix over the
// locations the session may see.
type StoreView struct {
	Locations []string
	Rows      []StoreRow
}

// CanViewStore mirrors the store write gates for read scoping.
func CanViewStore(role string, allowed []string, location, exception string) bool {
	return visibleLocation(role, allowed, location, exception)
}

// visibleLocation mirrors the store write gates for read scoping.
func visibleLocation(role string, allowed []string, location, exception string) bool {
	if location == storeroomDomain.CentralStore {
		return userDomain.CanAccessCentralStore(role, allowed, exception)
	}
	return userDomain.CanModify(role, allowed, location)
}

// BuildStoreView assembles the stock/issued summary matrix. Items come from
// the catalogue plus any item that appears in stock or history; search
// narrows rows by item name.
func BuildStoreView(catalogue []string, inventory []storeroomDomain.InventoryItem, issued []storeroomDomain.IssuedItem, role string, allowed []string, exception, search string) StoreView {
	locations := make(map[string]bool)
	items := make(map[string]bool)
	for _, name := range catalogue {
		items[name] = true
	}
	for _, line := range inventory {
		if visibleLocation(role, allowed, line.Accommodation, exception) {
			locations[line.Accommodation] = true
			items[line.Item] = true
		}
	}
	for _, rec := range issued {
		if visibleLocation(role, allowed, rec.Accommodation, exception) {
			locations[rec.Accommodation] = true
			items[rec.Item] = true
		}
	}

	view := StoreView{Locations: sortedKeys(locations)}
	// The Central Store column always leads when visible.
	for i, loc := range view.Locations {
		if loc == storeroomDomain.CentralStore && i > 0 {
			copy(view.Locations[1:i+1], view.Locations[:i])
			view.Locations[0] = storeroomDomain.CentralStore
			break
		}
	}

	for _, item := range sortedKeys(items) {
		if !listutil.MatchesSearch(search, item) {
			continue
		}
		row := StoreRow{Item: item, Cells: make(map[string]StoreCell)}
		for _, line := range inventory {
			if line.Item == item && visibleLocation(role, allowed, line.Accommodation, exception) {
				cell := row.Cells[line.Accommodation]
				cell.Stock += line.Quantity
				row.Cells[line.Accommodation] = cell
			}
		}
		for _, rec := range issued {
			if rec.Item == item && visibleLocation(role, allowed, rec.Accommodation, exception) {
				cell := row.Cells[rec.Accommodation]
				cell.Issued += rec.Quantity
				row.Cells[rec.Accommodation] = cell
			}
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}

// IssuedAt returns the issue history of one item at one accommodation.
func IssuedAt(issued []storeroomDomain.IssuedItem, accommodation, item string) []storeroomDomain.IssuedItem {
	var out []storeroomDomain.IssuedItem
	for _, rec := range issued {
		if rec.Accommodation == accommodation && rec.Item == item {
			out = append(out, rec)
		}
	}
	return out
}

// BalanceRow is one row of the Balance store report: per-item stock sum minus
// issued sum.
type BalanceRow struct {
	Item    string
	Stock   int
	Issued  int
	Balance int
}

// BuildBalanceReport groups stock and issued quantities by item across the
// visible locations.
func BuildBalanceReport(inventory []storeroomDomain.InventoryItem, issued []storeroomDomain.IssuedItem, role string, allowed []string, exception string) []BalanceRow {
	type totals struct{ stock, issued int }
	byItem := make(map[string]*totals)
	for _, line := range inventory {
		if !visibleLocation(role, allowed, line.Accommodation, exception) {
			continue
		}
		t := byItem[line.Item]
		if t == nil {
			t = &totals{}
			byItem[line.Item] = t
		}
		t.stock += line.Quantity
	}
	for _, rec := range issued {
		if !visibleLocation(role, allowed, rec.Accommodation, exception) {
			continue
		}
		t := byItem[rec.Item]
		if t == nil {
			t = &totals{}
			byItem[rec.Item] = t
		}
		t.issued += rec.Quantity
	}

	rows := make([]BalanceRow, 0, len(byItem))
	for item, t := range byItem {
		rows = append(rows, BalanceRow{Item: item, Stock: t.stock, Issued: t.issued, Balance: t.stock - t.issued})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Item < rows[j].Item })
	return rows
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
