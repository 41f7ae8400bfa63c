package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"quarters/internal/adapters/spreadsheet"
	storeroomDomain "quarters/internal/domain/storeroom"
	userDomain "quarters/internal/domain/user"
)

// canTouchLocation gates store-stock writes: the ordinary permission check,
// plus the central-store gate when the location is the Central Store.
func canTouchLocation(a Actor, location, centralStoreException string) bool {
	if location == storeroomDomain.CentralStore {
		return userDomain.CanAccessCentralStore(a.Role, a.AllowedAccommodations, centralStoreException)
	}
	return a.CanModify(location)
}

// AddMasterItemInput carries input for adding a catalogue item.
type AddMasterItemInput struct {
	Actor Actor
	Name  string
}

// AddMasterItemDeps holds dependencies for AddMasterItem.
type AddMasterItemDeps struct {
	Items ItemStore
}

// ExecuteAddMasterItem appends a name to the master item catalogue.
// PRE: actor is Admin or Manager; the name is new
// POST: catalogue contains the name, sorted
func ExecuteAddMasterItem(ctx context.Context, input AddMasterItemInput, deps AddMasterItemDeps) error {
	if !userDomain.Privileged(input.Actor.Role) {
		return ErrPermissionDenied
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return storeroomDomain.ErrEmptyItemName
	}

	err := deps.Items.Mutate(ctx, func(items []string) ([]string, error) {
		for _, it := range items {
			if strings.EqualFold(it, name) {
				return nil, storeroomDomain.ErrItemExists
			}
		}
		items = append(items, name)
		sort.Strings(items)
		return items, nil
	})
	if err != nil {
		return err
	}

	slog.Info("store_event", "event", "master_item_added", "item", name, "actor", input.Actor.Username)
	return nil
}

// ImportMasterItemsInput carries a parsed workbook of catalogue items.
type ImportMasterItemsInput struct {
	Actor Actor
	Table spreadsheet.Table
}

// ImportMasterItemsDeps holds dependencies for ImportMasterItems.
type ImportMasterItemsDeps struct {
	Items ItemStore
}

// ExecuteImportMasterItems merges workbook item names into the catalogue.
// PRE: the table carries an ItemName column
// POST: catalogue is the deduplicated sorted union of old and new names
func ExecuteImportMasterItems(ctx context.Context, input ImportMasterItemsInput, deps ImportMasterItemsDeps) (int, error) {
	if !userDomain.Privileged(input.Actor.Role) {
		return 0, ErrPermissionDenied
	}
	if missing := input.Table.MissingColumns("ItemName"); len(missing) > 0 {
		return 0, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	added := 0
	err := deps.Items.Mutate(ctx, func(items []string) ([]string, error) {
		seen := make(map[string]bool, len(items))
		for _, it := range items {
			seen[strings.ToLower(it)] = true
		}
		for _, row := range input.Table.Rows {
			name := input.Table.Cell(row, "ItemName")
			if name == "" || seen[strings.ToLower(name)] {
				continue
			}
			seen[strings.ToLower(name)] = true
			items = append(items, name)
			added++
		}
		sort.Strings(items)
		return items, nil
	})
	if err != nil {
		return 0, err
	}

	slog.Info("store_event", "event", "master_items_imported", "added", added, "actor", input.Actor.Username)
	return added, nil
}

// ReceiveStockInput carries input for receiving stock at a location.
type ReceiveStockInput struct {
	Actor                 Actor
	Accommodation         string
	Item                  string
	Quantity              int
	Remarks               string
	CentralStoreException string
}

// ReceiveStockDeps holds dependencies for ReceiveStock.
type ReceiveStockDeps struct {
	Inventory InventoryStore
}

// ExecuteReceiveStock adds quantity to a stock line, creating it when absent.
// PRE: Quantity > 0; location permitted for the actor (central-store gate for
// the Central Store)
// POST: the line's balance increased by Quantity
func ExecuteReceiveStock(ctx context.Context, input ReceiveStockInput, deps ReceiveStockDeps) error {
	if !canTouchLocation(input.Actor, input.Accommodation, input.CentralStoreException) {
		return ErrPermissionDenied
	}
	if strings.TrimSpace(input.Item) == "" {
		return storeroomDomain.ErrEmptyItemName
	}
	if input.Quantity <= 0 {
		return storeroomDomain.ErrNonPositiveQuantity
	}

	err := deps.Inventory.Mutate(ctx, func(items []storeroomDomain.InventoryItem) ([]storeroomDomain.InventoryItem, error) {
		for i := range items {
			if items[i].Matches(input.Accommodation, input.Item) {
				if err := items[i].Add(input.Quantity); err != nil {
					return nil, err
				}
				if input.Remarks != "" {
					items[i].Remarks = input.Remarks
				}
				return items, nil
			}
		}
		return append(items, storeroomDomain.InventoryItem{
			Accommodation: input.Accommodation,
			Item:          input.Item,
			Quantity:      input.Quantity,
			Remarks:       input.Remarks,
		}), nil
	})
	if err != nil {
		return err
	}

	slog.Info("store_event", "event", "stock_received", "accommodation", input.Accommodation,
		"item", input.Item, "quantity", input.Quantity, "actor", input.Actor.Username)
	return nil
}

// DistributeStockInput carries input for moving stock out of the Central Store.
type DistributeStockInput struct {
	Actor                 Actor
	Target                string
	Item                  string
	Quantity              int
	Remarks               string
	CentralStoreException string
}

// DistributeStockDeps holds dependencies for DistributeStock.
type DistributeStockDeps struct {
	Inventory InventoryStore
}

// ExecuteDistributeStock moves quantity from the Central Store line to a
// target accommodation line in a single save.
// PRE: actor passes the central-store gate; Central Store balance covers the
// quantity
// POST: Central Store decreased, target increased or created, zero lines
// pruned
func ExecuteDistributeStock(ctx context.Context, input DistributeStockInput, deps DistributeStockDeps) error {
	if !userDomain.CanAccessCentralStore(input.Actor.Role, input.Actor.AllowedAccommodations, input.CentralStoreException) {
		return ErrPermissionDenied
	}
	if input.Quantity <= 0 {
		return storeroomDomain.ErrNonPositiveQuantity
	}
	if input.Target == storeroomDomain.CentralStore {
		return fmt.Errorf("cannot distribute stock to the %s", storeroomDomain.CentralStore)
	}

	err := deps.Inventory.Mutate(ctx, func(items []storeroomDomain.InventoryItem) ([]storeroomDomain.InventoryItem, error) {
		source := -1
		target := -1
		for i := range items {
			if items[i].Matches(storeroomDomain.CentralStore, input.Item) {
				source = i
			}
			if items[i].Matches(input.Target, input.Item) {
				target = i
			}
		}
		if source < 0 {
			return nil, storeroomDomain.ErrNotFound
		}
		if err := items[source].Remove(input.Quantity); err != nil {
			return nil, err
		}
		remarks := input.Remarks
		if remarks == "" {
			remarks = fmt.Sprintf("Received from %s", storeroomDomain.CentralStore)
		}
		if target >= 0 {
			if err := items[target].Add(input.Quantity); err != nil {
				return nil, err
			}
			items[target].Remarks = remarks
		} else {
			items = append(items, storeroomDomain.InventoryItem{
				Accommodation: input.Target,
				Item:          input.Item,
				Quantity:      input.Quantity,
				Remarks:       remarks,
			})
		}
		return storeroomDomain.Prune(items), nil
	})
	if err != nil {
		return err
	}

	slog.Info("store_event", "event", "stock_distributed", "item", input.Item,
		"target", input.Target, "quantity", input.Quantity, "actor", input.Actor.Username)
	return nil
}

// IssueToEmployeeInput carries input for issuing stock to a named employee.
type IssueToEmployeeInput struct {
	Actor                 Actor
	Accommodation         string
	Item                  string
	Quantity              int
	SAPID                 string
	EmpName               string
	Designation           string
	Department            string
	IssueDate             string
	Remarks               string
	CentralStoreException string
}

// IssueToEmployeeDeps holds dependencies for IssueToEmployee.
type IssueToEmployeeDeps struct {
	Inventory  InventoryStore
	Issued     IssuedStore
	GenerateID func() string
}

// ExecuteIssueToEmployee hands quantity from a location's stock to an
// employee, recording an append-only history entry.
// PRE: location permitted for the actor; balance covers the quantity
// POST: balance decreased (line pruned at zero) and exactly one IssuedItem
// appended; on an insufficient balance neither document changes
func ExecuteIssueToEmployee(ctx context.Context, input IssueToEmployeeInput, deps IssueToEmployeeDeps) (storeroomDomain.IssuedItem, error) {
	if !canTouchLocation(input.Actor, input.Accommodation, input.CentralStoreException) {
		return storeroomDomain.IssuedItem{}, ErrPermissionDenied
	}
	if input.Quantity <= 0 {
		return storeroomDomain.IssuedItem{}, storeroomDomain.ErrNonPositiveQuantity
	}

	err := deps.Inventory.Mutate(ctx, func(items []storeroomDomain.InventoryItem) ([]storeroomDomain.InventoryItem, error) {
		for i := range items {
			if items[i].Matches(input.Accommodation, input.Item) {
				if err := items[i].Remove(input.Quantity); err != nil {
					return nil, err
				}
				return storeroomDomain.Prune(items), nil
			}
		}
		return nil, storeroomDomain.ErrNotFound
	})
	if err != nil {
		return storeroomDomain.IssuedItem{}, err
	}

	issued := storeroomDomain.IssuedItem{
		ID:            deps.GenerateID(),
		Accommodation: input.Accommodation,
		Item:          input.Item,
		Quantity:      input.Quantity,
		SAPID:         input.SAPID,
		EmpName:       input.EmpName,
		Designation:   input.Designation,
		Department:    input.Department,
		IssueDate:     NormalizeDate(input.IssueDate),
		Remarks:       input.Remarks,
	}
	if err := deps.Issued.Append(ctx, issued); err != nil {
		// The balance is already reduced; put it back so the two documents
		// cannot drift apart.
		restoreErr := deps.Inventory.Mutate(ctx, func(items []storeroomDomain.InventoryItem) ([]storeroomDomain.InventoryItem, error) {
			for i := range items {
				if items[i].Matches(input.Accommodation, input.Item) {
					return items, items[i].Add(input.Quantity)
				}
			}
			// The line was pruned at zero; recreate it.
			return append(items, storeroomDomain.InventoryItem{
				Accommodation: input.Accommodation,
				Item:          input.Item,
				Quantity:      input.Quantity,
			}), nil
		})
		if restoreErr != nil {
			slog.Error("store_event", "event", "issue_restore_failed", "accommodation", input.Accommodation,
				"item", input.Item, "quantity", input.Quantity, "error", restoreErr)
		}
		return storeroomDomain.IssuedItem{}, err
	}

	slog.Info("store_event", "event", "stock_issued", "accommodation", input.Accommodation,
		"item", input.Item, "quantity", input.Quantity, "sap_id", issued.SAPID, "actor", input.Actor.Username)
	return issued, nil
}
