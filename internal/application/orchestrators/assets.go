package orchestrators

import (
	"context"
	"log/slog"

	assetDomain "quarters/internal/domain/asset"
)

// ReceiveAssetInput carries input for receiving asset quantity.
type ReceiveAssetInput struct {
	Actor         Actor
	Accommodation string
	Name          string
	Quantity      int
	ReceivedFrom  string
	Remarks       string
}

// ReceiveAssetDeps holds dependencies for ReceiveAsset.
type ReceiveAssetDeps struct {
	Assets     AssetStore
	GenerateID func() string
}

// ExecuteReceiveAsset adds quantity to the Available line of an asset,
// creating the line when absent.
// PRE: Quantity > 0; Accommodation permitted for the actor
// POST: Available balance increased by Quantity
func ExecuteReceiveAsset(ctx context.Context, input ReceiveAssetInput, deps ReceiveAssetDeps) error {
	if !input.Actor.CanModify(input.Accommodation) {
		return ErrPermissionDenied
	}
	if input.Name == "" {
		return assetDomain.ErrEmptyName
	}
	if input.Quantity <= 0 {
		return assetDomain.ErrNonPositiveQuantity
	}

	err := deps.Assets.Mutate(ctx, func(assets []assetDomain.Asset) ([]assetDomain.Asset, error) {
		for i := range assets {
			if assets[i].Matches(input.Accommodation, input.Name, assetDomain.StatusAvailable) {
				if err := assets[i].Add(input.Quantity); err != nil {
					return nil, err
				}
				if input.ReceivedFrom != "" {
					assets[i].ReceivedFrom = input.ReceivedFrom
				}
				if input.Remarks != "" {
					assets[i].Remarks = input.Remarks
				}
				return assets, nil
			}
		}
		return append(assets, assetDomain.Asset{
			ID:            deps.GenerateID(),
			Accommodation: input.Accommodation,
			Name:          input.Name,
			Quantity:      input.Quantity,
			ReceivedFrom:  input.ReceivedFrom,
			Remarks:       input.Remarks,
			Status:        assetDomain.StatusAvailable,
		}), nil
	})
	if err != nil {
		return err
	}

	slog.Info("asset_event", "event", "asset_received", "accommodation", input.Accommodation,
		"asset", input.Name, "quantity", input.Quantity, "actor", input.Actor.Username)
	return nil
}

// ShiftAssetInput carries input for moving asset quantity between locations.
type ShiftAssetInput struct {
	Actor    Actor
	From     string
	To       string
	Name     string
	Quantity int
	Remarks  string
}

// ShiftAssetDeps holds dependencies for ShiftAsset.
type ShiftAssetDeps struct {
	Assets     AssetStore
	GenerateID func() string
}

// ExecuteShiftAsset moves Available quantity from one accommodation to
// another in a single save.
// PRE: source line exists with at least Quantity available; both
// accommodations permitted for the actor
// POST: source decreased, target increased or created, zero lines pruned
func ExecuteShiftAsset(ctx context.Context, input ShiftAssetInput, deps ShiftAssetDeps) error {
	if !input.Actor.CanModify(input.From) || !input.Actor.CanModify(input.To) {
		return ErrPermissionDenied
	}
	if input.Quantity <= 0 {
		return assetDomain.ErrNonPositiveQuantity
	}

	err := deps.Assets.Mutate(ctx, func(assets []assetDomain.Asset) ([]assetDomain.Asset, error) {
		source := -1
		target := -1
		for i := range assets {
			if assets[i].Matches(input.From, input.Name, assetDomain.StatusAvailable) {
				source = i
			}
			if assets[i].Matches(input.To, input.Name, assetDomain.StatusAvailable) {
				target = i
			}
		}
		if source < 0 {
			return nil, assetDomain.ErrNotFound
		}
		if err := assets[source].Remove(input.Quantity); err != nil {
			return nil, err
		}
		if target >= 0 {
			if err := assets[target].Add(input.Quantity); err != nil {
				return nil, err
			}
		} else {
			assets = append(assets, assetDomain.Asset{
				ID:            deps.GenerateID(),
				Accommodation: input.To,
				Name:          input.Name,
				Quantity:      input.Quantity,
				ReceivedFrom:  input.From,
				Remarks:       input.Remarks,
				Status:        assetDomain.StatusAvailable,
			})
		}
		return assetDomain.Prune(assets), nil
	})
	if err != nil {
		return err
	}

	slog.Info("asset_event", "event", "asset_shifted", "asset", input.Name,
		"from", input.From, "to", input.To, "quantity", input.Quantity, "actor", input.Actor.Username)
	return nil
}

// ScrapAssetInput carries input for scrapping asset quantity.
type ScrapAssetInput struct {
	Actor         Actor
	Accommodation string
	Name          string
	Quantity      int
	SAPID         string
	EmpName       string
	Designation   string
	Department    string
	ScrapDate     string
	Remarks       string
}

// ScrapAssetDeps holds dependencies for ScrapAsset.
type ScrapAssetDeps struct {
	Assets     AssetStore
	GenerateID func() string
}

// ExecuteScrapAsset moves quantity from the Available line to the Scrap line
// of the same (accommodation, asset) pair.
// PRE: Available line exists with at least Quantity
// POST: Available decreased, Scrap increased or created with provenance,
// zero lines pruned, one save
func ExecuteScrapAsset(ctx context.Context, input ScrapAssetInput, deps ScrapAssetDeps) error {
	if !input.Actor.CanModify(input.Accommodation) {
		return ErrPermissionDenied
	}
	if input.Quantity <= 0 {
		return assetDomain.ErrNonPositiveQuantity
	}

	err := deps.Assets.Mutate(ctx, func(assets []assetDomain.Asset) ([]assetDomain.Asset, error) {
		source := -1
		scrap := -1
		for i := range assets {
			if assets[i].Matches(input.Accommodation, input.Name, assetDomain.StatusAvailable) {
				source = i
			}
			if assets[i].Matches(input.Accommodation, input.Name, assetDomain.StatusScrap) {
				scrap = i
			}
		}
		if source < 0 {
			return nil, assetDomain.ErrNotFound
		}
		if err := assets[source].Remove(input.Quantity); err != nil {
			return nil, err
		}
		if scrap >= 0 {
			if err := assets[scrap].Add(input.Quantity); err != nil {
				return nil, err
			}
		} else {
			assets = append(assets, assetDomain.Asset{
				ID:            deps.GenerateID(),
				Accommodation: input.Accommodation,
				Name:          input.Name,
				Quantity:      input.Quantity,
				Remarks:       input.Remarks,
				Status:        assetDomain.StatusScrap,
				SAPID:         input.SAPID,
				EmpName:       input.EmpName,
				Designation:   input.Designation,
				Department:    input.Department,
				ScrapDate:     NormalizeDate(input.ScrapDate),
			})
		}
		return assetDomain.Prune(assets), nil
	})
	if err != nil {
		return err
	}

	slog.Info("asset_event", "event", "asset_scrapped", "accommodation", input.Accommodation,
		"asset", input.Name, "quantity", input.Quantity, "actor", input.Actor.Username)
	return nil
}

// RemoveScrapInput carries input for disposing of scrapped quantity.
type RemoveScrapInput struct {
	Actor         Actor
	Accommodation string
	Name          string
	Quantity      int
}

// RemoveScrapDeps holds dependencies for RemoveScrap.
type RemoveScrapDeps struct {
	Assets AssetStore
}

// ExecuteRemoveScrap decreases the Scrap line of an asset.
// PRE: Scrap line exists with at least Quantity
// POST: Scrap balance decreased, zero lines pruned
func ExecuteRemoveScrap(ctx context.Context, input RemoveScrapInput, deps RemoveScrapDeps) error {
	if !input.Actor.CanModify(input.Accommodation) {
		return ErrPermissionDenied
	}
	if input.Quantity <= 0 {
		return assetDomain.ErrNonPositiveQuantity
	}

	err := deps.Assets.Mutate(ctx, func(assets []assetDomain.Asset) ([]assetDomain.Asset, error) {
		for i := range assets {
			if assets[i].Matches(input.Accommodation, input.Name, assetDomain.StatusScrap) {
				if err := assets[i].Remove(input.Quantity); err != nil {
					return nil, err
				}
				return assetDomain.Prune(assets), nil
			}
		}
		return nil, assetDomain.ErrNotFound
	})
	if err != nil {
		return err
	}

	slog.Info("asset_event", "event", "scrap_removed", "accommodation", input.Accommodation,
		"asset", input.Name, "quantity", input.Quantity, "actor", input.Actor.Username)
	return nil
}
