package projections

import (
	"quarters/internal/application/listutil"
	assetDomain "quarters/internal/domain/asset"
)

// AssetFilter narrows the asset listing.
type AssetFilter struct {
	Accommodation string
	Status        string
	Search        string
}

// AssetView is the assets page read model.
type AssetView struct {
	Assets         []assetDomain.Asset
	AvailableTotal int // quantity sum over scoped Available lines
	ScrapTotal     int // quantity sum over scoped Scrap lines
}

// BuildAssetView filters asset lines by permission scope and the given
// filters, and totals quantities per status over the scoped set.
func BuildAssetView(assets []assetDomain.Asset, role string, allowed []string, filter AssetFilter) AssetView {
	var view AssetView
	for _, a := range assets {
		if !CanView(role, allowed, a.Accommodation) {
			continue
		}
		switch a.Status {
		case assetDomain.StatusAvailable:
			view.AvailableTotal += a.Quantity
		case assetDomain.StatusScrap:
			view.ScrapTotal += a.Quantity
		}
		if filter.Accommodation != "" && a.Accommodation != filter.Accommodation {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if !listutil.MatchesSearch(filter.Search, a.Name, a.Accommodation) {
			continue
		}
		view.Assets = append(view.Assets, a)
	}
	return view
}

// AssetsAt returns the lines of one accommodation with the given status.
func AssetsAt(assets []assetDomain.Asset, accommodation, status string) []assetDomain.Asset {
	var out []assetDomain.Asset
	for _, a := range assets {
		if a.Accommodation == accommodation && a.Status == status {
			out = append(out, a)
		}
	}
	return out
}
