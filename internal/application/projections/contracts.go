package projections

import (
	amcDomain "quarters/internal/domain/amc"
	contractDomain "quarters/internal/domain/contract"
)

// AMCFilter narrows the AMC listing.
type AMCFilter struct {
	Accommodation string
	Vendor        string
	Type          string
}

// FilterAMCs returns the permission-scoped AMC records matching the filters.
func FilterAMCs(records []amcDomain.AMC, role string, allowed []string, filter AMCFilter) []amcDomain.AMC {
	var out []amcDomain.AMC
	for _, r := range records {
		if !CanView(role, allowed, r.Accommodation) {
			continue
		}
		if filter.Accommodation != "" && r.Accommodation != filter.Accommodation {
			continue
		}
		if filter.Vendor != "" && r.Vendor != filter.Vendor {
			continue
		}
		if filter.Type != "" && r.Type != filter.Type {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterContracts returns the permission-scoped contracts, optionally
// narrowed to one type.
func FilterContracts(records []contractDomain.Contract, role string, allowed []string, contractType string) []contractDomain.Contract {
	var out []contractDomain.Contract
	for _, r := range records {
		if !CanView(role, allowed, r.Accommodation) {
			continue
		}
		if contractType != "" && r.Type != contractType {
			continue
		}
		out = append(out, r)
	}
	return out
}
