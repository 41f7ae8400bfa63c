package orchestrators

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	contractDomain "quarters/internal/domain/contract"
	userDomain "quarters/internal/domain/user"
)

// AddContractTypeInput carries input for adding a contract-type name.
type AddContractTypeInput struct {
	Actor Actor
	Name  string
}

// AddContractTypeDeps holds dependencies for AddContractType.
type AddContractTypeDeps struct {
	Types ContractTypeStore
}

// ExecuteAddContractType appends a name to the contract-type catalogue.
// PRE: actor is Admin or Manager; the name is new
// POST: catalogue contains the name, sorted
func ExecuteAddContractType(ctx context.Context, input AddContractTypeInput, deps AddContractTypeDeps) error {
	if !userDomain.Privileged(input.Actor.Role) {
		return ErrPermissionDenied
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return contractDomain.ErrEmptyType
	}

	err := deps.Types.Mutate(ctx, func(types []string) ([]string, error) {
		for _, t := range types {
			if strings.EqualFold(t, name) {
				return nil, contractDomain.ErrTypeExists
			}
		}
		types = append(types, name)
		sort.Strings(types)
		return types, nil
	})
	if err != nil {
		return err
	}

	slog.Info("contract_event", "event", "contract_type_added", "type", name, "actor", input.Actor.Username)
	return nil
}

// AddContractInput carries input for recording a contract. Attachment is the
// stored filename of an already-saved upload, empty when none.
type AddContractInput struct {
	Actor         Actor
	Accommodation string
	Type          string
	Caption       string
	Attachment    string
}

// AddContractDeps holds dependencies for AddContract.
type AddContractDeps struct {
	Contracts  ContractStore
	GenerateID func() string
}

// ExecuteAddContract records a new contract entry.
// PRE: Accommodation permitted for the actor; Type is non-empty
// POST: one contract appended with a generated id
func ExecuteAddContract(ctx context.Context, input AddContractInput, deps AddContractDeps) (contractDomain.Contract, error) {
	if !input.Actor.CanModify(input.Accommodation) {
		return contractDomain.Contract{}, ErrPermissionDenied
	}

	record := contractDomain.Contract{
		ID:            deps.GenerateID(),
		Accommodation: input.Accommodation,
		Type:          input.Type,
		Caption:       input.Caption,
		Attachment:    input.Attachment,
	}
	if err := record.Validate(); err != nil {
		return contractDomain.Contract{}, err
	}

	err := deps.Contracts.Mutate(ctx, func(records []contractDomain.Contract) ([]contractDomain.Contract, error) {
		return append(records, record), nil
	})
	if err != nil {
		return contractDomain.Contract{}, err
	}

	slog.Info("contract_event", "event", "contract_added", "contract_id", record.ID,
		"accommodation", record.Accommodation, "type", record.Type, "actor", input.Actor.Username)
	return record, nil
}

// DeleteContractInput carries input for removing a contract.
type DeleteContractInput struct {
	Actor Actor
	ID    string
}

// DeleteContractDeps holds dependencies for DeleteContract.
type DeleteContractDeps struct {
	Contracts ContractStore
}

// ExecuteDeleteContract removes a contract record and returns the removed
// record so the caller can delete its attachment file.
// PRE: the contract exists and its accommodation is permitted for the actor
// POST: the record is gone; the attachment file is the caller's to remove
func ExecuteDeleteContract(ctx context.Context, input DeleteContractInput, deps DeleteContractDeps) (contractDomain.Contract, error) {
	var removed contractDomain.Contract

	err := deps.Contracts.Mutate(ctx, func(records []contractDomain.Contract) ([]contractDomain.Contract, error) {
		for i := range records {
			if records[i].ID != input.ID {
				continue
			}
			if !input.Actor.CanModify(records[i].Accommodation) {
				return nil, ErrPermissionDenied
			}
			removed = records[i]
			return append(records[:i], records[i+1:]...), nil
		}
		return nil, contractDomain.ErrNotFound
	})
	if err != nil {
		return contractDomain.Contract{}, err
	}

	slog.Info("contract_event", "event", "contract_deleted", "contract_id", removed.ID,
		"accommodation", removed.Accommodation, "actor", input.Actor.Username)
	return removed, nil
}
