package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/finhub/accounts_service/internal/apperrors"
	"github.com/finhub/accounts_service/internal/core/domain"
	portsrepo "github.com/finhub/accounts_service/internal/core/ports/repositories"
	portssvc "github.com/finhub/accounts_service/internal/core/ports/services"
	"github.com/finhub/accounts_service/internal/dto"
)

// accountTypeService manages the account type catalog with read-through
// caching. Reads go cache-first; create/update refresh the id-keyed entry and
// delete evicts it. The whole-catalog entry is refreshed on read misses and
// otherwise ages out by TTL only.
type accountTypeService struct {
	BaseService
	typeRepo portsrepo.AccountTypeRepository
	cache    portsrepo.AccountTypeCache
}

// NewAccountTypeService creates the catalog service.
func NewAccountTypeService(typeRepo portsrepo.AccountTypeRepository, cache portsrepo.AccountTypeCache) portssvc.AccountTypeSvcFacade {
	return &accountTypeService{typeRepo: typeRepo, cache: cache}
}

var _ portssvc.AccountTypeSvcFacade = (*accountTypeService)(nil)

func (s *accountTypeService) GetAllAccountTypes(ctx context.Context) ([]dto.AccountTypeResponse, error) {
	if types, ok := s.cache.GetList(ctx); ok {
		s.LogDebug(ctx, "Account type catalog served from cache", slog.Int("count", len(types)))
		return dto.ToAccountTypeResponseList(types), nil
	}

	types, err := s.typeRepo.ListAccountTypes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list account types")
		return nil, err
	}
	s.cache.PutList(ctx, types)
	return dto.ToAccountTypeResponseList(types), nil
}

func (s *accountTypeService) GetAccountType(ctx context.Context, accountTypeID int) (*dto.AccountTypeResponse, error) {
	if t, ok := s.cache.Get(ctx, accountTypeID); ok {
		resp := dto.ToAccountTypeResponse(t)
		return &resp, nil
	}

	t, err := s.typeRepo.FindAccountTypeByID(ctx, accountTypeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account type", slog.Int("account_type_id", accountTypeID))
		}
		return nil, err
	}
	s.cache.Put(ctx, t)
	resp := dto.ToAccountTypeResponse(t)
	return &resp, nil
}

func (s *accountTypeService) CreateAccountType(ctx context.Context, req dto.AccountTypeRequest) (*dto.AccountTypeResponse, error) {
	now := time.Now().UTC()
	saved, err := s.typeRepo.SaveAccountType(ctx, domain.AccountType{
		Name:        req.Name,
		Description: req.Description,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save account type", slog.String("name", req.Name))
		return nil, err
	}

	s.cache.Put(ctx, saved)
	s.LogInfo(ctx, "Account type created", slog.Int("account_type_id", saved.ID), slog.String("name", saved.Name))
	resp := dto.ToAccountTypeResponse(saved)
	return &resp, nil
}

func (s *accountTypeService) UpdateAccountType(ctx context.Context, accountTypeID int, req dto.AccountTypeRequest) (*dto.AccountTypeResponse, error) {
	t, err := s.typeRepo.FindAccountTypeByID(ctx, accountTypeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account type not found with ID: %d", apperrors.ErrNotFound, accountTypeID)
		}
		s.LogError(ctx, err, "Failed to find account type for update", slog.Int("account_type_id", accountTypeID))
		return nil, err
	}

	t.Name = req.Name
	t.Description = req.Description
	t.UpdatedAt = time.Now().UTC()
	if err := s.typeRepo.UpdateAccountType(ctx, *t); err != nil {
		s.LogError(ctx, err, "Failed to update account type", slog.Int("account_type_id", accountTypeID))
		return nil, err
	}

	s.cache.Put(ctx, t)
	s.LogInfo(ctx, "Account type updated", slog.Int("account_type_id", accountTypeID))
	resp := dto.ToAccountTypeResponse(t)
	return &resp, nil
}

// DeleteAccountType removes a catalog entry. Accounts referencing the type
// are left pointing at the dangling id; no referential check is made here.
func (s *accountTypeService) DeleteAccountType(ctx context.Context, accountTypeID int) error {
	exists, err := s.typeRepo.ExistsAccountTypeByID(ctx, accountTypeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check account type existence", slog.Int("account_type_id", accountTypeID))
		return err
	}
	if !exists {
		return fmt.Errorf("%w: account type not found with ID: %d", apperrors.ErrNotFound, accountTypeID)
	}

	if err := s.typeRepo.DeleteAccountType(ctx, accountTypeID); err != nil {
		s.LogError(ctx, err, "Failed to delete account type", slog.Int("account_type_id", accountTypeID))
		return err
	}

	s.cache.Evict(ctx, accountTypeID)
	s.LogInfo(ctx, "Account type deleted", slog.Int("account_type_id", accountTypeID))
	return nil
}
