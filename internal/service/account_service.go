package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cardbank/internal/model"
	"cardbank/internal/repository"
)

const accountCacheTTL = 5 * time.Minute

// AccountService handles bank account operations.
type AccountService = CRUDService[model.BankAccount, uint]

// AccountCache is the slice of the cache client account reads use.
// *cache.Client satisfies it.
type AccountCache interface {
	Get(ctx context.Context, key string) []byte
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

// accountService adds a fail-safe read-through cache on point reads. The
// cache degrades to a no-op when redis is unavailable; a nil cache
// disables caching entirely.
type accountService struct {
	crudService[model.BankAccount, uint]
	cache AccountCache
}

// NewAccountService creates a new bank account service.
func NewAccountService(repo repository.BankAccountRepository, cache AccountCache) AccountService {
	return &accountService{
		crudService: crudService[model.BankAccount, uint]{repo: repo},
		cache:       cache,
	}
}

func (s *accountService) cacheKey(id uint) string {
	return fmt.Sprintf("bank_account:%d", id)
}

// Get retrieves an account by ID with caching.
func (s *accountService) Get(ctx context.Context, id uint) (*model.BankAccount, error) {
	if s.cache != nil {
		if data := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
			var cached model.BankAccount
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	account, err := s.crudService.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(account); err == nil {
			s.cache.Set(ctx, s.cacheKey(id), payload, accountCacheTTL)
		}
	}
	return account, nil
}

// Update applies a partial update and invalidates the cached account.
func (s *accountService) Update(ctx context.Context, id uint, patch model.Patch[model.BankAccount]) (*model.BankAccount, error) {
	account, err := s.crudService.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Delete(ctx, s.cacheKey(id))
	}
	return account, nil
}

// Delete removes the account and invalidates the cached copy.
func (s *accountService) Delete(ctx context.Context, id uint) (bool, error) {
	ok, err := s.crudService.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if s.cache != nil {
		s.cache.Delete(ctx, s.cacheKey(id))
	}
	return ok, nil
}
