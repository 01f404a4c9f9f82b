package gormstore

import (
	"context"
	"fmt"

	"github.com/MarkoPoloResearchLab/bankdata/pkg/bank"
)

// Router maps each storage target to the Store bound to its connection pool.
type Router struct {
	seed    *Store
	testing *Store
	prod    *Store
}

// NewRouter wires one Store per target.
func NewRouter(seed *Store, testing *Store, prod *Store) (*Router, error) {
	if seed == nil || testing == nil || prod == nil {
		return nil, wrapStoreError(errorSubjectRouter, errorCodeConfig, fmt.Errorf("%w: every target needs a store", bank.ErrInvalidServiceConfig))
	}
	return &Router{seed: seed, testing: testing, prod: prod}, nil
}

// For returns the bank.Store bound to target.
func (router *Router) For(target bank.Target) bank.Store {
	return router.Store(target)
}

// Store returns the concrete Store bound to target.
func (router *Router) Store(target bank.Target) *Store {
	switch target {
	case bank.TargetSeed:
		return router.seed
	case bank.TargetProd:
		return router.prod
	default:
		return router.testing
	}
}

// Ping checks the connection pool behind target.
func (router *Router) Ping(ctx context.Context, target bank.Target) error {
	return router.Store(target).Ping(ctx)
}
