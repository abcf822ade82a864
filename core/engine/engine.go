// Package engine bundles the quote core behind one value.
// Hosts (CLI, HTTP) construct an Engine around a loaded catalog and call the
// five public operations. The engine holds read-only catalog data only,
// never a quote config: configs pass through by value on every call.
package engine

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wireless-quote/core/apply"
	"wireless-quote/core/condition"
	"wireless-quote/core/eligibility"
	"wireless-quote/core/optimize"
	"wireless-quote/core/pricing"
	"wireless-quote/core/types"
	"wireless-quote/internal/errors"
)

// Engine is the primary API for quoting. All host interfaces are thin
// wrappers around it.
type Engine struct {
	catalog *types.Catalog
	log     *zap.Logger
}

// New creates an engine over a catalog. A nil logger disables logging.
func New(catalog *types.Catalog, log *zap.Logger) *Engine {
	if catalog == nil {
		catalog = &types.Catalog{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{catalog: catalog, log: log}
}

// Catalog returns the engine's catalog data
func (e *Engine) Catalog() *types.Catalog {
	return e.catalog
}

// EvaluateCondition tests a single condition against a config
func (e *Engine) EvaluateCondition(cfg types.QuoteConfig, cond types.Condition) bool {
	return condition.Evaluate(cfg, cond)
}

// ClassifyPromotions classifies every catalog promotion for a config,
// sorted eligible-first
func (e *Engine) ClassifyPromotions(cfg types.QuoteConfig) []eligibility.Classification {
	return eligibility.ClassifyAll(cfg, e.catalog.Promotions)
}

// Optimize attaches the best available device promotions to a working copy
// of the config
func (e *Engine) Optimize(cfg types.QuoteConfig) optimize.Result {
	result := optimize.Optimize(cfg, e.catalog.Promotions, e.catalog.DeviceModels)
	e.log.Debug("optimization complete",
		zap.Int("devices", len(result.Config.Devices)),
		zap.Int("changes", result.ChangesMade))
	return result
}

// ApplyPromotion applies a catalog promotion by id to a config. The only
// failure is an unknown promotion id; application itself is total.
func (e *Engine) ApplyPromotion(cfg types.QuoteConfig, promoID string) (types.QuoteConfig, error) {
	promo := e.catalog.PromotionByID(promoID)
	if promo == nil {
		return cfg, errors.NotFound("promotion", promoID)
	}
	return apply.Apply(cfg, *promo, e.catalog.DeviceModels, e.catalog.ServicePlans), nil
}

// Calculate produces the full monetary breakdown for a config
func (e *Engine) Calculate(cfg types.QuoteConfig) types.CalculatedTotals {
	return pricing.Calculate(cfg, e.catalog)
}

// QuoteVersion is an immutable point-in-time snapshot pairing a config with
// the breakdown it produced
type QuoteVersion struct {
	// ID uniquely identifies the snapshot
	ID string `json:"id"`

	// CreatedAt is when the snapshot was taken
	CreatedAt time.Time `json:"created_at"`

	// Config is a deep copy of the config at snapshot time
	Config types.QuoteConfig `json:"config"`

	// Totals is the breakdown calculated from Config
	Totals types.CalculatedTotals `json:"totals"`
}

// Snapshot captures an immutable quote version for a config
func (e *Engine) Snapshot(cfg types.QuoteConfig) QuoteVersion {
	return QuoteVersion{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Config:    cfg.Clone(),
		Totals:    e.Calculate(cfg),
	}
}
