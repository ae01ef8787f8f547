package payment

import (
	"context"

	"go.uber.org/zap"

	"github.com/Joaolrm/racha-do-mes-fe/internal/bill"
)

// Outcome classifies how a resolution was reached
type Outcome int

const (
	// TargetFound means a materialized value record matched the month
	TargetFound Outcome = iota
	// TargetNotFound means the lookup succeeded but no record exists yet
	TargetNotFound
	// LookupFailed means the lookup itself errored and the fallback
	// target was substituted
	LookupFailed
)

// Resolution is the outcome of resolving a payment target. Target is
// always usable regardless of outcome; Err is set only on LookupFailed.
type Resolution struct {
	Target  Target
	Outcome Outcome
	Err     error
}

// valuesLister is the backend lookup the resolver needs
type valuesLister interface {
	Values(ctx context.Context, billID int64, month, year int) ([]bill.Value, error)
}

// Resolver decides which monthly occurrence a payment references
type Resolver struct {
	values valuesLister
	log    *zap.SugaredLogger
}

// NewResolver creates a resolver backed by the bill-values lookup
func NewResolver(values valuesLister, log *zap.SugaredLogger) *Resolver {
	return &Resolver{values: values, log: log}
}

// Resolve returns the target for a payment against (billID, month, year).
// A materialized record yields a ValueTarget; no record, or a failed
// lookup, degrades to the coordinate fallback. Lookup failures are never
// propagated, since the backend materializes lazily from the fallback;
// they are classified and logged so outages stay visible.
func (r *Resolver) Resolve(ctx context.Context, billID int64, month, year int) Resolution {
	fallback := FallbackTarget{BillID: billID, Month: month, Year: year}

	values, err := r.values.Values(ctx, billID, month, year)
	if err != nil {
		r.log.Warnw("bill value lookup failed, falling back to coordinates",
			"bill_id", billID, "month", month, "year", year, "error", err)
		return Resolution{Target: fallback, Outcome: LookupFailed, Err: err}
	}

	for _, v := range values {
		if v.Month == month && v.Year == year {
			return Resolution{Target: ValueTarget{BillValueID: v.ID}, Outcome: TargetFound}
		}
	}
	return Resolution{Target: fallback, Outcome: TargetNotFound}
}
