// Package budget compares aggregated spend against configured limits and
// tracks savings goals.
package budget

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"spendwise/internal/model"
	"spendwise/internal/store"
)

var (
	// ErrBudgetNotFound means no budget is set for the category and month.
	ErrBudgetNotFound = errors.New("budget not found")
	// ErrGoalNotFound means no goal exists under the given name.
	ErrGoalNotFound = errors.New("goal not found")
	// ErrGoalExists rejects a second goal with the same name.
	ErrGoalExists = errors.New("goal already exists")
)

// Tracker answers budget checks and tracks savings goals.
type Tracker struct {
	store *store.Store
}

// NewTracker creates a tracker over the store.
func NewTracker(st *store.Store) *Tracker {
	return &Tracker{store: st}
}

// Set stores a spending limit for a category and month, replacing any
// previous limit. The category set is open, so the name does not have to
// be registered first.
func (t *Tracker) Set(category string, period model.Period, limit decimal.Decimal) (model.Budget, error) {
	category = model.NormalizeCategory(category)
	if category == "" {
		return model.Budget{}, model.ErrMissingCategory
	}
	if limit.Sign() <= 0 {
		return model.Budget{}, model.ErrNonPositiveAmount
	}

	b := model.Budget{Category: category, Period: period, Limit: limit}
	if err := t.store.UpsertBudget(b); err != nil {
		return model.Budget{}, err
	}
	return b, nil
}

// Check sums the month's expense transactions in the category and compares
// them against the stored limit. The sum is computed fresh on every call.
func (t *Tracker) Check(category string, period model.Period) (model.BudgetStatus, error) {
	category = model.NormalizeCategory(category)

	b, err := t.store.GetBudget(category, period)
	if errors.Is(err, store.ErrNotFound) {
		return model.BudgetStatus{}, ErrBudgetNotFound
	}
	if err != nil {
		return model.BudgetStatus{}, err
	}

	spent, err := t.store.SumCents(store.TransactionFilter{
		Kind:     model.KindExpense,
		Category: category,
		Period:   period,
	})
	if err != nil {
		return model.BudgetStatus{}, err
	}

	return model.BudgetStatus{
		Category: category,
		Period:   period,
		Limit:    b.Limit,
		Spent:    model.FromCents(spent),
	}, nil
}

// CheckAll returns the status of every budget set for the month.
func (t *Tracker) CheckAll(period model.Period) ([]model.BudgetStatus, error) {
	budgets, err := t.store.ListBudgets(period)
	if err != nil {
		return nil, err
	}

	statuses := make([]model.BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		st, err := t.Check(b.Category, period)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, st)
	}
	return statuses, nil
}

// CreateGoal stores a new goal with an empty saved total.
func (t *Tracker) CreateGoal(g model.Goal) (model.Goal, error) {
	g.Name = strings.TrimSpace(g.Name)
	g.Saved = decimal.Zero
	if err := g.Validate(); err != nil {
		return model.Goal{}, err
	}

	if _, err := t.store.GetGoal(g.Name); err == nil {
		return model.Goal{}, ErrGoalExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return model.Goal{}, err
	}

	id, err := t.store.InsertGoal(g)
	if err != nil {
		return model.Goal{}, err
	}
	g.ID = id
	return g, nil
}

// Contribute adds exactly the given amount to the goal's saved total and
// returns the updated goal; the caller reads Reached off it.
func (t *Tracker) Contribute(name string, amount decimal.Decimal) (model.Goal, error) {
	if amount.Sign() <= 0 {
		return model.Goal{}, model.ErrNonPositiveAmount
	}

	g, err := t.store.AddContribution(strings.TrimSpace(name), model.Cents(amount))
	if errors.Is(err, store.ErrNotFound) {
		return model.Goal{}, ErrGoalNotFound
	}
	if err != nil {
		return model.Goal{}, err
	}
	return g, nil
}

// Goals lists all goals, nearest deadline first.
func (t *Tracker) Goals() ([]model.Goal, error) {
	return t.store.ListGoals()
}

// RemoveGoal deletes a goal by name.
func (t *Tracker) RemoveGoal(name string) error {
	err := t.store.DeleteGoal(strings.TrimSpace(name))
	if errors.Is(err, store.ErrNotFound) {
		return ErrGoalNotFound
	}
	return err
}
