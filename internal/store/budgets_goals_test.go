package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendwise/internal/model"
)

func TestBudgetUpsertAndGet(t *testing.T) {
	s := newTestStore(t)
	march := model.Period{Year: 2025, Month: time.March}

	_, err := s.GetBudget("groceries", march)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.UpsertBudget(model.Budget{Category: "groceries", Period: march, Limit: dec("500")}))

	b, err := s.GetBudget("groceries", march)
	require.NoError(t, err)
	assert.True(t, b.Limit.Equal(dec("500")))

	// Setting again replaces the limit.
	require.NoError(t, s.UpsertBudget(model.Budget{Category: "groceries", Period: march, Limit: dec("450")}))
	b, err = s.GetBudget("groceries", march)
	require.NoError(t, err)
	assert.True(t, b.Limit.Equal(dec("450")))

	// Same category, different month is a separate budget.
	april := march.AddMonths(1)
	_, err = s.GetBudget("groceries", april)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListBudgets(t *testing.T) {
	s := newTestStore(t)
	march := model.Period{Year: 2025, Month: time.March}
	april := march.AddMonths(1)

	require.NoError(t, s.UpsertBudget(model.Budget{Category: "rent", Period: march, Limit: dec("900")}))
	require.NoError(t, s.UpsertBudget(model.Budget{Category: "groceries", Period: march, Limit: dec("500")}))
	require.NoError(t, s.UpsertBudget(model.Budget{Category: "groceries", Period: april, Limit: dec("520")}))

	budgets, err := s.ListBudgets(march)
	require.NoError(t, err)
	require.Len(t, budgets, 2)
	assert.Equal(t, "groceries", budgets[0].Category)
	assert.Equal(t, "rent", budgets[1].Category)
}

func TestGoalLifecycle(t *testing.T) {
	s := newTestStore(t)

	id, err := s.InsertGoal(model.Goal{
		Name:     "emergency fund",
		Target:   dec("3000"),
		Start:    date("2025-01-01"),
		Deadline: date("2025-12-31"),
	})
	require.NoError(t, err)
	require.Positive(t, id)

	g, err := s.GetGoal("emergency fund")
	require.NoError(t, err)
	assert.True(t, g.Saved.IsZero())
	assert.Equal(t, date("2025-12-31"), g.Deadline)

	// A contribution adds exactly its amount to the saved total.
	g, err = s.AddContribution("emergency fund", 25000)
	require.NoError(t, err)
	assert.True(t, g.Saved.Equal(dec("250")))

	g, err = s.AddContribution("emergency fund", 12550)
	require.NoError(t, err)
	assert.True(t, g.Saved.Equal(dec("375.50")))

	_, err = s.AddContribution("vacation", 100)
	assert.ErrorIs(t, err, ErrNotFound)

	// Duplicate names are rejected by the schema.
	_, err = s.InsertGoal(model.Goal{
		Name:     "emergency fund",
		Target:   dec("100"),
		Start:    date("2025-01-01"),
		Deadline: date("2025-06-30"),
	})
	assert.Error(t, err)
}

func TestListGoalsOrdersByDeadline(t *testing.T) {
	s := newTestStore(t)

	for _, g := range []model.Goal{
		{Name: "laptop", Target: dec("1200"), Start: date("2025-01-01"), Deadline: date("2025-09-01")},
		{Name: "vacation", Target: dec("800"), Start: date("2025-01-01"), Deadline: date("2025-06-01")},
	} {
		_, err := s.InsertGoal(g)
		require.NoError(t, err)
	}

	goals, err := s.ListGoals()
	require.NoError(t, err)
	require.Len(t, goals, 2)
	assert.Equal(t, "vacation", goals[0].Name)
	assert.Equal(t, "laptop", goals[1].Name)
}

func TestDeleteGoal(t *testing.T) {
	s := newTestStore(t)
	_, err := s.InsertGoal(model.Goal{
		Name: "vacation", Target: dec("800"),
		Start: date("2025-01-01"), Deadline: date("2025-06-01"),
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteGoal("vacation"))
	assert.ErrorIs(t, s.DeleteGoal("vacation"), ErrNotFound)
}
