package budget

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendwise/internal/model"
	"spendwise/internal/store"
)

var march = model.Period{Year: 2025, Month: time.March}

func newTestTracker(t *testing.T) (*Tracker, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "spendwise.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return NewTracker(st), st
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(s string) time.Time {
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func spend(t *testing.T, st *store.Store, day, category, amount string) {
	t.Helper()
	_, err := st.InsertTransaction(model.Transaction{
		Kind:     model.KindExpense,
		Date:     date(day),
		Category: category,
		Amount:   dec(amount),
	})
	require.NoError(t, err)
}

func TestCheckWithinThenOver(t *testing.T) {
	tr, st := newTestTracker(t)

	_, err := tr.Set("Groceries", march, dec("500"))
	require.NoError(t, err)

	spend(t, st, "2025-03-01", "groceries", "120")
	spend(t, st, "2025-03-08", "groceries", "200")
	spend(t, st, "2025-03-20", "groceries", "150")

	status, err := tr.Check("groceries", march)
	require.NoError(t, err)
	assert.True(t, status.Spent.Equal(dec("470")))
	assert.False(t, status.Over())
	assert.Equal(t, "within budget", status.Verdict())

	// One more purchase tips the month over.
	spend(t, st, "2025-03-28", "groceries", "50")

	status, err = tr.Check("groceries", march)
	require.NoError(t, err)
	assert.True(t, status.Spent.Equal(dec("520")))
	assert.True(t, status.Over())
	assert.Equal(t, "over budget by $20.00", status.Verdict())
}

func TestCheckScopesToCategoryAndMonth(t *testing.T) {
	tr, st := newTestTracker(t)
	_, err := tr.Set("groceries", march, dec("500"))
	require.NoError(t, err)

	spend(t, st, "2025-03-01", "groceries", "100")
	spend(t, st, "2025-03-02", "rent", "800")       // other category
	spend(t, st, "2025-04-01", "groceries", "9999") // other month

	// Income in the same category name does not count as spend.
	_, err = st.InsertTransaction(model.Transaction{
		Kind: model.KindIncome, Date: date("2025-03-15"),
		Category: "groceries", Amount: dec("40"),
	})
	require.NoError(t, err)

	status, err := tr.Check("groceries", march)
	require.NoError(t, err)
	assert.True(t, status.Spent.Equal(dec("100")))
}

func TestCheckMissingBudget(t *testing.T) {
	tr, _ := newTestTracker(t)
	_, err := tr.Check("groceries", march)
	assert.ErrorIs(t, err, ErrBudgetNotFound)
}

func TestSetValidation(t *testing.T) {
	tr, _ := newTestTracker(t)

	_, err := tr.Set("  ", march, dec("100"))
	assert.ErrorIs(t, err, model.ErrMissingCategory)

	_, err = tr.Set("groceries", march, dec("0"))
	assert.ErrorIs(t, err, model.ErrNonPositiveAmount)

	_, err = tr.Set("groceries", march, dec("-10"))
	assert.ErrorIs(t, err, model.ErrNonPositiveAmount)
}

func TestSetReplacesLimit(t *testing.T) {
	tr, _ := newTestTracker(t)

	_, err := tr.Set("groceries", march, dec("500"))
	require.NoError(t, err)
	_, err = tr.Set("groceries", march, dec("450"))
	require.NoError(t, err)

	status, err := tr.Check("groceries", march)
	require.NoError(t, err)
	assert.True(t, status.Limit.Equal(dec("450")))
}

func TestCheckAll(t *testing.T) {
	tr, st := newTestTracker(t)

	_, err := tr.Set("groceries", march, dec("500"))
	require.NoError(t, err)
	_, err = tr.Set("rent", march, dec("900"))
	require.NoError(t, err)

	spend(t, st, "2025-03-01", "rent", "950")

	statuses, err := tr.CheckAll(march)
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.Equal(t, "groceries", statuses[0].Category)
	assert.False(t, statuses[0].Over())
	assert.Equal(t, "rent", statuses[1].Category)
	assert.True(t, statuses[1].Over())
	assert.True(t, statuses[1].Overage().Equal(dec("50")))
}

func TestCreateGoal(t *testing.T) {
	tr, _ := newTestTracker(t)

	g, err := tr.CreateGoal(model.Goal{
		Name:     " Emergency Fund ",
		Target:   dec("3000"),
		Saved:    dec("999"), // ignored, goals start empty
		Start:    date("2025-01-01"),
		Deadline: date("2025-12-31"),
	})
	require.NoError(t, err)
	assert.Positive(t, g.ID)
	assert.Equal(t, "Emergency Fund", g.Name)
	assert.True(t, g.Saved.IsZero())

	_, err = tr.CreateGoal(model.Goal{
		Name:     "Emergency Fund",
		Target:   dec("100"),
		Start:    date("2025-01-01"),
		Deadline: date("2025-06-01"),
	})
	assert.ErrorIs(t, err, ErrGoalExists)
}

func TestCreateGoalValidation(t *testing.T) {
	tr, _ := newTestTracker(t)

	_, err := tr.CreateGoal(model.Goal{
		Name: "trip", Target: dec("100"),
		Start: date("2025-06-01"), Deadline: date("2025-05-01"),
	})
	assert.ErrorIs(t, err, model.ErrDeadlineNotAfter)

	_, err = tr.CreateGoal(model.Goal{
		Name: "trip", Target: dec("0"),
		Start: date("2025-01-01"), Deadline: date("2025-05-01"),
	})
	assert.ErrorIs(t, err, model.ErrNonPositiveAmount)
}

func TestContribute(t *testing.T) {
	tr, _ := newTestTracker(t)

	_, err := tr.CreateGoal(model.Goal{
		Name: "laptop", Target: dec("1000"),
		Start: date("2025-01-01"), Deadline: date("2025-12-31"),
	})
	require.NoError(t, err)

	g, err := tr.Contribute("laptop", dec("400"))
	require.NoError(t, err)
	assert.True(t, g.Saved.Equal(dec("400")))
	assert.False(t, g.Reached())

	g, err = tr.Contribute("laptop", dec("600"))
	require.NoError(t, err)
	assert.True(t, g.Saved.Equal(dec("1000")))
	assert.True(t, g.Reached())

	_, err = tr.Contribute("laptop", dec("0"))
	assert.ErrorIs(t, err, model.ErrNonPositiveAmount)

	_, err = tr.Contribute("desktop", dec("10"))
	assert.ErrorIs(t, err, ErrGoalNotFound)
}

func TestRemoveGoal(t *testing.T) {
	tr, _ := newTestTracker(t)

	_, err := tr.CreateGoal(model.Goal{
		Name: "laptop", Target: dec("1000"),
		Start: date("2025-01-01"), Deadline: date("2025-12-31"),
	})
	require.NoError(t, err)

	require.NoError(t, tr.RemoveGoal("laptop"))
	assert.ErrorIs(t, tr.RemoveGoal("laptop"), ErrGoalNotFound)
}
