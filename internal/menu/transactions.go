package menu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"spendwise/internal/cli"
	"spendwise/internal/ledger"
	"spendwise/internal/model"
	"spendwise/internal/store"
)

const newCategoryChoice = "\x00new"

func kindTitle(kind model.Kind) string {
	if kind == model.KindIncome {
		return "Income"
	}
	return "Expenses"
}

func (m *Menu) transactionsMenu(kind model.Kind) error {
	for {
		choice, err := m.pick(kindTitle(kind), []huh.Option[string]{
			huh.NewOption(fmt.Sprintf("Add an %s record", kind), "add"),
			huh.NewOption("View records", "view"),
			huh.NewOption("Edit a record", "edit"),
			huh.NewOption("Delete a category's records", "purge"),
			huh.NewOption("Manage categories", "categories"),
			huh.NewOption("Back", choiceBack),
		})
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "add":
			err = m.handle(m.addTransaction(kind))
		case "view":
			err = m.handle(m.viewTransactions(kind))
		case "edit":
			err = m.handle(m.editTransaction(kind))
		case "purge":
			err = m.handle(m.purgeCategory(kind))
		case "categories":
			err = m.categoriesMenu(kind)
		case choiceBack:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// selectCategory offers the known categories of a kind, with an optional
// free-text escape for a brand-new name.
func (m *Menu) selectCategory(kind model.Kind, allowNew bool) (string, error) {
	cats, err := m.ledger.Categories(kind)
	if err != nil {
		return "", err
	}
	if len(cats) == 0 && !allowNew {
		return "", errNoCategories
	}

	opts := make([]huh.Option[string], 0, len(cats)+1)
	for _, c := range cats {
		opts = append(opts, huh.NewOption(c.Name, c.Name))
	}
	if allowNew {
		opts = append(opts, huh.NewOption("(new category)", newCategoryChoice))
	}

	choice, err := m.pick("Category", opts)
	if err != nil {
		return "", err
	}
	if choice == newCategoryChoice {
		return m.input("New category name", "groceries", "", notBlank)
	}
	return choice, nil
}

func (m *Menu) addTransaction(kind model.Kind) error {
	category, err := m.selectCategory(kind, true)
	if err != nil {
		return err
	}

	today := time.Now().Format(model.DateLayout)
	amountStr, dateStr, note := "", today, ""
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Amount").Placeholder("84.90").Validate(validAmount).Value(&amountStr),
		huh.NewInput().Title("Date").Placeholder(today).Validate(validDate).Value(&dateStr),
		huh.NewInput().Title("Note (optional)").Value(&note),
	))
	if err := form.Run(); err != nil {
		return err
	}

	amount, err := model.ParseAmount(amountStr)
	if err != nil {
		return err
	}
	date, err := model.ParseDate(dateStr)
	if err != nil {
		return err
	}

	t := model.Transaction{
		Kind:     kind,
		Date:     date,
		Amount:   amount,
		Category: category,
		Note:     strings.TrimSpace(note),
	}

	rec, err := m.ledger.Record(t)
	var unknown ledger.UnknownCategoryError
	if errors.As(err, &unknown) {
		created, cerr := m.offerCategory(unknown)
		if cerr != nil {
			return cerr
		}
		if !created {
			m.warn("Not recorded.")
			return nil
		}
		rec, err = m.ledger.Record(t)
	}
	if err != nil {
		return err
	}

	m.success("Recorded %s of %s for %q on %s (id %d).",
		rec.Kind, cli.FormatMoney(rec.Amount), rec.Category, cli.FormatDate(rec.Date), rec.ID)
	return nil
}

// offerCategory asks whether to create the unknown category and creates it
// on a yes.
func (m *Menu) offerCategory(e ledger.UnknownCategoryError) (bool, error) {
	create, err := m.confirm(fmt.Sprintf("%q is not a known %s category. Create it?", e.Category, e.Kind))
	if err != nil || !create {
		return false, err
	}
	if err := m.ledger.DefineCategory(model.Category{Name: e.Category, Kind: e.Kind}); err != nil {
		return false, err
	}
	m.success("Category %q added.", model.NormalizeCategory(e.Category))
	return true, nil
}

func (m *Menu) viewTransactions(kind model.Kind) error {
	scope, err := m.pick("Show", []huh.Option[string]{
		huh.NewOption("All records", "all"),
		huh.NewOption("One category", "category"),
		huh.NewOption("One day", "day"),
	})
	if err != nil {
		return err
	}

	f := store.TransactionFilter{Kind: kind}
	switch scope {
	case "category":
		cat, err := m.selectCategory(kind, false)
		if err != nil {
			return err
		}
		f.Category = model.NormalizeCategory(cat)
	case "day":
		today := time.Now().Format(model.DateLayout)
		s, err := m.input("Date", today, today, validDate)
		if err != nil {
			return err
		}
		f.On, err = model.ParseDate(s)
		if err != nil {
			return err
		}
	}

	txs, err := m.ledger.Transactions(f)
	if err != nil {
		return err
	}
	if len(txs) == 0 {
		m.info("No records.")
		return nil
	}

	fmt.Fprint(m.out, cli.RenderTable(transactionTable(kindTitle(kind), txs)))
	total := decimal.Zero
	for _, t := range txs {
		total = total.Add(t.Amount)
	}
	m.info("%d records, total %s", len(txs), cli.FormatMoney(total))
	return nil
}

func (m *Menu) editTransaction(kind model.Kind) error {
	idStr, err := m.input("Record id", "7", "", validID)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return err
	}

	old, err := m.ledger.Get(id)
	if err != nil {
		return err
	}
	if old.Kind != kind {
		m.warn("Record %d is %s, not %s.", id, old.Kind, kind)
		return nil
	}
	fmt.Fprint(m.out, cli.RenderTable(transactionTable("Current record", []model.Transaction{old})))

	category := old.Category
	amountStr := old.Amount.StringFixed(2)
	dateStr := cli.FormatDate(old.Date)
	note := old.Note
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Category").Validate(notBlank).Value(&category),
		huh.NewInput().Title("Amount").Validate(validAmount).Value(&amountStr),
		huh.NewInput().Title("Date").Validate(validDate).Value(&dateStr),
		huh.NewInput().Title("Note (optional)").Value(&note),
	))
	if err := form.Run(); err != nil {
		return err
	}

	amount, err := model.ParseAmount(amountStr)
	if err != nil {
		return err
	}
	date, err := model.ParseDate(dateStr)
	if err != nil {
		return err
	}

	repl := model.Transaction{
		Kind:     kind,
		Date:     date,
		Amount:   amount,
		Category: category,
		Note:     strings.TrimSpace(note),
	}

	rec, err := m.ledger.Replace(id, repl)
	var unknown ledger.UnknownCategoryError
	if errors.As(err, &unknown) {
		created, cerr := m.offerCategory(unknown)
		if cerr != nil {
			return cerr
		}
		if !created {
			m.warn("Record %d left unchanged.", id)
			return nil
		}
		rec, err = m.ledger.Replace(id, repl)
	}
	if err != nil {
		return err
	}

	m.success("Record %d replaced by %d.", id, rec.ID)
	return nil
}

func (m *Menu) purgeCategory(kind model.Kind) error {
	cat, err := m.selectCategory(kind, false)
	if err != nil {
		return err
	}

	ok, err := m.confirm(fmt.Sprintf("Delete every %s record in %q?", kind, cat))
	if err != nil {
		return err
	}
	if !ok {
		m.info("Nothing deleted.")
		return nil
	}

	n, err := m.ledger.RemoveCategory(kind, cat)
	if err != nil {
		return err
	}
	if n == 0 {
		m.info("No records in %q.", cat)
		return nil
	}
	m.success("Deleted %d records.", n)
	return nil
}

func (m *Menu) categoriesMenu(kind model.Kind) error {
	for {
		choice, err := m.pick(fmt.Sprintf("%s categories", kindTitle(kind)), []huh.Option[string]{
			huh.NewOption("Add a category", "add"),
			huh.NewOption("List categories", "list"),
			huh.NewOption("Back", choiceBack),
		})
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "add":
			err = m.handle(m.addCategory(kind))
		case "list":
			err = m.handle(m.listCategories(kind))
		case choiceBack:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) addCategory(kind model.Kind) error {
	name, err := m.input("Category name", "groceries", "", notBlank)
	if err != nil {
		return err
	}
	desc, err := m.input("Description (optional)", "", "", nil)
	if err != nil {
		return err
	}

	c := model.Category{Name: name, Kind: kind, Description: desc}
	if err := m.ledger.DefineCategory(c); err != nil {
		return err
	}
	m.success("Category %q added.", model.NormalizeCategory(name))
	return nil
}

func (m *Menu) listCategories(kind model.Kind) error {
	cats, err := m.ledger.Categories(kind)
	if err != nil {
		return err
	}
	if len(cats) == 0 {
		m.info("No categories yet.")
		return nil
	}
	fmt.Fprint(m.out, cli.RenderTable(categoryTable(kindTitle(kind), cats)))
	return nil
}

func transactionTable(title string, txs []model.Transaction) cli.Table {
	rows := make([][]string, 0, len(txs))
	for _, t := range txs {
		rows = append(rows, []string{
			strconv.FormatInt(t.ID, 10),
			cli.FormatDate(t.Date),
			t.Category,
			cli.FormatMoney(t.Amount),
			t.Note,
		})
	}
	return cli.Table{
		Title:     title,
		Headers:   []string{"ID", "Date", "Category", "Amount", "Note"},
		Rows:      rows,
		AlignLeft: []int{1, 2, 4},
	}
}

func categoryTable(title string, cats []model.Category) cli.Table {
	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		rows = append(rows, []string{c.Name, c.Description})
	}
	return cli.Table{
		Title:     title + " categories",
		Headers:   []string{"Name", "Description"},
		Rows:      rows,
		AlignLeft: []int{1},
	}
}
