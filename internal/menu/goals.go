package menu

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"spendwise/internal/cli"
	"spendwise/internal/model"
)

func (m *Menu) goalsMenu() error {
	for {
		choice, err := m.pick("Savings goals", []huh.Option[string]{
			huh.NewOption("Create a goal", "create"),
			huh.NewOption("Contribute to a goal", "contribute"),
			huh.NewOption("View progress", "view"),
			huh.NewOption("Delete a goal", "delete"),
			huh.NewOption("Back", choiceBack),
		})
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "create":
			err = m.handle(m.createGoal())
		case "contribute":
			err = m.handle(m.contribute())
		case "view":
			err = m.handle(m.viewGoals())
		case "delete":
			err = m.handle(m.deleteGoal())
		case choiceBack:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// selectGoal picks one goal by name, nearest deadline first.
func (m *Menu) selectGoal(title string) (model.Goal, error) {
	goals, err := m.tracker.Goals()
	if err != nil {
		return model.Goal{}, err
	}
	if len(goals) == 0 {
		return model.Goal{}, errNoGoals
	}

	opts := make([]huh.Option[string], 0, len(goals))
	for _, g := range goals {
		label := fmt.Sprintf("%s (%s of %s)", g.Name, cli.FormatMoney(g.Saved), cli.FormatMoney(g.Target))
		opts = append(opts, huh.NewOption(label, g.Name))
	}

	name, err := m.pick(title, opts)
	if err != nil {
		return model.Goal{}, err
	}
	for _, g := range goals {
		if g.Name == name {
			return g, nil
		}
	}
	return model.Goal{}, errNoGoals
}

func (m *Menu) createGoal() error {
	today := time.Now().Format(model.DateLayout)
	name, targetStr, startStr, deadlineStr := "", "", today, ""
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Goal name").Placeholder("emergency fund").Validate(notBlank).Value(&name),
		huh.NewInput().Title("Target amount").Placeholder("1000").Validate(validAmount).Value(&targetStr),
		huh.NewInput().Title("Start date").Placeholder(today).Validate(validDate).Value(&startStr),
		huh.NewInput().Title("Deadline").Placeholder("2026-12-31").Validate(validDate).Value(&deadlineStr),
	))
	if err := form.Run(); err != nil {
		return err
	}

	target, err := model.ParseAmount(targetStr)
	if err != nil {
		return err
	}
	start, err := model.ParseDate(startStr)
	if err != nil {
		return err
	}
	deadline, err := model.ParseDate(deadlineStr)
	if err != nil {
		return err
	}

	g, err := m.tracker.CreateGoal(model.Goal{
		Name:     name,
		Target:   target,
		Start:    start,
		Deadline: deadline,
	})
	if err != nil {
		return err
	}
	m.success("Goal %q created: %s by %s.", g.Name, cli.FormatMoney(g.Target), cli.FormatDate(g.Deadline))
	return nil
}

func (m *Menu) contribute() error {
	g, err := m.selectGoal("Contribute to")
	if err != nil {
		return err
	}
	amountStr, err := m.input("Amount", "50", "", validAmount)
	if err != nil {
		return err
	}
	amount, err := model.ParseAmount(amountStr)
	if err != nil {
		return err
	}

	updated, err := m.tracker.Contribute(g.Name, amount)
	if err != nil {
		return err
	}

	m.success("Contributed %s to %q: %s of %s (%s).",
		cli.FormatMoney(amount), updated.Name,
		cli.FormatMoney(updated.Saved), cli.FormatMoney(updated.Target),
		cli.FormatPercent(updated.Progress()))
	if updated.Reached() {
		m.success("Target reached!")
	}
	return nil
}

func (m *Menu) viewGoals() error {
	goals, err := m.tracker.Goals()
	if err != nil {
		return err
	}
	if len(goals) == 0 {
		m.info("No goals yet.")
		return nil
	}

	now := time.Now()
	for _, g := range goals {
		fmt.Fprintf(m.out, "  %s  %s of %s\n",
			g.Name, cli.FormatMoney(g.Saved), cli.FormatMoney(g.Target))
		line := fmt.Sprintf("  %s  deadline %s (%s)",
			cli.RenderProgressBar(g.Progress(), 24),
			cli.FormatDate(g.Deadline), cli.FormatDaysLeft(g.DaysLeft(now)))
		if g.Reached() {
			line += "  " + successStyle.Render("reached")
		}
		fmt.Fprintln(m.out, line)
	}
	return nil
}

func (m *Menu) deleteGoal() error {
	g, err := m.selectGoal("Delete which goal?")
	if err != nil {
		return err
	}
	ok, err := m.confirm(fmt.Sprintf("Delete goal %q?", g.Name))
	if err != nil {
		return err
	}
	if !ok {
		m.info("Nothing deleted.")
		return nil
	}

	if err := m.tracker.RemoveGoal(g.Name); err != nil {
		return err
	}
	m.success("Goal %q deleted.", g.Name)
	return nil
}
