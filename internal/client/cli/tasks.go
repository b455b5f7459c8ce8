package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

// getMultiline is an indirection used to facilitate testing.
var getMultiline = GetMultiline

// Dump reads a multi-line brain dump, has the server categorize it, shows
// the result, and saves the batch after confirmation.
func (a *App) Dump(ctx context.Context) error {
	text, err := getMultiline(a.reader, "Enter your brain dump", os.Stdout)
	if err != nil {
		return err
	}

	tasks, err := a.api.ParseDump(ctx, text)
	if err != nil {
		log.Printf("Could not parse dump: %s", err.Error())
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found in the dump")
		return nil
	}

	fmt.Printf("Parsed %d task(s):\n", len(tasks))
	for _, t := range tasks {
		fmt.Printf("  [%s] %s (%s, %s energy)\n", t.Category, t.Content, t.Urgency, t.EnergyLevel)
	}

	answer, err := getSimpleText(a.reader, "Save these tasks? (y/n)", os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		fmt.Println("Discarded")
		return nil
	}

	if err := a.api.SaveTasks(ctx, tasks); err != nil {
		log.Printf("Could not save tasks: %s", err.Error())
		return err
	}

	fmt.Println("Saved!")
	return nil
}

// List prints the account's tasks, newest first.
func (a *App) List(ctx context.Context) error {
	tasks, err := a.api.Tasks(ctx)
	if err != nil {
		log.Printf("Could not list tasks: %s", err.Error())
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks yet")
		return nil
	}

	for _, t := range tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Printf("%6d [%s] %-26s %s\n", t.ID, mark, t.Category, t.Content)
	}
	return nil
}

// Done marks a task as completed by id.
func (a *App) Done(ctx context.Context, arg string) error {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Println("Usage: done <id>")
		return err
	}

	if err := a.api.SetCompleted(ctx, id, true); err != nil {
		log.Printf("Could not update task: %s", err.Error())
		return err
	}

	fmt.Println("Done!")
	return nil
}

// Clear removes every task on the account after confirmation.
func (a *App) Clear(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Delete ALL tasks? (y/n)", os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		fmt.Println("Cancelled")
		return nil
	}

	if err := a.api.ClearTasks(ctx); err != nil {
		log.Printf("Could not clear tasks: %s", err.Error())
		return err
	}

	fmt.Println("Cleared")
	return nil
}
