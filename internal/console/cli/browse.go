package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/medichannel/admincli/internal/common"
	"github.com/medichannel/admincli/internal/console/table"
)

func isUnauthorized(err error) bool {
	return errors.Is(err, common.ErrUnauthorized)
}

// action is a row-level operation offered by a list screen, e.g. "edit 3".
// The table places these in the screen's command set without interpreting
// their semantics. A mutating action returns reload=true so the screen
// refetches its rows.
type action struct {
	usage string
	fn    func(ctx context.Context, arg string) (reload bool, err error)
}

// listScreen wires a fetch function and per-row actions to a data table.
type listScreen struct {
	title   string
	table   *table.Table
	fetch   func(ctx context.Context) ([]table.Record, error)
	actions map[string]action
}

// browse runs one list screen: fetch rows, render the table, then loop over
// the table subcommands (search, sort, paging) and the screen's own actions
// until the user leaves with "q".
func (a *App) browse(ctx context.Context, screen *listScreen) error {
	rows, err := screen.fetch(ctx)
	if err != nil {
		a.handleFetchError(ctx, err)
		return err
	}
	screen.table.SetRows(rows)

	for {
		fmt.Fprintf(a.out, "\n%s\n", screen.title)
		screen.table.Render(a.out)
		fmt.Fprintf(a.out, "%s\n", screen.helpLine())

		line, err := getSimpleText(a.reader, "", a.out)
		if err != nil {
			return err
		}
		cmd, arg := splitCommand(line)

		switch cmd {
		case "":
			continue
		case "q", "back":
			return nil
		case "search":
			screen.table.SetSearch(arg)
		case "sort":
			screen.table.ToggleSort(arg)
		case "next":
			screen.table.NextPage()
		case "prev":
			screen.table.PrevPage()
		case "page":
			n, err := parseID(arg)
			if err != nil {
				fmt.Fprintln(a.out, err.Error())
				continue
			}
			screen.table.SetPage(int(n))
		case "refresh":
			if err := a.reload(ctx, screen); err != nil {
				return err
			}
		default:
			act, ok := screen.actions[cmd]
			if !ok {
				fmt.Fprintln(a.out, "Unknown command:", cmd)
				continue
			}
			reload, err := act.fn(ctx, arg)
			if err != nil {
				if isUnauthorized(err) {
					a.handleFetchError(ctx, err)
					return err
				}
				fmt.Fprintf(a.out, "Error: %s\n", err.Error())
				continue
			}
			if reload {
				if err := a.reload(ctx, screen); err != nil {
					return err
				}
			}
		}
	}
}

func (a *App) reload(ctx context.Context, screen *listScreen) error {
	rows, err := screen.fetch(ctx)
	if err != nil {
		a.handleFetchError(ctx, err)
		if isUnauthorized(err) {
			return err
		}
		return nil
	}
	screen.table.SetRows(rows)
	return nil
}

func (screen *listScreen) helpLine() string {
	cmds := []string{"search <text>", "sort <column>", "next", "prev", "page <n>", "refresh"}

	names := make([]string, 0, len(screen.actions))
	for name := range screen.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cmds = append(cmds, screen.actions[name].usage)
	}

	cmds = append(cmds, "q")
	return "Commands: " + strings.Join(cmds, " | ")
}

// confirm asks a yes/no question; anything but y/yes declines.
func (a *App) confirm(prompt string) bool {
	v, err := getSimpleText(a.reader, prompt+" (y/N)", a.out)
	if err != nil {
		return false
	}
	v = strings.ToLower(v)
	return v == "y" || v == "yes"
}

func splitCommand(line string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(line), " ", 2)
	cmd := parts[0]
	arg := ""
	if len(parts) > 1 {
		arg = strings.TrimSpace(parts[1])
	}
	return cmd, arg
}

// findRow locates the record whose field matches id, used to prefill edit
// forms from the already-fetched collection.
func findRow(rows []table.Record, field string, id int64) table.Record {
	for _, rec := range rows {
		if v, ok := rec[field].(float64); ok && int64(v) == id {
			return rec
		}
	}
	return nil
}

// str reads a record field as its display string, "" for nil/absent.
func str(rec table.Record, field string) string {
	if rec == nil {
		return ""
	}
	return table.Cell(rec, table.Column{Accessor: table.Field(field)})
}
