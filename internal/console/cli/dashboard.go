package cli

import (
	"context"
	"fmt"

	"github.com/medichannel/admincli/internal/console/table"
)

// Dashboard prints a quick overview of the platform: how many doctors,
// centers, patients and active schedules there are right now.
func (a *App) Dashboard(ctx context.Context) error {
	counts := []struct {
		label string
		fetch func(ctx context.Context) (int, error)
	}{
		{"Doctors", a.countOf(a.api.Doctors)},
		{"Medical centers", a.countOf(a.api.MedicalCenters)},
		{"Patients", a.countOf(a.api.Patients)},
		{"Active schedules", a.countOf(a.api.Schedules)},
	}

	fmt.Fprintln(a.out, "\nDashboard")
	for _, c := range counts {
		n, err := c.fetch(ctx)
		if err != nil {
			if isUnauthorized(err) {
				a.handleFetchError(ctx, err)
				return err
			}
			fmt.Fprintf(a.out, "  %-18s ?\t(%s)\n", c.label, err.Error())
			continue
		}
		fmt.Fprintf(a.out, "  %-18s %d\n", c.label, n)
	}
	return nil
}

func (a *App) countOf(fetch func(ctx context.Context) ([]table.Record, error)) func(ctx context.Context) (int, error) {
	return func(ctx context.Context) (int, error) {
		rows, err := fetch(ctx)
		if err != nil {
			return 0, err
		}
		return len(rows), nil
	}
}
