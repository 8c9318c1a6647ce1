package cli

import (
	"context"
	"strconv"

	"github.com/medichannel/admincli/internal/console/table"
)

func patientColumns() []table.Column {
	return []table.Column{
		{Header: "ID", Accessor: table.Field("id"), Sortable: true},
		{Header: "Name", Accessor: table.Field("name"), Sortable: true},
		{Header: "Gender", Accessor: table.Field("gender")},
		{Header: "Age", Accessor: table.Field("age"), Sortable: true},
		{Header: "Contact", Accessor: table.Field("contact")},
		{Header: "Email", Accessor: table.Field("email")},
		{Header: "Registered", Accessor: table.Field("registeredDate"), Sortable: true},
	}
}

// Patients opens the registered patients screen.
func (a *App) Patients(ctx context.Context) error {
	screen := &listScreen{
		title: "Registered Patients",
		table: table.New(patientColumns(), "id",
			table.WithPageSize(a.config.PageSize),
			table.WithEmptyMessage("No patients registered yet")),
		fetch: a.api.Patients,
	}
	screen.actions = map[string]action{
		"del": {usage: "del <id>", fn: func(ctx context.Context, arg string) (bool, error) {
			id, err := parseID(arg)
			if err != nil {
				return false, err
			}
			if !a.confirm("Delete patient " + strconv.FormatInt(id, 10) + "?") {
				return false, nil
			}
			return true, a.api.DeletePatient(ctx, id)
		}},
	}
	return a.browse(ctx, screen)
}
