package cli

import (
	"context"
	"strconv"

	"github.com/medichannel/admincli/internal/console/models"
	"github.com/medichannel/admincli/internal/console/table"
)

func adminColumns() []table.Column {
	return []table.Column{
		{Header: "ID", Accessor: table.Field("id"), Sortable: true},
		{Header: "Name", Accessor: table.Field("name"), Sortable: true},
		{Header: "Email", Accessor: table.Field("email")},
		{Header: "Role", Accessor: table.Field("role"), Sortable: true},
		{Header: "Last Login", Accessor: table.Field("lastLogin"), Sortable: true},
		{Header: "Status", Accessor: table.Field("status")},
	}
}

// Admins opens the admin users screen.
func (a *App) Admins(ctx context.Context) error {
	screen := &listScreen{
		title: "Admin Users",
		table: table.New(adminColumns(), "id",
			table.WithPageSize(a.config.PageSize),
			table.WithEmptyMessage("No admin users found")),
		fetch: a.api.Admins,
	}
	screen.actions = map[string]action{
		"add": {usage: "add", fn: func(ctx context.Context, _ string) (bool, error) {
			adm, err := a.promptAdmin(nil)
			if err != nil {
				return false, err
			}
			return true, a.api.SaveAdmin(ctx, *adm)
		}},
		"edit": {usage: "edit <id>", fn: func(ctx context.Context, arg string) (bool, error) {
			id, err := parseID(arg)
			if err != nil {
				return false, err
			}
			rec := findRow(screen.table.Rows(), "id", id)
			adm, err := a.promptAdmin(rec)
			if err != nil {
				return false, err
			}
			adm.ID = id
			return true, a.api.UpdateAdmin(ctx, *adm)
		}},
		"del": {usage: "del <id>", fn: func(ctx context.Context, arg string) (bool, error) {
			id, err := parseID(arg)
			if err != nil {
				return false, err
			}
			if !a.confirm("Delete admin " + strconv.FormatInt(id, 10) + "?") {
				return false, nil
			}
			return true, a.api.DeleteAdmin(ctx, id)
		}},
	}
	return a.browse(ctx, screen)
}

func (a *App) promptAdmin(rec table.Record) (*models.Admin, error) {
	adm := &models.Admin{}
	fields := []struct {
		prompt string
		field  string
		dst    *string
	}{
		{"Name", "name", &adm.Name},
		{"Email", "email", &adm.Email},
		{"Role (Super Admin/Admin/Manager)", "role", &adm.Role},
		{"Status (Active/Inactive)", "status", &adm.Status},
	}
	for _, f := range fields {
		v, err := GetTextDefault(a.reader, f.prompt, str(rec, f.field), a.out)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}
	return adm, nil
}
