package cli

import (
	"context"
	"strconv"

	"github.com/medichannel/admincli/internal/console/models"
	"github.com/medichannel/admincli/internal/console/table"
)

func doctorColumns() []table.Column {
	return []table.Column{
		{Header: "ID", Accessor: table.Field("id"), Sortable: true},
		{Header: "Name", Accessor: table.Field("name"), Sortable: true},
		{Header: "Specialization", Accessor: table.Field("specialization"), Sortable: true},
		{Header: "Qualification", Accessor: table.Field("qualification")},
		{Header: "Contact", Accessor: table.Field("contact")},
		{Header: "Medical Center", Accessor: table.Field("medicalCenter"), Sortable: true},
		{Header: "Reg. No", Accessor: table.Field("registrationNumber")},
	}
}

// Doctors opens the registered doctors screen.
func (a *App) Doctors(ctx context.Context) error {
	screen := &listScreen{
		title: "Registered Doctors",
		table: table.New(doctorColumns(), "id",
			table.WithPageSize(a.config.PageSize),
			table.WithEmptyMessage("No doctors registered yet")),
		fetch: a.api.Doctors,
	}
	screen.actions = map[string]action{
		"add": {usage: "add", fn: func(ctx context.Context, _ string) (bool, error) {
			d, err := a.promptDoctor(nil)
			if err != nil {
				return false, err
			}
			return true, a.api.SaveDoctor(ctx, *d)
		}},
		"edit": {usage: "edit <id>", fn: func(ctx context.Context, arg string) (bool, error) {
			id, err := parseID(arg)
			if err != nil {
				return false, err
			}
			rec := findRow(screen.table.Rows(), "id", id)
			d, err := a.promptDoctor(rec)
			if err != nil {
				return false, err
			}
			d.ID = id
			return true, a.api.UpdateDoctor(ctx, *d)
		}},
		"del": {usage: "del <id>", fn: func(ctx context.Context, arg string) (bool, error) {
			id, err := parseID(arg)
			if err != nil {
				return false, err
			}
			if !a.confirm("Delete doctor " + strconv.FormatInt(id, 10) + "?") {
				return false, nil
			}
			return true, a.api.DeleteDoctor(ctx, id)
		}},
	}
	return a.browse(ctx, screen)
}

// promptDoctor collects doctor fields, prefilled from rec when editing.
func (a *App) promptDoctor(rec table.Record) (*models.Doctor, error) {
	d := &models.Doctor{}
	fields := []struct {
		prompt string
		field  string
		dst    *string
	}{
		{"Name", "name", &d.Name},
		{"Specialization", "specialization", &d.Specialization},
		{"Qualification", "qualification", &d.Qualification},
		{"Contact", "contact", &d.Contact},
		{"Email", "email", &d.Email},
		{"Medical center", "medicalCenter", &d.MedicalCenter},
		{"Registration number", "registrationNumber", &d.RegistrationNumber},
	}
	for _, f := range fields {
		v, err := GetTextDefault(a.reader, f.prompt, str(rec, f.field), a.out)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}
	return d, nil
}
