package cli

import (
	"context"
	"fmt"

	"github.com/medichannel/admincli/internal/console/models"
	"github.com/medichannel/admincli/internal/console/table"
)

func centerColumns() []table.Column {
	return []table.Column{
		{Header: "ID", Accessor: table.Field("id"), Sortable: true},
		{Header: "Center", Accessor: table.Field("centerName"), Sortable: true},
		{Header: "Address", Accessor: table.Field("address")},
		{Header: "Contact", Accessor: table.Field("contact")},
		{Header: "Status", Accessor: table.Field("status"), Sortable: true},
	}
}

// Centers opens the medical centers screen.
func (a *App) Centers(ctx context.Context) error {
	screen := &listScreen{
		title: "Medical Centers",
		table: table.New(centerColumns(), "id",
			table.WithPageSize(a.config.PageSize),
			table.WithEmptyMessage("No medical centers registered yet")),
		fetch: a.api.MedicalCenters,
	}
	screen.actions = map[string]action{
		"add": {usage: "add", fn: func(ctx context.Context, _ string) (bool, error) {
			m, err := a.promptCenter(nil)
			if err != nil {
				return false, err
			}
			return true, a.api.SaveMedicalCenter(ctx, *m)
		}},
		"edit": {usage: "edit <id>", fn: func(ctx context.Context, arg string) (bool, error) {
			id, err := parseID(arg)
			if err != nil {
				return false, err
			}
			rec := findRow(screen.table.Rows(), "id", id)
			m, err := a.promptCenter(rec)
			if err != nil {
				return false, err
			}
			m.ID = id
			return true, a.api.UpdateMedicalCenter(ctx, *m)
		}},
		"rooms": {usage: "rooms <id>", fn: func(ctx context.Context, arg string) (bool, error) {
			id, err := parseID(arg)
			if err != nil {
				return false, err
			}
			return false, a.showRooms(ctx, id)
		}},
	}
	return a.browse(ctx, screen)
}

func (a *App) promptCenter(rec table.Record) (*models.MedicalCenter, error) {
	m := &models.MedicalCenter{}
	fields := []struct {
		prompt string
		field  string
		dst    *string
	}{
		{"Center name", "centerName", &m.CenterName},
		{"Address", "address", &m.Address},
		{"Contact", "contact", &m.Contact},
		{"Status (ACTIVE/INACTIVE)", "status", &m.Status},
	}
	for _, f := range fields {
		v, err := GetTextDefault(a.reader, f.prompt, str(rec, f.field), a.out)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}
	return m, nil
}

// showRooms lists the channeling rooms of one medical center.
func (a *App) showRooms(ctx context.Context, centerID int64) error {
	rooms, err := a.api.ChannelingRooms(ctx, centerID)
	if err != nil {
		return err
	}
	if len(rooms) == 0 {
		fmt.Fprintln(a.out, "No channeling rooms for this center.")
		return nil
	}
	for _, r := range rooms {
		fmt.Fprintf(a.out, "%d\t%s\t%s\t%s\n", r.RoomID, r.RoomName, r.Description, r.Status)
	}
	return nil
}
