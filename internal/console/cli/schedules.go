package cli

import (
	"context"
	"strconv"

	"github.com/medichannel/admincli/internal/console/models"
	"github.com/medichannel/admincli/internal/console/table"
)

func scheduleColumns() []table.Column {
	return []table.Column{
		{Header: "ID", Accessor: table.Field("scheduleId"), Sortable: true},
		{Header: "Doctor", Accessor: table.Field("doctorName"), Sortable: true},
		{Header: "Center", Accessor: table.Field("medicalCenterName"), Sortable: true},
		{Header: "Room", Accessor: table.Field("roomName")},
		{Header: "Day", Accessor: table.Field("dayOfWeek"), Sortable: true},
		{Header: "Time", Accessor: table.Computed(func(r table.Record) string {
			return str(r, "startTime") + " - " + str(r, "endTime")
		})},
		{Header: "Status", Accessor: table.Field("scheduleStatus"), Sortable: true},
	}
}

// Schedules opens the channeling schedules screen.
func (a *App) Schedules(ctx context.Context) error {
	screen := &listScreen{
		title: "Channeling Schedules",
		table: table.New(scheduleColumns(), "scheduleId",
			table.WithPageSize(a.config.PageSize),
			table.WithEmptyMessage("No active schedules")),
		fetch: a.api.Schedules,
	}
	screen.actions = map[string]action{
		"add": {usage: "add", fn: func(ctx context.Context, _ string) (bool, error) {
			s, err := a.promptSchedule()
			if err != nil {
				return false, err
			}
			return true, a.api.SaveSchedule(ctx, *s)
		}},
		"edit": {usage: "edit <id>", fn: func(ctx context.Context, arg string) (bool, error) {
			id, err := parseID(arg)
			if err != nil {
				return false, err
			}
			s, err := a.promptSchedule()
			if err != nil {
				return false, err
			}
			s.ScheduleID = id
			return true, a.api.UpdateSchedule(ctx, *s)
		}},
		"del": {usage: "del <id>", fn: func(ctx context.Context, arg string) (bool, error) {
			id, err := parseID(arg)
			if err != nil {
				return false, err
			}
			if !a.confirm("Delete schedule " + strconv.FormatInt(id, 10) + "?") {
				return false, nil
			}
			return true, a.api.DeleteSchedule(ctx, id)
		}},
	}
	return a.browse(ctx, screen)
}

// promptSchedule collects schedule fields. Doctor, center and room are
// referenced by their numeric ids; the list screens show them.
func (a *App) promptSchedule() (*models.Schedule, error) {
	s := &models.Schedule{}

	ids := []struct {
		prompt string
		dst    *int64
	}{
		{"Doctor id", &s.DoctorID},
		{"Medical center id", &s.CenterID},
		{"Room id", &s.RoomID},
	}
	for _, f := range ids {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return nil, err
		}
		id, err := parseID(v)
		if err != nil {
			return nil, err
		}
		*f.dst = id
	}

	texts := []struct {
		prompt string
		dst    *string
	}{
		{"Day of week (Sunday..Saturday)", &s.DayOfWeek},
		{"Start time (HH:MM)", &s.StartTime},
		{"End time (HH:MM)", &s.EndTime},
		{"Status (ACTIVE/INACTIVE/CANCELLED)", &s.Status},
	}
	for _, f := range texts {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}
	return s, nil
}
