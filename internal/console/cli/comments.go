package cli

import (
	"context"
	"strconv"

	"github.com/medichannel/admincli/internal/console/table"
)

func commentColumns() []table.Column {
	return []table.Column{
		{Header: "ID", Accessor: table.Field("id"), Sortable: true},
		{Header: "Patient", Accessor: table.Field("patientName"), Sortable: true},
		{Header: "Comment", Accessor: table.Field("text")},
		{Header: "Posted", Accessor: table.Field("createdAt"), Sortable: true},
		{Header: "Status", Accessor: table.Field("status"), Sortable: true},
	}
}

// Comments opens the patient comments moderation screen.
func (a *App) Comments(ctx context.Context) error {
	screen := &listScreen{
		title: "Patient Comments",
		table: table.New(commentColumns(), "id",
			table.WithPageSize(a.config.PageSize),
			table.WithEmptyMessage("No comments to moderate")),
		fetch: a.api.Comments,
	}
	screen.actions = map[string]action{
		"approve": {usage: "approve <id>", fn: func(ctx context.Context, arg string) (bool, error) {
			id, err := parseID(arg)
			if err != nil {
				return false, err
			}
			return true, a.api.ApproveComment(ctx, id)
		}},
		"del": {usage: "del <id>", fn: func(ctx context.Context, arg string) (bool, error) {
			id, err := parseID(arg)
			if err != nil {
				return false, err
			}
			if !a.confirm("Delete comment " + strconv.FormatInt(id, 10) + "?") {
				return false, nil
			}
			return true, a.api.DeleteComment(ctx, id)
		}},
	}
	return a.browse(ctx, screen)
}
