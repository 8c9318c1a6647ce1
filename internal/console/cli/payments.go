package cli

import (
	"context"
	"fmt"

	"github.com/medichannel/admincli/internal/console/table"
)

func paymentColumns() []table.Column {
	return []table.Column{
		{Header: "ID", Accessor: table.Field("paymentId"), Sortable: true},
		{Header: "Patient", Accessor: table.Field("patientName"), Sortable: true},
		{Header: "Center", Accessor: table.Field("medicalCenterName"), Sortable: true},
		{Header: "Date", Accessor: table.Field("paymentDate"), Sortable: true},
		{Header: "Amount", Accessor: table.Computed(func(r table.Record) string {
			amount, ok := r["paidAmount"].(float64)
			if !ok {
				return ""
			}
			return fmt.Sprintf("%.2f", amount)
		}), Sortable: false},
	}
}

// Payments opens the payment summary screen. The screen is read-only; the
// table still offers search, sort and paging.
func (a *App) Payments(ctx context.Context) error {
	screen := &listScreen{
		title: "Payment Summary",
		table: table.New(paymentColumns(), "paymentId",
			table.WithPageSize(a.config.PageSize),
			table.WithEmptyMessage("No payments recorded")),
		fetch:   a.api.Payments,
		actions: map[string]action{},
	}
	return a.browse(ctx, screen)
}
