package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/medichannel/admincli/internal/console/models"
	"github.com/medichannel/admincli/internal/console/table"
)

// Campaigns runs the email campaign composer: pick recipients from the
// doctor list, optionally start from a template, then send.
func (a *App) Campaigns(ctx context.Context) error {
	doctors, err := a.api.Doctors(ctx)
	if err != nil {
		a.handleFetchError(ctx, err)
		return err
	}

	fmt.Fprintln(a.out, "\nEmail Campaign")
	for _, d := range doctors {
		fmt.Fprintf(a.out, "  %s\t%s\t%s\n", str(d, "id"), str(d, "name"), str(d, "email"))
	}

	idsLine, err := getSimpleText(a.reader, "Recipient doctor ids (comma-separated, empty for all)", a.out)
	if err != nil {
		return err
	}
	doctorIDs, err := parseIDList(idsLine, doctors)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	campaign := models.Campaign{DoctorIDs: doctorIDs}
	if err := a.fillFromTemplate(ctx, &campaign); err != nil {
		return err
	}

	if campaign.Subject == "" {
		if campaign.Subject, err = getSimpleText(a.reader, "Subject", a.out); err != nil {
			return err
		}
	}
	if campaign.Body == "" {
		if campaign.Body, err = GetMultiline(a.reader, "Message ([Doctor Name] is substituted per recipient)", a.out); err != nil {
			return err
		}
	}

	if !a.confirm(fmt.Sprintf("Send to %d doctor(s)?", len(campaign.DoctorIDs))) {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.api.SendCampaign(ctx, campaign); err != nil {
		if isUnauthorized(err) {
			a.handleFetchError(ctx, err)
			return err
		}
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Campaign sent.")
	return nil
}

// fillFromTemplate offers the backend's templates and copies the chosen one
// into the campaign. Skipped silently when no templates exist.
func (a *App) fillFromTemplate(ctx context.Context, campaign *models.Campaign) error {
	templates, err := a.api.EmailTemplates(ctx)
	if err != nil || len(templates) == 0 {
		return nil
	}

	fmt.Fprintln(a.out, "Templates:")
	for _, t := range templates {
		fmt.Fprintf(a.out, "  %d\t%s\n", t.ID, t.Name)
	}
	choice, err := getSimpleText(a.reader, "Template id (empty to compose from scratch)", a.out)
	if err != nil {
		return err
	}
	if choice == "" {
		return nil
	}
	id, err := parseID(choice)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	for _, t := range templates {
		if t.ID == id {
			campaign.Subject = t.Subject
			campaign.Body = t.Body
			return nil
		}
	}
	fmt.Fprintln(a.out, "No such template.")
	return nil
}

// parseIDList parses a comma-separated id list; an empty input selects every
// doctor in the fetched collection.
func parseIDList(line string, doctors []table.Record) ([]int64, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		ids := make([]int64, 0, len(doctors))
		for _, d := range doctors {
			if v, ok := d["id"].(float64); ok {
				ids = append(ids, int64(v))
			}
		}
		return ids, nil
	}

	parts := strings.Split(line, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := parseID(p)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
