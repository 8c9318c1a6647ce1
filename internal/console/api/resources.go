package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/medichannel/admincli/internal/console/models"
	"github.com/medichannel/admincli/internal/console/table"
)

// List endpoints decode straight into table records so the list screens can
// hand them to the data table without an intermediate typed hop.

func (c *Client) Doctors(ctx context.Context) ([]table.Record, error) {
	var rows []table.Record
	return rows, c.getData(ctx, "/api/v1/doctor/getDoctors", nil, &rows)
}

func (c *Client) SaveDoctor(ctx context.Context, d models.Doctor) error {
	return c.do(ctx, http.MethodPost, "/api/v1/doctor/save", nil, d, nil)
}

func (c *Client) UpdateDoctor(ctx context.Context, d models.Doctor) error {
	return c.do(ctx, http.MethodPut, "/api/v1/doctor/update", nil, d, nil)
}

func (c *Client) DeleteDoctor(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/doctor", idQuery(id), nil, nil)
}

func (c *Client) MedicalCenters(ctx context.Context) ([]table.Record, error) {
	var rows []table.Record
	return rows, c.getData(ctx, "/api/v1/medical/center/getAll", nil, &rows)
}

func (c *Client) MedicalCenter(ctx context.Context, id int64) (table.Record, error) {
	var row table.Record
	return row, c.getData(ctx, "/api/v1/medical/center/"+strconv.FormatInt(id, 10), nil, &row)
}

func (c *Client) ChannelingRooms(ctx context.Context, centerID int64) ([]models.Room, error) {
	var rooms []models.Room
	return rooms, c.getData(ctx, "/api/v1/medical/center/channelingRooms", idQuery(centerID), &rooms)
}

func (c *Client) SaveMedicalCenter(ctx context.Context, m models.MedicalCenter) error {
	return c.do(ctx, http.MethodPost, "/api/v1/medical/center/save", nil, m, nil)
}

func (c *Client) UpdateMedicalCenter(ctx context.Context, m models.MedicalCenter) error {
	return c.do(ctx, http.MethodPut, "/api/v1/medical/center/update", nil, m, nil)
}

func (c *Client) Schedules(ctx context.Context) ([]table.Record, error) {
	var rows []table.Record
	return rows, c.getData(ctx, "/api/v1/channeling/room/schedule/all-active-schedules", nil, &rows)
}

func (c *Client) SaveSchedule(ctx context.Context, s models.Schedule) error {
	return c.do(ctx, http.MethodPost, "/api/v1/channeling/room/schedule/save", nil, s, nil)
}

func (c *Client) UpdateSchedule(ctx context.Context, s models.Schedule) error {
	return c.do(ctx, http.MethodPut, "/api/v1/channeling/room/schedule/update", nil, s, nil)
}

func (c *Client) DeleteSchedule(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/channeling/room/schedule/delete", idQuery(id), nil, nil)
}

func (c *Client) Admins(ctx context.Context) ([]table.Record, error) {
	var rows []table.Record
	return rows, c.getData(ctx, "/api/v1/admin/getAll", nil, &rows)
}

func (c *Client) SaveAdmin(ctx context.Context, a models.Admin) error {
	return c.do(ctx, http.MethodPost, "/api/v1/admin/save", nil, a, nil)
}

func (c *Client) UpdateAdmin(ctx context.Context, a models.Admin) error {
	return c.do(ctx, http.MethodPut, "/api/v1/admin/update", nil, a, nil)
}

func (c *Client) DeleteAdmin(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/admin", idQuery(id), nil, nil)
}

func (c *Client) Patients(ctx context.Context) ([]table.Record, error) {
	var rows []table.Record
	return rows, c.getData(ctx, "/api/v1/patient/getAll", nil, &rows)
}

func (c *Client) DeletePatient(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/patient", idQuery(id), nil, nil)
}

// Payments fetches the payment summary. The endpoint path spelling is the
// backend's, not ours.
func (c *Client) Payments(ctx context.Context) ([]table.Record, error) {
	var rows []table.Record
	return rows, c.getData(ctx, "/api/v1/payment/payemntSummary", nil, &rows)
}

func (c *Client) Comments(ctx context.Context) ([]table.Record, error) {
	var rows []table.Record
	return rows, c.getData(ctx, "/api/v1/comment/getAll", nil, &rows)
}

func (c *Client) ApproveComment(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPut, "/api/v1/comment/approve", idQuery(id), nil, nil)
}

func (c *Client) DeleteComment(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/comment", idQuery(id), nil, nil)
}

func (c *Client) EmailTemplates(ctx context.Context) ([]models.EmailTemplate, error) {
	var templates []models.EmailTemplate
	return templates, c.getData(ctx, "/api/v1/email/templates", nil, &templates)
}

func (c *Client) SendCampaign(ctx context.Context, campaign models.Campaign) error {
	return c.do(ctx, http.MethodPost, "/api/v1/email/send", nil, campaign, nil)
}
