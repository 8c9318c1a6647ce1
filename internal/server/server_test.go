package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medichannel/admincli/internal/logging"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	s := New("test-secret", log)
	srv := httptest.NewServer(s)
	t.Cleanup(srv.Close)
	return s, srv
}

func login(t *testing.T, srv *httptest.Server, email, password string) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	resp, err := http.Post(srv.URL+"/api/v1/user/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	token, _ := payload["jwt"].(string)
	require.NotEmpty(t, token)
	return token
}

func request(t *testing.T, srv *httptest.Server, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var payload map[string]any
	json.NewDecoder(resp.Body).Decode(&payload)
	return resp, payload
}

func TestLogin(t *testing.T) {
	_, srv := newTestServer(t)

	t.Run("success returns flat payload", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"email": "admin@example.com", "password": "admin123"})
		resp, err := http.Post(srv.URL+"/api/v1/user/login", "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		assert.Equal(t, "Admin User", payload["userName"])
		assert.Equal(t, "Admin", payload["role"])
		assert.Equal(t, "USR-1", payload["userId"])
		assert.EqualValues(t, 1, payload["id"])
		assert.NotEmpty(t, payload["jwt"])
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"email": "admin@example.com", "password": "nope"})
		resp, err := http.Post(srv.URL+"/api/v1/user/login", "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestRequireAdmin(t *testing.T) {
	_, srv := newTestServer(t)

	t.Run("missing token", func(t *testing.T) {
		resp, _ := request(t, srv, http.MethodGet, "/api/v1/doctor/getDoctors", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token", func(t *testing.T) {
		resp, _ := request(t, srv, http.MethodGet, "/api/v1/doctor/getDoctors", "not-a-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("non admin role rejected", func(t *testing.T) {
		token := login(t, srv, "sarah.johnson@example.com", "doctor123")
		resp, payload := request(t, srv, http.MethodGet, "/api/v1/doctor/getDoctors", token, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "admin role required", payload["message"])
	})
}

func TestListDoctors(t *testing.T) {
	_, srv := newTestServer(t)
	token := login(t, srv, "admin@example.com", "admin123")

	resp, payload := request(t, srv, http.MethodGet, "/api/v1/doctor/getDoctors", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 200, payload["code"])

	rows, ok := payload["data"].([]any)
	require.True(t, ok)
	assert.Len(t, rows, 3)
}

func TestDoctorCRUD(t *testing.T) {
	_, srv := newTestServer(t)
	token := login(t, srv, "admin@example.com", "admin123")

	doctor := map[string]any{"name": "Dr. New Person", "specialization": "Dermatology"}
	resp, payload := request(t, srv, http.MethodPost, "/api/v1/doctor/save", token, doctor)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := payload["data"].(map[string]any)
	id := int64(data["id"].(float64))
	assert.Greater(t, id, int64(100))

	doctor["id"] = id
	doctor["specialization"] = "Oncology"
	resp, _ = request(t, srv, http.MethodPut, "/api/v1/doctor/update", token, doctor)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, payload = request(t, srv, http.MethodGet, "/api/v1/doctor/getDoctors", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rows := payload["data"].([]any)
	require.Len(t, rows, 4)
	var found map[string]any
	for _, row := range rows {
		rec := row.(map[string]any)
		if int64(rec["id"].(float64)) == id {
			found = rec
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "Oncology", found["specialization"])

	resp, _ = request(t, srv, http.MethodDelete, fmt.Sprintf("/api/v1/doctor?id=%d", id), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = request(t, srv, http.MethodDelete, fmt.Sprintf("/api/v1/doctor?id=%d", id), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCenterByIDAndRooms(t *testing.T) {
	_, srv := newTestServer(t)
	token := login(t, srv, "admin@example.com", "admin123")

	resp, payload := request(t, srv, http.MethodGet, "/api/v1/medical/center/1", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	center := payload["data"].(map[string]any)
	assert.Equal(t, "Central Hospital", center["centerName"])

	resp, payload = request(t, srv, http.MethodGet, "/api/v1/medical/center/channelingRooms?id=1", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rooms := payload["data"].([]any)
	assert.Len(t, rooms, 2)

	resp, _ = request(t, srv, http.MethodGet, "/api/v1/medical/center/99", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestApproveComment(t *testing.T) {
	_, srv := newTestServer(t)
	token := login(t, srv, "admin@example.com", "admin123")

	resp, _ := request(t, srv, http.MethodPut, "/api/v1/comment/approve?id=1", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, payload := request(t, srv, http.MethodGet, "/api/v1/comment/getAll", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rows := payload["data"].([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "APPROVED", rows[0].(map[string]any)["status"])
}

func TestPasswordChange(t *testing.T) {
	_, srv := newTestServer(t)
	token := login(t, srv, "admin@example.com", "admin123")

	t.Run("wrong current password", func(t *testing.T) {
		change := map[string]string{"oldPassword": "wrong", "newPassword": "next456"}
		resp, payload := request(t, srv, http.MethodPut, "/api/v1/user/password", token, change)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "current password is incorrect", payload["message"])
	})

	t.Run("changes and old password stops working", func(t *testing.T) {
		change := map[string]string{"oldPassword": "admin123", "newPassword": "next456"}
		resp, _ := request(t, srv, http.MethodPut, "/api/v1/user/password", token, change)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body, _ := json.Marshal(map[string]string{"email": "admin@example.com", "password": "admin123"})
		loginResp, err := http.Post(srv.URL+"/api/v1/user/login", "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		defer loginResp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, loginResp.StatusCode)

		login(t, srv, "admin@example.com", "next456")
	})
}

func TestSendCampaign(t *testing.T) {
	_, srv := newTestServer(t)
	token := login(t, srv, "admin@example.com", "admin123")

	t.Run("explicit recipients", func(t *testing.T) {
		campaign := map[string]any{"subject": "Update", "body": "Hello", "doctorIds": []int64{1, 2}}
		resp, payload := request(t, srv, http.MethodPost, "/api/v1/email/send", token, campaign)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.EqualValues(t, 2, payload["data"].(map[string]any)["recipients"])
	})

	t.Run("empty list means all doctors", func(t *testing.T) {
		campaign := map[string]any{"subject": "Update", "body": "Hello"}
		resp, payload := request(t, srv, http.MethodPost, "/api/v1/email/send", token, campaign)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.EqualValues(t, 3, payload["data"].(map[string]any)["recipients"])
	})

	t.Run("missing subject rejected", func(t *testing.T) {
		campaign := map[string]any{"body": "Hello"}
		resp, _ := request(t, srv, http.MethodPost, "/api/v1/email/send", token, campaign)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
