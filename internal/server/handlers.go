package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "malformed request body")
		return
	}

	u, ok := s.fixtures.FindUser(req.Email)
	if !ok || u.Password != req.Password {
		writeFailure(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := s.issueToken(u, s.now())
	if err != nil {
		s.log.Error(r.Context(), "failed to sign token", "error", err)
		writeFailure(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.log.Info(r.Context(), "user logged in", "email", u.Email, "role", u.Role)
	writeJSON(w, http.StatusOK, map[string]any{
		"jwt":      token,
		"userName": u.Name,
		"email":    u.Email,
		"id":       u.ID,
		"role":     u.Role,
		"userId":   u.UserID,
	})
}

func (s *Server) handlePasswordChange(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if req.NewPassword == "" {
		writeFailure(w, http.StatusBadRequest, "new password must not be empty")
		return
	}

	email := requestEmail(r.Context())
	u, ok := s.fixtures.FindUser(email)
	if !ok || u.Password != req.OldPassword {
		writeFailure(w, http.StatusBadRequest, "current password is incorrect")
		return
	}

	s.fixtures.SetPassword(email, req.NewPassword)
	writeData(w, nil)
}

func (s *Server) handleList(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeData(w, s.fixtures.List(name))
	}
}

func (s *Server) handleSave(name, idField string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, ok := decodeRecord(w, r)
		if !ok {
			return
		}
		id := s.fixtures.Save(name, idField, rec)
		writeData(w, map[string]any{idField: id})
	}
}

func (s *Server) handleUpdate(name, idField string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, ok := decodeRecord(w, r)
		if !ok {
			return
		}
		if !s.fixtures.Update(name, idField, rec) {
			writeFailure(w, http.StatusNotFound, "record not found")
			return
		}
		writeData(w, nil)
	}
}

func (s *Server) handleDelete(name, idField string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := queryID(w, r)
		if !ok {
			return
		}
		if !s.fixtures.Delete(name, idField, id) {
			writeFailure(w, http.StatusNotFound, "record not found")
			return
		}
		writeData(w, nil)
	}
}

func (s *Server) handleCenter(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid center id")
		return
	}
	for _, rec := range s.fixtures.List("centers") {
		if recID, ok := recordID(rec, "id"); ok && recID == id {
			writeData(w, rec)
			return
		}
	}
	writeFailure(w, http.StatusNotFound, "medical center not found")
}

func (s *Server) handleRooms(w http.ResponseWriter, r *http.Request) {
	centerID, ok := queryID(w, r)
	if !ok {
		return
	}
	rooms := []map[string]any{}
	for _, rec := range s.fixtures.List("rooms") {
		if recCenter, ok := recordID(rec, "centerId"); ok && recCenter == centerID {
			rooms = append(rooms, rec)
		}
	}
	writeData(w, rooms)
}

func (s *Server) handleApproveComment(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(w, r)
	if !ok {
		return
	}
	if !s.fixtures.SetField("comments", "id", id, "status", "APPROVED") {
		writeFailure(w, http.StatusNotFound, "comment not found")
		return
	}
	writeData(w, nil)
}

func (s *Server) handleSendCampaign(w http.ResponseWriter, r *http.Request) {
	var campaign struct {
		Subject   string  `json:"subject"`
		Body      string  `json:"body"`
		DoctorIDs []int64 `json:"doctorIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&campaign); err != nil {
		writeFailure(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if campaign.Subject == "" || campaign.Body == "" {
		writeFailure(w, http.StatusBadRequest, "subject and body are required")
		return
	}

	recipients := len(campaign.DoctorIDs)
	if recipients == 0 {
		recipients = len(s.fixtures.List("doctors"))
	}
	s.log.Info(r.Context(), "campaign queued", "subject", campaign.Subject, "recipients", recipients)
	writeData(w, map[string]any{"recipients": recipients})
}

func decodeRecord(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var rec map[string]any
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeFailure(w, http.StatusBadRequest, "malformed request body")
		return nil, false
	}
	return rec, true
}

func queryID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
