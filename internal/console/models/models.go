// Package models defines the typed request/response payloads the console
// exchanges with the channeling backend. List screens work with generic
// table records instead; these types back the prompt-based forms.
package models

// Doctor is the payload for doctor save/update calls.
type Doctor struct {
	ID                 int64  `json:"id,omitempty"`
	Name               string `json:"name"`
	Specialization     string `json:"specialization"`
	Qualification      string `json:"qualification"`
	Contact            string `json:"contact"`
	Email              string `json:"email"`
	MedicalCenter      string `json:"medicalCenter"`
	RegistrationNumber string `json:"registrationNumber"`
}

// MedicalCenter is the payload for medical center save/update calls.
type MedicalCenter struct {
	ID         int64  `json:"id,omitempty"`
	CenterName string `json:"centerName"`
	Address    string `json:"address"`
	Contact    string `json:"contact"`
	Status     string `json:"status"`
}

// Room is a channeling room inside a medical center.
type Room struct {
	RoomID      int64  `json:"roomId"`
	RoomName    string `json:"roomName"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// Schedule is the payload for channeling schedule save/update calls.
type Schedule struct {
	ScheduleID int64  `json:"scheduleId,omitempty"`
	DoctorID   int64  `json:"doctorId"`
	CenterID   int64  `json:"centerId"`
	RoomID     int64  `json:"roomId"`
	DayOfWeek  string `json:"dayOfWeek"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Status     string `json:"scheduleStatus"`
}

// Admin is the payload for admin save/update calls.
type Admin struct {
	ID     int64  `json:"id,omitempty"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// EmailTemplate is a reusable campaign template offered by the backend.
type EmailTemplate struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Campaign is the payload for sending an email campaign to doctors.
type Campaign struct {
	Subject   string  `json:"subject"`
	Body      string  `json:"body"`
	DoctorIDs []int64 `json:"doctorIds"`
}

// PasswordChange is the payload for the profile password change call.
type PasswordChange struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}
