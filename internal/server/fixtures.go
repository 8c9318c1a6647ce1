package server

import "sync"

type user struct {
	ID       int64
	UserID   string
	Name     string
	Email    string
	Password string
	Role     string
}

// Fixtures is the in-memory data backing the stub. Collections hold generic
// records keyed the way the real API serializes them, so list endpoints can
// return them untouched.
type Fixtures struct {
	mu          sync.Mutex
	seq         int64
	users       []user
	collections map[string][]map[string]any
}

func NewFixtures() *Fixtures {
	f := &Fixtures{
		seq: 100,
		users: []user{
			{ID: 1, UserID: "USR-1", Name: "Admin User", Email: "admin@example.com", Password: "admin123", Role: "Admin"},
			{ID: 2, UserID: "USR-2", Name: "Dr. Sarah Johnson", Email: "sarah.johnson@example.com", Password: "doctor123", Role: "Doctor"},
		},
		collections: map[string][]map[string]any{
			"doctors": {
				{"id": int64(1), "name": "Dr. Sarah Johnson", "specialization": "Cardiology", "qualification": "MBBS, MD", "contact": "+1 (555) 123-4567", "email": "sarah.johnson@example.com", "medicalCenter": "Central Hospital", "registrationNumber": "REG12345"},
				{"id": int64(2), "name": "Dr. Michael Chen", "specialization": "Neurology", "qualification": "MBBS, MD", "contact": "+1 (555) 234-5678", "email": "michael.chen@example.com", "medicalCenter": "Westside Medical Center", "registrationNumber": "REG23456"},
				{"id": int64(3), "name": "Dr. Emily Rodriguez", "specialization": "Pediatrics", "qualification": "MBBS", "contact": "+1 (555) 345-6789", "email": "emily.rodriguez@example.com", "medicalCenter": "Central Hospital", "registrationNumber": "REG34567"},
			},
			"centers": {
				{"id": int64(1), "centerName": "Central Hospital", "address": "100 Main St", "contact": "+1 (555) 000-0001", "status": "ACTIVE"},
				{"id": int64(2), "centerName": "Westside Medical Center", "address": "200 West Ave", "contact": "+1 (555) 000-0002", "status": "ACTIVE"},
			},
			"rooms": {
				{"roomId": int64(1), "centerId": int64(1), "roomName": "Room A", "description": "Ground floor", "status": "ACTIVE"},
				{"roomId": int64(2), "centerId": int64(1), "roomName": "Room B", "description": "First floor", "status": "ACTIVE"},
				{"roomId": int64(3), "centerId": int64(2), "roomName": "Room 1", "description": "Main wing", "status": "ACTIVE"},
			},
			"schedules": {
				{"scheduleId": int64(1), "doctorName": "Dr. Sarah Johnson", "medicalCenterName": "Central Hospital", "roomName": "Room A", "dayOfWeek": "Monday", "startTime": "09:00", "endTime": "12:00", "scheduleStatus": "ACTIVE"},
				{"scheduleId": int64(2), "doctorName": "Dr. Michael Chen", "medicalCenterName": "Westside Medical Center", "roomName": "Room 1", "dayOfWeek": "Wednesday", "startTime": "14:00", "endTime": "17:00", "scheduleStatus": "ACTIVE"},
			},
			"admins": {
				{"id": int64(1), "name": "Admin User", "email": "admin@example.com", "role": "Super Admin", "lastLogin": "2023-07-10T09:30:00", "status": "Active"},
			},
			"patients": {
				{"id": int64(1), "name": "John Smith", "gender": "Male", "age": int64(45), "contact": "+1 (555) 123-4567", "email": "john.smith@example.com", "address": "123 Main St", "registeredDate": "2023-01-15"},
				{"id": int64(2), "name": "Emily Johnson", "gender": "Female", "age": int64(32), "contact": "+1 (555) 234-5678", "email": "emily.johnson@example.com", "address": "456 Oak Ave", "registeredDate": "2023-02-22"},
			},
			"payments": {
				{"paymentId": int64(1), "patientId": int64(1), "patientName": "John Smith", "medicalCenterId": int64(1), "medicalCenterName": "Central Hospital", "paymentDate": "2023-07-01", "paidAmount": 120.50},
				{"paymentId": int64(2), "patientId": int64(2), "patientName": "Emily Johnson", "medicalCenterId": int64(2), "medicalCenterName": "Westside Medical Center", "paymentDate": "2023-07-03", "paidAmount": 85.00},
			},
			"comments": {
				{"id": int64(1), "patientName": "John Smith", "text": "Very helpful staff", "createdAt": "2023-07-05", "status": "PENDING"},
			},
			"templates": {
				{"id": int64(1), "name": "Schedule Update", "subject": "Important: Schedule Update", "body": "Dear [Doctor Name],\n\nYour schedule has been updated for the upcoming week."},
			},
		},
	}
	return f
}

func (f *Fixtures) nextID() int64 {
	f.seq++
	return f.seq
}

// List returns a copy of the named collection.
func (f *Fixtures) List(name string) []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	src := f.collections[name]
	out := make([]map[string]any, len(src))
	copy(out, src)
	return out
}

// Save appends rec to the collection, assigning a fresh value for idField.
func (f *Fixtures) Save(name, idField string, rec map[string]any) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID()
	rec[idField] = id
	f.collections[name] = append(f.collections[name], rec)
	return id
}

// Update replaces the record whose idField matches rec's. Returns false when
// no such record exists.
func (f *Fixtures) Update(name, idField string, rec map[string]any) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := recordID(rec, idField)
	if !ok {
		return false
	}
	for i, existing := range f.collections[name] {
		if existingID, ok := recordID(existing, idField); ok && existingID == id {
			f.collections[name][i] = rec
			return true
		}
	}
	return false
}

// Delete removes the record with the given id. Returns false when absent.
func (f *Fixtures) Delete(name, idField string, id int64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	rows := f.collections[name]
	for i, existing := range rows {
		if existingID, ok := recordID(existing, idField); ok && existingID == id {
			f.collections[name] = append(rows[:i], rows[i+1:]...)
			return true
		}
	}
	return false
}

// SetField updates one field of the record with the given id.
func (f *Fixtures) SetField(name, idField string, id int64, field string, value any) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.collections[name] {
		if existingID, ok := recordID(existing, idField); ok && existingID == id {
			existing[field] = value
			return true
		}
	}
	return false
}

// FindUser looks a user up by email.
func (f *Fixtures) FindUser(email string) (user, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, true
		}
	}
	return user{}, false
}

// SetPassword updates the password of the user with the given email.
func (f *Fixtures) SetPassword(email, password string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.users {
		if f.users[i].Email == email {
			f.users[i].Password = password
			return true
		}
	}
	return false
}

func recordID(rec map[string]any, idField string) (int64, bool) {
	switch v := rec[idField].(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}
