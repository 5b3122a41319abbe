package requests

type Appointment struct {
	PatientID           string `json:"patientId" validate:"required"`
	ProviderID          string `json:"providerId" validate:"required"`
	AppointmentDateTime string `json:"appointmentDateTime" validate:"required,date_any"`
	EndDateTime         string `json:"endDateTime" validate:"required,date_any"`
	AppointmentType     string `json:"appointmentType" validate:"required,oneof=VIRTUAL IN_PERSON"`
	ChiefComplaint      string `json:"chiefComplaint" validate:"required,min=1,max=500"`
	Notes               string `json:"notes,omitempty"`
}

// BookAppointment is the scheduling payload of the web application.
type BookAppointment struct {
	Mode                 string   `json:"mode" validate:"required,oneof=VIRTUAL IN_PERSON"`
	PatientID            string   `json:"patientId" validate:"required"`
	CustomForms          []string `json:"customForms"`
	VisitType            string   `json:"visit_type"`
	Type                 string   `json:"type" validate:"required"`
	PaymentType          string   `json:"paymentType"`
	ProviderID           string   `json:"providerId" validate:"required"`
	StartTime            string   `json:"startTime" validate:"required,date_any"`
	EndTime              string   `json:"endTime" validate:"required,date_any"`
	InsuranceType        string   `json:"insurance_type"`
	Note                 string   `json:"note"`
	Authorization        string   `json:"authorization"`
	Forms                []string `json:"forms"`
	ChiefComplaint       string   `json:"chiefComplaint" validate:"required,min=1,max=500"`
	IsRecurring          bool     `json:"isRecurring"`
	RecurringFrequency   string   `json:"recurringFrequency"`
	ReminderSet          bool     `json:"reminder_set"`
	EndType              string   `json:"endType"`
	EndDate              string   `json:"endDate"`
	EndAfter             int      `json:"endAfter"`
	CustomFrequency      int      `json:"customFrequency"`
	CustomFrequencyUnit  string   `json:"customFrequencyUnit"`
	SelectedWeekdays     []string `json:"selectedWeekdays"`
	ReminderBeforeNumber int      `json:"reminder_before_number"`
	Timezone             string   `json:"timezone"`
	Duration             int      `json:"duration" validate:"gt=0"`
	XTenantID            string   `json:"xTENANTID"`
}
