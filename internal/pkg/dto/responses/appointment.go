package responses

type Appointment struct {
	ID                  string `json:"id"`
	PatientID           string `json:"patientId,omitempty"`
	ProviderID          string `json:"providerId,omitempty"`
	AppointmentDateTime string `json:"appointmentDateTime,omitempty"`
	StartTime           string `json:"startTime,omitempty"`
	Status              string `json:"status,omitempty"`
}

type AppointmentResult = APIResponse[Appointment]
