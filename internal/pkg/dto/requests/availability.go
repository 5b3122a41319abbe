package requests

type AvailabilitySlot struct {
	DayOfWeek          string `json:"dayOfWeek" validate:"required"`
	StartTime          string `json:"startTime" validate:"required"`
	EndTime            string `json:"endTime" validate:"required"`
	SlotDuration       int    `json:"slotDuration" validate:"gte=0"`
	MinimumNoticeHours int    `json:"minimumNoticeHours" validate:"gte=0"`
	AppointmentType    string `json:"appointmentType" validate:"required,oneof=VIRTUAL IN_PERSON"`
}

type Availability struct {
	ProviderID string             `json:"providerId" validate:"required"`
	Slots      []AvailabilitySlot `json:"slots" validate:"min=1,dive"`
}

type AvailabilitySetting struct {
	Type          string `json:"type" validate:"required"`
	SlotTime      string `json:"slotTime" validate:"required"`
	MinNoticeUnit string `json:"minNoticeUnit"`
}

type DaySlot struct {
	Day              string `json:"day" validate:"required"`
	StartTime        string `json:"startTime" validate:"required"`
	EndTime          string `json:"endTime" validate:"required"`
	AvailabilityMode string `json:"availabilityMode" validate:"required,oneof=VIRTUAL IN_PERSON"`
}

// SetAvailability is the availability-setting payload of the web application.
type SetAvailability struct {
	SetToWeekdays       bool                  `json:"setToWeekdays"`
	ProviderID          string                `json:"providerId" validate:"required"`
	BookingWindow       string                `json:"bookingWindow"`
	Timezone            string                `json:"timezone"`
	BufferTime          int                   `json:"bufferTime" validate:"gte=0"`
	InitialConsultTime  int                   `json:"initialConsultTime" validate:"gte=0"`
	FollowupConsultTime int                   `json:"followupConsultTime" validate:"gte=0"`
	Settings            []AvailabilitySetting `json:"settings" validate:"min=1,dive"`
	BlockDays           []string              `json:"blockDays"`
	DaySlots            []DaySlot             `json:"daySlots" validate:"min=1,dive"`
	BookBefore          string                `json:"bookBefore"`
	XTenantID           string                `json:"xTENANTID"`
}
