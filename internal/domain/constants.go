package domain

// Default configuration values
const (
	DefaultSlotStepMinutes         = 0 // 0 = шаг равен длительности услуги
	DefaultAdvanceBookingDays      = 0 // 0 = unlimited
	DefaultMinBookingNoticeMinutes = 0
	DefaultMaxHorizonDays          = 31

	DefaultWorkdayStart = "09:00"
	DefaultWorkdayEnd   = "18:00"
)

// Business validation constants
const (
	MinSlotStepMinutes          = 0
	MaxSlotStepMinutes          = 480 // 8 hours
	MinAdvanceBookingDays       = 0
	MaxAdvanceBookingDays       = 365 // 1 year
	MinBookingNoticeMinutes     = 0
	MaxBookingNoticeMinutes     = 10080 // 1 week
	MinHorizonDays              = 1
	MaxHorizonDays              = 92
	MaxServiceDurationMinutes   = 1440
	MaxBufferMinutes            = 240
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxAbsenceReasonLength      = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных бронирований
// Используется для фильтрации при поиске конфликтов
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
