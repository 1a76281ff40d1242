package constants

// Roles
const (
	ROLE_ADMIN  = "ADMIN"
	ROLE_DRIVER = "DRIVER"
	ROLE_USER   = "USER"
)

// Order status (canonical)
const (
	ORDER_PENDING    = "PENDING"
	ORDER_CONFIRMED  = "CONFIRMED"
	ORDER_PREPARING  = "PREPARING"
	ORDER_READY      = "READY"
	ORDER_DELIVERING = "DELIVERING"
	ORDER_COMPLETED  = "COMPLETED"
	ORDER_CANCELED   = "CANCELED"
)

// Reservation status (canonical)
const (
	RESERVATION_NEW       = "NEW"
	RESERVATION_CONFIRMED = "CONFIRMED"
	RESERVATION_COMPLETED = "COMPLETED"
	RESERVATION_CANCELED  = "CANCELED"
)

// Booking status (legacy app — chú ý CANCELLED viết 2 chữ L)
const (
	BOOKING_PENDING   = "PENDING"
	BOOKING_CONFIRMED = "CONFIRMED"
	BOOKING_COMPLETED = "COMPLETED"
	BOOKING_CANCELLED = "CANCELLED"
)

// Driver status (dùng chung cho users.driver_status và drivers.status)
const (
	DRIVER_AVAILABLE = "AVAILABLE"
	DRIVER_BUSY      = "BUSY"
	DRIVER_OFFLINE   = "OFFLINE"
)

// Common response messages
const (
	ERROR_INPUT                = "Invalid input"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_CREATE               = "Create failed"
	ERROR_UPDATE               = "Update failed"
	ERROR_DELETE               = "Delete failed"
	NOT_FOUND_RECORDS          = "Record not found"
	CAN_NOT_HASH_PASSWORD      = "Cannot hash password"
	ERROR_PARSE_DATA_TO_LOCALS = "Cannot parse request context"
	DATA_INPUT_IS_NOT_NUMBER   = "Dữ liệu đầu vào không phải là số"
)
