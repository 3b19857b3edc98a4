package domain

const (
	UserRoleAdmin = "admin"
	UserRoleUser  = "user"
	UserRoleGuest = "guest"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

const (
	NotificationTypeInfo    = "info"
	NotificationTypeWarning = "warning"
	NotificationTypeError   = "error"
	NotificationTypeSuccess = "success"
)

const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

var (
	UserRoles         = []string{UserRoleAdmin, UserRoleUser, UserRoleGuest}
	OrderStatuses     = []string{OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled}
	NotificationTypes = []string{NotificationTypeInfo, NotificationTypeWarning, NotificationTypeError, NotificationTypeSuccess}
	Themes            = []string{ThemeLight, ThemeDark, ThemeSystem}
	LogLevels         = []string{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError}
)

func IsValidUserRole(value string) bool         { return oneOf(value, UserRoles) }
func IsValidOrderStatus(value string) bool      { return oneOf(value, OrderStatuses) }
func IsValidNotificationType(value string) bool { return oneOf(value, NotificationTypes) }
func IsValidTheme(value string) bool            { return oneOf(value, Themes) }
func IsValidLogLevel(value string) bool         { return oneOf(value, LogLevels) }

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
