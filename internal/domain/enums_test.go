package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidNotificationType(t *testing.T) {
	t.Run("valid types", func(t *testing.T) {
		for _, v := range NotificationTypes {
			require.True(t, IsValidNotificationType(v), "expected valid type: %s", v)
		}
	})

	t.Run("invalid types", func(t *testing.T) {
		invalid := []string{"", "infoo", "system", "warning1"}
		for _, v := range invalid {
			require.False(t, IsValidNotificationType(v), "expected invalid type: %s", v)
		}
	})
}

func TestEnumValidators(t *testing.T) {
	require.True(t, IsValidUserRole(UserRoleGuest))
	require.False(t, IsValidUserRole("root"))
	require.True(t, IsValidOrderStatus(OrderStatusCancelled))
	require.False(t, IsValidOrderStatus("canceled"))
	require.True(t, IsValidTheme(ThemeSystem))
	require.False(t, IsValidTheme("blue"))
	require.True(t, IsValidLogLevel(LogLevelWarn))
	require.False(t, IsValidLogLevel("warning"))
}

func TestCheckEnum(t *testing.T) {
	t.Run("empty passes", func(t *testing.T) {
		require.NoError(t, CheckEnum("role", "", UserRoles))
	})

	t.Run("member passes", func(t *testing.T) {
		require.NoError(t, CheckEnum("role", UserRoleAdmin, UserRoles))
	})

	t.Run("outsider fails", func(t *testing.T) {
		err := CheckEnum("role", "root", UserRoles)
		require.ErrorIs(t, err, ErrInvalidValue)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		require.Equal(t, "role", verr.Field)
		require.Equal(t, "role must be one of: admin, user, guest", verr.Error())
	})
}
