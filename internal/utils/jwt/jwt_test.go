package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GenerateAndValidate(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	t.Run("Success", func(t *testing.T) {
		token, err := manager.Generate(42, "member")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		userID, role, err := manager.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, int64(42), userID)
		assert.Equal(t, "member", role)
	})

	t.Run("Admin role survives round trip", func(t *testing.T) {
		token, err := manager.Generate(1, "admin")
		require.NoError(t, err)

		_, role, err := manager.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "admin", role)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		token, err := manager.Generate(42, "member")
		require.NoError(t, err)

		other := NewManager("other-secret", time.Hour)
		_, _, err = other.Validate(token)
		assert.Error(t, err)
	})

	t.Run("Expired token", func(t *testing.T) {
		expired := NewManager("test-secret", -time.Minute)
		token, err := expired.Generate(42, "member")
		require.NoError(t, err)

		_, _, err = manager.Validate(token)
		assert.Error(t, err)
	})

	t.Run("Garbage token", func(t *testing.T) {
		_, _, err := manager.Validate("not-a-token")
		assert.Error(t, err)
	})
}
