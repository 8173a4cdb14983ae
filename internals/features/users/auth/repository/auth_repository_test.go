package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artspace_backend/internals/configs"
	"artspace_backend/internals/constants"
	authHelper "artspace_backend/internals/helpers/auth"
	"artspace_backend/internals/helpers/errs"
)

func TestConfigAdminSource(t *testing.T) {
	configs.AdminLogin = "admin"
	configs.AdminPassword = "root-pass"

	cred, err := ConfigAdminSource{}.FindByLogin(nil, "admin")
	require.NoError(t, err)
	assert.Equal(t, authHelper.AdminUserID, cred.UserID)
	assert.Equal(t, constants.RoleAdmin, cred.Role)
	assert.True(t, cred.CheckPassword("root-pass"))
	assert.False(t, cred.CheckPassword("wrong"))

	_, err = ConfigAdminSource{}.FindByLogin(nil, "someone-else")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestConfigAdminDisabledWithoutPassword(t *testing.T) {
	configs.AdminLogin = "admin"
	configs.AdminPassword = ""

	_, err := ConfigAdminSource{}.FindByLogin(nil, "admin")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
