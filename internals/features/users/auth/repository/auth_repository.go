package repository

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"artspace_backend/internals/configs"
	"artspace_backend/internals/constants"
	authPw "artspace_backend/internals/features/users/auth/helper"
	userModel "artspace_backend/internals/features/users/user/model"
	authHelper "artspace_backend/internals/helpers/auth"
	"artspace_backend/internals/helpers/errs"
)

// Credential is what login needs to know about an account, whichever source
// it came from.
type Credential struct {
	UserID uint
	Login  string
	Role   string

	passwordHash string // bcrypt hash for database users
	configPlain  string // reference password for the bootstrap admin
	fromConfig   bool
}

func (c *Credential) CheckPassword(password string) bool {
	if c.fromConfig {
		return subtle.ConstantTimeCompare([]byte(c.configPlain), []byte(password)) == 1
	}
	return authPw.CheckPasswordHash(password, c.passwordHash)
}

// IdentitySource resolves a login to a credential. The bootstrap admin from
// the environment and the users table are both sources; lookup order is
// config first so the admin keeps working on an empty database.
type IdentitySource interface {
	FindByLogin(db *gorm.DB, login string) (*Credential, error)
}

type ConfigAdminSource struct{}

func (ConfigAdminSource) FindByLogin(_ *gorm.DB, login string) (*Credential, error) {
	if configs.AdminPassword == "" || login != configs.AdminLogin {
		return nil, fmt.Errorf("%w: no config account for %q", errs.ErrNotFound, login)
	}
	return &Credential{
		UserID:      authHelper.AdminUserID,
		Login:       configs.AdminLogin,
		Role:        constants.RoleAdmin,
		configPlain: configs.AdminPassword,
		fromConfig:  true,
	}, nil
}

type DBUserSource struct{}

func (DBUserSource) FindByLogin(db *gorm.DB, login string) (*Credential, error) {
	var u userModel.UserModel
	if err := db.Preload("Role").Where("login = ?", login).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user with login %q", errs.ErrNotFound, login)
		}
		return nil, err
	}
	role := constants.RoleUser
	if u.Role != nil {
		role = u.Role.Title
	}
	return &Credential{
		UserID:       u.ID,
		Login:        u.Login,
		Role:         role,
		passwordHash: u.Password,
	}, nil
}

var sources = []IdentitySource{ConfigAdminSource{}, DBUserSource{}}

// LookupCredential walks the identity sources in order.
func LookupCredential(db *gorm.DB, login string) (*Credential, error) {
	for _, src := range sources {
		cred, err := src.FindByLogin(db, login)
		if err == nil {
			return cred, nil
		}
		if !errors.Is(err, errs.ErrNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: unknown login %q", errs.ErrNotFound, login)
}
