package auth

import (
	"testing"

	"emis-backend/internal/constants"
	"emis-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func setupAuthTest(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, password, role string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	u := models.User{
		Fullname:     "Test User",
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func TestLoginUser_MissingFields(t *testing.T) {
	db := setupAuthTest(t)
	_, err := LoginUser(db, LoginInput{Email: "a@b.com"})
	assert.ErrorIs(t, err, ErrEmailPasswordRequired)
	_, err = LoginUser(db, LoginInput{Password: "secret"})
	assert.ErrorIs(t, err, ErrEmailPasswordRequired)
}

func TestLoginUser_UnknownEmail(t *testing.T) {
	db := setupAuthTest(t)
	_, err := LoginUser(db, LoginInput{Email: "nobody@lgu.gov.ph", Password: "secret"})
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	db := setupAuthTest(t)
	seedUser(t, db, "staff@lgu.gov.ph", "correct horse", constants.RoleStaff)

	_, err := LoginUser(db, LoginInput{Email: "staff@lgu.gov.ph", Password: "wrong"})
	assert.ErrorIs(t, err, ErrIncorrectPassword)
}

func TestLoginUser_Success(t *testing.T) {
	db := setupAuthTest(t)
	seeded := seedUser(t, db, "staff@lgu.gov.ph", "correct horse", constants.RoleStaff)

	u, err := LoginUser(db, LoginInput{Email: "staff@lgu.gov.ph", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, seeded.UserID, u.UserID)
	assert.Equal(t, constants.RoleStaff, u.Role)
}

func TestEffectivePermissions_RoleDefaults(t *testing.T) {
	admin := &models.User{Role: constants.RoleAdmin}
	perms := EffectivePermissions(admin)
	for _, moduleID := range constants.AllModules {
		assert.True(t, perms[moduleID].Read, moduleID)
		assert.True(t, perms[moduleID].Write, moduleID)
	}

	pending := &models.User{Role: constants.RolePending}
	perms = EffectivePermissions(pending)
	for _, moduleID := range constants.AllModules {
		assert.False(t, perms[moduleID].Read, moduleID)
		assert.False(t, perms[moduleID].Write, moduleID)
	}
}

func TestEffectivePermissions_StoredMapWins(t *testing.T) {
	u := &models.User{
		Role: constants.RolePending,
		Permissions: datatypes.NewJSONType(models.PermissionMap{
			constants.ModuleBuildings: {Read: true, Write: false},
		}),
	}
	perms := EffectivePermissions(u)
	assert.True(t, perms[constants.ModuleBuildings].Read)
	assert.False(t, perms[constants.ModuleBuildings].Write)
	assert.False(t, perms[constants.ModuleLGUs].Read)
}
