package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"adminpanel_backend/internal/auth"
	"adminpanel_backend/internal/models"
)

// newTestDB поднимает чистую in-memory sqlite БД со всей схемой
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Organization{},
		&models.Branch{},
		&models.Device{},
		&models.AddOn{},
		&models.CustomPlan{},
		&models.Payment{},
		&models.UserPayout{},
		&models.RegistrationRequest{},
	))
	return db
}

func adminPrincipal() *auth.Principal {
	return &auth.Principal{SubjectID: 1, Role: auth.RoleAdmin}
}

func moderatorPrincipal() *auth.Principal {
	return &auth.Principal{SubjectID: 2, Role: auth.RoleModerator}
}

func registratorPrincipal(id uint) *auth.Principal {
	return &auth.Principal{SubjectID: id, Role: auth.RoleRegistrator}
}

func organizationPrincipal(id uint) *auth.Principal {
	return &auth.Principal{SubjectID: id, Role: auth.RoleOrganization}
}

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}
