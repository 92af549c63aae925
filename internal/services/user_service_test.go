package services_test

import (
	"fmt"
	"testing"

	"moreyacht/internal/models"
	"moreyacht/internal/repositories"
	"moreyacht/internal/services"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newUserFixture(t *testing.T, count int) (*services.UserService, *repositories.MockUserRepository) {
	t.Helper()
	userRepo := repositories.NewMockUserRepository()
	for i := 1; i <= count; i++ {
		assert.NoError(t, userRepo.Create(&models.User{
			ID:    fmt.Sprintf("user-%d", i),
			Name:  fmt.Sprintf("User %d", i),
			Email: fmt.Sprintf("user%d@example.com", i),
			Role:  models.RoleUser,
		}))
	}
	return services.NewUserService(userRepo), userRepo
}

func TestUserService_ListUsers_Pagination(t *testing.T) {
	userService, _ := newUserFixture(t, 25)

	page, err := userService.ListUsers(models.UserFilter{}, 1, 10)
	assert.NoError(t, err)
	assert.Len(t, page.Data, 10)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 3, page.TotalPages)

	last, err := userService.ListUsers(models.UserFilter{}, 3, 10)
	assert.NoError(t, err)
	assert.Len(t, last.Data, 5)
	assert.Equal(t, 3, last.Page)

	// Out of range values fall back to sane defaults.
	first, err := userService.ListUsers(models.UserFilter{}, 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, first.Page)
	assert.Len(t, first.Data, 10)
}

func TestUserService_ListUsers_Filters(t *testing.T) {
	userService, userRepo := newUserFixture(t, 3)
	assert.NoError(t, userRepo.Create(&models.User{
		ID: "admin-1", Name: "Boss", Email: "boss@moreyacht.ru", Role: models.RoleAdmin,
	}))

	admins, err := userService.ListUsers(models.UserFilter{Role: models.RoleAdmin}, 1, 10)
	assert.NoError(t, err)
	assert.Len(t, admins.Data, 1)
	assert.Equal(t, "Boss", admins.Data[0].Name)

	found, err := userService.ListUsers(models.UserFilter{Search: "user2"}, 1, 10)
	assert.NoError(t, err)
	assert.Len(t, found.Data, 1)
	assert.Equal(t, "user2@example.com", found.Data[0].Email)
}

func TestUserService_CreateUser(t *testing.T) {
	userService, _ := newUserFixture(t, 1)

	admin := &models.User{Name: "New Admin", Email: "new@moreyacht.ru", Role: models.RoleAdmin}
	assert.NoError(t, userService.CreateUser(admin, "secret123"))
	assert.NotEmpty(t, admin.ID)
	// Admin-created accounts keep the assigned role.
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("secret123")))

	// Duplicate email is rejected.
	err := userService.CreateUser(&models.User{Name: "Dup", Email: "user1@example.com"}, "secret123")
	assert.ErrorIs(t, err, repositories.ErrConflict)
}

func TestUserService_UpdateUser(t *testing.T) {
	userService, _ := newUserFixture(t, 2)

	updated, err := userService.UpdateUser("user-1", "Renamed", "", "+7 900 111-22-33", models.RoleAdmin, "")
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "+7 900 111-22-33", updated.Phone)
	assert.Equal(t, models.RoleAdmin, updated.Role)
	// Untouched fields keep their values.
	assert.Equal(t, "user1@example.com", updated.Email)

	// Switching to an email another account holds is rejected.
	_, err = userService.UpdateUser("user-1", "", "user2@example.com", "", "", "")
	assert.ErrorIs(t, err, repositories.ErrConflict)

	// Unknown role is rejected.
	_, err = userService.UpdateUser("user-1", "", "", "", "owner", "")
	assert.ErrorIs(t, err, repositories.ErrInvalid)

	_, err = userService.UpdateUser("missing", "X", "", "", "", "")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestUserService_DeleteUser(t *testing.T) {
	userService, _ := newUserFixture(t, 1)

	assert.NoError(t, userService.DeleteUser("user-1"))
	_, err := userService.GetUserByID("user-1")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	assert.ErrorIs(t, userService.DeleteUser("missing"), repositories.ErrNotFound)
}
