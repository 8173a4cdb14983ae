package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"artspace_backend/internals/configs"
	authPw "artspace_backend/internals/features/users/auth/helper"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func newAuthApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	configs.JWTSecret = "test-secret"
	configs.AdminLogin = "admin"
	configs.AdminPassword = "root-pass"

	db, mock := newMockDB(t)
	app := fiber.New()
	app.Post("/auth/register", func(c *fiber.Ctx) error { return Register(db, c) })
	app.Post("/auth/login", func(c *fiber.Ctx) error { return Login(db, c) })
	return app, mock
}

func doPost(t *testing.T, app *fiber.App, target string, body interface{}) (int, map[string]interface{}, string) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", target, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)

	var decoded map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp.StatusCode, decoded, resp.Header.Get(fiber.HeaderSetCookie)
}

func expectUserByLogin(mock sqlmock.Sqlmock, login, hash string) {
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE login =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "login", "password", "email", "role_id"}).
			AddRow(5, login, hash, login+"@example.com", 2))
	mock.ExpectQuery(`SELECT \* FROM "roles" WHERE "roles"\."id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(2, "USER"))
}

func TestRegisterCreatesUserWithDefaultRole(t *testing.T) {
	app, mock := newAuthApp(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "roles" WHERE title =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(2, "USER"))
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()
	// The created user is read back for the response.
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id" =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "login", "password", "email", "role_id"}).
			AddRow(7, "alice", "hash", "alice@example.com", 2))
	mock.ExpectQuery(`SELECT \* FROM "roles" WHERE "roles"\."id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(2, "USER"))
	mock.ExpectQuery(`SELECT "id" FROM "tickets" WHERE user_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	status, body, _ := doPost(t, app, "/auth/register", fiber.Map{
		"login": "alice", "password": "pw1234", "email": "alice@example.com",
	})
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "alice", body["login"])
	assert.Equal(t, "USER", body["role_name"])
	assert.NotContains(t, body, "password")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterDuplicateLoginIsConflict(t *testing.T) {
	app, mock := newAuthApp(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	status, _, _ := doPost(t, app, "/auth/register", fiber.Map{
		"login": "alice", "password": "pw1234", "email": "alice@example.com",
	})
	assert.Equal(t, fiber.StatusConflict, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginSetsSessionCookie(t *testing.T) {
	app, mock := newAuthApp(t)

	hash, err := authPw.HashPassword("right-pass")
	require.NoError(t, err)
	expectUserByLogin(mock, "alice", hash)

	status, body, cookie := doPost(t, app, "/auth/login", fiber.Map{
		"login": "alice", "password": "right-pass",
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "alice", body["login"])
	assert.Equal(t, "USER", body["role"])
	assert.Contains(t, cookie, configs.JWTCookieName+"=")
	assert.Contains(t, cookie, "HttpOnly")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginWrongPasswordIsUnauthorized(t *testing.T) {
	app, mock := newAuthApp(t)

	hash, err := authPw.HashPassword("right-pass")
	require.NoError(t, err)
	expectUserByLogin(mock, "alice", hash)

	status, _, cookie := doPost(t, app, "/auth/login", fiber.Map{
		"login": "alice", "password": "wrong-pass",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Empty(t, cookie)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginUnknownLoginIsUnauthorized(t *testing.T) {
	app, mock := newAuthApp(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE login =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "login", "password"}))

	status, _, _ := doPost(t, app, "/auth/login", fiber.Map{
		"login": "ghost", "password": "whatever",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginDatabaseFailureIsNotUnauthorized(t *testing.T) {
	app, mock := newAuthApp(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE login =`).
		WillReturnError(fmt.Errorf("pq: connection reset by peer"))

	status, _, _ := doPost(t, app, "/auth/login", fiber.Map{
		"login": "alice", "password": "right-pass",
	})
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
