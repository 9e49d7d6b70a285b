package user_test

import (
	"fmt"
	"testing"

	"github.com/quotery/quotes-api/internal/database"
	"github.com/quotery/quotes-api/internal/models"
	"github.com/quotery/quotes-api/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func TestListUsersHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)

	testutils.CreateTestUser(t, database.DB, "alice", "password123", models.RoleUser)
	testutils.CreateTestUser(t, database.DB, "bob", "password123", models.RoleUser)
	admin := testutils.CreateTestUser(t, database.DB, "carol", "password123", models.RoleAdmin)

	t.Run("Anonymous listing hides roles", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/users", nil, "")
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		result := testutils.AssertSuccess(t, resp)
		users := result.Data.([]interface{})
		assert.Len(t, users, 3)
		for _, raw := range users {
			u := raw.(map[string]interface{})
			assert.NotContains(t, u, "role")
		}
	})

	t.Run("Admin listing includes roles", func(t *testing.T) {
		token := testutils.GetAuthToken(t, admin)

		resp, err := testutils.MakeRequest(app, "GET", "/users", nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		result := testutils.AssertSuccess(t, resp)
		users := result.Data.([]interface{})
		for _, raw := range users {
			u := raw.(map[string]interface{})
			assert.Contains(t, u, "role")
		}
	})

	t.Run("Admin filters by role", func(t *testing.T) {
		token := testutils.GetAuthToken(t, admin)

		resp, err := testutils.MakeRequest(app, "GET", "/users?role=admin", nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		result := testutils.AssertSuccess(t, resp)
		users := result.Data.([]interface{})
		assert.Len(t, users, 1)
		assert.Equal(t, "carol", users[0].(map[string]interface{})["username"])
	})

	t.Run("Error - Admin with invalid role filter", func(t *testing.T) {
		token := testutils.GetAuthToken(t, admin)

		resp, err := testutils.MakeRequest(app, "GET", "/users?role=SUPERUSER", nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 400, resp.Code)

		testutils.AssertError(t, resp, "Invalid Role.")
	})

	t.Run("Role filter is ignored for non-admins", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/users?role=SUPERUSER", nil, "")
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		result := testutils.AssertSuccess(t, resp)
		assert.Len(t, result.Data.([]interface{}), 3)
	})

	t.Run("Username filter", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/users?username=ali", nil, "")
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		result := testutils.AssertSuccess(t, resp)
		users := result.Data.([]interface{})
		assert.Len(t, users, 1)
		assert.Equal(t, "alice", users[0].(map[string]interface{})["username"])
	})
}

func TestGetUserHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)

	alice := testutils.CreateTestUser(t, database.DB, "alice", "password123", models.RoleUser)
	bob := testutils.CreateTestUser(t, database.DB, "bob", "password123", models.RoleUser)
	admin := testutils.CreateTestUser(t, database.DB, "carol", "password123", models.RoleAdmin)

	t.Run("Owner sees their own role", func(t *testing.T) {
		token := testutils.GetAuthToken(t, alice)

		resp, err := testutils.MakeRequest(app, "GET", fmt.Sprintf("/users/%d", alice.ID), nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		result := testutils.AssertSuccess(t, resp)
		u := result.Data.(map[string]interface{})
		assert.Equal(t, "USER", u["role"])
	})

	t.Run("Other users do not see the role", func(t *testing.T) {
		token := testutils.GetAuthToken(t, bob)

		resp, err := testutils.MakeRequest(app, "GET", fmt.Sprintf("/users/%d", alice.ID), nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		result := testutils.AssertSuccess(t, resp)
		u := result.Data.(map[string]interface{})
		assert.NotContains(t, u, "role")
		assert.NotContains(t, u, "password")
	})

	t.Run("Admin sees any role", func(t *testing.T) {
		token := testutils.GetAuthToken(t, admin)

		resp, err := testutils.MakeRequest(app, "GET", fmt.Sprintf("/users/%d", alice.ID), nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		result := testutils.AssertSuccess(t, resp)
		assert.Equal(t, "USER", result.Data.(map[string]interface{})["role"])
	})

	t.Run("Error - Invalid id", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/users/0", nil, "")
		assert.NoError(t, err)
		assert.Equal(t, 400, resp.Code)

		testutils.AssertError(t, resp, "Invalid ID.")
	})

	t.Run("Error - Unknown user", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/users/9999", nil, "")
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.Code)

		testutils.AssertError(t, resp, "User not found.")
	})
}

func TestGetUserQuotesHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)

	alice := testutils.CreateTestUser(t, database.DB, "alice", "password123", models.RoleUser)
	bob := testutils.CreateTestUser(t, database.DB, "bob", "password123", models.RoleUser)
	author := testutils.CreateTestAuthor(t, database.DB, "Maya Angelou", models.StatusApproved)
	category := testutils.CreateTestCategory(t, database.DB, "Courage", models.StatusApproved)

	testutils.CreateTestQuote(t, database.DB, "If you don't like something, change it.", author.ID, alice.ID, models.StatusApproved, category)
	testutils.CreateTestQuote(t, database.DB, "Nothing will work unless you do.", author.ID, alice.ID, models.StatusPending, category)
	testutils.CreateTestQuote(t, database.DB, "We delight in the beauty of the butterfly.", author.ID, alice.ID, models.StatusRejected, category)

	t.Run("Owner sees their full submission history", func(t *testing.T) {
		token := testutils.GetAuthToken(t, alice)

		resp, err := testutils.MakeRequest(app, "GET", fmt.Sprintf("/users/%d/quotes", alice.ID), nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		result := testutils.AssertSuccess(t, resp)
		assert.Len(t, result.Data.([]interface{}), 3)
	})

	t.Run("Others do not see rejected submissions", func(t *testing.T) {
		token := testutils.GetAuthToken(t, bob)

		resp, err := testutils.MakeRequest(app, "GET", fmt.Sprintf("/users/%d/quotes", alice.ID), nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		result := testutils.AssertSuccess(t, resp)
		assert.Len(t, result.Data.([]interface{}), 2)
	})

	t.Run("Error - Unknown user", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/users/9999/quotes", nil, "")
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.Code)

		testutils.AssertError(t, resp, "User not found.")
	})
}

func TestUpdateUserHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)

	alice := testutils.CreateTestUser(t, database.DB, "alice", "password123", models.RoleUser)
	bob := testutils.CreateTestUser(t, database.DB, "bob", "password123", models.RoleUser)
	admin := testutils.CreateTestUser(t, database.DB, "carol", "password123", models.RoleAdmin)

	aliceURL := fmt.Sprintf("/users/%d", alice.ID)

	t.Run("Error - Cannot update another user", func(t *testing.T) {
		token := testutils.GetAuthToken(t, bob)
		body := map[string]interface{}{"username": "hijacked"}

		resp, err := testutils.MakeRequest(app, "PATCH", aliceURL, body, token)
		assert.NoError(t, err)
		assert.Equal(t, 403, resp.Code)

		testutils.AssertError(t, resp, "Forbidden")
	})

	t.Run("Error - User cannot change own role", func(t *testing.T) {
		token := testutils.GetAuthToken(t, alice)
		body := map[string]interface{}{"role": "ADMIN"}

		resp, err := testutils.MakeRequest(app, "PATCH", aliceURL, body, token)
		assert.NoError(t, err)
		assert.Equal(t, 403, resp.Code)

		testutils.AssertError(t, resp, "Users cannot change their own roles or modify isDeleted directly.")
	})

	t.Run("Error - User cannot modify isDeleted", func(t *testing.T) {
		token := testutils.GetAuthToken(t, alice)
		body := map[string]interface{}{"isDeleted": true}

		resp, err := testutils.MakeRequest(app, "PATCH", aliceURL, body, token)
		assert.NoError(t, err)
		assert.Equal(t, 403, resp.Code)

		testutils.AssertError(t, resp, "Users cannot change their own roles or modify isDeleted directly.")
	})

	t.Run("Error - isDeleted must be boolean", func(t *testing.T) {
		token := testutils.GetAuthToken(t, admin)
		body := map[string]interface{}{"isDeleted": "maybe"}

		resp, err := testutils.MakeRequest(app, "PATCH", aliceURL, body, token)
		assert.NoError(t, err)
		assert.Equal(t, 400, resp.Code)

		testutils.AssertError(t, resp, "isDeleted is neither true or false.")
	})

	t.Run("Error - Admin cannot change another user's password", func(t *testing.T) {
		token := testutils.GetAuthToken(t, admin)
		body := map[string]interface{}{"password": "newpassword"}

		resp, err := testutils.MakeRequest(app, "PATCH", aliceURL, body, token)
		assert.NoError(t, err)
		assert.Equal(t, 403, resp.Code)

		testutils.AssertError(t, resp, "Admins cannot change a user password.")
	})

	t.Run("Error - Username taken", func(t *testing.T) {
		token := testutils.GetAuthToken(t, alice)
		body := map[string]interface{}{"username": "bob"}

		resp, err := testutils.MakeRequest(app, "PATCH", aliceURL, body, token)
		assert.NoError(t, err)
		assert.Equal(t, 409, resp.Code)

		testutils.AssertError(t, resp, "Username already exists.")
	})

	t.Run("Success - Owner renames and changes password", func(t *testing.T) {
		token := testutils.GetAuthToken(t, alice)
		body := map[string]interface{}{
			"username": "alice2",
			"password": "newpassword456",
		}

		resp, err := testutils.MakeRequest(app, "PATCH", aliceURL, body, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		result := testutils.AssertSuccess(t, resp)
		assert.Equal(t, "User updated.", result.Message)
		assert.Equal(t, "alice2", result.Data.(map[string]interface{})["username"])

		login := map[string]interface{}{"username": "alice2", "password": "newpassword456"}
		loginResp, err := testutils.MakeRequest(app, "POST", "/authentication/login", login, "")
		assert.NoError(t, err)
		assert.Equal(t, 200, loginResp.Code)
	})

	t.Run("Success - Admin promotes a user", func(t *testing.T) {
		token := testutils.GetAuthToken(t, admin)
		body := map[string]interface{}{"role": "admin"}

		resp, err := testutils.MakeRequest(app, "PATCH", fmt.Sprintf("/users/%d", bob.ID), body, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		result := testutils.AssertSuccess(t, resp)
		assert.Equal(t, "ADMIN", result.Data.(map[string]interface{})["role"])
	})

	t.Run("Error - Requires authentication", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "PATCH", aliceURL, map[string]interface{}{"username": "x"}, "")
		assert.NoError(t, err)
		assert.Equal(t, 401, resp.Code)
	})
}

func TestDeleteUserHandler(t *testing.T) {
	app := testutils.SetupTestApp(t)

	admin := testutils.CreateTestUser(t, database.DB, "carol", "password123", models.RoleAdmin)

	t.Run("Error - Cannot delete another user", func(t *testing.T) {
		victim := testutils.CreateTestUser(t, database.DB, "victim", "password123", models.RoleUser)
		attacker := testutils.CreateTestUser(t, database.DB, "attacker", "password123", models.RoleUser)
		token := testutils.GetAuthToken(t, attacker)

		resp, err := testutils.MakeRequest(app, "DELETE", fmt.Sprintf("/users/%d", victim.ID), nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 403, resp.Code)

		testutils.AssertError(t, resp, "Only admins or the respective user can delete an account.")
	})

	t.Run("Success - Self delete anonymizes the account", func(t *testing.T) {
		leaver := testutils.CreateTestUser(t, database.DB, "leaver", "password123", models.RoleUser)
		token := testutils.GetAuthToken(t, leaver)

		resp, err := testutils.MakeRequest(app, "DELETE", fmt.Sprintf("/users/%d", leaver.ID), nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		result := testutils.AssertSuccess(t, resp)
		assert.Equal(t, "User deleted.", result.Message)

		var u models.User
		assert.NoError(t, database.DB.First(&u, leaver.ID).Error)
		assert.True(t, u.IsDeleted)
		assert.Equal(t, fmt.Sprintf("deleteduser%d", leaver.ID), u.Username)
	})

	t.Run("Success - Admin deletes any account", func(t *testing.T) {
		target := testutils.CreateTestUser(t, database.DB, "target", "password123", models.RoleUser)
		token := testutils.GetAuthToken(t, admin)

		resp, err := testutils.MakeRequest(app, "DELETE", fmt.Sprintf("/users/%d", target.ID), nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		testutils.AssertSuccess(t, resp)
	})

	t.Run("Error - Unknown user", func(t *testing.T) {
		token := testutils.GetAuthToken(t, admin)

		resp, err := testutils.MakeRequest(app, "DELETE", "/users/9999", nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.Code)

		testutils.AssertError(t, resp, "User not found.")
	})
}
