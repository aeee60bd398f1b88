package handlers_test

import (
	"AprovaFlow/internal/model"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestAdminHandlers_InviteUser(t *testing.T) {
	env := newTestEnv(t)
	agency := env.seedUser(t, "u-agency", "agency@acod.com", model.RoleAgency)
	client := env.seedUser(t, "u-client", "client@acod.com", model.RoleClient)

	t.Run("agency invites a client", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/api/admin/invite-user", agency, map[string]string{
			"email": "nova@acod.com", "display_name": "Nova Cliente",
		})
		assert.Equal(t, http.StatusCreated, rr.Code)
		invited := decodeJSON[map[string]string](t, rr)

		// профиль создан сразу, роль по умолчанию cliente
		p, err := env.profiles.GetByUserID(context.Background(), invited["id"])
		assert.NoError(t, err)
		assert.Equal(t, model.RoleClient, p.Role)
		assert.Equal(t, "Nova Cliente", p.DisplayName)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/api/admin/invite-user", agency, map[string]string{
			"email": "nova@acod.com",
		})
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("client is denied", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/api/admin/invite-user", client, map[string]string{
			"email": "hack@acod.com",
		})
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("email is validated", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/api/admin/invite-user", agency, map[string]string{
			"email": "not-an-email",
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAdminHandlers_DeleteUser(t *testing.T) {
	env := newTestEnv(t)
	agency := env.seedUser(t, "u-agency", "agency@acod.com", model.RoleAgency)
	client := env.seedUser(t, "u-client", "client@acod.com", model.RoleClient)

	// у удаляемого клиента есть запись контента
	rr := env.do(t, http.MethodPost, "/api/contents", client, map[string]string{
		"mode": "theme", "date": "2024-03-15", "feed_theme": "t",
	})
	assert.Equal(t, http.StatusCreated, rr.Code)

	t.Run("client is denied", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/api/admin/delete-user", client, map[string]string{"user_id": agency})
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("cascade removes contents, profile and account", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/api/admin/delete-user", agency, map[string]string{"user_id": client})
		assert.Equal(t, http.StatusOK, rr.Code)

		ctx := context.Background()
		items, err := env.contents.ListByClient(ctx, client)
		assert.NoError(t, err)
		assert.Empty(t, items)

		_, err = env.profiles.GetByUserID(ctx, client)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

		_, err = env.users.GetUserByID(ctx, client)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("repeat delete converges", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/api/admin/delete-user", agency, map[string]string{"user_id": client})
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("missing user_id fails validation", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/api/admin/delete-user", agency, map[string]string{})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
