package handlers_test

import (
	"AprovaFlow/internal/config"
	"AprovaFlow/internal/handlers"
	"AprovaFlow/internal/middleware"
	"AprovaFlow/internal/model"
	"AprovaFlow/internal/repo"
	"AprovaFlow/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

const testSecret = "test-secret"

// testEnv — полный стек поверх in-memory SQLite: роутер со всеми
// мидлварями плюс репозитории для посева данных.
type testEnv struct {
	router   http.Handler
	users    repo.UserRepository
	profiles repo.ProfileRepository
	contents repo.ContentRepository
}

var testDBSeq atomic.Int64

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// cache=shared, иначе второе соединение пула видит свою пустую базу;
	// имя уникально на вызов, чтобы тесты не делили состояние
	dsn := fmt.Sprintf("file:handlerstest%d?mode=memory&cache=shared", testDBSeq.Add(1))
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Profile{}, &model.Content{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}

	cfg := &config.Config{AuthSecret: testSecret}
	logger := zap.NewNop().Sugar()

	users := repo.NewUserRepository(db)
	profiles := repo.NewProfileRepository(db)
	contents := repo.NewContentRepository(db)

	userSvc := service.NewUserService(users)
	contentSvc := service.NewContentService(contents, logger)
	profileSvc := service.NewProfileService(profiles, users, logger)
	adminSvc := service.NewAdminService(users, profiles, contents, &service.LogMailer{Logger: logger}, logger)

	h := handlers.NewHandler(userSvc, contentSvc, profileSvc, adminSvc, logger, cfg)
	return &testEnv{router: h.Router, users: users, profiles: profiles, contents: contents}
}

// seedUser создаёт учётную запись с профилем и возвращает id учётки.
func (e *testEnv) seedUser(t *testing.T, id, email string, role model.Role) string {
	t.Helper()
	ctx := context.Background()
	if _, err := e.users.CreateUser(ctx, &model.User{ID: id, Email: email, Password: "hash"}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if _, err := e.profiles.EnsureProfile(ctx, &model.Profile{ID: "p-" + id, UserID: id, Email: email, Role: role}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return id
}

func addAuth(t *testing.T, req *http.Request, userID string) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, userID, testSecret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}

// do выполняет запрос с JSON-телом от имени пользователя (или анонимно
// при пустом userID).
func (e *testEnv) do(t *testing.T, method, target, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	if userID != "" {
		addAuth(t, req, userID)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
	return out
}
