package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Zachkp/portfolio/internal/visits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminServer(t *testing.T, store *fakeStore) testServer {
	t.Helper()
	cfg := testConfig()
	cfg.Admin.Enabled = true
	cfg.Admin.Password = "secret"
	return newTestServer(t, cfg, testContent(), store)
}

func (ts testServer) login(username, password string) *httptest.ResponseRecorder {
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func TestAdmin_DisabledByDefault(t *testing.T) {
	ts := newTestServer(t, testConfig(), testContent(), &fakeStore{})

	rec := ts.get("/admin/login")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdmin_LoginRejectsBadCredentials(t *testing.T) {
	ts := newAdminServer(t, &fakeStore{})

	for _, creds := range [][2]string{{"admin", "wrong"}, {"root", "secret"}, {"", ""}} {
		rec := ts.login(creds[0], creds[1])
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid credentials")
		assert.Nil(t, findCookie(rec, "admin_token"))
	}
}

func TestAdmin_ProtectedRoutesRedirect(t *testing.T) {
	ts := newAdminServer(t, &fakeStore{})

	for _, path := range []string{"/admin/dashboard", "/admin/api/stats", "/admin/export/stats"} {
		rec := ts.get(path)
		assert.Equal(t, http.StatusFound, rec.Code, path)
		assert.Equal(t, "/admin/login", rec.Header().Get("Location"), path)
	}

	rec := ts.get("/admin/api/stats", &http.Cookie{Name: "admin_token", Value: "forged"})
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestAdmin_SessionFlow(t *testing.T) {
	store := &fakeStore{stats: &visits.Stats{
		TotalVisits:    7,
		UniqueVisitors: 3,
		TopPaths:       []visits.PathCount{{Path: "/", Views: 5}},
	}}
	ts := newAdminServer(t, store)

	rec := ts.login("admin", "secret")
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/dashboard", rec.Header().Get("Location"))
	session := findCookie(rec, "admin_token")
	require.NotNil(t, session)
	assert.True(t, session.HttpOnly)
	assert.Len(t, session.Value, 64)

	rec = ts.get("/admin/dashboard", session)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<span>7</span> visits")

	rec = ts.get("/admin/api/stats", session)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats visits.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, int64(7), stats.TotalVisits)
	assert.Equal(t, int64(3), stats.UniqueVisitors)

	store.mu.Lock()
	store.recorded = append(store.recorded, visits.Visit{HashedIP: "abcd", Path: "/projects"})
	store.mu.Unlock()
	rec = ts.get("/admin/visitors", session)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"path":"/projects"`)

	rec = ts.get("/admin/export/stats", session)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")

	rec = ts.get("/admin/logout", session)
	assert.Equal(t, http.StatusFound, rec.Code)
	cleared := findCookie(rec, "admin_token")
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
}

func TestAdmin_StatsFailure(t *testing.T) {
	ts := newAdminServer(t, &fakeStore{statsErr: errStats})
	session := findCookie(ts.login("admin", "secret"), "admin_token")
	require.NotNil(t, session)

	rec := ts.get("/admin/dashboard", session)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to load statistics")

	rec = ts.get("/admin/api/stats", session)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAdmin_Cleanup(t *testing.T) {
	store := &fakeStore{deleted: 4}
	ts := newAdminServer(t, store)
	session := findCookie(ts.login("admin", "secret"), "admin_token")
	require.NotNil(t, session)

	req := httptest.NewRequest(http.MethodPost, "/admin/privacy/cleanup", nil)
	req.AddCookie(session)
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":4}`, rec.Body.String())
	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Equal(t, testConfig().Privacy.Retention, store.retention)
}
