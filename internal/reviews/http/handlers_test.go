package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmgportfolio/backend/internal/auth"
	"github.com/bmgportfolio/backend/internal/reviews/domain"
)

type fakeRepo struct {
	reviews  []domain.Review
	replaces int
}

func (f *fakeRepo) List(ctx context.Context) ([]domain.Review, error) {
	out := make([]domain.Review, len(f.reviews))
	copy(out, f.reviews)
	return out, nil
}

func (f *fakeRepo) ReplaceAll(ctx context.Context, reviews []domain.Review) error {
	f.reviews = reviews
	f.replaces++
	return nil
}

const testSecret = "secret-value"

func newRouter(repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	guard := auth.NewGuard("hunter2", testSecret, false)
	r := gin.New()
	Register(r.Group("/api/reviews"), repo, guard.RequireAdmin())
	return r
}

func doJSON(t *testing.T, router *gin.Engine, method, url string, body any, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	var buf []byte
	if body != nil {
		var err error
		buf, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: testSecret})
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func list(t *testing.T, router *gin.Engine) []domain.Review {
	t.Helper()

	rr := doJSON(t, router, "GET", "/api/reviews", nil, false)
	require.Equal(t, http.StatusOK, rr.Code)

	var out []domain.Review
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func TestList_Idempotent(t *testing.T) {
	repo := &fakeRepo{reviews: []domain.Review{
		{ID: "rev-1", Name: "Ana", Rating: 5},
		{ID: "rev-2", Name: "Bo", Rating: 4},
	}}
	router := newRouter(repo)

	first := list(t, router)
	second := list(t, router)

	assert.Equal(t, first, second)
	require.Len(t, first, 2)
	assert.Equal(t, "rev-1", first[0].ID)
	assert.Equal(t, "rev-2", first[1].ID)
}

func TestMutations_RequireAuth(t *testing.T) {
	repo := &fakeRepo{}
	router := newRouter(repo)

	calls := []struct {
		method string
		url    string
		body   any
	}{
		{"POST", "/api/reviews", gin.H{"name": "Ana"}},
		{"PUT", "/api/reviews", gin.H{"id": "rev-1", "name": "Ana"}},
		{"PUT", "/api/reviews", gin.H{"reorder": true, "items": []gin.H{}}},
		{"DELETE", "/api/reviews?id=rev-1", nil},
	}

	for _, call := range calls {
		rr := doJSON(t, router, call.method, call.url, call.body, false)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s", call.method, call.url)
	}

	assert.Zero(t, repo.replaces)
}

func TestCreate_RoundTrip(t *testing.T) {
	repo := &fakeRepo{reviews: []domain.Review{{ID: "rev-1", Name: "Ana"}}}
	router := newRouter(repo)

	rr := doJSON(t, router, "POST", "/api/reviews", gin.H{
		"name":        "Bo",
		"role":        "Owner",
		"content":     "Great work",
		"avatarColor": "#ff0000",
		"rating":      5,
		"price":       "100 R$",
		"project":     "Obby",
	}, true)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Success bool          `json:"success"`
		Review  domain.Review `json:"review"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, strings.HasPrefix(resp.Review.ID, "rev-"))

	got := list(t, router)
	require.Len(t, got, 2)
	assert.Equal(t, "rev-1", got[0].ID, "existing order preserved")
	assert.Equal(t, resp.Review, got[1], "new review appended at the end")
}

func TestCreate_RatingNotClamped(t *testing.T) {
	repo := &fakeRepo{}
	router := newRouter(repo)

	rr := doJSON(t, router, "POST", "/api/reviews", gin.H{"name": "Cy", "rating": 11}, true)
	require.Equal(t, http.StatusOK, rr.Code)

	got := list(t, router)
	require.Len(t, got, 1)
	assert.Equal(t, 11, got[0].Rating, "rating persists exactly as given")
}

func TestUpdate_InPlace(t *testing.T) {
	repo := &fakeRepo{reviews: []domain.Review{
		{ID: "rev-1", Name: "Ana", Rating: 5},
		{ID: "rev-2", Name: "Bo", Rating: 4},
		{ID: "rev-3", Name: "Cy", Rating: 3},
	}}
	router := newRouter(repo)

	rr := doJSON(t, router, "PUT", "/api/reviews", gin.H{
		"id":     "rev-2",
		"name":   "Bo Jr",
		"rating": 2,
	}, true)
	require.Equal(t, http.StatusOK, rr.Code)

	got := list(t, router)
	require.Len(t, got, 3)
	assert.Equal(t, "rev-1", got[0].ID)
	assert.Equal(t, "Bo Jr", got[1].Name)
	assert.Equal(t, 2, got[1].Rating)
	assert.Equal(t, "rev-3", got[2].ID)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &fakeRepo{reviews: []domain.Review{{ID: "rev-1"}}}
	router := newRouter(repo)

	rr := doJSON(t, router, "PUT", "/api/reviews", gin.H{"id": "rev-9", "name": "Ghost"}, true)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Zero(t, repo.replaces)
}

func TestReorder(t *testing.T) {
	seed := []domain.Review{
		{ID: "rev-1", Name: "Ana"},
		{ID: "rev-2", Name: "Bo"},
		{ID: "rev-3", Name: "Cy"},
	}

	t.Run("permutation keeps content, changes order", func(t *testing.T) {
		repo := &fakeRepo{reviews: seed}
		router := newRouter(repo)

		rr := doJSON(t, router, "PUT", "/api/reviews", gin.H{
			"reorder": true,
			"items":   []domain.Review{seed[2], seed[0], seed[1]},
		}, true)
		require.Equal(t, http.StatusOK, rr.Code)

		got := list(t, router)
		require.Len(t, got, 3)
		assert.Equal(t, []domain.Review{seed[2], seed[0], seed[1]}, got)
	})

	t.Run("extra and missing ids persist verbatim", func(t *testing.T) {
		repo := &fakeRepo{reviews: seed}
		router := newRouter(repo)

		replacement := []domain.Review{{ID: "rev-9", Name: "New"}, seed[0]}
		rr := doJSON(t, router, "PUT", "/api/reviews", gin.H{
			"reorder": true,
			"items":   replacement,
		}, true)
		require.Equal(t, http.StatusOK, rr.Code)

		assert.Equal(t, replacement, list(t, router))
	})
}

func TestDelete(t *testing.T) {
	repo := &fakeRepo{reviews: []domain.Review{{ID: "rev-1"}, {ID: "rev-2"}}}
	router := newRouter(repo)

	t.Run("missing id param", func(t *testing.T) {
		rr := doJSON(t, router, "DELETE", "/api/reviews", nil, true)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown id leaves the list unchanged", func(t *testing.T) {
		rr := doJSON(t, router, "DELETE", "/api/reviews?id=rev-9", nil, true)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Len(t, list(t, router), 2)
	})

	t.Run("removes exactly one", func(t *testing.T) {
		rr := doJSON(t, router, "DELETE", fmt.Sprintf("/api/reviews?id=%s", "rev-1"), nil, true)
		require.Equal(t, http.StatusOK, rr.Code)

		got := list(t, router)
		require.Len(t, got, 1)
		assert.Equal(t, "rev-2", got[0].ID)
	})
}
