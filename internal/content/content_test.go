package content_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"testing/fstest"
	"time"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const achievementsJSON = `[
  {"title": "Hackverse 9.0", "subtitle": "1st prize", "githubUrl": "https://github.com/x/a", "url": "https://a.example", "stack": ["Go"], "isLive": true},
  {"title": "SRM Hackathon", "subtitle": "Winner", "githubUrl": "", "url": "", "stack": [], "isCodeLive": true},
  {"title": "Innovation Award", "subtitle": "", "githubUrl": "", "url": "", "stack": ["PyTorch"]}
]`

func TestFileSource_Achievements(t *testing.T) {
	src := content.NewFileSource(fstest.MapFS{
		content.AchievementsFile: {Data: []byte(achievementsJSON)},
	})

	got, err := content.Achievements(context.Background(), src)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Hackverse 9.0", got[0].Title)
	assert.True(t, got[0].IsLive)
	assert.Equal(t, []string{"Go"}, got[0].Stack)

	tiles := content.Tiles(got)
	assert.Equal(t, []content.Badge{content.BadgeLive}, tiles[0].Badges)
	assert.Equal(t, []content.Badge{content.BadgeCode}, tiles[1].Badges)
	assert.Empty(t, tiles[2].Badges)
}

func TestFileSource_Missing(t *testing.T) {
	src := content.NewFileSource(fstest.MapFS{})

	_, err := content.Certifications(context.Background(), src)
	assert.Error(t, err)
}

func TestFileSource_CancelledContext(t *testing.T) {
	src := content.NewFileSource(fstest.MapFS{content.ProjectsFile: {Data: []byte(`[]`)}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := content.Projects(ctx, src)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoad_EmptyAndNull(t *testing.T) {
	src := content.NewFileSource(fstest.MapFS{
		"empty.json": {Data: []byte("")},
		"null.json":  {Data: []byte("null")},
	})

	for _, name := range []string{"empty.json", "null.json"} {
		got, err := content.Load[content.Experience](context.Background(), src, name)
		require.NoError(t, err, name)
		assert.NotNil(t, got, name)
		assert.Empty(t, got, name)
	}
}

func TestLoad_Malformed(t *testing.T) {
	src := content.NewFileSource(fstest.MapFS{
		content.ExperienceFile: {Data: []byte(`{"role": "not an array"}`)},
	})

	_, err := content.Experiences(context.Background(), src)
	assert.Error(t, err)
}

func TestHTTPSource_OK(t *testing.T) {
	var gotPath atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath.Store(r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(achievementsJSON))
	}))
	defer srv.Close()

	src, err := content.NewHTTPSource(srv.URL+"/data", time.Second)
	require.NoError(t, err)

	got, err := content.Achievements(context.Background(), src)
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, "/data/achievements.json", gotPath.Load())
}

func TestHTTPSource_StatusError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	src, err := content.NewHTTPSource(srv.URL, time.Second)
	require.NoError(t, err)

	_, err = content.Achievements(context.Background(), src)
	require.Error(t, err)

	var statusErr *content.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load(), "failed fetches are not retried")
}

func TestNewHTTPSource_RejectsRelative(t *testing.T) {
	_, err := content.NewHTTPSource("/data", time.Second)
	assert.Error(t, err)
}

func TestCertificationTile(t *testing.T) {
	c := content.Certification{Title: "OCI Foundations", IsCertified: true, Stack: []string{"OCI"}}

	tile := c.Tile()
	assert.Equal(t, "OCI Foundations", tile.Title)
	assert.Equal(t, []content.Badge{content.BadgeCertified}, tile.Badges)
}

func TestAboutIsACopy(t *testing.T) {
	a := content.About()
	require.Len(t, a.Skills, 4)
	a.Skills[0].Skills[0] = "COBOL"
	a.Highlights[0] = "changed"

	b := content.About()
	assert.Equal(t, "C++", b.Skills[0].Skills[0])
	assert.NotEqual(t, "changed", b.Highlights[0])
	assert.Len(t, b.Contacts, 4)
}
