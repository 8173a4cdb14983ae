package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOn(t *testing.T, target string, defSort, defOrder string, opt Options) Params {
	t.Helper()
	var got Params
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ParseFiber(c, defSort, defOrder, opt)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestParseFiberDefaults(t *testing.T) {
	p := parseOn(t, "/x", "title", "asc", DefaultOpts)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultOpts.DefaultPerPage, p.PerPage)
	assert.Equal(t, "title", p.SortBy)
	assert.Equal(t, "asc", p.SortOrder)
}

func TestParseFiberClampsPerPage(t *testing.T) {
	p := parseOn(t, "/x?page=3&size=9999&order=desc", "id", "asc", DefaultOpts)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, DefaultOpts.MaxPerPage, p.PerPage)
	assert.Equal(t, "desc", p.SortOrder)
}

func TestParseFiberSizeAliases(t *testing.T) {
	assert.Equal(t, 25, parseOn(t, "/x?per_page=25", "id", "asc", DefaultOpts).PerPage)
	assert.Equal(t, 25, parseOn(t, "/x?limit=25", "id", "asc", DefaultOpts).PerPage)
}

func TestParseFiberIgnoresGarbage(t *testing.T) {
	p := parseOn(t, "/x?page=-2&size=abc&order=sideways", "id", "asc", DefaultOpts)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultOpts.DefaultPerPage, p.PerPage)
	assert.Equal(t, "asc", p.SortOrder)
}

func TestSafeOrderClauseWhitelist(t *testing.T) {
	allowed := map[string]string{"id": "id", "title": "title"}

	clause, err := Params{SortBy: "title", SortOrder: "desc"}.SafeOrderClause(allowed, "id")
	require.NoError(t, err)
	assert.Equal(t, "title DESC", clause)

	// Anything off the whitelist falls back to the default key.
	clause, err = Params{SortBy: "id; DROP TABLE users", SortOrder: "asc"}.SafeOrderClause(allowed, "id")
	require.NoError(t, err)
	assert.Equal(t, "id ASC", clause)
}

func TestOffset(t *testing.T) {
	p := Params{Page: 3, PerPage: 20}
	assert.Equal(t, 40, p.Offset())
	assert.Equal(t, 20, p.Limit())
}

func TestBuildMeta(t *testing.T) {
	m := BuildMeta(95, Params{Page: 2, PerPage: 10})
	assert.Equal(t, int64(95), m.Total)
	assert.Equal(t, 10, m.TotalPages)
	assert.True(t, m.HasNext)
	assert.True(t, m.HasPrev)

	empty := BuildMeta(0, Params{Page: 1, PerPage: 10})
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}

func TestBuildMetaGuardsZeroPerPage(t *testing.T) {
	m := BuildMeta(5, Params{Page: 1})
	assert.Equal(t, 1, m.PerPage)
	assert.Equal(t, 5, m.TotalPages)
}
