package app_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nekogravitycat/group-read-service/internal/app"
	"github.com/nekogravitycat/group-read-service/internal/client"
	"github.com/nekogravitycat/group-read-service/internal/group"
	groupHttp "github.com/nekogravitycat/group-read-service/internal/group/http"
	"github.com/nekogravitycat/group-read-service/internal/pkg/response"
	"github.com/nekogravitycat/group-read-service/internal/testutil"
)

type testApp struct {
	container *app.Container
}

func setup(t *testing.T) *testApp {
	pool := testutil.Pool(t)
	gin.SetMode(gin.TestMode)

	testutil.Office(t, pool, 1, "Head Office", ".1.")
	testutil.Office(t, pool, 2, "Branch", ".1.2.")
	testutil.Office(t, pool, 3, "Other Head", ".3.")
	testutil.Office(t, pool, 4, "Other Branch", ".3.4.")

	testutil.Staff(t, pool, 1, 1, "Head Staff", true)
	testutil.Staff(t, pool, 2, 2, "Branch Staff", false)

	testutil.Group(t, pool, testutil.GroupRow{ID: 12, Name: "North Center", OfficeID: 2, LevelID: int(group.LevelCenter)})
	testutil.Group(t, pool, testutil.GroupRow{ID: 10, Name: "Westside", OfficeID: 2, LevelID: int(group.LevelGroup)})
	testutil.Group(t, pool, testutil.GroupRow{ID: 13, Name: "Westbrook", OfficeID: 4, LevelID: int(group.LevelGroup)})

	testutil.Client(t, pool, 20, 2, "Ann", client.StatusActive)
	testutil.Client(t, pool, 21, 2, "Ben", 100)

	testutil.AppUser(t, pool, 1, 1, "mifos")
	testutil.AppUser(t, pool, 2, 3, "other")

	return &testApp{container: app.NewContainer(app.Config{
		DBPool:    pool,
		JWTSecret: "integration-secret",
		JWTTTL:    30 * time.Minute,
		Logger:    zap.NewNop(),
	})}
}

func (a *testApp) get(t *testing.T, path string, userID int64) *httptest.ResponseRecorder {
	t.Helper()
	token, err := a.container.JWTManager.GenerateAccessToken(userID, "")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	a.container.Router.ServeHTTP(w, req)
	return w
}

func TestGroupReadsAreHierarchyScoped(t *testing.T) {
	a := setup(t)

	t.Run("list", func(t *testing.T) {
		w := a.get(t, "/v1/groups", 1)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp response.PageResponse[groupHttp.GroupResponse]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Total)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, int64(10), resp.Items[0].ID)
		assert.Equal(t, "Branch", resp.Items[0].OfficeName)
	})

	t.Run("past the last page", func(t *testing.T) {
		w := a.get(t, "/v1/groups?limit=5&offset=50", 1)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"total":1,"limit":5,"offset":50,"items":[]}`, w.Body.String())
	})

	t.Run("get outside hierarchy", func(t *testing.T) {
		w := a.get(t, "/v1/groups/13", 1)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = a.get(t, "/v1/groups/13", 2)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("center is not a group", func(t *testing.T) {
		w := a.get(t, "/v1/groups/12", 1)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("lookup is unscoped", func(t *testing.T) {
		w := a.get(t, "/v1/groups/lookup?office_id=4", 1)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"id":13,"name":"Westbrook"}]`, w.Body.String())
	})

	t.Run("unknown user", func(t *testing.T) {
		w := a.get(t, "/v1/groups", 99)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGroupTemplate(t *testing.T) {
	a := setup(t)

	w := a.get(t, "/v1/groups/template?office_id=2&center_group=true", 1)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var tpl groupHttp.TemplateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tpl))
	assert.Equal(t, int64(2), tpl.OfficeID)
	assert.Nil(t, tpl.Center)
	assert.Nil(t, tpl.Staff)

	require.Len(t, tpl.CenterOptions, 1)
	assert.Equal(t, "North Center", tpl.CenterOptions[0].Name)

	require.Len(t, tpl.OfficeOptions, 2)
	assert.Equal(t, "Head Office", tpl.OfficeOptions[0].NameDecorated)
	assert.Equal(t, "....Branch", tpl.OfficeOptions[1].NameDecorated)

	// Staff of the office and its ancestors, ancestors first.
	require.Len(t, tpl.StaffOptions, 2)
	assert.Equal(t, "Head Staff", tpl.StaffOptions[0].DisplayName)
	assert.Equal(t, "Branch Staff", tpl.StaffOptions[1].DisplayName)

	require.Len(t, tpl.ClientOptions, 1)
	assert.Equal(t, "Ann", tpl.ClientOptions[0].DisplayName)

	require.Len(t, tpl.RoleOptions, 1)
	assert.Equal(t, "Leader", tpl.RoleOptions[0].Name)

	t.Run("empty collections are null", func(t *testing.T) {
		w := a.get(t, "/v1/groups/template?office_id=3&staff_in_selected_office_only=true", 1)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Contains(t, body, "staff_options")
		assert.Nil(t, body["staff_options"])
		assert.Nil(t, body["center_options"])
		assert.Nil(t, body["client_options"])
	})
}
