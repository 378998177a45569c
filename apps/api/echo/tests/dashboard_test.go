package tests

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sujalpowar2903-sys/studenthub123/core/activity"
	"github.com/sujalpowar2903-sys/studenthub123/core/session"
	"github.com/sujalpowar2903-sys/studenthub123/tests"
)

func Test_dashboardApi_dashboard(t *testing.T) {
	app := setup(t)

	req, rec := newRequest(http.MethodGet, "/v1/dashboard")
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// any role may open the dashboard
	for _, role := range session.AllRoles {
		_, token := login(t, app, role)
		req, rec = newAuthRequest(http.MethodGet, "/v1/dashboard", token)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var dash activity.Dashboard
		unmarshal(t, rec.Body.Bytes(), &dash)
		assert.Len(t, dash.Stats, 4)
		require.Len(t, dash.Activities, 3)
		assert.Equal(t, "React Development Workshop", dash.Activities[0].Title)
		assert.Equal(t, activity.StatusPending, dash.Activities[1].Status)
		assert.Equal(t, "clock", dash.Activities[1].Badge.Icon)
		assert.Equal(t, "/add-achievement", dash.Actions[0].Path)
		assert.Equal(t, "/", dash.Logout.Path)
	}
}

func Test_dashboardApi_queryActivities(t *testing.T) {
	app := setup(t)
	_, token := login(t, app, session.RoleStudent)

	path := func(search, status, category, ordering string) string {
		v := make(url.Values)
		if search != "" {
			v.Add("search", search)
		}
		if status != "" {
			v.Add("status", status)
		}
		if category != "" {
			v.Add("category", category)
		}
		if ordering != "" {
			v.Add("ordering", ordering)
		}
		return "/v1/activities?" + v.Encode()
	}
	validate, _ := testutil.NewValidator()
	entries := activity.NewService(validate).Dashboard().Activities
	react, volunteering, internship := entries[0], entries[1], entries[2]
	empty := marchallObj(t, []activity.Entry{})

	runHttpTests(t, app, []httpTest{
		{name: "auth required", path: "/v1/activities", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{name: "all", path: "/v1/activities", token: token, wantCode: http.StatusOK, wantData: marchallObj(t, entries)},
		// filtering
		{name: "search (unknown)", path: path("lol", "", "", ""), token: token, wantCode: http.StatusOK, wantData: empty},
		{name: "search=react", path: path("react", "", "", ""), token: token, wantCode: http.StatusOK, wantData: marchallObj(t, []activity.Entry{react})},
		{name: "status=approved", path: path("", "approved", "", ""), token: token, wantCode: http.StatusOK, wantData: marchallObj(t, []activity.Entry{react, internship})},
		{
			name: "status (invalid)", path: path("", "archived", "", ""), token: token, wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"status": "status must be one of [approved pending rejected]"}),
		},
		{name: "category=Volunteering", path: path("", "", "Volunteering", ""), token: token, wantCode: http.StatusOK, wantData: marchallObj(t, []activity.Entry{volunteering})},
		// ordering
		{name: "order by date", path: path("", "", "", "date"), token: token, wantCode: http.StatusOK, wantData: marchallObj(t, []activity.Entry{internship, volunteering, react})},
		{
			name: "order by unknown field", path: path("", "", "", "-lol"), token: token, wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"ordering": `cannot order by "lol"`}),
		},
		// filtering & ordering
		{name: "approved by -date", path: path("", "approved", "", "-date"), token: token, wantCode: http.StatusOK, wantData: marchallObj(t, []activity.Entry{react, internship})},
	})
}
