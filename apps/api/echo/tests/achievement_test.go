package tests

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/sujalpowar2903-sys/studenthub123/apps/api/echo"
	"github.com/sujalpowar2903-sys/studenthub123/core/achievement"
	"github.com/sujalpowar2903-sys/studenthub123/core/session"
)

func openDraft(t *testing.T, app testApp, token string) achievement.Draft {
	req, rec := newAuthRequest(http.MethodPost, "/v1/achievements/drafts", token)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var d achievement.Draft
	unmarshal(t, rec.Body.Bytes(), &d)
	return d
}

// do sends a JSON request and decodes the response Draft.
func do(t *testing.T, app testApp, method, path, token string, body []byte, wantCode int) achievement.Draft {
	req, rec := newAuthRequest(method, path, token, body)
	app.ServeHTTP(rec, req)
	require.Equal(t, wantCode, rec.Code, rec.Body.String())

	var d achievement.Draft
	if rec.Body.Len() > 0 {
		unmarshal(t, rec.Body.Bytes(), &d)
	}
	return d
}

type upload struct {
	name, contentType string
	content           []byte
}

func newUploadRequest(t *testing.T, path, token string, files ...upload) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="files"; filename="`+f.name+`"`)
		h.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	return req, httptest.NewRecorder()
}

func Test_achievementApi_auth(t *testing.T) {
	app := setup(t)
	sess, token := login(t, app, session.RoleStudent)
	_, otherToken := login(t, app, session.RoleStudent)
	d := app.achievementSvc.Open(sess.ID)
	path := "/v1/achievements/drafts/" + d.ID
	notFound := marchallObj(t, httpErr{Error: "draft not found"})

	runHttpTests(t, app, []httpTest{
		{name: "open: auth required", method: http.MethodPost, path: "/v1/achievements/drafts", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{name: "retrieve: auth required", path: path, wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{name: "submit: auth required", method: http.MethodPost, path: path + "/submit", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{name: "unknown draft", path: "/v1/achievements/drafts/lol", token: token, wantCode: http.StatusNotFound, wantData: notFound},
		{name: "another session's draft", path: path, token: otherToken, wantCode: http.StatusNotFound, wantData: notFound},
		{name: "own draft", path: path, token: token, wantCode: http.StatusOK, wantData: marchallObj(t, d)},
	})
}

func Test_achievementApi_update(t *testing.T) {
	app := setup(t)
	_, token := login(t, app, session.RoleStudent)
	d := openDraft(t, app, token)
	path := "/v1/achievements/drafts/" + d.ID

	runHttpTests(t, app, []httpTest{
		{name: "invalid payload", method: http.MethodPatch, path: path, token: token, body: []byte(`{"title":1}`), wantCode: http.StatusBadRequest, wantData: marchallObj(t, httpErr{Error: "invalid payload"})},
		{
			name: "invalid category", method: http.MethodPatch, path: path, token: token, body: []byte(`{"category":"Sports"}`), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{
				"category": "category must be one of Workshop, Internship, Volunteering, Certification, Leadership, Competition, Research or Publication",
			}),
		},
		{
			name: "invalid date", method: http.MethodPatch, path: path, token: token, body: []byte(`{"date":"2024-13-01"}`), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"date": "date must be a valid date (YYYY-MM-DD)"}),
		},
	})

	got := do(t, app, http.MethodPatch, path, token, []byte(`{"title":"Workshop A","category":"Workshop"}`), http.StatusOK)
	assert.Equal(t, "Workshop A", got.Title)
	assert.Equal(t, achievement.CategoryWorkshop, got.Category)

	got = do(t, app, http.MethodPatch, path, token, []byte(`{"description":"hooks"}`), http.StatusOK)
	assert.Equal(t, "Workshop A", got.Title, "unset fields are left untouched")
	assert.Equal(t, "hooks", got.Description)
}

func Test_achievementApi_tags(t *testing.T) {
	app := setup(t)
	_, token := login(t, app, session.RoleStudent)
	d := openDraft(t, app, token)
	path := "/v1/achievements/drafts/" + d.ID + "/tags"

	tag := func(s string) []byte { return marchallObj(t, TagRequest{Tag: s}) }

	got := do(t, app, http.MethodPost, path, token, tag(" react "), http.StatusOK)
	assert.Equal(t, []string{"react"}, got.Tags)

	got = do(t, app, http.MethodPost, path, token, tag("react"), http.StatusOK)
	assert.Equal(t, []string{"react"}, got.Tags, "duplicates are ignored")
	assert.Equal(t, "react", got.PendingTag)

	got = do(t, app, http.MethodPost, path, token, tag("  "), http.StatusOK)
	assert.Equal(t, []string{"react"}, got.Tags, "blank tags are ignored")

	got = do(t, app, http.MethodPost, path, token, tag("hooks"), http.StatusOK)
	assert.Equal(t, []string{"react", "hooks"}, got.Tags)
	assert.Empty(t, got.PendingTag)

	got = do(t, app, http.MethodDelete, path+"/redux", token, nil, http.StatusOK)
	assert.Equal(t, []string{"react", "hooks"}, got.Tags)

	got = do(t, app, http.MethodDelete, path+"/react", token, nil, http.StatusOK)
	assert.Equal(t, []string{"hooks"}, got.Tags)

	// tags needing escapes in a path segment
	for _, name := range []string{"CI/CD", "C++", "node js"} {
		got = do(t, app, http.MethodPost, path, token, tag(name), http.StatusOK)
		require.Contains(t, got.Tags, name)

		got = do(t, app, http.MethodDelete, path+"/"+url.PathEscape(name), token, nil, http.StatusOK)
		assert.Equal(t, []string{"hooks"}, got.Tags, "removing %q", name)
	}
}

func Test_achievementApi_attachments(t *testing.T) {
	app := setup(t)
	_, token := login(t, app, session.RoleStudent)
	d := openDraft(t, app, token)
	path := "/v1/achievements/drafts/" + d.ID + "/attachments"

	req, rec := newUploadRequest(t, path, token,
		upload{name: "certificate.pdf", contentType: "application/pdf", content: []byte("%PDF-1.4")},
		upload{name: "photo.png", contentType: "image/png", content: []byte("png")},
	)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var got achievement.Draft
	unmarshal(t, rec.Body.Bytes(), &got)
	assert.Equal(t, []achievement.Attachment{
		{Name: "certificate.pdf", Size: 8, ContentType: "application/pdf"},
		{Name: "photo.png", Size: 3, ContentType: "image/png"},
	}, got.Attachments)

	req, rec = newUploadRequest(t, path, token, upload{name: "cv.docx", contentType: "application/octet-stream", content: []byte("cv")})
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	unmarshal(t, rec.Body.Bytes(), &got)
	assert.Len(t, got.Attachments, 3, "attachments are appended")

	notFound := marchallObj(t, httpErr{Error: "attachment not found"})
	runHttpTests(t, app, []httpTest{
		{name: "not multipart", method: http.MethodPost, path: path, token: token, body: []byte(`{}`), wantCode: http.StatusBadRequest, wantData: marchallObj(t, httpErr{Error: "invalid payload"})},
		{name: "index out of range", method: http.MethodDelete, path: path + "/3", token: token, wantCode: http.StatusNotFound, wantData: notFound},
		{name: "negative index", method: http.MethodDelete, path: path + "/-1", token: token, wantCode: http.StatusNotFound, wantData: notFound},
		{name: "non-int index", method: http.MethodDelete, path: path + "/lol", token: token, wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "not found"})},
	})

	got = do(t, app, http.MethodDelete, path+"/1", token, nil, http.StatusOK)
	assert.Equal(t, []string{"certificate.pdf", "cv.docx"}, []string{got.Attachments[0].Name, got.Attachments[1].Name})
}

func Test_achievementApi_submit(t *testing.T) {
	app := setup(t)
	_, token := login(t, app, session.RoleStudent)
	d := openDraft(t, app, token)
	path := "/v1/achievements/drafts/" + d.ID

	missing := achievement.SubmitResult{
		Notification: achievement.NotificationMissingInformation,
		Fields: map[string]string{
			"title":    "this field is required",
			"category": "this field is required",
			"date":     "this field is required",
		},
	}
	runHttpTests(t, app, []httpTest{
		{name: "all missing", method: http.MethodPost, path: path + "/submit", token: token, wantCode: http.StatusBadRequest, wantData: marchallObj(t, missing)},
	})

	do(t, app, http.MethodPatch, path, token, []byte(`{"title":"Workshop A","category":"Workshop"}`), http.StatusOK)
	missing.Fields = map[string]string{"date": "this field is required"}
	runHttpTests(t, app, []httpTest{
		{name: "date missing", method: http.MethodPost, path: path + "/submit", token: token, wantCode: http.StatusBadRequest, wantData: marchallObj(t, missing)},
	})
	kept := do(t, app, http.MethodGet, path, token, nil, http.StatusOK)
	assert.Equal(t, "Workshop A", kept.Title, "draft is kept after a failed submit")

	do(t, app, http.MethodPatch, path, token, []byte(`{"date":"2024-05-01"}`), http.StatusOK)
	do(t, app, http.MethodPost, path+"/tags", token, []byte(`{"tag":"react"}`), http.StatusOK)
	do(t, app, http.MethodPost, path+"/tags", token, []byte(`{"tag":"hooks"}`), http.StatusOK)

	runHttpTests(t, app, []httpTest{
		{
			name: "submitted", method: http.MethodPost, path: path + "/submit", token: token, wantCode: http.StatusOK,
			wantData: marchallObj(t, achievement.SubmitResult{Notification: achievement.NotificationSubmitted, Redirect: "/dashboard"}),
		},
		{name: "values not retrievable", path: path, token: token, wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "draft not found"})},
		{name: "submit twice", method: http.MethodPost, path: path + "/submit", token: token, wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "draft not found"})},
	})
	assert.Equal(t, 0, app.achievementSvc.Count())
}

func Test_achievementApi_discard(t *testing.T) {
	app := setup(t)
	_, token := login(t, app, session.RoleStudent)
	d := openDraft(t, app, token)
	path := "/v1/achievements/drafts/" + d.ID

	req, rec := newAuthRequest(http.MethodDelete, path, token)
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	runHttpTests(t, app, []httpTest{
		{name: "discarded", path: path, token: token, wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "draft not found"})},
	})
}
