package grammarquiz

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type recordingNotifier struct {
	texts []string
	err   error
}

func (n *recordingNotifier) Notify(text string) error {
	n.texts = append(n.texts, text)
	return n.err
}

func newTestService(t *testing.T, opts ...Option) *QuizService {
	t.Helper()
	opts = append([]Option{Name("test"), ID("test-id"), Host("localhost"), Port(8089)}, opts...)
	srvc, err := New(opts...)
	require.NoError(t, err)
	return srvc
}

func do(s *QuizService, method, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/submit", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func TestSubmitGradesAndNotifies(t *testing.T) {
	n := &recordingNotifier{}
	s := newTestService(t, WithNotifier(n))

	rec := do(s, http.MethodPost, `{"name":"Ann","group":"B1","answers":{"q1":"had already cooked"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, gjson.Get(body, "success").Bool())
	assert.Equal(t, int64(1), gjson.Get(body, "score").Int())
	assert.Equal(t, int64(30), gjson.Get(body, "total").Int())
	results := gjson.Get(body, "results").Array()
	require.Len(t, results, 30)
	assert.True(t, results[0].Get("correct").Bool())
	assert.Equal(t, int64(1), results[0].Get("question").Int())
	assert.Equal(t, "had already cooked", results[0].Get("studentAnswer").String())
	assert.Equal(t, "had already cooked", results[0].Get("correctAnswers.0").String())
	for _, r := range results[1:] {
		assert.False(t, r.Get("correct").Bool())
		assert.True(t, r.Get("correctAnswers").IsArray())
	}

	require.Len(t, n.texts, 1)
	assert.Contains(t, n.texts[0], "👤 Name: Ann")
	assert.Contains(t, n.texts[0], "✅ Score: 1 / 30")
}

func TestSubmitMissingFields(t *testing.T) {
	s := newTestService(t)

	bodies := []string{
		`{"group":"B1","answers":{}}`,
		`{"name":"","group":"B1","answers":{}}`,
		`{"name":"Ann","answers":{}}`,
		`{"name":"Ann","group":"B1"}`,
		`{"name":"Ann","group":"B1","answers":null}`,
		`{"name":0,"group":"B1","answers":{}}`,
		`not json`,
		``,
	}
	for _, b := range bodies {
		rec := do(s, http.MethodPost, b)

		assert.Equal(t, http.StatusBadRequest, rec.Code, b)
		assert.JSONEq(t, `{"success":false,"message":"Missing name, group or answers"}`, rec.Body.String(), b)
	}
}

func TestSubmitWrongMethod(t *testing.T) {
	s := newTestService(t)

	for _, m := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		rec := do(s, m, "")

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, m)
		assert.JSONEq(t, `{"success":false,"message":"Only POST allowed"}`, rec.Body.String(), m)
	}
}

func TestSubmitNotifierFailureIgnored(t *testing.T) {
	n := &recordingNotifier{err: errors.New("network down")}
	s := newTestService(t, WithNotifier(n))

	rec := do(s, http.MethodPost, `{"name":"Ann","group":"B1","answers":{"q1":"had already cooked","q2":"had been studying"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(2), gjson.Get(rec.Body.String(), "score").Int())
	assert.Len(t, n.texts, 1)
}

func TestSubmitTelegramUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL + "/bot%s/%s"
	srv.Close()

	s := newTestService(t, NotifyBotToken("123:abc"), NotifyChatID("42"), NotifyAPIEndpoint(endpoint))
	require.NotNil(t, s.notifier)

	rec := do(s, http.MethodPost, `{"name":"Ann","group":"B1","answers":{"q1":"had already cooked"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gjson.Get(rec.Body.String(), "success").Bool())
	assert.Equal(t, int64(1), gjson.Get(rec.Body.String(), "score").Int())
}

func TestSubmitTelegramDelivered(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := ioutil.ReadAll(r.Body)
		got = string(b)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	s := newTestService(t, NotifyBotToken("123:abc"), NotifyChatID("42"), NotifyAPIEndpoint(srv.URL+"/bot%s/%s"))

	rec := do(s, http.MethodPost, `{"name":"Ann","group":"B1","answers":{"q1":"had already cooked"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "42", gjson.Get(got, "chat_id").String())
	assert.Contains(t, gjson.Get(got, "text").String(), "✅ Score: 1 / 30")
}

func TestSubmitWithoutNotifyConfig(t *testing.T) {
	s := newTestService(t, NotifyBotToken("123:abc"))
	assert.Nil(t, s.notifier)

	rec := do(s, http.MethodPost, `{"name":"Ann","group":"B1","answers":{}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(0), gjson.Get(rec.Body.String(), "score").Int())
}

func TestSubmitPanicIsServerError(t *testing.T) {
	s := newTestService(t, WithNotifier(panicNotifier{}))

	rec := do(s, http.MethodPost, `{"name":"Ann","group":"B1","answers":{}}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Server error"}`, rec.Body.String())
}

type panicNotifier struct{}

func (panicNotifier) Notify(string) error { panic("boom") }

func TestUnknownRoute(t *testing.T) {
	s := newTestService(t)
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()

	s.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, gjson.Get(rec.Body.String(), "success").Bool())
}

func TestPing(t *testing.T) {
	s := newTestService(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	s.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestParseSubmissionCoercesAnswers(t *testing.T) {
	sub, err := parseSubmission([]byte(`{"name":"Ann","group":7,"answers":{"q1":"had met","q2":null,"q3":false,"q4":0,"q5":12,"q6":true}}`))

	require.NoError(t, err)
	assert.Equal(t, "Ann", sub.Name)
	assert.Equal(t, "7", sub.Group)
	assert.Equal(t, "had met", sub.Answers["q1"])
	assert.Equal(t, "", sub.Answers["q2"])
	assert.Equal(t, "", sub.Answers["q3"])
	assert.Equal(t, "", sub.Answers["q4"])
	assert.Equal(t, "12", sub.Answers["q5"])
	assert.Equal(t, "true", sub.Answers["q6"])
}

func TestOptions(t *testing.T) {
	_, err := New(Host(""))
	assert.Error(t, err)

	_, err = New(Port(-1))
	assert.Error(t, err)

	_, err = New(WithNotifier(nil))
	assert.Error(t, err)

	s, err := New(Name(""), ID(""), Host("localhost"), Port(0))
	require.NoError(t, err)
	assert.NotEmpty(t, s.serviceName)
	assert.NotEmpty(t, s.serviceID)
	assert.Greater(t, s.servicePort, 0)
}
