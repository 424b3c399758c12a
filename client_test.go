package mailtrain_go

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/block/mailtrain-go/errors"
	"github.com/block/mailtrain-go/logger"
	"github.com/block/mailtrain-go/types"
)

var (
	accessToken = "__ACCESS__TOKEN__"
	baseUrl     = "https://mail.example.com"
)

func Test_newClient(t *testing.T) {
	c := NewClient(accessToken, baseUrl)
	assert.NotNil(t, c)
	assert.Equal(t, time.Duration(0), c.httpClient.Timeout)
	assert.Equal(t, http.DefaultTransport, c.httpClient.Transport)
}

func Test_newClient_opts(t *testing.T) {
	tt := &fakeTransport{}
	c := NewClient(
		accessToken,
		baseUrl,
		WithTimeout(1*time.Second),
		WithTransport(tt),
		WithLogger(logger.NewStdOut()),
	)
	assert.Equal(t, 1*time.Second, c.httpClient.Timeout)
	assert.Equal(t, tt, c.httpClient.Transport)
}

func Test_newClient_init_all_apis(t *testing.T) {
	c := NewClient(accessToken, baseUrl)
	values := reflect.ValueOf(*c)
	fieldTypes := reflect.TypeOf(*c)
	for i := 0; i < values.NumField(); i++ {
		field := values.Field(i)
		if field.Kind() != reflect.Ptr {
			continue
		}
		fieldName := fieldTypes.Field(i).Name
		if field.IsNil() {
			assert.Fail(t, fmt.Sprintf("%s is not initialized", fieldName))
		}
	}
}

func Test_newClient_normalizes_base_url(t *testing.T) {
	c := NewClient(accessToken, "https://mail.example.com/")
	assert.Equal(t, "https://mail.example.com", c.BaseUrl())

	c = NewClient(accessToken, "https://mail.example.com")
	assert.Equal(t, "https://mail.example.com", c.BaseUrl())
}

func Test_config_WithTransport(t *testing.T) {
	c := config{}
	WithTransport(&fakeTransport{})(&c)
	assert.NotNil(t, c.transport)
}

func Test_config_WithTimeout(t *testing.T) {
	c := config{}
	WithTimeout(2 * time.Second)(&c)
	assert.Equal(t, 2*time.Second, c.timeout)
}

func Test_config_WithLogger(t *testing.T) {
	c := defaultConfig()
	WithLogger(nil)(c)
	assert.Equal(t, logger.Noop{}, c.logger)

	l := logger.NewStdOut()
	WithLogger(l)(c)
	assert.Equal(t, l, c.logger)
}

func TestClient_GetSubscribers_url(t *testing.T) {
	srv, calls := newMailtrainServer(t, func(r *http.Request) (int, string) {
		return http.StatusOK, `{"data":{"total":1,"start":0,"limit":10000,"subscriptions":[{"email":"a@example.com"}]},"error":null}`
	})

	c := NewClient(accessToken, srv.URL+"/")
	page, err := c.Subscriptions().Get("abc123", 0, 10000)
	require.NoError(t, err)
	require.Len(t, page.Subscriptions, 1)
	assert.Equal(t, "a@example.com", page.Subscriptions[0].String("email"))

	got := calls.all()
	require.Len(t, got, 1)
	assert.Equal(t, http.MethodGet, got[0].method)
	assert.Equal(t, "/api/subscriptions/abc123?access_token="+accessToken+"&start=0&limit=10000", got[0].uri)
}

func TestClient_UnsubscribeFromAllLists_order(t *testing.T) {
	srv, calls := newMailtrainServer(t, func(r *http.Request) (int, string) {
		if r.Method == http.MethodGet {
			return http.StatusOK, `{"data":[{"cid":"L1","name":"one"},{"cid":"L2","name":"two"}]}`
		}
		return http.StatusOK, `{"data":{"id":"sub-cid","unsubscribed":true}}`
	})

	c := NewClient(accessToken, srv.URL)
	ok, err := c.Subscriptions().UnsubscribeFromAllLists("user@example.com")
	require.NoError(t, err)
	assert.True(t, ok)

	got := calls.all()
	require.Len(t, got, 3)
	assert.Equal(t, "/api/lists/user@example.com", got[0].path)
	assert.Equal(t, http.MethodPost, got[1].method)
	assert.Equal(t, "/api/unsubscribe/L1", got[1].path)
	assert.Equal(t, "user@example.com", got[1].form.Get("EMAIL"))
	assert.Equal(t, "/api/unsubscribe/L2", got[2].path)
	for _, call := range got {
		assert.Equal(t, accessToken, call.token)
	}
}

func TestClient_Subscribe_is_repeatable(t *testing.T) {
	srv, calls := newMailtrainServer(t, func(r *http.Request) (int, string) {
		return http.StatusOK, `{"data":{"id":"sub-cid"}}`
	})

	c := NewClient(accessToken, srv.URL)
	req := types.NewSubscribeRequest("list-1", "user@example.com")
	for i := 0; i < 2; i++ {
		res, err := c.Subscriptions().Subscribe(req)
		require.NoError(t, err)
		assert.Equal(t, "sub-cid", res.Id())
	}
	res, err := c.Subscriptions().Update(req)
	require.NoError(t, err)
	assert.Equal(t, "sub-cid", res.Id())

	got := calls.all()
	require.Len(t, got, 3)
	for _, call := range got {
		assert.Equal(t, "/api/subscribe/list-1", call.path)
		assert.Equal(t, "yes", call.form.Get("FORCE_SUBSCRIBE"))
	}
}

func TestClient_invalid_email_never_hits_the_network(t *testing.T) {
	srv, calls := newMailtrainServer(t, func(r *http.Request) (int, string) {
		return http.StatusOK, `{"data":{}}`
	})
	c := NewClient(accessToken, srv.URL)

	malformed := []string{"not-an-email", "user@", "@example.com", "user@example", "user example@example.com", ""}
	for _, email := range malformed {
		ops := []func() error{
			func() error { _, err := c.Subscriptions().Subscribe(types.NewSubscribeRequest("l", email)); return err },
			func() error { _, err := c.Subscriptions().Update(types.NewSubscribeRequest("l", email)); return err },
			func() error { _, err := c.Subscriptions().Unsubscribe(email, "l"); return err },
			func() error { _, err := c.Subscriptions().UnsubscribeFromAllLists(email); return err },
			func() error { _, err := c.Subscriptions().Delete(email, "l"); return err },
			func() error { _, err := c.Subscriptions().DeleteFromAllLists(email); return err },
			func() error { _, err := c.Blacklist().Add(email); return err },
			func() error { _, err := c.Blacklist().Delete(email); return err },
			func() error { _, err := c.Lists().ByEmail(email); return err },
			func() error { _, err := c.Templates().Send(types.NewSendTemplateRequest(email)); return err },
		}
		for i, op := range ops {
			err := op()
			assert.True(t, errors.IsValidation(err), "%q, call #%d", email, i)
			assert.ErrorIs(t, err, errors.ErrInvalidEmail, "%q, call #%d", email, i)
		}
	}

	assert.Empty(t, calls.all())
}

func TestClient_remote_error(t *testing.T) {
	srv, _ := newMailtrainServer(t, func(r *http.Request) (int, string) {
		return http.StatusBadRequest, `{"error":"Selected list not found","data":null}`
	})
	c := NewClient(accessToken, srv.URL)

	_, err := c.Lists().Delete("missing")
	require.Error(t, err)
	assert.True(t, errors.IsRemote(err))

	apiErr := err.(*errors.ApiError)
	assert.Equal(t, "Selected list not found", apiErr.Message)
	assert.Equal(t, http.StatusBadRequest, apiErr.HttpStatusCode)
}

type recordedCall struct {
	method string
	path   string
	uri    string
	token  string
	form   url.Values
}

type recordedCalls struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (r *recordedCalls) add(c recordedCall) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
}

func (r *recordedCalls) all() []recordedCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recordedCall(nil), r.calls...)
}

func newMailtrainServer(
	t *testing.T,
	handler func(r *http.Request) (int, string),
) (*httptest.Server, *recordedCalls) {
	calls := &recordedCalls{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		calls.add(recordedCall{
			method: r.Method,
			path:   r.URL.Path,
			uri:    r.URL.RequestURI(),
			token:  r.URL.Query().Get("access_token"),
			form:   r.PostForm,
		})
		code, body := handler(r)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, calls
}

type fakeTransport struct {
}

func (f fakeTransport) RoundTrip(_ *http.Request) (*http.Response, error) {
	return nil, nil
}

var _ http.RoundTripper = &fakeTransport{}
