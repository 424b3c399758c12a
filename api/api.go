package api

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/block/mailtrain-go/errors"
	"github.com/block/mailtrain-go/logger"
	"github.com/block/mailtrain-go/types"
)

const (
	apiPrefix = "/api/"

	// DefaultLimit is the page size Mailtrain uses when none is given.
	DefaultLimit = 10000
)

type apiClient struct {
	baseUrl     string
	accessToken string
	rest        *resty.Client
	logger      logger.Logger
}

func newApiClient(
	baseUrl string,
	accessToken string,
	httpClient *http.Client,
	logger logger.Logger,
) *apiClient {
	rest := resty.NewWithClient(httpClient).
		SetLogger(logger).
		SetHeader("Accept", "application/json")

	return &apiClient{
		baseUrl:     NormalizeBaseUrl(baseUrl),
		accessToken: accessToken,
		rest:        rest,
		logger:      logger,
	}
}

// NormalizeBaseUrl removes one trailing slash, so that
// "https://mail.example.com/" and "https://mail.example.com"
// produce the same endpoints.
func NormalizeBaseUrl(baseUrl string) string {
	return strings.TrimSuffix(baseUrl, "/")
}

// param is a query parameter. Parameters are kept in a slice
// so they end up in the URL in the order they were given.
type param struct {
	key   string
	value string
}

// endpoint builds {baseUrl}/api/{path}?access_token={token}[&k=v...]
func (c *apiClient) endpoint(path string, query ...param) string {
	var sb strings.Builder
	sb.WriteString(c.baseUrl)
	sb.WriteString(apiPrefix)
	sb.WriteString(path)
	sb.WriteString("?access_token=")
	sb.WriteString(url.QueryEscape(c.accessToken))
	for _, p := range query {
		sb.WriteString("&")
		sb.WriteString(url.QueryEscape(p.key))
		sb.WriteString("=")
		sb.WriteString(url.QueryEscape(p.value))
	}
	return sb.String()
}

func (c *apiClient) getJson(path string, query []param, resData any) *errors.ApiError {
	return c.send(http.MethodGet, path, query, nil, resData)
}

func (c *apiClient) postForm(path string, form url.Values, resData any) *errors.ApiError {
	return c.send(http.MethodPost, path, nil, form, resData)
}

func (c *apiClient) deleteJson(path string, resData any) *errors.ApiError {
	return c.send(http.MethodDelete, path, nil, nil, resData)
}

func (c *apiClient) send(
	httpMethod string,
	path string,
	query []param,
	form url.Values,
	resData any,
) *errors.ApiError {
	endpoint := c.endpoint(path, query...)
	if _, err := url.Parse(endpoint); err != nil {
		return &errors.ApiError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Type:      errors.TYPE_REQUEST_PREP,
			SourceErr: err,
		}
	}

	req := c.rest.R()
	if form != nil {
		req.SetFormDataFromValues(form)
	}

	// the access token is part of the endpoint, never log it
	c.logger.Debugf("mailtrain request: %s %s%s", httpMethod, apiPrefix, path)

	res, err := req.Execute(httpMethod, endpoint)
	if err != nil {
		err = c.redact(err, path)
		c.logger.Warnf("mailtrain request failed: %s %s%s; err=%v", httpMethod, apiPrefix, path, err)
		return &errors.ApiError{
			Stage:     errors.STAGE_REQUEST,
			Type:      errors.TYPE_IO,
			SourceErr: err,
		}
	}

	apiErr := decodeEnvelope(res.StatusCode(), res.Body(), resData)
	if apiErr != nil {
		c.logger.Warnf(
			"mailtrain response error: %s %s%s; type=%s, httpStatus=%d, msg=%s",
			httpMethod, apiPrefix, path, apiErr.Type, apiErr.HttpStatusCode, apiErr.Message,
		)
	}
	return apiErr
}

// redact strips the access token from transport errors. net/http
// reports them as *url.Error carrying the full request url.
func (c *apiClient) redact(err error, path string) error {
	var urlErr *url.Error
	if stderrors.As(err, &urlErr) {
		err = &url.Error{
			Op:  urlErr.Op,
			URL: c.baseUrl + apiPrefix + path,
			Err: urlErr.Err,
		}
	}
	if c.accessToken == "" {
		return err
	}
	msg := err.Error()
	for _, token := range []string{c.accessToken, url.QueryEscape(c.accessToken)} {
		msg = strings.ReplaceAll(msg, token, "REDACTED")
	}
	if msg != err.Error() {
		err = &redactedError{msg: msg, err: err}
	}
	return err
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }

func (e *redactedError) Unwrap() error { return stderrors.Unwrap(e.err) }

// decodeEnvelope unwraps a {"data": ..., "error": ...} response into resData.
//
// An error message in the envelope wins over the http status,
// a non-2xx status wins over a malformed body.
func decodeEnvelope(statusCode int, body []byte, resData any) *errors.ApiError {
	ok := statusCode >= 200 && statusCode < 300
	if ok && len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	var env types.Envelope
	jsonErr := json.Unmarshal(body, &env)
	if jsonErr == nil {
		if msg := env.ErrorMessage(); msg != "" {
			return &errors.ApiError{
				Stage:          errors.STAGE_AFTER_REQUEST,
				Type:           errors.TYPE_REMOTE,
				Body:           body,
				HttpStatusCode: statusCode,
				Message:        msg,
			}
		}
	}

	if !ok {
		return &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_HTTP_STATUS,
			Body:           body,
			HttpStatusCode: statusCode,
		}
	}

	if jsonErr != nil {
		return &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_JSON_PARSE,
			SourceErr:      jsonErr,
			Body:           body,
			HttpStatusCode: statusCode,
		}
	}

	data := bytes.TrimSpace(env.Data)
	if resData == nil || len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(data, resData); err != nil {
		return &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_JSON_PARSE,
			SourceErr:      err,
			Body:           body,
			HttpStatusCode: statusCode,
		}
	}
	return nil
}

// withId replaces the {id} placeholder of a path with an escaped segment.
func withId(path string, id string) string {
	return strings.Replace(path, "{id}", url.PathEscape(id), 1)
}

// toNilErr converts a *errors.ApiError type to be a true nil interface.
// Internally, a Go interface has a Type and Value.
// An interface value is nil only if the V and T are both unset.
// See: https://go.dev/doc/faq#nil_error
func toNilErr[T any](r T, e *errors.ApiError) (T, error) {
	if e != nil {
		return r, e
	}
	return r, nil
}
