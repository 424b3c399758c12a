package api

import (
	"net/http"
	"strconv"

	"github.com/block/mailtrain-go/logger"
	"github.com/block/mailtrain-go/types"
)

const (
	pathTemplateSend = "templates/{id}/send"
)

// Templates implements the /api/templates API methods.
type Templates struct {
	api *apiClient
}

func NewTemplatesApi(baseUrl string, accessToken string, httpClient *http.Client, logger logger.Logger) *Templates {
	return &Templates{
		api: newApiClient(baseUrl, accessToken, httpClient, logger),
	}
}

// Send sends a single email rendered from the template req.TemplateId.
func (t *Templates) Send(req types.SendTemplateRequest) (types.Record, error) {
	if err := validateEmail(req.Email); err != nil {
		return nil, err
	}
	var res types.Record
	err := t.api.postForm(
		withId(pathTemplateSend, strconv.FormatInt(req.TemplateId, 10)),
		req.Form(),
		&res,
	)
	return toNilErr(res, err)
}
