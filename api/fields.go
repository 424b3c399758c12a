package api

import (
	"net/http"

	"github.com/block/mailtrain-go/logger"
	"github.com/block/mailtrain-go/types"
)

const (
	pathField = "field/{id}"
)

// Fields implements the /api/field API method.
type Fields struct {
	api *apiClient
}

func NewFieldsApi(baseUrl string, accessToken string, httpClient *http.Client, logger logger.Logger) *Fields {
	return &Fields{
		api: newApiClient(baseUrl, accessToken, httpClient, logger),
	}
}

// Create adds a custom field to the list req.ListId.
func (f *Fields) Create(req types.CreateFieldRequest) (types.Record, error) {
	if err := validateField(req); err != nil {
		return nil, err
	}
	var res types.Record
	err := f.api.postForm(withId(pathField, req.ListId), req.Form(), &res)
	return toNilErr(res, err)
}
