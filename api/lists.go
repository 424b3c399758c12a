package api

import (
	"net/http"

	"github.com/block/mailtrain-go/logger"
	"github.com/block/mailtrain-go/types"
)

const (
	pathListsByEmail     = "lists/{id}"
	pathListsByNamespace = "lists-by-namespace/{id}"
	pathListCreate       = "list"
	pathList             = "list/{id}"
)

// Lists implements the /api/lists, /api/lists-by-namespace
// and /api/list API methods.
type Lists struct {
	api *apiClient
}

func NewListsApi(baseUrl string, accessToken string, httpClient *http.Client, logger logger.Logger) *Lists {
	return &Lists{
		api: newApiClient(baseUrl, accessToken, httpClient, logger),
	}
}

// ByEmail returns the lists the email is subscribed to.
func (c *Lists) ByEmail(email string) ([]types.List, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	var res []types.List
	err := c.api.getJson(withId(pathListsByEmail, email), nil, &res)
	return toNilErr(res, err)
}

func (c *Lists) ByNamespace(namespaceId string) ([]types.List, error) {
	var res []types.List
	err := c.api.getJson(withId(pathListsByNamespace, namespaceId), nil, &res)
	return toNilErr(res, err)
}

func (c *Lists) Create(req types.CreateListRequest) (types.Record, error) {
	if err := validateList(req); err != nil {
		return nil, err
	}
	var res types.Record
	err := c.api.postForm(pathListCreate, req.Form(), &res)
	return toNilErr(res, err)
}

func (c *Lists) Delete(listId string) (types.Record, error) {
	var res types.Record
	err := c.api.deleteJson(withId(pathList, listId), &res)
	return toNilErr(res, err)
}
