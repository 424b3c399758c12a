package api

import (
	"net/http"

	"github.com/block/mailtrain-go/logger"
	"github.com/block/mailtrain-go/types"
)

const (
	pathRssFetch = "rss/fetch/{id}"
)

// Campaigns implements the campaign related API methods.
type Campaigns struct {
	api *apiClient
}

func NewCampaignsApi(baseUrl string, accessToken string, httpClient *http.Client, logger logger.Logger) *Campaigns {
	return &Campaigns{
		api: newApiClient(baseUrl, accessToken, httpClient, logger),
	}
}

// FetchRss forces the RSS feed check of the campaign to run now.
// It works only for RSS campaigns; for others the server
// responds with an error.
func (c *Campaigns) FetchRss(campaignCid string) (types.Record, error) {
	var res types.Record
	err := c.api.getJson(withId(pathRssFetch, campaignCid), nil, &res)
	return toNilErr(res, err)
}
