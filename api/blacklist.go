package api

import (
	"net/http"
	"strconv"

	"github.com/block/mailtrain-go/logger"
	"github.com/block/mailtrain-go/types"
)

const (
	pathBlacklistGet    = "blacklist/get"
	pathBlacklistAdd    = "blacklist/add"
	pathBlacklistDelete = "blacklist/delete"
)

// Blacklist implements the /api/blacklist API methods.
// Blacklisted addresses are excluded from all sends.
type Blacklist struct {
	api *apiClient
}

func NewBlacklistApi(baseUrl string, accessToken string, httpClient *http.Client, logger logger.Logger) *Blacklist {
	return &Blacklist{
		api: newApiClient(baseUrl, accessToken, httpClient, logger),
	}
}

// Get returns one page of blacklisted emails, optionally
// filtered by a part of the email.
func (b *Blacklist) Get(start, limit int, search string) (*types.BlacklistPage, error) {
	var res types.BlacklistPage
	return toNilErr(&res, b.api.getJson(
		pathBlacklistGet,
		[]param{
			{"start", strconv.Itoa(start)},
			{"limit", strconv.Itoa(limit)},
			{"search", search},
		},
		&res,
	))
}

func (b *Blacklist) Add(email string) (types.Record, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	var res types.Record
	err := b.api.postForm(pathBlacklistAdd, types.EmailForm(email), &res)
	return toNilErr(res, err)
}

func (b *Blacklist) Delete(email string) (types.Record, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	var res types.Record
	err := b.api.postForm(pathBlacklistDelete, types.EmailForm(email), &res)
	return toNilErr(res, err)
}
