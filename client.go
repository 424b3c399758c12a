package mailtrain_go

import (
	"net/http"

	"github.com/block/mailtrain-go/api"
)

// Client is a binding of the Mailtrain HTTP API.
// It only holds immutable configuration and is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseUrl    string

	subscriptions *api.Subscriptions
	lists         *api.Lists
	fields        *api.Fields
	blacklist     *api.Blacklist
	campaigns     *api.Campaigns
	templates     *api.Templates
}

// NewClient creates a client for the Mailtrain instance at baseUrl,
// e.g. https://mailtrain.example.com. The access token is sent as the
// access_token query parameter of every request.
func NewClient(accessToken string, baseUrl string, opts ...ConfigOption) *Client {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := &http.Client{}
	httpClient.Transport = cfg.transport
	httpClient.Timeout = cfg.timeout

	baseUrl = api.NormalizeBaseUrl(baseUrl)

	return &Client{
		httpClient:    httpClient,
		baseUrl:       baseUrl,
		subscriptions: api.NewSubscriptionsApi(baseUrl, accessToken, httpClient, cfg.logger),
		lists:         api.NewListsApi(baseUrl, accessToken, httpClient, cfg.logger),
		fields:        api.NewFieldsApi(baseUrl, accessToken, httpClient, cfg.logger),
		blacklist:     api.NewBlacklistApi(baseUrl, accessToken, httpClient, cfg.logger),
		campaigns:     api.NewCampaignsApi(baseUrl, accessToken, httpClient, cfg.logger),
		templates:     api.NewTemplatesApi(baseUrl, accessToken, httpClient, cfg.logger),
	}
}

// BaseUrl returns the normalized base url, without a trailing slash.
func (c *Client) BaseUrl() string {
	return c.baseUrl
}

func (c *Client) Subscriptions() *api.Subscriptions {
	return c.subscriptions
}

func (c *Client) Lists() *api.Lists {
	return c.lists
}

func (c *Client) Fields() *api.Fields {
	return c.fields
}

func (c *Client) Blacklist() *api.Blacklist {
	return c.blacklist
}

func (c *Client) Campaigns() *api.Campaigns {
	return c.campaigns
}

func (c *Client) Templates() *api.Templates {
	return c.templates
}
