package api

import (
	"net/http"
	"strconv"

	"github.com/block/mailtrain-go/logger"
	"github.com/block/mailtrain-go/types"
)

const (
	pathSubscriptions = "subscriptions/{id}"
	pathSubscribe     = "subscribe/{id}"
	pathUnsubscribe   = "unsubscribe/{id}"
	pathDelete        = "delete/{id}"
)

// Subscriptions implements the subscription related API methods:
// /api/subscriptions, /api/subscribe, /api/unsubscribe and /api/delete.
type Subscriptions struct {
	api   *apiClient
	lists *Lists
}

func NewSubscriptionsApi(
	baseUrl string,
	accessToken string,
	httpClient *http.Client,
	logger logger.Logger,
) *Subscriptions {
	api := newApiClient(baseUrl, accessToken, httpClient, logger)
	return &Subscriptions{
		api:   api,
		lists: &Lists{api: api},
	}
}

// Get returns one page of the subscribers of a list.
// Paging is up to the caller, see DefaultLimit.
func (s *Subscriptions) Get(listId string, start, limit int) (*types.SubscriptionsPage, error) {
	var res types.SubscriptionsPage
	return toNilErr(&res, s.api.getJson(
		withId(pathSubscriptions, listId),
		[]param{
			{"start", strconv.Itoa(start)},
			{"limit", strconv.Itoa(limit)},
		},
		&res,
	))
}

// Subscribe adds the subscriber to the list, or updates
// the existing subscription of the same email.
func (s *Subscriptions) Subscribe(req types.SubscribeRequest) (types.Subscriber, error) {
	if err := validateEmail(req.Email); err != nil {
		return nil, err
	}
	var res types.Subscriber
	err := s.api.postForm(withId(pathSubscribe, req.ListId), req.Form(), &res)
	return toNilErr(res, err)
}

// Update is an alias of Subscribe: Mailtrain upserts subscriptions.
func (s *Subscriptions) Update(req types.SubscribeRequest) (types.Subscriber, error) {
	return s.Subscribe(req)
}

func (s *Subscriptions) Unsubscribe(email string, listId string) (types.Subscriber, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	var res types.Subscriber
	err := s.api.postForm(withId(pathUnsubscribe, listId), types.EmailForm(email), &res)
	return toNilErr(res, err)
}

// UnsubscribeFromAllLists unsubscribes the email from every list
// it's subscribed to, one list at a time, in the order the server
// returns them. The first failure is returned as is and the
// remaining lists are left untouched.
func (s *Subscriptions) UnsubscribeFromAllLists(email string) (bool, error) {
	return s.forEachList(email, "unsubscribe", func(listId string) error {
		_, err := s.Unsubscribe(email, listId)
		return err
	})
}

// Delete removes the subscription of the email from the list.
func (s *Subscriptions) Delete(email string, listId string) (types.Subscriber, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	var res types.Subscriber
	err := s.api.postForm(withId(pathDelete, listId), types.EmailForm(email), &res)
	return toNilErr(res, err)
}

// DeleteFromAllLists has the same semantics as UnsubscribeFromAllLists,
// but deletes the subscriptions.
func (s *Subscriptions) DeleteFromAllLists(email string) (bool, error) {
	return s.forEachList(email, "delete", func(listId string) error {
		_, err := s.Delete(email, listId)
		return err
	})
}

func (s *Subscriptions) forEachList(email string, action string, fn func(listId string) error) (bool, error) {
	if err := validateEmail(email); err != nil {
		return false, err
	}
	lists, err := s.lists.ByEmail(email)
	if err != nil {
		return false, err
	}
	for i, l := range lists {
		if err = fn(l.Cid); err != nil {
			s.api.logger.Errorf(
				"failed to %s from list %s; %d of %d lists processed; err=%v",
				action, l.Cid, i, len(lists), err,
			)
			return false, err
		}
	}
	s.api.logger.Debugf("%s: done for %d lists", action, len(lists))
	return true, nil
}
