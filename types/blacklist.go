package types

import "encoding/json"

type BlacklistPage struct {
	Total  int64    `json:"total"`
	Start  int64    `json:"start"`
	Limit  int64    `json:"limit"`
	Emails []string `json:"emails"`
}

// UnmarshalJSON accepts both the paged object and a bare array of emails.
func (p *BlacklistPage) UnmarshalJSON(data []byte) error {
	if isJsonArray(data) {
		var emails []string
		if err := json.Unmarshal(data, &emails); err != nil {
			return err
		}
		*p = BlacklistPage{
			Total:  int64(len(emails)),
			Limit:  int64(len(emails)),
			Emails: emails,
		}
		return nil
	}
	type page BlacklistPage
	var res page
	if err := json.Unmarshal(data, &res); err != nil {
		return err
	}
	*p = BlacklistPage(res)
	return nil
}
