package types

import (
	"encoding/json"
	"net/url"
	"strconv"
)

// List is a mailing list as returned by the lists endpoints.
// Cid is the short code used to address the list in other calls;
// all attributes, including cid and name, are kept in Attributes.
type List struct {
	Cid        string
	Name       string
	Attributes Record
}

func (l *List) UnmarshalJSON(data []byte) error {
	var attrs Record
	if err := json.Unmarshal(data, &attrs); err != nil {
		return err
	}
	*l = List{
		Cid:        attrs.String("cid"),
		Name:       attrs.String("name"),
		Attributes: attrs,
	}
	return nil
}

func (l List) MarshalJSON() ([]byte, error) {
	attrs := Record{}
	for k, v := range l.Attributes {
		attrs[k] = v
	}
	attrs["cid"] = l.Cid
	attrs["name"] = l.Name
	return json.Marshal(attrs)
}

// UnsubscriptionMode controls how subscribers leave a list.
type UnsubscriptionMode int

const (
	// One-step, no email with confirmation link.
	UnsubscriptionModeOneStep UnsubscriptionMode = 0
	// One-step with unsubscription form, no email with confirmation link.
	UnsubscriptionModeOneStepWithForm UnsubscriptionMode = 1
	// Two-step, an email with confirmation link will be sent.
	UnsubscriptionModeTwoStep UnsubscriptionMode = 2
	// Two-step with unsubscription form.
	UnsubscriptionModeTwoStepWithForm UnsubscriptionMode = 3
	// Unsubscription has to be performed by the list administrator.
	UnsubscriptionModeManual UnsubscriptionMode = 4
)

func (m UnsubscriptionMode) IsValid() bool {
	return m >= UnsubscriptionModeOneStep && m <= UnsubscriptionModeManual
}

// FieldWizard decides how the subscriber's name is represented.
type FieldWizard string

const (
	// Empty / Custom (no fields)
	FieldWizardNone FieldWizard = ""
	// Name (one field)
	FieldWizardFullName FieldWizard = "full_name"
	// First name and Last name (two fields)
	FieldWizardFirstLastName FieldWizard = "first_last_name"
)

func (w FieldWizard) IsValid() bool {
	switch w {
	case FieldWizardNone, FieldWizardFullName, FieldWizardFirstLastName:
		return true
	}
	return false
}

type CreateListRequest struct {
	Namespace          string
	UnsubscriptionMode UnsubscriptionMode
	Name               string
	Description        string
	ContactEmail       string
	Homepage           string
	FieldWizard        FieldWizard

	// NewCreateListRequest sets SendConfiguration and
	// PublicSubscribe to true.
	SendConfiguration bool
	// Allow public users to subscribe themselves.
	PublicSubscribe bool
	// Do not send List-Unsubscribe headers.
	ListUnsubscribeDisabled bool
}

func NewCreateListRequest(namespace string, mode UnsubscriptionMode) CreateListRequest {
	return CreateListRequest{
		Namespace:          namespace,
		UnsubscriptionMode: mode,
		SendConfiguration:  true,
		PublicSubscribe:    true,
	}
}

func (r CreateListRequest) Form() url.Values {
	return url.Values{
		"NAMESPACE":                {r.Namespace},
		"UNSUBSCRIPTION_MODE":      {strconv.Itoa(int(r.UnsubscriptionMode))},
		"NAME":                     {r.Name},
		"DESCRIPTION":              {r.Description},
		"CONTACT_EMAIL":            {r.ContactEmail},
		"HOMEPAGE":                 {r.Homepage},
		"FIELDWIZARD":              {string(r.FieldWizard)},
		"SEND_CONFIGURATION":       {oneZero(r.SendConfiguration)},
		"PUBLIC_SUBSCRIBE":         {oneZero(r.PublicSubscribe)},
		"LISTUNSUBSCRIBE_DISABLED": {oneZero(r.ListUnsubscribeDisabled)},
	}
}
