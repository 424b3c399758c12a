package types

import (
	"fmt"
	"net/url"
)

type SendTemplateRequest struct {
	Email      string
	TemplateId int64

	// Template variables to replace, sent as TAGS[name]=value.
	Tags map[string]string

	// Id of the send configuration used to create the mailer.
	// When 0, the default system send configuration is used.
	SendConfigurationId int64

	Subject     string
	Attachments []Attachment
}

// Attachment follows the attachment object consumed by nodemailer.
// Empty properties are not sent.
type Attachment struct {
	Filename    string
	Content     string
	Path        string
	ContentType string
	Encoding    string
	Cid         string
}

func NewSendTemplateRequest(email string) SendTemplateRequest {
	return SendTemplateRequest{
		Email:      email,
		TemplateId: 1,
	}
}

func (r SendTemplateRequest) Form() url.Values {
	form := url.Values{
		"EMAIL":                 {r.Email},
		"SEND_CONFIGURATION_ID": {itoa(r.SendConfigurationId)},
		"SUBJECT":               {r.Subject},
	}
	for k, v := range r.Tags {
		form.Set(fmt.Sprintf("TAGS[%s]", k), v)
	}
	for i, a := range r.Attachments {
		for _, p := range a.props() {
			if p.value != "" {
				form.Set(fmt.Sprintf("ATTACHMENTS[%d][%s]", i, p.name), p.value)
			}
		}
	}
	return form
}

type attachmentProp struct {
	name  string
	value string
}

func (a Attachment) props() []attachmentProp {
	return []attachmentProp{
		{"filename", a.Filename},
		{"content", a.Content},
		{"path", a.Path},
		{"contentType", a.ContentType},
		{"encoding", a.Encoding},
		{"cid", a.Cid},
	}
}
