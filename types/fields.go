package types

import "net/url"

type CreateFieldRequest struct {
	ListId string
	Name   string
	Type   FieldType

	// Template for the group element. If not set, the values
	// of the elements are joined with commas.
	GroupTemplate string

	// Parent group field id, required when Type is FieldTypes.Option.
	Group string

	// If not visible, the subscriber can not view or modify
	// this value at the profile page.
	// NewCreateFieldRequest sets it to true.
	Visible bool
}

func NewCreateFieldRequest(listId, name string, fieldType FieldType) CreateFieldRequest {
	return CreateFieldRequest{
		ListId:  listId,
		Name:    name,
		Type:    fieldType,
		Visible: true,
	}
}

func (r CreateFieldRequest) Form() url.Values {
	return url.Values{
		"NAME":           {r.Name},
		"TYPE":           {string(r.Type)},
		"GROUP":          {r.Group},
		"GROUP_TEMPLATE": {r.GroupTemplate},
		"VISIBLE":        {yesNo(r.Visible)},
	}
}
