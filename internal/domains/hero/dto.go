package hero

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type UpdateSettingsRequest struct {
	HeadingLine1 string `json:"heading_line1"`
	HeadingLine2 string `json:"heading_line2"`
	Paragraph    string `json:"paragraph"`
}

func (r UpdateSettingsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.HeadingLine1, validation.Required, validation.Length(1, 120)),
		validation.Field(&r.HeadingLine2, validation.Required, validation.Length(1, 120)),
		validation.Field(&r.Paragraph, validation.Required, validation.Length(1, 1000)),
	)
}
