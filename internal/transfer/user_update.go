package transfer

import "regexp"

var (
	// phoneRE matches a leading plus sign followed by exactly 11 digits.
	phoneRE = regexp.MustCompile(`^\+\d{11}$`)
	// emailRE matches the basic local@domain.tld shape.
	emailRE = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// UserUpdatePayload is the partial-update shape accepted by
// PATCH /api/update_user_info. The Telegram identifier selects the user;
// the remaining fields are optional and only validated when present.
type UserUpdatePayload struct {
	TgID  int64   `json:"tg_id"`
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
}

// Validate checks the selector key and the format of any supplied profile
// fields. Pattern failures carry a message naming the field and the expected
// format.
func (p UserUpdatePayload) Validate() error {
	if p.TgID == 0 {
		return &ValidationError{Field: "tg_id", Message: "is required"}
	}
	if p.Name != nil && !runeLenBetween(*p.Name, 1, 100) {
		return errLength("name", 1, 100)
	}
	if p.Phone != nil && !phoneRE.MatchString(*p.Phone) {
		return &ValidationError{
			Field:   "phone",
			Message: `must start with "+" followed by exactly 11 digits`,
		}
	}
	if p.Email != nil && !emailRE.MatchString(*p.Email) {
		return &ValidationError{
			Field:   "email",
			Message: `must be an address of the form "email@example.com"`,
		}
	}
	return nil
}
