package partner

import (
	"errors"
	"fmt"
	"regexp"
)

// Record is a business-card entry shared by the supplier and client domains.
type Record struct {
	Code         string `json:"code" mapstructure:"code"`
	Name         string `json:"name" mapstructure:"name"`
	CEO          string `json:"ceo" mapstructure:"ceo"`
	BusinessNo   string `json:"businessNo" mapstructure:"businessNo"`
	Phone        string `json:"phone" mapstructure:"phone"`
	Email        string `json:"email" mapstructure:"email"`
	Address      string `json:"address" mapstructure:"address"`
	Manager      string `json:"manager" mapstructure:"manager"`
	ManagerPhone string `json:"managerPhone" mapstructure:"managerPhone"`
	Items        string `json:"items" mapstructure:"items"`
	Notes        string `json:"notes" mapstructure:"notes"`
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{2,3}-[0-9]{3,4}-[0-9]{4}$`)
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid partner")

// Validate checks form input. Imported rows are never validated.
func (r Record) Validate() error {
	if r.Code == "" {
		return fmt.Errorf("%w: code is required", ErrInvalid)
	}
	if r.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if r.Email != "" && !emailPattern.MatchString(r.Email) {
		return fmt.Errorf("%w: email %q", ErrInvalid, r.Email)
	}
	if r.Phone != "" && !phonePattern.MatchString(r.Phone) {
		return fmt.Errorf("%w: phone %q", ErrInvalid, r.Phone)
	}
	if r.ManagerPhone != "" && !phonePattern.MatchString(r.ManagerPhone) {
		return fmt.Errorf("%w: manager phone %q", ErrInvalid, r.ManagerPhone)
	}
	return nil
}
