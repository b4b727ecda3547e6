// Package form turns submitted item forms into validated repository input.
package form

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/erazemk/inventar/internal/model"
	"github.com/erazemk/inventar/internal/store"
)

// Form actions.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Validation messages, in the order they are reported.
const (
	MsgMissingID       = "Missing item id for update."
	MsgNameRequired    = "Item name is required."
	MsgInvalidQuantity = "Quantity must be a non-negative integer."
	MsgInvalidPrice    = "Price must be a valid amount (e.g., 12 or 12.50)."
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		_, err := model.ParsePrice(fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("int32", func(fl validator.FieldLevel) bool {
		_, err := strconv.ParseInt(fl.Field().String(), 10, 32)
		return err == nil
	})
	return v
}

// messages maps a struct field to the message shown when it fails.
var messages = map[string]string{
	"ID":       MsgMissingID,
	"Name":     MsgNameRequired,
	"Quantity": MsgInvalidQuantity,
	"Price":    MsgInvalidPrice,
}

// Values are the fields exactly as submitted, used to refill the form.
type Values struct {
	Name     string
	Category string
	Quantity string
	Price    string
}

// Item is a trimmed item submission.
type Item struct {
	Action   string
	ID       int64  `validate:"required_if=Action update"`
	Name     string `validate:"required"`
	Category string
	Quantity string `validate:"omitempty,number,int32"`
	Price    string `validate:"omitempty,amount"`

	Submitted Values `validate:"-"`
}

// FromValues reads an item submission from a parsed form body. Text fields are
// trimmed; an id that is missing, malformed or not positive reads as 0.
func FromValues(v url.Values) Item {
	id, err := strconv.ParseInt(strings.TrimSpace(v.Get("id")), 10, 64)
	if err != nil || id < 0 {
		id = 0
	}

	return Item{
		Action:   strings.TrimSpace(v.Get("action")),
		ID:       id,
		Name:     strings.TrimSpace(v.Get("name")),
		Category: strings.TrimSpace(v.Get("category")),
		Quantity: strings.TrimSpace(v.Get("quantity")),
		Price:    strings.TrimSpace(v.Get("price")),
		Submitted: Values{
			Name:     v.Get("name"),
			Category: v.Get("category"),
			Quantity: v.Get("quantity"),
			Price:    v.Get("price"),
		},
	}
}

// Validate returns every problem with the submission, or nil when it can be
// persisted.
func (f Item) Validate() []string {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	out := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg, ok := messages[fe.StructField()]
		if !ok {
			msg = fmt.Sprintf("%s is invalid.", fe.Field())
		}
		out = append(out, msg)
	}
	return out
}

// Fields converts a validated submission into repository input, storing
// blank optional fields as NULL.
func (f Item) Fields() (store.ItemFields, error) {
	fields := store.ItemFields{
		Name:     f.Name,
		Category: BlankToNull(f.Category),
	}

	if q := BlankToNull(f.Quantity); q != nil {
		n, err := strconv.ParseInt(*q, 10, 64)
		if err != nil {
			return store.ItemFields{}, fmt.Errorf("parsing quantity: %w", err)
		}
		fields.Quantity = &n
	}

	if p := BlankToNull(f.Price); p != nil {
		price, err := model.ParsePrice(*p)
		if err != nil {
			return store.ItemFields{}, fmt.Errorf("parsing price: %w", err)
		}
		fields.Price = &price
	}

	return fields, nil
}

// BlankToNull returns nil for a blank string and a pointer to the trimmed
// value otherwise.
func BlankToNull(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
