package validate

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"homeharbor/internal/domain"
)

var reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 100 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

func missing(fields map[string]string) error {
	var names []string
	for name, v := range fields {
		if strings.TrimSpace(v) == "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	// map order is random; keep the message stable for callers and tests
	sort.Strings(names)
	return fmt.Errorf("missing required fields: %s", strings.Join(names, ", "))
}

// NewProperty checks a listing create payload before it reaches the store.
// Status and type stay free-form strings; the console is trusted to send
// sensible values.
func NewProperty(in domain.NewProperty) error {
	if err := missing(map[string]string{
		"title":       in.Title,
		"description": in.Description,
		"status":      in.Status,
		"type":        in.Type,
		"location":    in.Location,
		"address":     in.Address,
		"imageUrl":    in.ImageURL,
	}); err != nil {
		return err
	}
	if in.Price <= 0 {
		return errors.New("price must be greater than zero")
	}
	if in.Bedrooms < 0 || in.Bathrooms < 0 || in.Area < 0 {
		return errors.New("bedrooms, bathrooms and area must not be negative")
	}
	return nil
}

// PropertyPatch checks only the fields present in a partial update.
func PropertyPatch(patch domain.PropertyPatch) error {
	if patch.Price != nil && *patch.Price <= 0 {
		return errors.New("price must be greater than zero")
	}
	if patch.Bedrooms != nil && *patch.Bedrooms < 0 {
		return errors.New("bedrooms must not be negative")
	}
	if patch.Bathrooms != nil && *patch.Bathrooms < 0 {
		return errors.New("bathrooms must not be negative")
	}
	if patch.Area != nil && *patch.Area < 0 {
		return errors.New("area must not be negative")
	}
	return nil
}

func NewPost(in domain.NewPost) error {
	return missing(map[string]string{
		"title":    in.Title,
		"content":  in.Content,
		"author":   in.Author,
		"excerpt":  in.Excerpt,
		"imageUrl": in.ImageURL,
	})
}

// NewMessage checks a contact submission. Phone is optional.
func NewMessage(in domain.NewMessage) error {
	if err := missing(map[string]string{
		"name":    in.Name,
		"subject": in.Subject,
		"message": in.Message,
		"email":   in.Email,
	}); err != nil {
		return err
	}
	if _, ok := Email(in.Email); !ok {
		return errors.New("enter a valid email address")
	}
	return nil
}
