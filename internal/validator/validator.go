package validator

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"blog-platform/internal/domain"
)

const maxCommentWords = 500

// Validator provides validation methods for inbound entities.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateArticle validates an Article before it is persisted.
func (v *Validator) ValidateArticle(a *domain.Article) error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Title,
			validation.Required.Error("title_required"),
		),
		validation.Field(&a.Body,
			validation.Required.Error("body_required"),
		),
		validation.Field(&a.Category,
			validation.Required.Error("category_required"),
		),
		validation.Field(&a.AuthorEmail,
			validation.Required.Error("author_email_required"),
		),
	)
}

// ValidateComment validates a Comment submission.
func (v *Validator) ValidateComment(c *domain.Comment) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ArticleID,
			validation.Required.Error("article_id_required"),
		),
		validation.Field(&c.AuthorName,
			validation.Required.Error("name_required"),
		),
		validation.Field(&c.Body,
			validation.Required.Error("body_required"),
			validation.By(wordCountRule(maxCommentWords)),
		),
	)
}

// ValidateRegistration validates a registration request.
func (v *Validator) ValidateRegistration(email, displayName, password string) error {
	errs := validation.Errors{
		"email": validation.Validate(email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		"display_name": validation.Validate(displayName,
			validation.Required.Error("display_name_required"),
		),
		"password": validation.Validate(password,
			validation.Required.Error("password_required"),
			validation.Length(8, 0).Error("password_too_short"),
		),
	}
	return errs.Filter()
}

// ValidateLogin validates a login request.
func (v *Validator) ValidateLogin(email, password string) error {
	errs := validation.Errors{
		"email": validation.Validate(email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		"password": validation.Validate(password,
			validation.Required.Error("password_required"),
		),
	}
	return errs.Filter()
}

// wordCountRule creates a validation rule for max word count.
func wordCountRule(maxWords int) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		wordCount := len(strings.Fields(strings.TrimSpace(s)))
		if wordCount > maxWords {
			return validation.NewError("body_too_long", "body exceeds 500 words")
		}
		return nil
	}
}
