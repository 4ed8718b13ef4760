package validator

import (
	"errors"
	"fmt"
	"strings"

	playground "github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/s21platform/quickchat/internal/model"
)

const (
	MaxFileSize      = 20 * 1024 * 1024
	MaxMessageLength = 1000
)

type Validator struct {
	validate *playground.Validate
}

func New() *Validator {
	return &Validator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

type participantsRequest struct {
	RequesterID  string   `validate:"required"`
	Participants []string `validate:"min=1,dive,required"`
}

type attachmentRequest struct {
	Name string `validate:"required"`
	Size int64  `validate:"gte=0,max=20971520"`
}

type textRequest struct {
	Content string `validate:"max=1000"`
}

type contentURLRequest struct {
	URL string `validate:"required,url"`
}

// ValidateParticipants checks that a conversation is requested with at least
// one other non-blank participant.
func (v *Validator) ValidateParticipants(participants []string, requesterID string) error {
	requesterID = strings.TrimSpace(requesterID)
	others := lo.Filter(participants, func(id string, _ int) bool {
		id = strings.TrimSpace(id)
		return id != "" && id != requesterID
	})

	err := v.validate.Struct(participantsRequest{RequesterID: requesterID, Participants: others})
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrEmptyParticipants, err)
	}

	return nil
}

func (v *Validator) ValidateAttachment(name string, size int64) error {
	err := v.validate.Struct(attachmentRequest{Name: name, Size: size})
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			if fe.Field() == "Size" && fe.Tag() == "max" {
				return model.ErrFileTooLarge
			}
		}
	}

	return fmt.Errorf("%w: %v", model.ErrValidation, err)
}

func (v *Validator) ValidateText(content string) error {
	// max counts runes for strings
	if err := v.validate.Struct(textRequest{Content: content}); err != nil {
		return model.ErrMessageTooLong
	}
	return nil
}

func (v *Validator) ValidateContentURL(url string) error {
	if err := v.validate.Struct(contentURLRequest{URL: url}); err != nil {
		return fmt.Errorf("%w: %v", model.ErrUnsupportedSticker, err)
	}
	return nil
}
