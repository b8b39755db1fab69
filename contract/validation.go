package contract

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// SafeFallbackMessage is what the user sees when their request could not
// be processed; never a raw failure.
const SafeFallbackMessage = "Sorry, I couldn't process that message. Please try again."

// Error is the structured error object returned to the web layer on
// malformed input.
type Error struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Fallback string `json:"fallback"`
}

func (e Error) Error() string {
	return e.Code + ": " + e.Message
}

// Validate checks the request's required fields and bounds.
func (r ChatRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return Error{
			Code:     "invalid_request",
			Message:  err.Error(),
			Fallback: SafeFallbackMessage,
		}
	}
	return nil
}
