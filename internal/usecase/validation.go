package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dthstore/dthstore-api/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var nonDigits = regexp.MustCompile(`\D`)

// ValidateCaptureLeadInput checks the public lead form fields. This is the
// only failure path a site visitor can ever see.
func ValidateCaptureLeadInput(input CaptureLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Mobile) == "" {
		errors = append(errors, ValidationError{"mobile", "is required"})
	} else if !isValidMobile(input.Mobile) {
		errors = append(errors, ValidationError{"mobile", "must be a valid 10-digit mobile number"})
	}

	if strings.TrimSpace(input.Location) == "" {
		errors = append(errors, ValidationError{"location", "is required"})
	}

	st := entity.ServiceType(input.ServiceType)
	if st != entity.ServiceDTH && st != entity.ServiceBroadband {
		errors = append(errors, ValidationError{"serviceType", "must be DTH Connection or WiFi / Broadband"})
	} else if !operatorAllowed(st, entity.Operator(input.Operator)) {
		errors = append(errors, ValidationError{"operator", "is not available for the selected service"})
	}

	return errors
}

// isValidMobile accepts Indian mobile numbers: ten digits starting 6-9,
// optionally prefixed with 91 or 0.
func isValidMobile(mobile string) bool {
	cleaned := nonDigits.ReplaceAllString(mobile, "")
	if len(cleaned) == 12 && strings.HasPrefix(cleaned, "91") {
		cleaned = cleaned[2:]
	}
	if len(cleaned) == 11 && strings.HasPrefix(cleaned, "0") {
		cleaned = cleaned[1:]
	}
	if len(cleaned) != 10 {
		return false
	}
	return cleaned[0] >= '6' && cleaned[0] <= '9'
}

func operatorAllowed(st entity.ServiceType, op entity.Operator) bool {
	for _, allowed := range entity.OperatorsFor(st) {
		if op == allowed {
			return true
		}
	}
	return false
}
