package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeMissingField      = "MISSING_FIELD"
	ErrCodeInvalidCredential = "INVALID_CREDENTIALS"
	ErrCodeEmailTaken        = "EMAIL_TAKEN"
	ErrCodeUnauthorised      = "UNAUTHORIZED"
	ErrCodeForbidden         = "FORBIDDEN"
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
	ErrCodeOrderNotFound     = "ORDER_NOT_FOUND"
	ErrCodeThemeNotFound     = "THEME_NOT_FOUND"
	ErrCodeContentNotFound   = "CONTENT_NOT_FOUND"
	ErrCodeMediaNotFound     = "MEDIA_NOT_FOUND"
	ErrCodeUserNotFound      = "USER_NOT_FOUND"
	ErrCodeInvalidQuantity   = "INVALID_QUANTITY"
	ErrCodeOutOfStock        = "OUT_OF_STOCK"
	ErrCodeContentPublished  = "CONTENT_PUBLISHED"
	ErrCodePaymentFailed     = "PAYMENT_FAILED"
	ErrCodeUploadFailed      = "UPLOAD_FAILED"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// DomainError carries a stable code alongside a human-readable message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidCredentials = NewDomainError(ErrCodeInvalidCredential, "Invalid email or password")
	ErrEmailTaken         = NewDomainError(ErrCodeEmailTaken, "An account with this email already exists")
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrOrderNotFound      = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrThemeNotFound      = NewDomainError(ErrCodeThemeNotFound, "Theme not found")
	ErrContentNotFound    = NewDomainError(ErrCodeContentNotFound, "Order content not found")
	ErrMediaNotFound      = NewDomainError(ErrCodeMediaNotFound, "Media item not found")
	ErrUserNotFound       = NewDomainError(ErrCodeUserNotFound, "User not found")
	ErrInvalidQuantity    = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrOutOfStock         = NewDomainError(ErrCodeOutOfStock, "Requested quantity exceeds available stock")
	ErrContentPublished   = NewDomainError(ErrCodeContentPublished, "Published content cannot be modified")
)
