package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"weekday":  "must be a valid weekday name, e.g. 'Monday'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "you need to log in first"
	ErrClientSessionEnded                  = "your session ended, please login again"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientBookingFailed                 = "failed to book session, please try again"
	ErrClientMentorUnavailable             = "mentor availability could not be loaded right now"
)

// Error messages for developers
const (
	ErrDevInvalidInput      = "invalid input"
	ErrDevValidationFailed  = "validation failed"
	ErrDevCannotParseJSON   = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON = "cannot convert struct or other data types to JSON"

	ErrDevCreateHTTPRequest      = "failed to create HTTP request"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"
	ErrDevServerDeadlineExceeded = "request deadline exceeded"

	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevInvalidCredentials        = "invalid credentials"

	ErrDevHubGetResource            = "failed to get %s from mentorhub service"
	ErrDevHubCreateResource         = "failed to create %s on mentorhub service"
	ErrDevHubDecodeResourceResponse = "failed to decode %s response from mentorhub service"

	ErrDevRedisSet     = "failed to set value on redis"
	ErrDevRedisGet     = "failed to get value from redis, key: %s"
	ErrDevRedisDelete  = "failed to delete key from redis"
	ErrDevRedisSAdd    = "failed to add members to redis set"
	ErrDevRedisSMember = "failed to get members of redis set"

	ErrDevBookingRejected = "mentorhub service rejected the booking"
)
