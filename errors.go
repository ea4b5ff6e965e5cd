package mojang

import (
	"fmt"
)

// TransportError wraps a network-level failure (connection, timeout, TLS)
// that prevented a response from being received at all.
type TransportError struct {
	Inner error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("unable to reach the Mojang API: %s", e.Inner)
}

func (e *TransportError) Unwrap() error {
	return e.Inner
}

// NotFoundError is returned when the API affirmatively reports that there is
// no account for the requested username or uuid.
type NotFoundError struct {
	Which string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no account found for %q", e.Which)
}

// MalformedResponseError is returned when a successful response doesn't
// match the documented shape.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return "malformed API response: " + e.Reason
}

// When passed request params are invalid, Mojang returns 400 Bad Request error
type BadRequestError struct {
	ErrorType string
	Message   string
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("400 %s: %s", e.ErrorType, e.Message)
}

// When Mojang decides you're such a bad guy, this error appears (even if the request has no authorization)
type ForbiddenError struct {
}

func (*ForbiddenError) Error() string {
	return "403: Forbidden"
}

// When you exceed the set limit of requests, this error will be returned
type TooManyRequestsError struct {
}

func (*TooManyRequestsError) Error() string {
	return "429: Too Many Requests"
}

// ServerError happens when Mojang's API returns any response with 50* status
type ServerError struct {
	Status int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, "Server error")
}

// MissingTexturesError is returned when none of the profile's properties
// carries the textures payload.
type MissingTexturesError struct {
}

func (*MissingTexturesError) Error() string {
	return "the profile has no textures property"
}

// TexturesDecodeError wraps a base64 decoding failure of the textures
// property value.
type TexturesDecodeError struct {
	Inner error
}

func (e *TexturesDecodeError) Error() string {
	return fmt.Sprintf("unable to decode the textures property: %s", e.Inner)
}

func (e *TexturesDecodeError) Unwrap() error {
	return e.Inner
}

// MalformedTexturesError is returned when the decoded textures payload is not
// valid json or lacks the required skin url.
type MalformedTexturesError struct {
	Reason string
}

func (e *MalformedTexturesError) Error() string {
	return "malformed textures payload: " + e.Reason
}
