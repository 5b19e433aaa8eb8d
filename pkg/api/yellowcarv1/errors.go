package yellowcarv1

import (
	"errors"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Error reasons attached to Connect errors as a StringValue detail.
const (
	ReasonUnauthenticated = "UNAUTHENTICATED"
	ReasonUserNotFound    = "USER_NOT_FOUND"
	ReasonSelfFriendship  = "SELF_FRIENDSHIP"
	ReasonAlreadyFriends  = "ALREADY_FRIENDS"
	ReasonInvalidImage    = "INVALID_IMAGE"
)

// NewError builds a Connect error carrying reason as an error detail.
func NewError(code connect.Code, reason string, err error) *connect.Error {
	connectErr := connect.NewError(code, err)
	if reason == "" {
		return connectErr
	}
	if detail, detailErr := connect.NewErrorDetail(wrapperspb.String(reason)); detailErr == nil {
		connectErr.AddDetail(detail)
	}
	return connectErr
}

// ErrorReason returns the reason attached to err, or "" if it has none.
func ErrorReason(err error) string {
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		return ""
	}
	for _, detail := range connectErr.Details() {
		msg, valueErr := detail.Value()
		if valueErr != nil {
			continue
		}
		if reason, ok := msg.(*wrapperspb.StringValue); ok {
			return reason.GetValue()
		}
	}
	return ""
}
