package protocol

const (
	// Protocol/transport validation.
	ErrProtoBadRequest = "E_PROTO_BAD_REQUEST"
	ErrProtoVersion    = "E_PROTO_VERSION"
	ErrProtoNoHello    = "E_PROTO_NO_HELLO"

	// Field decoding.
	ErrBadKind     = "E_BAD_KIND"
	ErrMissing     = "E_MISSING"
	ErrMalformed   = "E_MALFORMED"
	ErrUnknownName = "E_UNKNOWN_NAME"
	ErrInternal    = "E_INTERNAL"
)

var knownCodes = map[string]struct{}{
	ErrProtoBadRequest: {},
	ErrProtoVersion:    {},
	ErrProtoNoHello:    {},
	ErrBadKind:         {},
	ErrMissing:         {},
	ErrMalformed:       {},
	ErrUnknownName:     {},
	ErrInternal:        {},
}

func IsKnownCode(code string) bool {
	if code == "" {
		return true
	}
	_, ok := knownCodes[code]
	return ok
}
