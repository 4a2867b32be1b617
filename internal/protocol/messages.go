package protocol

import "strconv"

// HELLO (client -> server)
type HelloMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	ClientName      string `json:"client_name,omitempty"`
	// Policy selects "lenient" (default) or "strict" decoding for the session.
	Policy string `json:"policy,omitempty"`
}

// WELCOME (server -> client)
type WelcomeMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	SessionID       string `json:"session_id"`
	Policy          string `json:"policy"`
	// Catalogs maps each domain name to the sha256 of its name table.
	Catalogs map[string]string `json:"catalogs"`
	Kinds    []string          `json:"kinds"`
}

// DECODE (client -> server)
type DecodeMsg struct {
	Type            string         `json:"type"`
	ProtocolVersion string         `json:"protocol_version"`
	ID              string         `json:"id"`
	Line            string         `json:"line"`
	Fields          []FieldRequest `json:"fields"`
}

// FieldRequest asks for one operator. Rank selects a positional argument when
// Op is empty.
type FieldRequest struct {
	Op      string `json:"op,omitempty"`
	Kind    string `json:"kind"`
	Rank    int    `json:"rank,omitempty"`
	Default string `json:"default,omitempty"`
}

// DECODED (server -> client)
type DecodedMsg struct {
	Type            string         `json:"type"`
	ProtocolVersion string         `json:"protocol_version"`
	ID              string         `json:"id"`
	Command         string         `json:"command"`
	Values          map[string]any `json:"values"`
	Errors          []FieldError   `json:"errors,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ERROR (server -> client) for requests that could not be processed at all.
type ErrorMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	ID              string `json:"id,omitempty"`
	Code            string `json:"code"`
	Message         string `json:"message"`
}

// Key names the entry of a field in DecodedMsg.Values and FieldError:
// the operator name, or "#<rank>" for a positional argument.
func (f FieldRequest) Key() string {
	if f.Op != "" {
		return f.Op
	}
	return "#" + strconv.Itoa(f.Rank)
}
