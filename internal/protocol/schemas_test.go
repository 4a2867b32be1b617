package protocol_test

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"colobot.info/gold/internal/protocol"
)

func compile(t *testing.T, name string) *jsonschema.Schema {
	t.Helper()
	p := filepath.Join("..", "..", "schemas", name)
	s, err := jsonschema.Compile(p)
	if err != nil {
		t.Fatalf("compile %s: %v", name, err)
	}
	return s
}

// asJSON round-trips v through encoding/json so the validator sees plain
// JSON value types.
func asJSON(t *testing.T, v any) any {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return out
}

func TestSchemas_ValidateMessages(t *testing.T) {
	digest := strings.Repeat("ab", 32)
	cases := []struct {
		schema string
		msg    any
	}{
		{"hello.schema.json", protocol.HelloMsg{
			Type:            protocol.TypeHello,
			ProtocolVersion: protocol.Version,
			ClientName:      "editor",
			Policy:          "strict",
		}},
		{"welcome.schema.json", protocol.WelcomeMsg{
			Type:            protocol.TypeWelcome,
			ProtocolVersion: protocol.Version,
			SessionID:       "3f1c9e4e-1111-4c4c-8888-000000000000",
			Policy:          "lenient",
			Catalogs:        map[string]string{"object": digest, "water": digest},
			Kinds:           []string{"int", "pos"},
		}},
		{"decode.schema.json", protocol.DecodeMsg{
			Type:            protocol.TypeDecode,
			ProtocolVersion: protocol.Version,
			ID:              "r1",
			Line:            "CreateObject pos=1;2 type=Me",
			Fields: []protocol.FieldRequest{
				{Op: "pos", Kind: "pos"},
				{Op: "type", Kind: "object"},
				{Kind: "string", Rank: 1, Default: "x"},
			},
		}},
		{"decoded.schema.json", protocol.DecodedMsg{
			Type:            protocol.TypeDecoded,
			ProtocolVersion: protocol.Version,
			ID:              "r1",
			Command:         "CreateObject",
			Values:          map[string]any{"type": "Me", "pos": map[string]float64{"x": 1, "y": 0, "z": 2}},
			Errors:          []protocol.FieldError{{Field: "dir", Code: protocol.ErrBadKind, Message: "unknown kind"}},
		}},
		{"error.schema.json", protocol.ErrorMsg{
			Type:            protocol.TypeError,
			ProtocolVersion: protocol.Version,
			Code:            protocol.ErrProtoNoHello,
			Message:         "expected HELLO",
		}},
	}
	for _, tc := range cases {
		s := compile(t, tc.schema)
		if err := s.Validate(asJSON(t, tc.msg)); err != nil {
			t.Fatalf("%s: %v", tc.schema, err)
		}
	}
}

func TestSchemas_RejectBadDecode(t *testing.T) {
	s := compile(t, "decode.schema.json")
	var v any
	_ = json.Unmarshal([]byte(`{
	  "type":"DECODE",
	  "protocol_version":"1.0",
	  "id":"r1",
	  "line":"Title text=\"x\"",
	  "fields":[{"op":"text","kind":"string","rank":-1}]
	}`), &v)
	if err := s.Validate(v); err == nil {
		t.Fatalf("expected negative rank rejected")
	}
}

func TestFieldRequestKey(t *testing.T) {
	if k := (protocol.FieldRequest{Op: "pos"}).Key(); k != "pos" {
		t.Fatalf("key=%q", k)
	}
	if k := (protocol.FieldRequest{Rank: 2}).Key(); k != "#2" {
		t.Fatalf("key=%q", k)
	}
}
