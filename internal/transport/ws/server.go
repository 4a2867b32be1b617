package ws

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"colobot.info/gold/internal/logging"
	"colobot.info/gold/internal/protocol"
	"colobot.info/gold/internal/script/cmdtoken"
	"colobot.info/gold/internal/sim/catalogs"
	"colobot.info/gold/internal/sim/geom"
)

// Path is where the decode endpoint is mounted.
const Path = "/v1/decode"

// MaxFields bounds the fields of a single DECODE request.
const MaxFields = 64

type Server struct {
	cats   *catalogs.Set
	policy cmdtoken.Policy
	log    *zap.SugaredLogger

	upgrader websocket.Upgrader
}

// NewServer serves decodes against cats. policy applies to sessions whose
// HELLO does not pick one.
func NewServer(cats *catalogs.Set, policy cmdtoken.Policy) *Server {
	if cats == nil {
		cats = catalogs.Default()
	}
	return &Server{
		cats:   cats,
		policy: policy,
		log:    logging.Component("ws"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  16 * 1024,
			WriteBufferSize: 16 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
	}
}

// Mux returns a ServeMux with the decode endpoint and a health check.
func (s *Server) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle(Path, s.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		sessionID, dec := s.handshake(conn)
		if sessionID == "" {
			return
		}
		log := s.log.With("session", sessionID)
		log.Debugw("session open", "policy", dec.Policy.String())

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		out := make(chan []byte, 16)
		done := make(chan struct{})

		// Writer goroutine.
		go func() {
			defer close(done)
			for {
				select {
				case <-ctx.Done():
					return
				case b := <-out:
					_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
					if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
						cancel()
						return
					}
				}
			}
		}()

		send := func(v any) bool {
			b, err := encodeReply(v)
			if err != nil {
				log.Errorw("marshal reply", "error", err)
			}
			if b == nil {
				return true
			}
			select {
			case out <- b:
				return true
			case <-ctx.Done():
				return false
			}
		}

		// Reader loop.
		for {
			_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
			_, msg, err := conn.ReadMessage()
			if err != nil {
				break
			}
			reply := s.handle(dec, msg)
			if !send(reply) {
				break
			}
		}
		cancel()
		<-done
		log.Debugw("session closed")
	}
}

// handle turns one client frame into the reply to send.
func (s *Server) handle(dec cmdtoken.Decoder, msg []byte) any {
	base, err := protocol.DecodeBase(msg)
	if err != nil {
		return errorMsg("", protocol.ErrProtoBadRequest, "invalid json")
	}
	if base.Type != protocol.TypeDecode {
		return errorMsg("", protocol.ErrProtoBadRequest, "unexpected message type "+base.Type)
	}
	var req protocol.DecodeMsg
	if err := json.Unmarshal(msg, &req); err != nil {
		return errorMsg("", protocol.ErrProtoBadRequest, "invalid DECODE")
	}
	if req.ProtocolVersion != protocol.Version {
		return errorMsg(req.ID, protocol.ErrProtoVersion, "bad protocol_version")
	}
	if len(req.Fields) > MaxFields {
		return errorMsg(req.ID, protocol.ErrProtoBadRequest, "too many fields")
	}
	return Decode(dec, req)
}

// Decode answers one DECODE request. Values hold every field whose kind is
// known, including defaulted ones; Errors lists what the decoder reported.
func Decode(dec cmdtoken.Decoder, req protocol.DecodeMsg) protocol.DecodedMsg {
	resp := protocol.DecodedMsg{
		Type:            protocol.TypeDecoded,
		ProtocolVersion: protocol.Version,
		ID:              req.ID,
		Command:         cmdtoken.GetCmd(req.Line),
		Values:          make(map[string]any, len(req.Fields)),
	}
	for _, f := range req.Fields {
		key := f.Key()
		v, err := dec.DecodeField(req.Line, cmdtoken.Field{
			Op:      f.Op,
			Kind:    cmdtoken.Kind(f.Kind),
			Rank:    f.Rank,
			Default: f.Default,
		})
		if !errors.Is(err, cmdtoken.ErrUnknownKind) {
			if finite(v) {
				resp.Values[key] = v
			} else if err == nil {
				err = errors.Wrapf(cmdtoken.ErrMalformed, "%s: value out of range", key)
			}
		}
		if err != nil {
			resp.Errors = append(resp.Errors, protocol.FieldError{
				Field:   key,
				Code:    errorCode(err),
				Message: err.Error(),
			})
		}
	}
	return resp
}

// finite reports whether v has no infinite or NaN component. JSON cannot
// carry those.
func finite(v any) bool {
	ok := func(f float64) bool { return !math.IsInf(f, 0) && !math.IsNaN(f) }
	switch v := v.(type) {
	case float64:
		return ok(v)
	case geom.Vec3:
		return ok(v.X) && ok(v.Y) && ok(v.Z)
	case geom.Color:
		return ok(v.R) && ok(v.G) && ok(v.B) && ok(v.A)
	}
	return true
}

// encodeReply marshals v. When that fails the client still gets an
// E_INTERNAL error carrying the request id.
func encodeReply(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err == nil {
		return b, nil
	}
	var id string
	switch m := v.(type) {
	case protocol.DecodedMsg:
		id = m.ID
	case protocol.ErrorMsg:
		id = m.ID
	}
	fallback, ferr := json.Marshal(errorMsg(id, protocol.ErrInternal, "reply could not be encoded"))
	if ferr != nil {
		return nil, errors.Join(err, ferr)
	}
	return fallback, err
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, cmdtoken.ErrUnknownKind):
		return protocol.ErrBadKind
	case errors.Is(err, cmdtoken.ErrMissing):
		return protocol.ErrMissing
	case errors.Is(err, cmdtoken.ErrMalformed):
		return protocol.ErrMalformed
	case errors.Is(err, cmdtoken.ErrUnknownName):
		return protocol.ErrUnknownName
	default:
		return protocol.ErrInternal
	}
}

func (s *Server) handshake(conn *websocket.Conn) (sessionID string, dec cmdtoken.Decoder) {
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		return "", dec
	}

	reject := func(code, text string) (string, cmdtoken.Decoder) {
		_ = writeJSON(conn, errorMsg("", code, text))
		_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.ClosePolicyViolation, text), time.Now().Add(time.Second))
		return "", cmdtoken.Decoder{}
	}

	base, err := protocol.DecodeBase(msg)
	if err != nil || base.Type != protocol.TypeHello {
		return reject(protocol.ErrProtoNoHello, "expected HELLO")
	}
	var hello protocol.HelloMsg
	if err := json.Unmarshal(msg, &hello); err != nil {
		return reject(protocol.ErrProtoBadRequest, "invalid HELLO")
	}
	if hello.ProtocolVersion != protocol.Version {
		return reject(protocol.ErrProtoVersion, "bad protocol_version")
	}

	dec = cmdtoken.Decoder{Policy: s.policy, Catalogs: s.cats}
	if hello.Policy != "" {
		p, err := cmdtoken.ParsePolicy(hello.Policy)
		if err != nil {
			return reject(protocol.ErrProtoBadRequest, err.Error())
		}
		dec.Policy = p
	}

	kinds := cmdtoken.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	sessionID = uuid.NewString()
	welcome := protocol.WelcomeMsg{
		Type:            protocol.TypeWelcome,
		ProtocolVersion: protocol.Version,
		SessionID:       sessionID,
		Policy:          dec.Policy.String(),
		Catalogs:        s.cats.Digests(),
		Kinds:           names,
	}
	if err := writeJSON(conn, welcome); err != nil {
		return "", dec
	}
	return sessionID, dec
}

func errorMsg(id, code, text string) protocol.ErrorMsg {
	return protocol.ErrorMsg{
		Type:            protocol.TypeError,
		ProtocolVersion: protocol.Version,
		ID:              id,
		Code:            code,
		Message:         text,
	}
}

func writeJSON(conn *websocket.Conn, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	return conn.WriteMessage(websocket.TextMessage, b)
}
