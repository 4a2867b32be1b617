package cmdtoken

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"colobot.info/gold/internal/sim/catalogs"
)

// Policy selects how a Decoder reports values it had to default.
type Policy int

const (
	// Lenient never returns an error. This is how the game reads levels.
	Lenient Policy = iota
	// Strict returns the lenient value together with an error describing
	// why the value was defaulted or truncated.
	Strict
)

func (p Policy) String() string {
	switch p {
	case Lenient:
		return "lenient"
	case Strict:
		return "strict"
	default:
		return "policy(" + strconv.Itoa(int(p)) + ")"
	}
}

func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lenient":
		return Lenient, nil
	case "strict":
		return Strict, nil
	}
	return Lenient, errors.Newf("unknown decode policy %q", s)
}

var (
	// ErrMissing: the operator or the argument at the requested rank is
	// absent.
	ErrMissing = errors.New("missing value")
	// ErrMalformed: the argument is present but is not entirely a number,
	// or a string is not quoted.
	ErrMalformed = errors.New("malformed value")
	// ErrUnknownName: no catalog entry matches the argument.
	ErrUnknownName = errors.New("unknown name")
	// ErrUnknownKind is returned by DecodeField for a kind it does not
	// know, whatever the policy.
	ErrUnknownKind = errors.New("unknown field kind")
)

// Decoder decodes operators of a directive line. The zero value is a
// lenient decoder over the built-in catalogs. A Decoder holds no mutable
// state and is safe for concurrent use.
type Decoder struct {
	Policy   Policy
	Catalogs *catalogs.Set
}

var lenient = Decoder{}

func (d Decoder) set() *catalogs.Set {
	if d.Catalogs == nil {
		return catalogs.Default()
	}
	return d.Catalogs
}

func (d Decoder) fail(op string, err error) error {
	if err == nil || d.Policy != Strict {
		return nil
	}
	return errors.Wrapf(err, "%s", op)
}
