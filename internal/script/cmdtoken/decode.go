package cmdtoken

import (
	"math"

	"github.com/cockroachdb/errors"

	"colobot.info/gold/internal/sim/catalogs"
	"colobot.info/gold/internal/sim/geom"
)

// Argument level decoders. They always compute the lenient value; the error
// says why it may not be what the author meant.

func intArg(cursor string, rank, def int) (int, error) {
	p := SearchArg(cursor, rank)
	if p == "" {
		return def, ErrMissing
	}
	n, used, ok := scanInt(p)
	if tok := argToken(p); !ok || used != len(tok) {
		return n, errors.Wrapf(ErrMalformed, "int %q", tok)
	}
	return n, nil
}

func floatArg(cursor string, rank int, def float64) (float64, error) {
	p := SearchArg(cursor, rank)
	if p == "" {
		return def, ErrMissing
	}
	f, used, ok := scanFloat(p)
	if tok := argToken(p); !ok || used != len(tok) {
		return f, errors.Wrapf(ErrMalformed, "float %q", tok)
	}
	if math.IsInf(f, 0) {
		return f, errors.Wrapf(ErrMalformed, "float %q out of range", argToken(p))
	}
	return f, nil
}

func stringArg(cursor string, rank int) (string, error) {
	p := SearchArg(cursor, rank)
	if p == "" {
		return "", ErrMissing
	}
	s, quoted, closed := scanString(p)
	switch {
	case !quoted:
		return "", errors.Wrapf(ErrMalformed, "string %q is not quoted", argToken(p))
	case !closed:
		return s, errors.Wrap(ErrMalformed, "unterminated string")
	}
	return s, nil
}

func enumArg[C comparable](cat *catalogs.Catalog[C], cursor string, rank int, def C) (C, error) {
	p := SearchArg(cursor, rank)
	if p == "" {
		return def, ErrMissing
	}
	if c, ok := cat.Lookup(func(name string) bool { return Cmd(p, name) }); ok {
		return c, nil
	}
	return def, errors.Wrapf(ErrUnknownName, "%s %q", cat.Domain(), GetCmd(p))
}

// floatsArg decodes n consecutive float arguments starting at rank. Absent
// components are 0.
func floatsArg(cursor string, rank, n int) ([]float64, error) {
	out := make([]float64, n)
	var errs []error
	for i := range out {
		f, err := floatArg(cursor, rank+i, 0)
		out[i] = f
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "component %d", i))
		}
	}
	if len(errs) == 0 {
		return out, nil
	}
	return out, errors.Join(errs...)
}

func posArg(cursor string, rank int) (geom.Vec3, error) {
	f, err := floatsArg(cursor, rank, 2)
	return geom.Vec3{X: f[0], Z: f[1]}, err
}

func dirArg(cursor string, rank int) (geom.Vec3, error) {
	f, err := floatsArg(cursor, rank, 3)
	return geom.Vec3{X: f[0], Y: f[1], Z: f[2]}, err
}

func colorArg(cursor string, rank int) (geom.Color, error) {
	f, err := floatsArg(cursor, rank, 4)
	return geom.Color{R: f[0], G: f[1], B: f[2], A: f[3]}, err
}

// GetInt decodes the integer argument at rank. "0x" starts a lowercase
// hexadecimal number. A present but non numeric argument yields 0, an absent
// one yields def.
func GetInt(cursor string, rank, def int) int {
	n, _ := intArg(cursor, rank, def)
	return n
}

// GetFloat decodes the float argument at rank, 0 when malformed and def
// when absent.
func GetFloat(cursor string, rank int, def float64) float64 {
	f, _ := floatArg(cursor, rank, def)
	return f
}

// GetString decodes the quoted string at rank. An unquoted argument yields
// "". A doubled quote inside the string is one literal quote.
func GetString(cursor string, rank int) string {
	s, _ := stringArg(cursor, rank)
	return s
}
