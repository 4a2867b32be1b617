// Package cmdtoken decodes directive lines of level, scene and state files.
//
// A directive line looks like
//
//	CreateObject type=WingedGrabber pos=10;-4.5 dir=0.5 power=1
//
// The first word is the command. Operators are found with SearchOp, which
// returns a cursor (the remaining suffix of the line) positioned just after
// "op=". Semicolon separated arguments are addressed by rank from a cursor
// with SearchArg. The typed decoders (GetInt, GetFloat, GetString and the
// enumeration decoders) combine the two.
//
// The package level functions are lenient: an absent operator, a malformed
// value and an unknown enumeration name all produce the caller's default and
// cannot be told apart. Level files written by hand depend on this. A Decoder
// with the Strict policy returns the same values together with ErrMissing,
// ErrMalformed or ErrUnknownName so tools can report what the lenient path
// silently accepted.
//
// Known quirks kept for file compatibility: hexadecimal integers only accept
// lowercase digits ("0xFF" decodes to 0), and an enumeration name followed by
// ';' without a space does not match.
package cmdtoken
