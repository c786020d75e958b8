package confscan

// Kind identifies the lexical category of a token.
type Kind string

const (
	// KindEOF marks end-of-stream: every frame on the include stack has
	// been exhausted.
	KindEOF Kind = "EOF"
	// KindError reports a scanner-level failure; details are available
	// from Scanner.Err until a later ERROR token replaces them.
	KindError Kind = "ERROR"
	// KindGarbage carries a single byte no rule matched.
	KindGarbage Kind = "GARBAGE"

	KindEquals     Kind = "EQUALS"
	KindComma      Kind = "COMMA"
	KindSemicolon  Kind = "SEMICOLON"
	KindGroupStart Kind = "GROUP_START"
	KindGroupEnd   Kind = "GROUP_END"
	KindArrayStart Kind = "ARRAY_START"
	KindArrayEnd   Kind = "ARRAY_END"
	KindListStart  Kind = "LIST_START"
	KindListEnd    Kind = "LIST_END"

	KindBoolean   Kind = "BOOLEAN"
	KindName      Kind = "NAME"
	KindString    Kind = "STRING"
	KindInteger   Kind = "INTEGER"
	KindInteger64 Kind = "INTEGER64"
	KindHex       Kind = "HEX"
	KindHex64     Kind = "HEX64"
	KindFloat     Kind = "FLOAT"
)

// Token is one lexical unit together with its payload and the position it
// was pulled from. Only the field matching the kind is meaningful:
//
//	KindBoolean    Bool
//	KindInteger    Int   (also KindHex, as the signed reinterpretation)
//	KindInteger64  Int64
//	KindHex64      Uint64
//	KindFloat      Float
//	KindString     Bytes (owned by the caller)
//	KindName       Bytes (borrowed; valid only until the next Next call)
//	KindGarbage    Byte
//
// NAME payloads alias the scanner's buffer for the current file. Callers
// that keep a name across pulls must copy it.
type Token struct {
	Kind Kind

	Bool   bool
	Int    int32
	Int64  int64
	Uint64 uint64
	Float  float64
	Bytes  []byte
	Byte   byte

	Line int
	Path string
}
