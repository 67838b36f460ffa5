package lexer

// TokenKind identifies the lexical category of a Token. The set is closed:
// every Spin source construct maps to exactly one TokenKind, grouped below
// by family for readability (sentinels, literals, identifiers, basic type
// names, keywords, modifiers, specifiers, operators, punctuation).
type TokenKind int

const (
	// Sentinels bracket every token stream and flag lexer failure.
	BeginFile TokenKind = iota // synthetic token preceding the first real token
	EndFile                    // synthetic token following the last real token
	Empty                      // token blanked out by Wings (e.g. a consumed import)
	Invalid                    // a run of bytes the lexer could not classify

	// Identifiers and user-type names.
	Symbol     // a plain identifier: x, myFunc, i
	CustomType // an identifier reclassified as a class/type name by Wings

	// Literals.
	IntegerLit   // 42, 0x2A, 0b101010, 0o52, 0d42
	RealLit      // 3.14, 1.0e10
	ImaginaryLit // 2i, 3.5i
	StringLit    // "hello\n"
	CharacterLit // 'x', '\n', '\0x41'
	BooleanLit   // true, false
	RealIdiom    // infinity, undefined

	// Bra/ket literal forms (§4.1).
	BasisBra  // <0| <1|
	BasisKet  // |0> |1>
	BraSymbol // <name|
	KetSymbol // |name>
	BraKet    // <a|b>
	KetBra    // |a><b|

	// Basic type names (declaration keywords, also the closed BasicType tag set
	// minus the composite kinds Array/Vector/Routine/Class/Instance/Unknown).
	BasicTypeName // lexeme one of: Boolean Byte Character Complex Imaginary Integer Real String

	// Keywords.
	KwVar
	KwCon
	KwVec
	KwMat
	KwIf
	KwElse
	KwSwap
	KwWhile
	KwDo
	KwLoop
	KwFor
	KwRepeat
	KwUntil
	KwBreak
	KwContinue
	KwSelf
	KwSleep
	KwClock
	KwRandom
	KwImport
	KwFunc
	KwProc
	KwRest
	KwReturn
	KwWrite
	KwRead
	KwNew
	KwDelete
	KwClass

	// Modifiers (access control, §3 AccessModifier).
	ModPublic
	ModHidden
	ModSecure
	ModImmune
	ModStatic
	ModShared

	// Specifiers (lifecycle control).
	SpecCreate
	SpecDelete

	// Operators, multi-character forms tried before their single-char prefix.
	OpAssign       // =
	OpArrow        // ->
	OpEq           // ==
	OpNotEq        // !=
	OpLessEq       // <=
	OpGreaterEq    // >=
	OpLess         // <
	OpGreater      // >
	OpDoubleColon  // ::
	OpColon        // :
	OpAnd          // &&
	OpOr           // ||
	OpShl          // <<
	OpShr          // >>
	OpBraOpen      // <*
	OpKetClose     // *>
	OpPlus         // +
	OpMinus        // -
	OpStar         // *
	OpSlash        // /
	OpPercent      // %
	OpPipe         // |
	OpAmp          // &
	OpCaret        // ^
	OpTilde        // ~
	OpBang         // !
	OpDegree       // ° (U+00B0), conjugate
	OpQuote        // ' , dagger
	OpPlusAssign   // +=
	OpMinusAssign  // -=
	OpStarAssign   // *=
	OpSlashAssign  // /=
	OpPercentAssign // %=
	OpAmpAssign    // &=
	OpPipeAssign   // |=
	OpCaretAssign  // ^=
	OpDollarAssign // $=
	OpTildeAssign  // ~=

	// Punctuation.
	LParen   // (
	RParen   // )
	LBracket // [
	RBracket // ]
	LBrace   // {
	RBrace   // }
	Comma    // ,
	Dot      // .
	Semi     // ;
	At       // @ (introduces a modifier/specifier, consumed by the lexer itself)
)

// String renders a TokenKind's name for diagnostics and tests.
func (k TokenKind) String() string {
	if s, ok := tokenKindNames[k]; ok {
		return s
	}
	return "unknown"
}

var tokenKindNames = map[TokenKind]string{
	BeginFile: "beginFile", EndFile: "endFile", Empty: "empty", Invalid: "invalid",
	Symbol: "symbol", CustomType: "customType",
	IntegerLit: "integer", RealLit: "real", ImaginaryLit: "imaginary",
	StringLit: "string", CharacterLit: "character", BooleanLit: "boolean",
	RealIdiom: "realIdiom",
	BasisBra:  "basisBra", BasisKet: "basisKet",
	BraSymbol: "braSymbol", KetSymbol: "ketSymbol", BraKet: "braKet", KetBra: "ketBra",
	BasicTypeName: "basicType",
	KwVar:         "var", KwCon: "con", KwVec: "vec", KwMat: "mat",
	KwIf: "if", KwElse: "else", KwSwap: "swap", KwWhile: "while", KwDo: "do",
	KwLoop: "loop", KwFor: "for", KwRepeat: "repeat", KwUntil: "until",
	KwBreak: "break", KwContinue: "continue", KwSelf: "self",
	KwSleep: "sleep", KwClock: "clock", KwRandom: "random", KwImport: "import",
	KwFunc: "func", KwProc: "proc", KwRest: "rest", KwReturn: "return",
	KwWrite: "write", KwRead: "read", KwNew: "new", KwDelete: "delete", KwClass: "class",
	ModPublic: "@public", ModHidden: "@hidden", ModSecure: "@secure",
	ModImmune: "@immune", ModStatic: "@static", ModShared: "@shared",
	SpecCreate: "@create", SpecDelete: "@delete",
	OpAssign: "=", OpArrow: "->", OpEq: "==", OpNotEq: "!=",
	OpLessEq: "<=", OpGreaterEq: ">=", OpLess: "<", OpGreater: ">",
	OpDoubleColon: "::", OpColon: ":", OpAnd: "&&", OpOr: "||",
	OpShl: "<<", OpShr: ">>", OpBraOpen: "<*", OpKetClose: "*>",
	OpPlus: "+", OpMinus: "-", OpStar: "*", OpSlash: "/", OpPercent: "%",
	OpPipe: "|", OpAmp: "&", OpCaret: "^", OpTilde: "~", OpBang: "!",
	OpDegree: "°", OpQuote: "'",
	OpPlusAssign: "+=", OpMinusAssign: "-=", OpStarAssign: "*=", OpSlashAssign: "/=",
	OpPercentAssign: "%=", OpAmpAssign: "&=", OpPipeAssign: "|=", OpCaretAssign: "^=",
	OpDollarAssign: "$=", OpTildeAssign: "~=",
	LParen: "(", RParen: ")", LBracket: "[", RBracket: "]", LBrace: "{", RBrace: "}",
	Comma: ",", Dot: ".", Semi: ";", At: "@",
}

// keywords maps reserved-word lexemes to their TokenKind, matched after an
// identifier is scanned (§4.1: "matched as identifiers first and then
// reclassified by table lookup").
var keywords = map[string]TokenKind{
	"var": KwVar, "con": KwCon, "vec": KwVec, "mat": KwMat,
	"if": KwIf, "else": KwElse, "swap": KwSwap, "while": KwWhile, "do": KwDo,
	"loop": KwLoop, "for": KwFor, "repeat": KwRepeat, "until": KwUntil,
	"break": KwBreak, "continue": KwContinue, "self": KwSelf,
	"sleep": KwSleep, "clock": KwClock, "random": KwRandom, "import": KwImport,
	"func": KwFunc, "proc": KwProc, "rest": KwRest, "return": KwReturn,
	"write": KwWrite, "read": KwRead, "new": KwNew, "delete": KwDelete,
	"class": KwClass,
	"true":  BooleanLit, "false": BooleanLit,
	"infinity": RealIdiom, "undefined": RealIdiom,
}

// basicTypeNames is the closed set of primitive type keywords (§6).
var basicTypeNames = map[string]bool{
	"Boolean": true, "Byte": true, "Character": true, "Complex": true,
	"Imaginary": true, "Integer": true, "Real": true, "String": true,
}

// modifiers maps a modifier/specifier name (without the leading '@') to its kind.
var modifiers = map[string]TokenKind{
	"public": ModPublic, "hidden": ModHidden, "secure": ModSecure,
	"immune": ModImmune, "static": ModStatic, "shared": ModShared,
	"create": SpecCreate, "delete": SpecDelete,
}
