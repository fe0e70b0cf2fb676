package token

// Kind represents the category of a token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the input line.
	EOF

	// Number is a digit-sequence literal in the session base.
	Number
	// Ident is a bare name such as the abs function.
	Ident

	// Plus represents '+'.
	Plus // +
	// Minus represents '-'.
	Minus // -
	// Star represents '*'.
	Star // *
	// SlashSlash represents '//', truncating integer division.
	SlashSlash // //
	// Slash represents a lone '/', which the grammar rejects with a hint.
	Slash // /
	// Percent represents '%'.
	Percent // %
	// Bang represents '!', postfix factorial.
	Bang // !
	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
)

var kindNames = [...]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Number:     "Number",
	Ident:      "Ident",
	Plus:       "Plus",
	Minus:      "Minus",
	Star:       "Star",
	SlashSlash: "SlashSlash",
	Slash:      "Slash",
	Percent:    "Percent",
	Bang:       "Bang",
	LParen:     "LParen",
	RParen:     "RParen",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
