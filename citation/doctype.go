package citation

import "strings"

// DocType is the document-type code understood by the lookup service.
type DocType int

const (
	// DocTypeUnknown is the zero value and never appears in a lookup URL.
	DocTypeUnknown DocType = iota
	// DocTypeLaw is a federal law (wet/loi).
	DocTypeLaw
	// DocTypeDecree is a community or regional decree (decreet/décret).
	DocTypeDecree
	// DocTypeOrdinance is a Brussels ordinance. No shorthand token produces it.
	DocTypeOrdinance
	// DocTypeDecision is a royal or ministerial decision (KB/AR, MB/AM).
	DocTypeDecision
)

// Code returns the query value for t, or "" for DocTypeUnknown.
func (t DocType) Code() string {
	switch t {
	case DocTypeLaw:
		return "LAW"
	case DocTypeDecree:
		return "DECREE"
	case DocTypeOrdinance:
		return "ORD"
	case DocTypeDecision:
		return "DECISION"
	default:
		return ""
	}
}

func (t DocType) String() string {
	if code := t.Code(); code != "" {
		return code
	}
	return "UNKNOWN"
}

// ParseDocType maps a query code such as "LAW" back to its DocType.
func ParseDocType(code string) (DocType, bool) {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "LAW":
		return DocTypeLaw, true
	case "DECREE":
		return DocTypeDecree, true
	case "ORD":
		return DocTypeOrdinance, true
	case "DECISION":
		return DocTypeDecision, true
	default:
		return DocTypeUnknown, false
	}
}

// Token is a shorthand document-type word recognised in free text.
type Token int

const (
	TokenUnknown Token = iota
	TokenWet           // wet, Dutch "law"
	TokenLoi           // loi, French "law"
	TokenDecr          // decr, decreet/décret
	TokenKB            // kb, koninklijk besluit
	TokenAR            // ar, arrêté royal
	TokenMB            // mb, ministerieel besluit
	TokenAM            // am, arrêté ministériel
)

// tokens lists the recognised words; it also drives the citation pattern.
var tokens = []struct {
	word  string
	token Token
}{
	{"wet", TokenWet},
	{"loi", TokenLoi},
	{"decr", TokenDecr},
	{"kb", TokenKB},
	{"ar", TokenAR},
	{"mb", TokenMB},
	{"am", TokenAM},
}

// ParseToken maps a lower-case shorthand word to its Token.
func ParseToken(word string) (Token, bool) {
	for _, t := range tokens {
		if t.word == word {
			return t.token, true
		}
	}
	return TokenUnknown, false
}

// String returns the shorthand word.
func (t Token) String() string {
	for _, entry := range tokens {
		if entry.token == t {
			return entry.word
		}
	}
	return "unknown"
}

// DocType returns the document type a shorthand token stands for.
func (t Token) DocType() DocType {
	switch t {
	case TokenWet, TokenLoi:
		return DocTypeLaw
	case TokenDecr:
		return DocTypeDecree
	case TokenKB, TokenAR, TokenMB, TokenAM:
		return DocTypeDecision
	default:
		return DocTypeUnknown
	}
}

func tokenAlternation() string {
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.word
	}
	return strings.Join(words, "|")
}
