package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Keyspec is a key sequence specification as used in the config, e.g. "gl",
// "1" or "<c-z>".
type Keyspec string

// specialKeys maps the identifiers usable within '<' and '>' to keys.
var specialKeys = map[string]Key{
	"space": {Key: tcell.KeyRune, Ch: ' '},
	"cr":    {Key: tcell.KeyEnter},
	"esc":   {Key: tcell.KeyESC},
	"tab":   {Key: tcell.KeyTab},
	"del":   {Key: tcell.KeyDelete},
	"bs":    {Key: tcell.KeyBackspace2},
	"left":  {Key: tcell.KeyLeft},
	"right": {Key: tcell.KeyRight},
	"up":    {Key: tcell.KeyUp},
	"down":  {Key: tcell.KeyDown},

	"c-space": {Key: tcell.KeyCtrlSpace},
	"c-bs":    {Key: tcell.KeyBackspace},
}

// specialIdentifiers is the inverse of specialKeys.
// Where terminals can't tell keys apart (e.g. <c-i> and <tab>), the named
// identifier is used.
var specialIdentifiers = map[Key]string{}

func init() {
	for c := 'a'; c <= 'z'; c++ {
		identifier := "c-" + string(c)
		key := Key{Key: tcell.KeyCtrlA + tcell.Key(c-'a')}
		specialKeys[identifier] = key
		specialIdentifiers[key] = identifier
	}
	for identifier, key := range specialKeys {
		if len(identifier) != 3 || !strings.HasPrefix(identifier, "c-") {
			specialIdentifiers[key] = identifier
		}
	}
}

// ConfigKeyspecToKeys converts full key sequence specification strings (e.g.
// "<space>qw" meaning the SPACE key, then the Q key, then the W key) to the
// appropriate sequence of Keys (or an error, if invalid).
func ConfigKeyspecToKeys(spec Keyspec) ([]Key, error) {
	result := make([]Key, 0, len(spec))

	var special []rune
	inSpecial := false
	for pos, r := range string(spec) {
		switch {

		case r == '<':
			if inSpecial {
				return nil, fmt.Errorf("illegal second opening special context ('<') before previous is closed (pos %d)", pos)
			}
			inSpecial = true
			special = special[:0]

		case r == '>':
			if !inSpecial {
				return nil, fmt.Errorf("illegal closing of special context ('>') while none open (pos %d)", pos)
			}
			inSpecial = false
			key, err := KeyIdentifierToKey(string(special))
			if err != nil {
				return nil, fmt.Errorf("error mapping identifier '<%s>' to key: %s", string(special), err.Error())
			}
			result = append(result, key)

		case inSpecial:
			if !unicode.IsLetter(r) && r != '-' {
				return nil, fmt.Errorf("illegal character '%c' in special context (pos %d)", r, pos)
			}
			special = append(special, r)

		default:
			result = append(result, Key{Key: tcell.KeyRune, Ch: r})

		}
	}
	if inSpecial {
		return nil, fmt.Errorf("unclosed special context ('<') at end of '%s'", spec)
	}

	return result, nil
}

// KeyIdentifierToKey converts the given special identifier to the appropriate
// key (or an error, if invalid).
func KeyIdentifierToKey(identifier string) (Key, error) {
	key, ok := specialKeys[strings.ToLower(identifier)]
	if !ok {
		return Key{}, fmt.Errorf("no mapping present for identifier '%s'", identifier)
	}
	return key, nil
}

// ToConfigIdentifierString converts the given key to its configuration
// identifier.
func ToConfigIdentifierString(k Key) string {
	if identifier, ok := specialIdentifiers[k]; ok {
		return "<" + identifier + ">"
	}
	if k.Key == tcell.KeyRune {
		return string(k.Ch)
	}
	panic(fmt.Sprintf("undescribable key %s", k.ToDebugString()))
}
