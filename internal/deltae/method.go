package deltae

import (
	"fmt"
	"strings"
)

// Method is a color-difference formula.
type Method int

const (
	DE2000 Method = iota
	DE1994
	DE1994T
	DECMC1
	DECMC2
	DE1976
)

// Default is the method used when none is requested.
const Default = DE2000

var methodNames = [...]string{
	DE2000:  "DE2000",
	DE1994:  "DE1994",
	DE1994T: "DE1994T",
	DECMC1:  "DECMC1",
	DECMC2:  "DECMC2",
	DE1976:  "DE1976",
}

var methodAliases = map[string]Method{
	"de2000": DE2000, "2000": DE2000, "de00": DE2000, "00": DE2000,
	"de1994": DE1994, "1994": DE1994, "de94": DE1994, "94": DE1994,
	"de1994t": DE1994T, "1994t": DE1994T, "de94t": DE1994T, "94t": DE1994T,
	"decmc1": DECMC1, "cmc1": DECMC1, "decmc": DECMC1, "cmc": DECMC1,
	"decmc2": DECMC2, "cmc2": DECMC2,
	"de1976": DE1976, "1976": DE1976, "de76": DE1976, "76": DE1976,
}

func (m Method) String() string {
	if int(m) >= 0 && int(m) < len(methodNames) {
		return methodNames[m]
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod resolves a method name case-insensitively. Accepted spellings
// include "DE2000", "2000", "cmc2" and "1994t".
func ParseMethod(s string) (Method, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "_", "")
	if m, ok := methodAliases[key]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("unknown delta-E method %q", s)
}

// Methods returns every supported method.
func Methods() []Method {
	return []Method{DE2000, DE1994, DE1994T, DECMC1, DECMC2, DE1976}
}
