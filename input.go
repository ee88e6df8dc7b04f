package mappings

import "fmt"

// Input is a physical or virtual input on the controller.
type Input uint8

const (
	BackLeftBongo Input = iota
	FrontLeftBongo
	BackRightBongo
	FrontRightBongo
	StartPauseButton
	ClapMicrophone
)

type capability uint8

const (
	capBongo capability = 1 << iota
	capButton
	capMicrophone
)

type inputInfo struct {
	token string
	name  string
	caps  capability
}

var inputTable = [...]inputInfo{
	BackLeftBongo:    {"BLB", "BackLeftBongo", capBongo},
	FrontLeftBongo:   {"FLB", "FrontLeftBongo", capBongo},
	BackRightBongo:   {"BRB", "BackRightBongo", capBongo},
	FrontRightBongo:  {"FRB", "FrontRightBongo", capBongo},
	StartPauseButton: {"SPB", "StartPauseButton", capButton},
	ClapMicrophone:   {"MIC", "ClapMicrophone", capMicrophone},
}

// Inputs returns every input in declaration order.
func Inputs() []Input {
	out := make([]Input, len(inputTable))
	for i := range inputTable {
		out[i] = Input(i)
	}
	return out
}

// LookupInput maps a beat token to its input. Matching is exact and case-sensitive.
func LookupInput(token string) (Input, bool) {
	for i, info := range inputTable {
		if info.token == token {
			return Input(i), true
		}
	}
	return 0, false
}

// Valid reports whether i is one of the declared inputs.
func (i Input) Valid() bool {
	return int(i) < len(inputTable)
}

// Token is the beat token used in documents (e.g., "BLB").
func (i Input) Token() string {
	if !i.Valid() {
		return ""
	}
	return inputTable[i].token
}

func (i Input) String() string {
	if !i.Valid() {
		return fmt.Sprintf("Input(%d)", uint8(i))
	}
	return inputTable[i].name
}

// IsBongo reports whether i is one of the four drum pads.
func (i Input) IsBongo() bool { return i.has(capBongo) }

// IsButton reports whether i is a push button.
func (i Input) IsButton() bool { return i.has(capButton) }

// RequiresMicrophone reports whether i needs the clap microphone.
func (i Input) RequiresMicrophone() bool { return i.has(capMicrophone) }

func (i Input) has(c capability) bool {
	return i.Valid() && inputTable[i].caps&c != 0
}

// MarshalText encodes the input as its beat token.
func (i Input) MarshalText() ([]byte, error) {
	if !i.Valid() {
		return nil, fmt.Errorf("invalid input %d", uint8(i))
	}
	return []byte(i.Token()), nil
}

// UnmarshalText decodes a beat token.
func (i *Input) UnmarshalText(text []byte) error {
	in, ok := LookupInput(string(text))
	if !ok {
		return fmt.Errorf("unknown beat %q", text)
	}
	*i = in
	return nil
}
