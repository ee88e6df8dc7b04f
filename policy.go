package mappings

import "fmt"

// MicrophonePolicy decides whether rhythms may use the clap microphone.
type MicrophonePolicy int

const (
	// MicrophoneUnrestricted accepts MIC beats regardless of global.microphone.
	MicrophoneUnrestricted MicrophonePolicy = iota
	// MicrophoneRequiresEnabled rejects MIC beats unless global.microphone is true.
	MicrophoneRequiresEnabled
)

func (p MicrophonePolicy) String() string {
	switch p {
	case MicrophoneUnrestricted:
		return "unrestricted"
	case MicrophoneRequiresEnabled:
		return "requires-enabled"
	default:
		return fmt.Sprintf("MicrophonePolicy(%d)", int(p))
	}
}

// check runs over resolved settings, one failure per offending rhythm.
func (p MicrophonePolicy) check(s *Settings) []*ParseError {
	if p != MicrophoneRequiresEnabled || s.Global.Microphone {
		return nil
	}

	var errs []*ParseError
	for i, r := range s.Freestyle {
		if r.UsesMicrophone() {
			errs = append(errs, &ParseError{
				Code:      ErrCodeMicrophoneDisabled,
				Path:      fmt.Sprintf("freestyle[%d].beats", i),
				Character: rune(r.Character),
			})
		}
	}
	return errs
}
