package core

// Intent is a semantic player request, abstracted from physical keys and mouse
// clicks. Press and release are distinct intents because the runner reacts to
// both edges (a short tap gives a short jump).
type Intent int

const (
	IntentNone Intent = iota
	JumpPressed
	JumpReleased
	DuckPressed
	DuckReleased
	RestartRequested
	ResetHighScore
	PauseToggled
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case JumpPressed:
		return "JumpPressed"
	case JumpReleased:
		return "JumpReleased"
	case DuckPressed:
		return "DuckPressed"
	case DuckReleased:
		return "DuckReleased"
	case RestartRequested:
		return "RestartRequested"
	case ResetHighScore:
		return "ResetHighScore"
	case PauseToggled:
		return "PauseToggled"
	default:
		return "Unknown"
	}
}
