package schedule

// ===============================
// Presence
// ===============================

type Presence string

const (
	PresenceAbsent  Presence = "faltou"
	PresencePresent Presence = "compareceu"
)

// PresenceFromFlag traduz o booleano persistido; registro ausente
// conta como falta.
func PresenceFromFlag(present bool) Presence {
	if present {
		return PresencePresent
	}
	return PresenceAbsent
}
