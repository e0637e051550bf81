package constant

// Logical input keys delivered by the host
const (
	KeyFire  = "w"
	KeyStop  = "s"
	KeyLeft  = "a"
	KeyRight = "d"
	KeyStart = "i"
	KeyMenu  = "j"
	KeyPause = "k"
	KeyAux   = "l"
)

// ValidInputs is the complete set of keys a host may bind, in host order
var ValidInputs = []string{KeyFire, KeyStop, KeyLeft, KeyRight, KeyStart, KeyMenu, KeyPause, KeyAux}
