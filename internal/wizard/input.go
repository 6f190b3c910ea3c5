package wizard

// Key is a logical input event, independent of the terminal library.
type Key int

const (
	KeyRune      Key = iota // printable character in Input.Rune, including space
	KeyUp                   // arrow up
	KeyDown                 // arrow down
	KeyEnter                // advance / confirm
	KeyEsc                  // back, or quit on the first screen
	KeyTab                  // focus cycle
	KeyBackspace            // delete last character
	KeyCancel               // global quit from any screen
)

// Input is one key press.
type Input struct {
	Key  Key
	Rune rune
}

func Rune(r rune) Input { return Input{Key: KeyRune, Rune: r} }
func Press(k Key) Input { return Input{Key: k} }
