package wizard

// Screen identifies the active step of the wizard.
type Screen int

const (
	RepoSelection Screen = iota
	Describe
	ReviewerSelection
	Finalize
)

func (s Screen) Title() string {
	switch s {
	case RepoSelection:
		return "Select Repos"
	case Describe:
		return "Describe"
	case ReviewerSelection:
		return "Add Reviewers"
	case Finalize:
		return "Finalize"
	default:
		return ""
	}
}

type action int

const (
	stay action = iota
	forward
	back
	quit
	confirm
)

// step is the state and key handling owned by one screen.
type step interface {
	screen() Screen
	handle(in Input) action
}

// RepoStep holds the repository picker.
type RepoStep struct {
	Selection
}

func (*RepoStep) screen() Screen { return RepoSelection }

func (s *RepoStep) handle(in Input) action {
	switch in.Key {
	case KeyUp:
		s.Up()
	case KeyDown:
		s.Down()
	case KeyEnter:
		// Leaving requires at least one repository; otherwise ignore.
		if s.Count() > 0 {
			return forward
		}
	case KeyEsc:
		return quit
	case KeyRune:
		switch in.Rune {
		case 'k':
			s.Up()
		case 'j':
			s.Down()
		case ' ':
			s.Toggle()
		case 'q':
			return quit
		}
	}
	return stay
}

// Field is the focused input on the Describe screen.
type Field int

const (
	FieldTitle Field = iota
	FieldDescription
	FieldLabel
)

func (f Field) next() Field { return (f + 1) % 3 }

// DescribeStep holds the title and description buffers and the label choice.
type DescribeStep struct {
	title       []rune
	description []rune
	focus       Field
	label       int
	labels      int
}

func (*DescribeStep) screen() Screen { return Describe }

func (s *DescribeStep) Title() string       { return string(s.title) }
func (s *DescribeStep) Description() string { return string(s.description) }
func (s *DescribeStep) Focus() Field        { return s.focus }

// Label is the index of the selected label, meaningful only when labels exist.
func (s *DescribeStep) Label() int { return s.label }

func (s *DescribeStep) moveLabel(delta int) {
	if s.labels == 0 {
		return
	}
	s.label = ((s.label+delta)%s.labels + s.labels) % s.labels
}

func (s *DescribeStep) buffer() *[]rune {
	switch s.focus {
	case FieldTitle:
		return &s.title
	case FieldDescription:
		return &s.description
	default:
		return nil
	}
}

func (s *DescribeStep) handle(in Input) action {
	switch in.Key {
	case KeyEnter:
		return forward
	case KeyEsc:
		return back
	case KeyTab:
		s.focus = s.focus.next()
	case KeyUp:
		s.moveLabel(-1)
	case KeyDown:
		s.moveLabel(1)
	case KeyBackspace:
		if buf := s.buffer(); buf != nil && len(*buf) > 0 {
			*buf = (*buf)[:len(*buf)-1]
		}
	case KeyRune:
		if buf := s.buffer(); buf != nil {
			*buf = append(*buf, in.Rune)
			return stay
		}
		switch in.Rune {
		case 'j':
			s.moveLabel(1)
		case 'k':
			s.moveLabel(-1)
		}
	}
	return stay
}

// ReviewerStep holds the reviewer picker.
type ReviewerStep struct {
	Selection
}

func (*ReviewerStep) screen() Screen { return ReviewerSelection }

func (s *ReviewerStep) handle(in Input) action {
	switch in.Key {
	case KeyUp:
		s.Up()
	case KeyDown:
		s.Down()
	case KeyEnter:
		return forward
	case KeyEsc:
		return back
	case KeyRune:
		switch in.Rune {
		case 'k':
			s.Up()
		case 'j':
			s.Down()
		case ' ':
			s.Toggle()
		}
	}
	return stay
}

// finalizeStep is a read-only summary awaiting confirmation.
type finalizeStep struct{}

func (finalizeStep) screen() Screen { return Finalize }

func (finalizeStep) handle(in Input) action {
	switch in.Key {
	case KeyEnter:
		return confirm
	case KeyEsc:
		return back
	case KeyRune:
		switch in.Rune {
		case 'y', 'Y':
			return confirm
		case 'n', 'N':
			return back
		}
	}
	return stay
}
