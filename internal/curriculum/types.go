package curriculum

// SlideKind identifies how a slide's content is presented.
type SlideKind string

const (
	SlideText        SlideKind = "text"
	SlideImage       SlideKind = "image"
	SlideTable       SlideKind = "table"
	SlideInteractive SlideKind = "interactive"
)

// InteractiveContent is the payload for an interactive slide.
// Currently the only interactive activity is equation balancing.
type InteractiveContent struct {
	// Activity identifies the interactive widget, e.g. "balance-equation".
	Activity string

	// Equation is the unbalanced chemical equation, e.g. "H2 + O2 -> H2O".
	Equation string

	// Balanced holds the coefficients of the balanced equation in
	// left-to-right term order.
	Balanced []int
}

// Slide is a single step of lesson content. Title may be empty.
// For text/image/table slides Content holds the prose (or, for image
// slides, the image-generation description). Interactive slides carry
// their payload in Interactive and leave Content empty.
type Slide struct {
	Kind        SlideKind
	Title       string
	Content     string
	Interactive *InteractiveContent
}

// Lesson is a single teachable unit of the curriculum.
// Lessons are immutable after the catalog is built.
type Lesson struct {
	ID     string
	Title  string
	Slides []Slide

	// Dependencies lists the lesson IDs that must all be completed
	// before this lesson unlocks.
	Dependencies []string
}

// Unit groups an ordered run of lessons under one theme.
type Unit struct {
	ID      string
	Title   string
	Lessons []Lesson
}

// Subject is a named curriculum: an ordered list of units.
type Subject struct {
	ID    string
	Name  string
	Units []Unit
}
