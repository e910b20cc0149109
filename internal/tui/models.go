package tui

// View identifies the active page.
type View int

const (
	ViewEditor View = iota
	ViewList
	ViewSettings
)

func (v View) String() string {
	switch v {
	case ViewEditor:
		return "Editor"
	case ViewList:
		return "List"
	case ViewSettings:
		return "Settings"
	default:
		return "Unknown"
	}
}

// Editor input indices, in focus order.
const (
	fieldTitle = iota
	fieldURL
	fieldAuthor
	fieldPublished
	fieldViewed
	fieldComment
	fieldCount
)
