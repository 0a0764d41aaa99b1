package theme

// Builder produces one UI subsystem's slice of the color map.
type Builder func(ctx *Context) map[string]string

type Section struct {
	Name  string
	Build Builder
}

var sections = []Section{
	{"base", BaseColors},
	{"editor", EditorColors},
	{"gutter", GutterColors},
	{"widget", WidgetColors},
	{"diff", DiffColors},
	{"merge", MergeColors},
	{"git", GitColors},
	{"peekView", PeekViewColors},
	{"debug", DebugColors},
	{"scrollbar", ScrollbarColors},
	{"tabs", TabColors},
	{"statusBar", StatusBarColors},
	{"activityBar", ActivityBarColors},
	{"sideBar", SideBarColors},
	{"list", ListColors},
	{"titleBar", TitleBarColors},
	{"panel", PanelColors},
	{"terminal", TerminalColors},
	{"input", InputColors},
	{"button", ButtonColors},
	{"menu", MenuColors},
	{"notification", NotificationColors},
	{"breadcrumb", BreadcrumbColors},
	{"settings", SettingsColors},
}

// Sections returns the section builders in composition order.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// Fragments runs every section builder against ctx.
func Fragments(ctx *Context) []map[string]string {
	out := make([]map[string]string, 0, len(sections))
	for _, s := range sections {
		out = append(out, s.Build(ctx))
	}
	return out
}
