package palette

import (
	"fmt"
	"strings"
)

// Component is a region of editor chrome that gets its own background shade.
type Component int

const (
	ComponentEditor Component = iota
	ComponentSideBar
	ComponentActivityBar
	ComponentStatusBar
	ComponentTitleBar
	ComponentPanel
	ComponentTabBar
	ComponentTabActive
	ComponentTabInactive
	ComponentTerminal
	ComponentInput
	ComponentDropdown
	ComponentWidget
	ComponentMenu
	ComponentPeekView
	ComponentNotification
	ComponentBreadcrumb
	ComponentMinimap
	componentCount
)

var componentNames = [componentCount]string{
	"editor",
	"sideBar",
	"activityBar",
	"statusBar",
	"titleBar",
	"panel",
	"tabBar",
	"tabActive",
	"tabInactive",
	"terminal",
	"input",
	"dropdown",
	"widget",
	"menu",
	"peekView",
	"notification",
	"breadcrumb",
	"minimap",
}

func (c Component) String() string {
	if c < 0 || c >= componentCount {
		return fmt.Sprintf("Component(%d)", int(c))
	}
	return componentNames[c]
}

// Components lists every component in declaration order.
func Components() []Component {
	out := make([]Component, componentCount)
	for i := range out {
		out[i] = Component(i)
	}
	return out
}

// Shade selects a background token and an optional extra deepening (darker on
// dark themes, lighter on light themes).
type Shade struct {
	Token  string
	Deepen float64
}

type shadeRow map[Component]Shade

// adaptiveTable is the per-theme-type background assignment. Every theme type
// must cover every component; CheckAdaptiveTable enforces it.
var adaptiveTable = map[ThemeType]shadeRow{
	TypeDark: {
		ComponentEditor:       {Token: "bg.base"},
		ComponentSideBar:      {Token: "bg.dark"},
		ComponentActivityBar:  {Token: "bg.dark"},
		ComponentStatusBar:    {Token: "bg.dark"},
		ComponentTitleBar:     {Token: "bg.dark"},
		ComponentPanel:        {Token: "bg.dark"},
		ComponentTabBar:       {Token: "bg.dark"},
		ComponentTabActive:    {Token: "bg.dark"},
		ComponentTabInactive:  {Token: "bg.dark"},
		ComponentTerminal:     {Token: "bg.dark"},
		ComponentInput:        {Token: "bg.deep"},
		ComponentDropdown:     {Token: "bg.deep"},
		ComponentWidget:       {Token: "bg.dark"},
		ComponentMenu:         {Token: "bg.dark"},
		ComponentPeekView:     {Token: "bg.dark"},
		ComponentNotification: {Token: "bg.dark"},
		ComponentBreadcrumb:   {Token: "bg.base"},
		ComponentMinimap:      {Token: "bg.base"},
	},
	TypeStorm: {
		ComponentEditor:       {Token: "bg.base"},
		ComponentSideBar:      {Token: "bg.dark"},
		ComponentActivityBar:  {Token: "bg.dark"},
		ComponentStatusBar:    {Token: "bg.dark"},
		ComponentTitleBar:     {Token: "bg.dark"},
		ComponentPanel:        {Token: "bg.dark"},
		ComponentTabBar:       {Token: "bg.dark"},
		ComponentTabActive:    {Token: "bg.base"},
		ComponentTabInactive:  {Token: "bg.dark"},
		ComponentTerminal:     {Token: "bg.dark"},
		ComponentInput:        {Token: "bg.sunken"},
		ComponentDropdown:     {Token: "bg.sunken"},
		ComponentWidget:       {Token: "bg.dark"},
		ComponentMenu:         {Token: "bg.dark"},
		ComponentPeekView:     {Token: "bg.dark"},
		ComponentNotification: {Token: "bg.dark"},
		ComponentBreadcrumb:   {Token: "bg.base"},
		ComponentMinimap:      {Token: "bg.base"},
	},
	TypeMoon: {
		ComponentEditor:       {Token: "bg.base"},
		ComponentSideBar:      {Token: "bg.dark"},
		ComponentActivityBar:  {Token: "bg.dark", Deepen: 0.05},
		ComponentStatusBar:    {Token: "bg.dark"},
		ComponentTitleBar:     {Token: "bg.dark", Deepen: 0.05},
		ComponentPanel:        {Token: "bg.sunken"},
		ComponentTabBar:       {Token: "bg.dark"},
		ComponentTabActive:    {Token: "bg.base"},
		ComponentTabInactive:  {Token: "bg.dark"},
		ComponentTerminal:     {Token: "bg.sunken"},
		ComponentInput:        {Token: "bg.deep"},
		ComponentDropdown:     {Token: "bg.deep"},
		ComponentWidget:       {Token: "bg.float"},
		ComponentMenu:         {Token: "bg.float"},
		ComponentPeekView:     {Token: "bg.dark"},
		ComponentNotification: {Token: "bg.float"},
		ComponentBreadcrumb:   {Token: "bg.base"},
		ComponentMinimap:      {Token: "bg.base"},
	},
	TypeLight: {
		ComponentEditor:       {Token: "bg.base"},
		ComponentSideBar:      {Token: "bg.sunken"},
		ComponentActivityBar:  {Token: "bg.dark"},
		ComponentStatusBar:    {Token: "bg.sunken"},
		ComponentTitleBar:     {Token: "bg.dark"},
		ComponentPanel:        {Token: "bg.sunken"},
		ComponentTabBar:       {Token: "bg.sunken"},
		ComponentTabActive:    {Token: "bg.base"},
		ComponentTabInactive:  {Token: "bg.sunken"},
		ComponentTerminal:     {Token: "bg.sunken"},
		ComponentInput:        {Token: "bg.deep"},
		ComponentDropdown:     {Token: "bg.deep"},
		ComponentWidget:       {Token: "bg.float"},
		ComponentMenu:         {Token: "bg.deep"},
		ComponentPeekView:     {Token: "bg.sunken"},
		ComponentNotification: {Token: "bg.float"},
		ComponentBreadcrumb:   {Token: "bg.base"},
		ComponentMinimap:      {Token: "bg.base"},
	},
	TypeContrast: {
		ComponentEditor:       {Token: "bg.base"},
		ComponentSideBar:      {Token: "bg.deep"},
		ComponentActivityBar:  {Token: "bg.deep"},
		ComponentStatusBar:    {Token: "bg.deep"},
		ComponentTitleBar:     {Token: "bg.deep"},
		ComponentPanel:        {Token: "bg.deep"},
		ComponentTabBar:       {Token: "bg.deep"},
		ComponentTabActive:    {Token: "bg.base"},
		ComponentTabInactive:  {Token: "bg.deep"},
		ComponentTerminal:     {Token: "bg.deep"},
		ComponentInput:        {Token: "bg.dark"},
		ComponentDropdown:     {Token: "bg.dark"},
		ComponentWidget:       {Token: "bg.dark"},
		ComponentMenu:         {Token: "bg.dark"},
		ComponentPeekView:     {Token: "bg.deep"},
		ComponentNotification: {Token: "bg.dark"},
		ComponentBreadcrumb:   {Token: "bg.base"},
		ComponentMinimap:      {Token: "bg.base"},
	},
	TypePastel: {
		ComponentEditor:       {Token: "bg.base"},
		ComponentSideBar:      {Token: "bg.sunken"},
		ComponentActivityBar:  {Token: "bg.dark"},
		ComponentStatusBar:    {Token: "bg.sunken"},
		ComponentTitleBar:     {Token: "bg.dark"},
		ComponentPanel:        {Token: "bg.sunken"},
		ComponentTabBar:       {Token: "bg.sunken"},
		ComponentTabActive:    {Token: "bg.base"},
		ComponentTabInactive:  {Token: "bg.sunken"},
		ComponentTerminal:     {Token: "bg.sunken"},
		ComponentInput:        {Token: "bg.dark"},
		ComponentDropdown:     {Token: "bg.dark"},
		ComponentWidget:       {Token: "bg.float"},
		ComponentMenu:         {Token: "bg.float"},
		ComponentPeekView:     {Token: "bg.sunken"},
		ComponentNotification: {Token: "bg.float"},
		ComponentBreadcrumb:   {Token: "bg.base"},
		ComponentMinimap:      {Token: "bg.base"},
	},
}

// ShadeFor looks up the background assignment of one component.
func ShadeFor(t ThemeType, c Component) (Shade, bool) {
	row, ok := adaptiveTable[t]
	if !ok {
		return Shade{}, false
	}
	s, ok := row[c]
	return s, ok
}

// CheckAdaptiveTable verifies that every theme type assigns every component
// a shade backed by a token registered in g.
func CheckAdaptiveTable(g *Registry) error {
	var problems []string
	for _, t := range ThemeTypes {
		for _, c := range Components() {
			s, ok := ShadeFor(t, c)
			switch {
			case !ok:
				problems = append(problems, fmt.Sprintf("%s/%s: no shade", t, c))
			case !g.Has(s.Token):
				problems = append(problems, fmt.Sprintf("%s/%s: token %q", t, c, s.Token))
			case s.Deepen < 0 || s.Deepen > 1:
				problems = append(problems, fmt.Sprintf("%s/%s: deepen %v", t, c, s.Deepen))
			}
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("adaptive table incomplete: %s: %w", strings.Join(problems, "; "), ErrMissingToken)
	}
	return nil
}
