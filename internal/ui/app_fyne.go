//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"portfolioshowcase/internal/catalog"
	"portfolioshowcase/internal/config"
	"portfolioshowcase/internal/crash"
	applog "portfolioshowcase/internal/log"
	"portfolioshowcase/internal/version"
	"portfolioshowcase/internal/view"
)

const (
	appID      = "portfolioshowcase"
	cardHeight = 300
	panelW     = 640
	panelH     = 560
)

var (
	backdropDim   = color.NRGBA{A: 160}
	backdropClear = color.NRGBA{}
	accent        = color.NRGBA{R: 0x21, G: 0x80, B: 0x8D, A: 0xFF}
)

// Run opens the desktop showcase window and blocks until it is closed.
func Run(store *catalog.Store, cfg config.AppConfig, opts ...view.Option) error {
	l := applog.WithComponent("ui")
	l.Info("starting UI", slog.String("ver", version.String()))

	fyneApp := app.NewWithID(appID)
	switch cfg.General.Theme {
	case "dark":
		fyneApp.Settings().SetTheme(&variantTheme{Theme: theme.DefaultTheme(), variant: theme.VariantDark})
	case "light":
		fyneApp.Settings().SetTheme(&variantTheme{Theme: theme.DefaultTheme(), variant: theme.VariantLight})
	}
	w := fyneApp.NewWindow("Design Portfolio")

	prefs := fyneApp.Preferences()
	winW := max(prefs.IntWithFallback("window.width", cfg.Display.WindowWidth), 800)
	winH := max(prefs.IntWithFallback("window.height", cfg.Display.WindowHeight), 600)
	w.Resize(fyne.NewSize(float32(winW), float32(winH)))

	var s *showcase
	defer crash.Recover(crash.DescribeFunc(func() string {
		if s == nil {
			return "starting"
		}
		return s.ctrl.Describe()
	}))
	s, err := newShowcase(w, store, cfg.Display, append([]view.Option{view.WithLogger(l)}, opts...)...)
	if err != nil {
		return fmt.Errorf("start showcase: %w", err)
	}

	w.SetCloseIntercept(func() {
		sz := w.Canvas().Size()
		prefs.SetInt("window.width", int(sz.Width))
		prefs.SetInt("window.height", int(sz.Height))
		w.Close()
	})
	w.ShowAndRun()
	l.Info("UI closed", slog.String("state", s.ctrl.Describe()))
	return nil
}

// variantTheme pins the default theme to one variant.
type variantTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func (t *variantTheme) Color(n fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.Theme.Color(n, t.variant)
}

// showcase renders controller effects into a Fyne window.
type showcase struct {
	ctrl *view.Controller
	anim view.Animation
	gen  int

	tabs     map[string]*widget.Button
	grid     *fyne.Container
	scroll   *container.Scroll
	overlay  *fyne.Container
	backdrop *tapArea
	panel    *fyne.Container
	cardSize fyne.Size
}

var (
	_ view.Renderer = (*showcase)(nil)
	_ view.Animated = (*showcase)(nil)
)

func newShowcase(w fyne.Window, store *catalog.Store, display config.DisplayConfig, opts ...view.Option) (*showcase, error) {
	cardW := display.CardWidth
	if cardW <= 0 {
		cardW = config.Defaults().Display.CardWidth
	}
	s := &showcase{
		tabs:     map[string]*widget.Button{},
		cardSize: fyne.NewSize(float32(cardW), cardHeight),
	}
	s.grid = container.NewGridWrap(s.cardSize)
	s.scroll = container.NewVScroll(container.NewPadded(s.grid))

	s.backdrop = newTapArea(backdropClear, func() { s.ctrl.MustDispatch(view.CloseModal{Source: view.CloseOverlay}) })
	s.panel = container.NewStack()
	s.overlay = container.NewStack(s.backdrop, container.NewCenter(container.NewGridWrap(fyne.NewSize(panelW, panelH), s.panel)))
	s.overlay.Hide()

	tabBar := container.NewHBox()
	for _, label := range store.Categories() {
		b := widget.NewButton(label, func() { s.ctrl.MustDispatch(view.SetFilter{Label: label}) })
		s.tabs[label] = b
		tabBar.Add(b)
	}
	title := canvas.NewText("Design Portfolio", accent)
	title.TextSize = theme.TextHeadingSize()
	title.TextStyle = fyne.TextStyle{Bold: true}
	header := container.NewVBox(title, container.NewHScroll(tabBar), widget.NewSeparator())

	w.SetContent(container.NewStack(container.NewBorder(header, nil, nil, nil, s.scroll), s.overlay))
	w.Canvas().SetOnTypedKey(func(k *fyne.KeyEvent) {
		if k.Name == fyne.KeyEscape {
			s.ctrl.MustDispatch(view.CloseModal{Source: view.CloseCancelKey})
		}
	})

	s.ctrl = view.NewController(store, s, opts...)
	if err := s.ctrl.Start(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *showcase) SetAnimation(a view.Animation) { s.anim = a }

func (s *showcase) RenderGrid(cards []view.CardView) {
	s.gen++
	gen := s.gen
	active := s.ctrl.State().ActiveFilter
	for label, b := range s.tabs {
		if label == active {
			b.Importance = widget.HighImportance
		} else {
			b.Importance = widget.MediumImportance
		}
		b.Refresh()
	}

	objs := make([]fyne.CanvasObject, 0, len(cards))
	for i, c := range cards {
		id := c.ID
		card := newProjectCard(c, func() { s.ctrl.MustDispatch(view.OpenModal{ID: id}) })
		if i > 0 && s.anim.Stagger > 0 {
			card.Hide()
			time.AfterFunc(time.Duration(i)*s.anim.Stagger, func() {
				fyne.Do(func() {
					if gen == s.gen {
						card.Show()
					}
				})
			})
		}
		objs = append(objs, card)
	}
	if len(objs) == 0 {
		objs = append(objs, widget.NewLabel("No projects in this category."))
	}
	s.grid.Objects = objs
	s.grid.Refresh()
	s.scroll.ScrollToTop()
}

func (s *showcase) RenderDetail(d view.DetailView) {
	s.panel.Objects = []fyne.CanvasObject{buildDetail(d, func() {
		s.ctrl.MustDispatch(view.CloseModal{Source: view.CloseButton})
	})}
	s.panel.Refresh()
	if !s.overlay.Visible() {
		s.overlay.Show()
		s.fadeIn()
	}
}

func (s *showcase) fadeIn() {
	if s.anim.Fade <= 0 {
		s.backdrop.setColor(backdropDim)
		return
	}
	s.backdrop.setColor(backdropClear)
	canvas.NewColorRGBAAnimation(backdropClear, backdropDim, s.anim.Fade, func(c color.Color) {
		s.backdrop.setColor(c)
	}).Start()
}

func (s *showcase) HideDetail() {
	s.overlay.Hide()
	s.panel.Objects = nil
}

func (s *showcase) SetScrollLock(locked bool) {
	if locked {
		s.scroll.Direction = container.ScrollNone
	} else {
		s.scroll.Direction = container.ScrollVerticalOnly
	}
	s.scroll.Refresh()
}

// tapArea is a filled rectangle that reports taps and swallows scrolling.
type tapArea struct {
	widget.BaseWidget
	rect  *canvas.Rectangle
	onTap func()
}

var (
	_ fyne.Tappable   = (*tapArea)(nil)
	_ fyne.Scrollable = (*tapArea)(nil)
)

func newTapArea(fill color.Color, onTap func()) *tapArea {
	t := &tapArea{rect: canvas.NewRectangle(fill), onTap: onTap}
	t.ExtendBaseWidget(t)
	return t
}

func (t *tapArea) CreateRenderer() fyne.WidgetRenderer { return widget.NewSimpleRenderer(t.rect) }

func (t *tapArea) Tapped(*fyne.PointEvent) {
	if t.onTap != nil {
		t.onTap()
	}
}

func (t *tapArea) Scrolled(*fyne.ScrollEvent) {}

func (t *tapArea) setColor(c color.Color) {
	t.rect.FillColor = c
	t.rect.Refresh()
}

// projectCard is one tappable grid card.
type projectCard struct {
	widget.BaseWidget
	card  view.CardView
	onTap func()
}

var (
	_ fyne.Tappable      = (*projectCard)(nil)
	_ desktop.Cursorable = (*projectCard)(nil)
)

func newProjectCard(c view.CardView, onTap func()) *projectCard {
	p := &projectCard{card: c, onTap: onTap}
	p.ExtendBaseWidget(p)
	return p
}

func (p *projectCard) Tapped(*fyne.PointEvent) { p.onTap() }

func (p *projectCard) Cursor() desktop.Cursor { return desktop.PointerCursor }

func (p *projectCard) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	bg.StrokeColor = theme.Color(theme.ColorNameSeparator)
	bg.StrokeWidth = 1
	bg.CornerRadius = theme.InputRadiusSize()

	title := widget.NewLabelWithStyle(p.card.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	title.Wrapping = fyne.TextWrapWord
	category := canvas.NewText(p.card.Category, accent)
	desc := widget.NewLabel(p.card.Description)
	desc.Wrapping = fyne.TextWrapWord
	dims := canvas.NewText(p.card.Dimensions, theme.Color(theme.ColorNamePlaceHolder))

	body := container.NewVBox(palette(p.card.Colors, 28), title, category, desc, dims)
	return widget.NewSimpleRenderer(container.NewStack(bg, container.NewPadded(body)))
}

func palette(colors []string, size float32) *fyne.Container {
	row := container.NewHBox()
	for _, c := range colors {
		r := canvas.NewRectangle(swatchColor(c))
		r.SetMinSize(fyne.NewSize(size, size))
		r.CornerRadius = size / 4
		row.Add(r)
	}
	return row
}

func bulletList(items []string) fyne.CanvasObject {
	box := container.NewVBox()
	for _, it := range items {
		l := widget.NewLabel("• " + it)
		l.Wrapping = fyne.TextWrapWord
		box.Add(l)
	}
	return box
}

func section(title string, content fyne.CanvasObject) fyne.CanvasObject {
	return container.NewVBox(widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}), content)
}

func wrapped(text string) *widget.Label {
	l := widget.NewLabel(text)
	l.Wrapping = fyne.TextWrapWord
	return l
}

// buildDetail lays out the modal panel for one project.
func buildDetail(d view.DetailView, onClose func()) fyne.CanvasObject {
	closeBtn := widget.NewButtonWithIcon("", theme.CancelIcon(), onClose)
	closeBtn.Importance = widget.LowImportance

	imgBg := canvas.NewRectangle(color.NRGBA{R: accent.R, G: accent.G, B: accent.B, A: 0x40})
	imgBg.SetMinSize(fyne.NewSize(0, 140))
	caption := canvas.NewText(d.Caption, theme.Color(theme.ColorNameForeground))
	caption.TextStyle = fyne.TextStyle{Italic: true}
	image := container.NewStack(imgBg, container.NewCenter(caption))

	hexes := container.NewVBox()
	for _, c := range d.Colors {
		hexes.Add(container.NewHBox(palette([]string{c}, 20), widget.NewLabel(c)))
	}

	title := widget.NewLabelWithStyle(d.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	title.Wrapping = fyne.TextWrapWord
	body := container.NewVBox(
		image,
		title,
		canvas.NewText(d.Heading, accent),
		wrapped(d.Description),
		section("Dimensions", wrapped(d.Dimensions)),
		section("Tools Used", bulletList(d.Tools)),
		section("Target Audience", wrapped(d.TargetAudience)),
		section("Style Keywords", wrapped(d.StyleKeywords)),
		section("Key Features", bulletList(d.KeyFeatures)),
		section("Color Palette", hexes),
	)

	bg := newTapArea(theme.Color(theme.ColorNameBackground), nil)
	top := container.NewBorder(nil, nil, nil, closeBtn)
	return container.NewStack(bg, container.NewBorder(top, nil, nil, nil, container.NewVScroll(container.NewPadded(body))))
}
