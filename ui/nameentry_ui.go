package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/P1NHE4D/SpaceInvadersClient/network"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// NameEntryUI asks each player for the name their score is filed under.
type NameEntryUI struct {
	UI *ebitenui.UI

	OnSubmit func(names []string)
	OnSkip   func()

	inputs      []*widget.TextInput
	statusLabel *widget.Label
	submitBtn   *widget.Button
	skipBtn     *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewNameEntryUI builds one text input per prompt. Names are checked with
// network.CleanName before OnSubmit sees them.
func NewNameEntryUI(prompts []string, onSubmit func(names []string), onSkip func()) (*NameEntryUI, error) {
	ui := &NameEntryUI{
		OnSubmit: onSubmit,
		OnSkip:   onSkip,
	}
	if err := ui.loadFonts(); err != nil {
		return nil, err
	}
	ui.buildUI(prompts)
	return ui, nil
}

func (ui *NameEntryUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load UI font: %w", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 16}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
	return nil
}

func (ui *NameEntryUI) buildUI(prompts []string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 8, Bottom: 8, Left: 12, Right: 12}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 235})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				Padding:            &widget.Insets{Bottom: 40},
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("SUBMIT YOUR SCORE", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	for _, prompt := range prompts {
		panel.AddChild(ui.buildNameRow(prompt))
	}

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	panel.AddChild(ui.statusLabel)
	panel.AddChild(ui.buildButtons())

	rootContainer.AddChild(panel)
	ui.UI = &ebitenui.UI{Container: rootContainer}

	if len(ui.inputs) > 0 {
		ui.inputs[0].Focus(true)
	}
}

func (ui *NameEntryUI) buildNameRow(prompt string) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("%-10s", prompt), &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	))

	input := widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(180, 22)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.TextInputOpts.Face(&ui.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{255, 255, 255, 255},
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         color.RGBA{255, 255, 255, 255},
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder("name"),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
		widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
			ui.submit()
		}),
	)
	ui.inputs = append(ui.inputs, input)
	row.AddChild(input)
	return row
}

func (ui *NameEntryUI) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	ui.submitBtn = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 26)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
			Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
			Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
		}),
		widget.ButtonOpts.Text("Submit", &ui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{200, 255, 200, 255},
			Pressed:  color.RGBA{150, 200, 150, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			ui.submit()
		}),
	)
	container.AddChild(ui.submitBtn)

	ui.skipBtn = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 26)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.ButtonOpts.Text("Skip", &ui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{255, 200, 200, 255},
			Pressed:  color.RGBA{200, 150, 150, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnSkip != nil {
				ui.OnSkip()
			}
		}),
	)
	container.AddChild(ui.skipBtn)

	return container
}

// Names returns the raw text of every input, in prompt order.
func (ui *NameEntryUI) Names() []string {
	names := make([]string, len(ui.inputs))
	for i, in := range ui.inputs {
		names[i] = in.GetText()
	}
	return names
}

func (ui *NameEntryUI) submit() {
	if ui.submitBtn.GetWidget().Disabled {
		return
	}
	names, err := CleanNames(ui.Names())
	if err != nil {
		ui.SetStatus(err.Error())
		return
	}
	if ui.OnSubmit != nil {
		ui.OnSubmit(names)
	}
}

// CleanNames validates every name, reporting the first bad one by position.
func CleanNames(raw []string) ([]string, error) {
	names := make([]string, len(raw))
	for i, r := range raw {
		name, err := network.CleanName(r)
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", i+1, err)
		}
		names[i] = name
	}
	return names, nil
}

func (ui *NameEntryUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

// SetSubmitting locks the form while a submission is in flight.
func (ui *NameEntryUI) SetSubmitting(submitting bool) {
	ui.submitBtn.GetWidget().Disabled = submitting
	ui.skipBtn.GetWidget().Disabled = submitting
	for _, in := range ui.inputs {
		in.GetWidget().Disabled = submitting
	}
}

func (ui *NameEntryUI) Update() {
	ui.UI.Update()
}
