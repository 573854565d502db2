package main

import (
	"fmt"
	"strconv"

	"github.com/rivo/tview"
	"github.com/saylorsolutions/rdscreen/pkg/screen"
	"github.com/saylorsolutions/rdscreen/pkg/serverid"
)

// runInteractive opens a small form for encoding and decoding tokens without
// leaving them in shell history.
func runInteractive(scr *screen.Screen) error {
	app := tview.NewApplication()
	status := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	status.SetBorder(true).SetTitle(" result ")

	form := tview.NewForm().
		AddInputField("IP", "", 24, nil, nil).
		AddInputField("Port", "", 8, nil, nil).
		AddInputField("Token", "", 24, nil, nil)
	form.SetBorder(true).SetTitle(" rdtoken ")

	fieldText := func(label string) string {
		return form.GetFormItemByLabel(label).(*tview.InputField).GetText()
	}

	form.AddButton("Encode", func() {
		port, err := strconv.ParseUint(fieldText("Port"), 10, 16)
		if err != nil {
			status.SetText("[red]Port must be a number in 0-65535")
			return
		}
		token, err := serverid.Encode(scr, fieldText("IP"), uint16(port))
		if err != nil {
			status.SetText(fmt.Sprintf("[red]%v", err))
			return
		}
		form.GetFormItemByLabel("Token").(*tview.InputField).SetText(token)
		status.SetText(fmt.Sprintf("[green]%s", token))
	})
	form.AddButton("Decode", func() {
		ip, port, err := serverid.Decode(scr, fieldText("Token"))
		if err != nil {
			status.SetText(fmt.Sprintf("[red]%v", err))
			return
		}
		status.SetText(fmt.Sprintf("[green]%s port %d", ip, port))
	})
	form.AddButton("Quit", func() {
		app.Stop()
	})

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(status, 3, 0, false)
	return app.SetRoot(layout, true).Run()
}
