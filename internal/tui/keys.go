// Copyright Inventory Capture Inc., 2026. All rights reserved.

package tui

import tea "github.com/charmbracelet/bubbletea"

func isQuit(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyCtrlC
}

func isBack(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyEscape
}

func isUp(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyUp
}

func isDown(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyDown
}

func isEnter(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyEnter
}

func isTab(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyTab
}
