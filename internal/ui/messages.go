package ui

type settingsSavedMsg struct {
	err error
}
