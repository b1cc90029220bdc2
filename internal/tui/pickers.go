package tui

import (
	"time"

	list "github.com/charmbracelet/bubbles/list"

	"tilelapse/internal/schedule"
)

// optionItem is one picker entry in the sidebar list.
type optionItem struct {
	value, label string
}

func (o optionItem) Title() string       { return o.label }
func (o optionItem) Description() string { return o.value }
func (o optionItem) FilterValue() string { return o.label }

var fieldNames = [fieldCount]string{"Start date", "End date", "Start time", "End time"}

// refreshPicker rebuilds the sidebar list for the focused field and
// moves the cursor onto the field's current value.
func (m *Model) refreshPicker() {
	var items []list.Item
	switch m.focusField {
	case fieldStartDate, fieldEndDate:
		for _, o := range schedule.DateOptions(time.Now(), m.cfg.Panel.PastDays) {
			items = append(items, optionItem{value: o.Value, label: o.Label})
		}
	default:
		for _, s := range schedule.TimeSlots() {
			items = append(items, optionItem{value: s, label: s})
		}
	}
	m.l.Title = fieldNames[m.focusField]
	m.l.SetItems(items)

	current := [fieldCount]string{m.startDate, m.endDate, m.startTime, m.endTime}[m.focusField]
	for i, it := range items {
		if it.(optionItem).value == current {
			m.l.Select(i)
			break
		}
	}
}

// applyPicker writes the highlighted option into the focused field.
func (m *Model) applyPicker() {
	it, ok := m.l.SelectedItem().(optionItem)
	if !ok {
		return
	}
	switch m.focusField {
	case fieldStartDate:
		m.startDate = it.value
	case fieldEndDate:
		m.endDate = it.value
	case fieldStartTime:
		m.startTime = it.value
	case fieldEndTime:
		m.endTime = it.value
	}
	m.status = fieldNames[m.focusField] + ": " + it.value
}
