package browsetui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mabhi256/gvasdiag/internal/gvas"
)

// propertyItem adapts one key/value pair of a map scope (or one element of
// a seq scope) to bubbles/list.Item.
type propertyItem struct {
	label string
	value *gvas.Value
}

func (i propertyItem) FilterValue() string { return i.label }

func (i propertyItem) Title() string {
	if i.value.Kind == gvas.KindScalar {
		return fmt.Sprintf("%s: %s", i.label, formatScalar(i.value.Scalar))
	}
	return i.label
}

func (i propertyItem) Description() string {
	switch i.value.Kind {
	case gvas.KindMap:
		return fmt.Sprintf("struct (%d fields)", len(i.value.Map))
	case gvas.KindSeq:
		return fmt.Sprintf("array (%d elements)", len(i.value.Seq))
	default:
		return ""
	}
}

func formatScalar(v any) string {
	switch x := v.(type) {
	case string:
		return fmt.Sprintf("%q", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// treeModel is a breadcrumb stack of list.Models, one per nesting level
// entered so far. Pushing happens on enter into a struct/array scope;
// popping happens on backspace/esc.
type treeModel struct {
	stack []stackFrame
}

type stackFrame struct {
	label string
	list  list.Model
	scope *gvas.Value
}

func newTreeModel(root *gvas.Value) treeModel {
	return treeModel{stack: []stackFrame{newFrame("root", root)}}
}

func newFrame(label string, scope *gvas.Value) stackFrame {
	delegate := list.NewDefaultDelegate()
	l := list.New(itemsFor(scope), delegate, 0, 0)
	l.Title = label
	l.SetShowHelp(false)
	return stackFrame{label: label, list: l, scope: scope}
}

func itemsFor(scope *gvas.Value) []list.Item {
	if scope == nil {
		return nil
	}
	var items []list.Item
	switch scope.Kind {
	case gvas.KindMap:
		for _, entry := range scope.Map {
			items = append(items, propertyItem{label: entry.Key, value: entry.Value})
		}
	case gvas.KindSeq:
		for i, elem := range scope.Seq {
			items = append(items, propertyItem{label: fmt.Sprintf("[%d]", i), value: elem})
		}
	}
	return items
}

func (m treeModel) setSize(width, height int) {
	for i := range m.stack {
		m.stack[i].list.SetSize(width, height)
	}
}

// capturesRight/capturesLeft report whether the current list is in filter
// mode and would consume a left/right keystroke itself, so the parent
// Model knows when "l"/"h" should switch tabs instead.
func (m treeModel) capturesRight() bool { return m.top().list.FilterState() == list.Filtering }
func (m treeModel) capturesLeft() bool  { return m.top().list.FilterState() == list.Filtering }

func (m treeModel) top() stackFrame {
	return m.stack[len(m.stack)-1]
}

func (m treeModel) update(msg tea.Msg) (treeModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.top().list.FilterState() != list.Filtering {
		switch keyMsg.String() {
		case "enter":
			if item, ok := m.top().list.SelectedItem().(propertyItem); ok {
				if item.value != nil && (item.value.Kind == gvas.KindMap || item.value.Kind == gvas.KindSeq) {
					m.stack = append(m.stack, newFrame(item.label, item.value))
					return m, nil
				}
			}
		case "backspace", "esc":
			if len(m.stack) > 1 {
				m.stack = m.stack[:len(m.stack)-1]
				return m, nil
			}
		}
	}

	top := m.top()
	var cmd tea.Cmd
	top.list, cmd = top.list.Update(msg)
	m.stack[len(m.stack)-1] = top
	return m, cmd
}

func (m treeModel) view() string {
	return m.top().list.View()
}
