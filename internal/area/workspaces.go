package area

import (
	"strings"

	"github.com/daviddao/hlbar/internal/canvas"
)

// WorkspaceSpacing separates consecutive workspace names.
const WorkspaceSpacing = 8

const workspacePrefixes = "!^$"

// Workspace is one entry of a workspace list. Prefix holds the decoration
// characters that preceded the name, empty for a plain workspace.
type Workspace struct {
	Name   string
	Prefix string
}

func (w Workspace) Urgent() bool   { return strings.Contains(w.Prefix, "!") }
func (w Workspace) Focused() bool  { return strings.Contains(w.Prefix, "^") }
func (w Workspace) Occupied() bool { return strings.Contains(w.Prefix, "$") }

// ParseWorkspaces parses space-separated `[prefix]name` entries. A word made
// only of prefix characters keeps its last character as the name.
func ParseWorkspaces(raw string) []Workspace {
	fields := strings.Fields(raw)
	out := make([]Workspace, 0, len(fields))
	for _, f := range fields {
		n := len(f) - len(strings.TrimLeft(f, workspacePrefixes))
		if n == len(f) {
			n--
		}
		out = append(out, Workspace{Name: f[n:], Prefix: f[:n]})
	}
	return out
}

// Workspaces shows a window manager's workspace list.
type Workspaces struct {
	base
	entries []Workspace
}

// Entries returns the current workspace list.
func (a *Workspaces) Entries() []Workspace {
	return a.entries
}

// SetText replaces the list. It always reports a change.
func (a *Workspaces) SetText(raw string) bool {
	a.entries = ParseWorkspaces(raw)
	return true
}

func (a *Workspaces) Width(m canvas.Measurer) int {
	w := 0
	for _, ws := range a.entries {
		w += m.TextWidth(ws.Name)
	}
	return w + WorkspaceSpacing*max(0, len(a.entries)-1)
}

func (a *Workspaces) Render(s canvas.Surface, x, y, h int) {
	for _, ws := range a.entries {
		w := s.TextWidth(ws.Name)
		s.Save()
		s.SetPen(a.style.Normal)
		if ws.Prefix == "" {
			s.SetPen(a.style.Low)
		} else {
			if ws.Focused() {
				s.SetPen(a.style.Focused)
			}
			if ws.Urgent() {
				s.FillRect(x+1, y, w-2, 1, a.style.Urgent)
			}
		}
		s.DrawText(x, y, w, h, ws.Name)
		s.Restore()
		x += w + WorkspaceSpacing
	}
}
