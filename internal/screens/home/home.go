package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sumstars/sumstars/internal/difficulty"
	"github.com/sumstars/sumstars/internal/progress"
	"github.com/sumstars/sumstars/internal/question"
	"github.com/sumstars/sumstars/internal/router"
	"github.com/sumstars/sumstars/internal/screen"
	sessionscreen "github.com/sumstars/sumstars/internal/screens/session"
	"github.com/sumstars/sumstars/internal/screens/stats"
	"github.com/sumstars/sumstars/internal/ui/components"
	"github.com/sumstars/sumstars/internal/ui/layout"
	"github.com/sumstars/sumstars/internal/ui/theme"
)

// HomeScreen is the main menu: play, stats, preference toggles.
type HomeScreen struct {
	model     *progress.Model
	engine    *question.Engine
	questions int

	menu    components.Menu
	picker  components.Menu
	picking bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(model *progress.Model, engine *question.Engine, questions int) *HomeScreen {
	h := &HomeScreen{
		model:     model,
		engine:    engine,
		questions: questions,
	}
	h.menu = components.NewMenu(h.menuItems())
	h.picker = components.NewMenu(h.pickerItems())
	return h
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	prefs := h.model.Persistent().Preferences

	return []components.MenuItem{
		{Label: "PLAY", Action: func() tea.Cmd {
			h.picking = true
			h.picker = components.NewMenu(h.pickerItems())
			return nil
		}},
		{Label: "MY STARS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(h.model)}
			}
		}},
		{Label: "SOUND: " + onOff(prefs.Sound), Action: func() tea.Cmd {
			h.togglePreference(func(p *progress.Preferences) { p.Sound = !p.Sound })
			return nil
		}},
		{Label: "MUSIC: " + onOff(prefs.Music), Action: func() tea.Cmd {
			h.togglePreference(func(p *progress.Preferences) { p.Music = !p.Music })
			return nil
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
}

func (h *HomeScreen) pickerItems() []components.MenuItem {
	persistent := h.model.Persistent()

	items := make([]components.MenuItem, 0, len(difficulty.Tiers))
	for _, tier := range difficulty.Tiers {
		tier := tier
		s := difficulty.Get(tier)
		label := fmt.Sprintf("%-8s %d to %d", tier.Label(), s.Min, s.Max)
		if best, ok := persistent.HighScores[tier]; ok && best > 0 {
			label += fmt.Sprintf("   best %d", best)
		}
		items = append(items, components.MenuItem{
			Label: label,
			Action: func() tea.Cmd {
				h.picking = false
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: sessionscreen.New(h.engine, h.model, tier, h.questions),
					}
				}
			},
		})
	}
	return items
}

// togglePreference flips a flag, persists, and rebuilds the menu labels.
func (h *HomeScreen) togglePreference(flip func(*progress.Preferences)) {
	prefs := h.model.Persistent().Preferences
	flip(&prefs)
	h.model.SetPreferences(context.Background(), prefs)

	selected := h.menu.Selected
	h.menu = components.NewMenu(h.menuItems())
	h.menu.Selected = selected
}

func onOff(enabled bool) string {
	if enabled {
		return "ON"
	}
	return "OFF"
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.picking {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose difficulty"},
			{Key: "Enter", Description: "Play"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" && h.picking {
		h.picking = false
		return h, nil
	}

	var cmd tea.Cmd
	if h.picking {
		h.picker, cmd = h.picker.Update(msg)
	} else {
		h.menu, cmd = h.menu.Update(msg)
	}
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	heading := "What would you like to do?"
	menu := h.menu
	if h.picking {
		heading = "Pick your difficulty!"
		menu = h.picker
	}

	b.WriteString(theme.Title.Width(width).Render(heading))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu.View()))

	if last := h.model.LastSession(); last != nil && !h.picking {
		b.WriteString("\n")
		summary := fmt.Sprintf("Last game: %s · %d points · %s",
			last.Tier.Label(), last.Score, strings.Repeat("★", last.Stars))
		b.WriteString(theme.Subtitle.Width(width).Render(summary))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
