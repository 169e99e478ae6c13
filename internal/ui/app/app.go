// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/modeldeck-tui/internal/config"
	"github.com/jeranaias/modeldeck-tui/internal/explorer"
	"github.com/jeranaias/modeldeck-tui/internal/notify"
	"github.com/jeranaias/modeldeck-tui/internal/registry"
	"github.com/jeranaias/modeldeck-tui/internal/ui/chat"
	"github.com/jeranaias/modeldeck-tui/internal/ui/components"
	"github.com/jeranaias/modeldeck-tui/internal/ui/register"
	"github.com/jeranaias/modeldeck-tui/internal/ui/styles"
)

// =============================================================================
// TABS
// =============================================================================

// Tab identifies one of the three top-level views.
type Tab int

const (
	TabChat Tab = iota
	TabExplorer
	TabRegister
	tabCount
)

var tabTitles = []string{"Chat", "Explorer", "Register"}

// Surface routing names. Each chat surface filters its messages by name.
const (
	surfaceChat     = "registry-chat"
	surfaceExplorer = "explorer-chat"
)

// =============================================================================
// ROOT MODEL
// =============================================================================

// Model is the root Bubble Tea model.
type Model struct {
	theme  *styles.Theme
	cfg    *config.Config
	logger *slog.Logger

	registryClient *registry.Client
	explorerClient *explorer.Client

	chatSurface     *chat.Surface
	explorerSurface *chat.Surface
	form            *register.Form

	picker        *components.ModelPicker
	notifications *notify.Center
	tabBar        *components.TabBar
	statusBar     *components.StatusBar

	activeTab Tab
	width     int
	height    int
	quitting  bool
}

// New builds the root model from a validated config.
func New(cfg *config.Config, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.Default()
	}
	theme := styles.NewTheme()

	registryClient := registry.NewClient(cfg.Registry.URL).WithLogger(logger)
	explorerClient := explorer.NewClient(cfg.Explorer.URL).WithLogger(logger)

	picker := components.NewModelPicker(theme)

	m := &Model{
		theme:          theme,
		cfg:            cfg,
		logger:         logger,
		registryClient: registryClient,
		explorerClient: explorerClient,
		picker:         picker,
		notifications:  notify.NewCenter(),
		tabBar:         components.NewTabBar(theme, tabTitles),
		statusBar:      components.NewStatusBar(theme),
	}

	m.chatSurface = chat.NewSurface(
		surfaceChat,
		theme,
		chat.RegistryDispatcher{Client: registryClient, Ref: picker.Selection},
		"Ask the registry...",
		cfg.UI.Markdown,
	).WithLogger(logger)

	m.explorerSurface = chat.NewSurface(
		surfaceExplorer,
		theme,
		chat.ExplorerDispatcher{Client: explorerClient},
		"Ask about transactions...",
		cfg.UI.Markdown,
	).WithLogger(logger)

	m.form = register.NewForm(theme, registryClient).WithLogger(logger)

	return m
}

// Init starts the model-list fetch and focuses the chat input.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.fetchModels(), m.chatSurface.Init())
}

// fetchModels lists registry models in the background. The picker stays
// on its previous list until a definitive answer arrives.
func (m *Model) fetchModels() tea.Cmd {
	client := m.registryClient
	return func() tea.Msg {
		models, err := client.ListModels(context.Background())
		if err != nil {
			return ModelsMsg{Err: err}
		}
		return ModelsMsg{Models: models}
	}
}

// Update routes messages to the active tab and handles app-wide events.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case notify.ExpireMsg:
		m.notifications.Expire(msg.ID)
		return m, nil

	case ModelsMsg:
		if msg.Err != nil {
			m.logger.Warn("model list fetch failed", "error", msg.Err)
			m.picker.SetUnknown()
			return m, m.notifications.Error("Could not load model list")
		}
		m.picker.SetModels(msg.Models)
		return m, nil

	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)
		return m, m.notifications.Info("Configuration reloaded")

	case chat.DispatchErrMsg:
		// Let the owning surface roll back its busy state first.
		cmd := m.routeToSurface(msg)
		return m, tea.Batch(cmd, m.notifications.Error(errorText(msg.Err)))

	case chat.ReplyMsg:
		return m, m.routeToSurface(msg)

	case spinner.TickMsg:
		// A busy surface keeps spinning while another tab is showing;
		// each spinner filters ticks by its own ID.
		return m, m.routeToSurface(msg)

	case register.RegisteredMsg:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		// A new model invalidates the cached list; refetch while the
		// stale list stays usable.
		m.picker.SetLoading()
		return m, tea.Batch(
			cmd,
			m.fetchModels(),
			m.notifications.Success(fmt.Sprintf("Registered %s", msg.Descriptor.Label())),
		)

	case register.RegisterErrMsg:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, tea.Batch(cmd, m.notifications.Error(msg.Err.Error()))
	}

	return m, m.routeToActive(msg)
}

// handleKey processes app-level shortcuts before delegating to the
// active tab.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The picker overlay captures navigation keys while visible.
	if m.picker.Visible() {
		switch msg.String() {
		case "up", "k":
			m.picker.MoveUp()
			return m, nil
		case "down", "j":
			m.picker.MoveDown()
			return m, nil
		case "enter":
			m.picker.Hide()
			return m, m.notifications.Info("Routing: " + m.picker.SelectionLabel())
		case "esc", "ctrl+o":
			m.picker.Hide()
			return m, nil
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "ctrl+t":
		return m, m.nextTab()

	case "ctrl+o":
		if m.activeTab == TabChat {
			m.picker.Show()
			return m, nil
		}

	case "ctrl+r":
		if m.activeTab == TabChat {
			m.picker.SetLoading()
			return m, m.fetchModels()
		}
	}

	return m, m.routeToActive(msg)
}

// nextTab cycles to the following tab and moves focus.
func (m *Model) nextTab() tea.Cmd {
	switch m.activeTab {
	case TabChat:
		m.chatSurface.Blur()
	case TabExplorer:
		m.explorerSurface.Blur()
	case TabRegister:
		m.form.Blur()
	}

	m.activeTab = (m.activeTab + 1) % tabCount

	switch m.activeTab {
	case TabChat:
		return m.chatSurface.Focus()
	case TabExplorer:
		return m.explorerSurface.Focus()
	default:
		return m.form.Focus()
	}
}

// routeToActive forwards a message to whichever tab is showing.
func (m *Model) routeToActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.activeTab {
	case TabChat:
		m.chatSurface, cmd = m.chatSurface.Update(msg)
	case TabExplorer:
		m.explorerSurface, cmd = m.explorerSurface.Update(msg)
	case TabRegister:
		m.form, cmd = m.form.Update(msg)
	}
	return cmd
}

// routeToSurface forwards a reply or error to both surfaces; each one
// filters by its own name, so only the owner reacts.
func (m *Model) routeToSurface(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.chatSurface, cmd = m.chatSurface.Update(msg)
	cmds = append(cmds, cmd)
	m.explorerSurface, cmd = m.explorerSurface.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

// resize propagates a terminal resize to every component.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.theme.SetSize(width, height)
	m.statusBar.SetWidth(width)
	m.picker.SetWidth(width)

	// Tab bar and status bar each take one row.
	contentHeight := height - 2
	if contentHeight < 5 {
		contentHeight = 5
	}
	m.chatSurface.SetSize(width, contentHeight)
	m.explorerSurface.SetSize(width, contentHeight)
	m.form.SetSize(width, contentHeight)
}

// applyConfig swaps in a reloaded config. Client base URLs update in
// place so in-flight requests keep their old target.
func (m *Model) applyConfig(cfg *config.Config) {
	m.cfg = cfg
	m.registryClient.SetBaseURL(cfg.Registry.URL)
	m.explorerClient.SetBaseURL(cfg.Explorer.URL)
	m.logger.Info("config applied",
		"registry_url", cfg.Registry.URL,
		"explorer_url", cfg.Explorer.URL)
}

// errorText extracts a user-facing message from a dispatch error.
func errorText(err error) string {
	if err == nil || strings.TrimSpace(err.Error()) == "" {
		return "Request failed"
	}
	return err.Error()
}

// ActiveTab returns the tab currently showing.
func (m *Model) ActiveTab() Tab {
	return m.activeTab
}

// Notifications exposes the notification center for the view and tests.
func (m *Model) Notifications() *notify.Center {
	return m.notifications
}
